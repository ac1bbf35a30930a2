package services

import (
	"fmt"
	"time"
)

// Email bodies for the three transactional flows: subscription
// verification, skill-update broadcast, and contact replies. Kept as
// plain formatted strings; the templates are static apart from links and
// names.

const verificationSubject = "Confirm Your Subscription to Portfolio Updates"

func verificationEmail(baseURL, verificationToken, unsubscribeToken string) string {
	verificationLink := fmt.Sprintf("%s/api/verify?token=%s", baseURL, verificationToken)
	unsubscribeLink := fmt.Sprintf("%s/unsubscribe?token=%s", baseURL, unsubscribeToken)

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<body style="font-family: Arial, sans-serif; line-height: 1.6;">
  <table width="100%%" border="0" cellspacing="0" cellpadding="20" style="max-width: 600px; margin: 0 auto; border: 1px solid #e0e0e0;">
    <tr>
      <td style="padding: 30px 20px;">
        <h2 style="color: #2d3436; margin-top: 0;">Subscription Confirmation Required</h2>
        <p style="color: #636e72;">Dear Subscriber,</p>
        <p style="color: #636e72;">Thank you for subscribing to portfolio updates. To complete your subscription, please confirm your email address by clicking the button below:</p>
        <div style="text-align: center; margin: 40px 0;">
          <a href="%s" style="background-color: #0984e3; color: #ffffff; padding: 12px 25px; text-decoration: none; border-radius: 5px; display: inline-block; font-weight: bold;">Confirm Subscription</a>
        </div>
        <p style="color: #636e72;">If you did not request this subscription, please ignore this email.</p>
      </td>
    </tr>
    <tr>
      <td style="padding: 20px; background-color: #f8f9fa; text-align: center;">
        <p style="color: #636e72; font-size: 0.8em; margin: 0;">
          &copy; %d Portfolio. All rights reserved.<br>
          <a href="%s/privacy-policy" style="color: #0984e3; text-decoration: none;">Privacy Policy</a> |
          <a href="%s" style="color: #0984e3; text-decoration: none;">Unsubscribe</a>
        </p>
      </td>
    </tr>
  </table>
</body>
</html>`, verificationLink, time.Now().Year(), baseURL, unsubscribeLink)
}

const skillUpdateSubject = "New Skill Update: Explore My Latest Technical Enhancements"

func skillUpdateEmail(baseURL, recipientEmail, unsubscribeToken string) string {
	unsubscribeLink := fmt.Sprintf("%s/unsubscribe?token=%s", baseURL, unsubscribeToken)

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; color: #333333;">
  <table width="600" cellpadding="0" cellspacing="0" style="margin: 0 auto; background-color: #ffffff; border: 1px solid #eaeaea;">
    <tr>
      <td style="padding: 40px 30px;">
        <h1 style="font-size: 22px; color: #1a1a1a; margin: 0 0 25px 0;">New Skill Update Available</h1>
        <p style="font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">Dear Valued Subscriber,</p>
        <p style="font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">I have recently expanded and updated my technical skillset. Dive into the updated portfolio to explore the latest additions.</p>
        <div style="text-align: center; margin: 40px 0;">
          <a href="%s" style="background-color: #2563eb; color: #ffffff; padding: 14px 28px; text-decoration: none; border-radius: 5px; font-weight: 500; display: inline-block; font-size: 16px;">Discover My New Skills</a>
        </div>
      </td>
    </tr>
    <tr>
      <td style="padding: 30px; background-color: #f8f9fa; border-top: 1px solid #eeeeee;">
        <div style="text-align: center; font-size: 14px; color: #666666;">
          <p style="margin: 0 0 10px 0;">This message was sent to %s</p>
          <p style="margin: 0 0 10px 0;">
            <a href="%s" style="color: #2563eb; text-decoration: none;">Unsubscribe</a> |
            <a href="%s/privacy-policy" style="color: #2563eb; text-decoration: none;">Privacy Policy</a>
          </p>
          <p style="margin: 0;">&copy; %d Portfolio. All rights reserved.</p>
        </div>
      </td>
    </tr>
  </table>
</body>
</html>`, baseURL, recipientEmail, unsubscribeLink, baseURL, time.Now().Year())
}

// ContactReplySubject builds the subject line for an admin reply to a
// contact message.
func ContactReplySubject(originalSubject string) string {
	return fmt.Sprintf("Response for your message : (%s)", originalSubject)
}

// ContactReplyEmail builds the HTML body for an admin reply to a contact
// message. The reply text is inserted as-is; it is authored by the admin,
// not by visitors.
func ContactReplyEmail(recipientName, reply string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; color: #333; line-height: 1.6; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #A31D1D; padding: 20px; text-align: center; border-radius: 8px 8px 0 0;">
    <h1 style="color: #FEF9E1; font-size: 24px; margin: 0;">Portfolio</h1>
  </div>
  <div style="background-color: #FEF9E1; padding: 20px; border-radius: 0 0 8px 8px; border: 1px solid #E5D0AC;">
    <p style="font-size: 16px; margin-bottom: 20px;">Dear %s,</p>
    <div style="font-size: 16px; margin-bottom: 20px; color: #2A2E37;">%s</div>
    <p style="font-size: 16px; margin-bottom: 20px;">Thank you for reaching out. If you have any further questions, please feel free to contact us.</p>
  </div>
  <div style="text-align: center; margin-top: 20px; font-size: 14px; color: #777;">
    <p>This is an automated message. Please do not reply directly to this email.</p>
    <p>&copy; %d Portfolio. All rights reserved.</p>
  </div>
</div>`, recipientName, reply, time.Now().Year())
}
