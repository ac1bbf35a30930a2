package services

import (
	"crypto/rand"
	"encoding/hex"
)

// tokenBytes gives 40 hex characters per token.
const tokenBytes = 20

// NewToken returns an opaque random token for the subscription verify and
// unsubscribe links. Tokens carry no structure; they are only ever
// compared for equality against the stored value.
func NewToken() string {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

// SendVerificationEmail delivers the double-opt-in email for a new
// subscription.
func SendVerificationEmail(mailer Mailer, baseURL, email, verificationToken, unsubscribeToken string) error {
	body := verificationEmail(baseURL, verificationToken, unsubscribeToken)
	return mailer.Send(verificationSubject, body, []string{email})
}
