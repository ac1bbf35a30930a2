package services

import (
	"sync"

	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// sendConcurrency bounds how many notification emails are in flight at
// once.
const sendConcurrency = 8

// SubscriberSource yields the recipients of update notifications.
type SubscriberSource interface {
	FindVerified() ([]*models.Subscription, error)
}

// Notifier broadcasts content-update emails to verified subscribers.
// Dispatch is fire-and-forget relative to the triggering request: the
// handler returns its response before any email leaves. Per-recipient
// failures are logged and do not stop the remaining sends; there is no
// retry and no delivery tracking.
type Notifier struct {
	subscribers SubscriberSource
	mailer      Mailer
	baseURL     string
	logger      zerolog.Logger
	inflight    sync.WaitGroup
}

func NewNotifier(subscribers SubscriberSource, mailer Mailer, baseURL string) *Notifier {
	return &Notifier{
		subscribers: subscribers,
		mailer:      mailer,
		baseURL:     baseURL,
		logger:      log.With().Str("service", "notifier").Logger(),
	}
}

// SkillsUpdated schedules a skill-update broadcast and returns
// immediately.
func (n *Notifier) SkillsUpdated() {
	n.inflight.Add(1)
	go func() {
		defer n.inflight.Done()
		n.dispatch()
	}()
}

// Wait blocks until every scheduled broadcast has finished. Used by
// graceful shutdown and by tests.
func (n *Notifier) Wait() {
	n.inflight.Wait()
}

func (n *Notifier) dispatch() {
	subs, err := n.subscribers.FindVerified()
	if err != nil {
		n.logger.Error().Err(err).Msg("failed to load verified subscribers")
		return
	}
	if len(subs) == 0 {
		n.logger.Info().Msg("no verified subscribers, skipping broadcast")
		return
	}

	n.logger.Info().Int("recipients", len(subs)).Msg("sending skill update emails")

	var g errgroup.Group
	g.SetLimit(sendConcurrency)
	for _, sub := range subs {
		sub := sub
		g.Go(func() error {
			token := ""
			if sub.UnsubscribeToken != nil {
				token = *sub.UnsubscribeToken
			}
			body := skillUpdateEmail(n.baseURL, sub.Email, token)
			if err := n.mailer.Send(skillUpdateSubject, body, []string{sub.Email}); err != nil {
				// one bad recipient must not abort the rest
				n.logger.Error().Err(err).Str("email", sub.Email).Msg("failed to send notification")
			}
			return nil
		})
	}
	g.Wait()

	n.logger.Info().Msg("skill update broadcast finished")
}
