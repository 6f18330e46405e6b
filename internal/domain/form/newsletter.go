package form

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// NewsletterSubscriber is a deduplicated email captured from form
// submissions. Resubscribing an existing address reactivates it.
type NewsletterSubscriber struct {
	id             uint
	email          string
	source         string
	isActive       bool
	subscribedAt   time.Time
	unsubscribedAt *time.Time
}

func NewNewsletterSubscriber(email, source string) (*NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid subscriber email: %s", email)
	}

	return &NewsletterSubscriber{
		email:        email,
		source:       source,
		isActive:     true,
		subscribedAt: time.Now(),
	}, nil
}

func ReconstructNewsletterSubscriber(subscriberID uint, email, source string, isActive bool,
	subscribedAt time.Time, unsubscribedAt *time.Time) (*NewsletterSubscriber, error) {

	if subscriberID == 0 {
		return nil, fmt.Errorf("subscriber ID cannot be zero")
	}

	return &NewsletterSubscriber{
		id:             subscriberID,
		email:          email,
		source:         source,
		isActive:       isActive,
		subscribedAt:   subscribedAt,
		unsubscribedAt: unsubscribedAt,
	}, nil
}

func (n *NewsletterSubscriber) ID() uint                   { return n.id }
func (n *NewsletterSubscriber) Email() string              { return n.email }
func (n *NewsletterSubscriber) Source() string             { return n.source }
func (n *NewsletterSubscriber) IsActive() bool             { return n.isActive }
func (n *NewsletterSubscriber) SubscribedAt() time.Time    { return n.subscribedAt }
func (n *NewsletterSubscriber) UnsubscribedAt() *time.Time { return n.unsubscribedAt }

func (n *NewsletterSubscriber) SetID(subscriberID uint) error {
	if n.id != 0 {
		return fmt.Errorf("subscriber ID is already set")
	}
	if subscriberID == 0 {
		return fmt.Errorf("subscriber ID cannot be zero")
	}
	n.id = subscriberID
	return nil
}

// Resubscribe reactivates a previously unsubscribed address.
func (n *NewsletterSubscriber) Resubscribe(source string) {
	n.isActive = true
	n.source = source
	n.subscribedAt = time.Now()
	n.unsubscribedAt = nil
}

func (n *NewsletterSubscriber) Unsubscribe() {
	now := time.Now()
	n.isActive = false
	n.unsubscribedAt = &now
}
