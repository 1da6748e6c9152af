package domain

import "errors"

var (
	// ErrUnknownMessageKind is returned when a message's type code maps to
	// no known dispatch family.
	ErrUnknownMessageKind = errors.New("unknown message kind")

	// ErrMissingBody is returned when a message lacks the body its type
	// requires.
	ErrMissingBody = errors.New("message body missing for type")

	// ErrSubscriptionFailed is returned when subscription to the event
	// stream fails.
	ErrSubscriptionFailed = errors.New("subscription failed")
)
