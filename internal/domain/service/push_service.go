package service

import (
	"context"
	"strings"

	"athan/internal/errors"
)

// ErrRegistrationGone marks a send that failed because the device token is
// permanently invalid. Push implementations wrap their transport error with it.
var ErrRegistrationGone = errors.New("push registration is no longer valid")

// PushMessage is one notification addressed to one device token.
type PushMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// PushService delivers notifications to devices.
type PushService interface {
	// Send delivers msg and returns the transport's message ID.
	Send(ctx context.Context, msg *PushMessage) (string, error)
}

// DeliveryOutcome classifies the result of a single send.
type DeliveryOutcome int

const (
	Delivered DeliveryOutcome = iota
	TokenInvalid
	TransientFailure
)

func (o DeliveryOutcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case TokenInvalid:
		return "token_invalid"
	default:
		return "transient_failure"
	}
}

// Error codes and messages push transports use for tokens that will never work again.
var registrationGoneMarkers = []string{
	"registration-token-not-registered",
	"unregistered",
	"notregistered",
	"not registered",
	"registration not found",
	"requested entity was not found",
}

// ClassifyDeliveryError maps a send error to a DeliveryOutcome. Only errors that
// prove the registration is gone are TokenInvalid; timeouts and everything else
// stay retryable.
func ClassifyDeliveryError(err error) DeliveryOutcome {
	if err == nil {
		return Delivered
	}

	if errors.Is(err, ErrRegistrationGone) {
		return TokenInvalid
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return TransientFailure
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range registrationGoneMarkers {
		if strings.Contains(msg, marker) {
			return TokenInvalid
		}
	}

	return TransientFailure
}
