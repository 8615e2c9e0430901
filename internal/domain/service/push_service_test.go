package service

import (
	"context"
	"fmt"
	"testing"

	"athan/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDeliveryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want DeliveryOutcome
	}{
		{name: "success", err: nil, want: Delivered},
		{name: "wrapped sentinel", err: errors.Wrap(ErrRegistrationGone, "send"), want: TokenInvalid},
		{name: "fcm legacy code", err: errors.New("messaging/registration-token-not-registered"), want: TokenInvalid},
		{name: "fcm v1 status", err: errors.New("UNREGISTERED: token is not registered"), want: TokenInvalid},
		{name: "legacy NotRegistered", err: errors.New("error: NotRegistered"), want: TokenInvalid},
		{name: "registration not found", err: errors.New("Registration not found for device"), want: TokenInvalid},
		{name: "entity not found", err: fmt.Errorf("send: %w", errors.New("Requested entity was not found.")), want: TokenInvalid},
		{name: "timeout", err: errors.Wrap(context.DeadlineExceeded, "send"), want: TransientFailure},
		{name: "canceled", err: context.Canceled, want: TransientFailure},
		{name: "quota", err: errors.New("QUOTA_EXCEEDED: sending rate too high"), want: TransientFailure},
		{name: "unavailable", err: errors.New("UNAVAILABLE: server overloaded"), want: TransientFailure},
		{name: "invalid argument", err: errors.New("INVALID_ARGUMENT: payload too large"), want: TransientFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDeliveryError(tt.err))
		})
	}
}

func TestDeliveryOutcome_String(t *testing.T) {
	assert.Equal(t, "delivered", Delivered.String())
	assert.Equal(t, "token_invalid", TokenInvalid.String())
	assert.Equal(t, "transient_failure", TransientFailure.String())
}
