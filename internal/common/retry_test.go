package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry(t *testing.T) {
	errFlaky := errors.New("flaky")
	fast := RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond}

	tests := []struct {
		wantErr   error
		failures  []error
		name      string
		wantCalls int
	}{
		{
			name:      "succeeds first time",
			wantCalls: 1,
		},
		{
			name:      "recovers after failures",
			failures:  []error{errFlaky, errFlaky},
			wantCalls: 3,
		},
		{
			name:      "gives up after max attempts",
			failures:  []error{errFlaky, errFlaky, errFlaky},
			wantCalls: 3,
			wantErr:   ErrMaxRetries,
		},
		{
			name:      "permanent error stops immediately",
			failures:  []error{Permanent(ErrUnsupportedFormat)},
			wantCalls: 1,
			wantErr:   ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := WithRetry(context.Background(), func() error {
				calls++
				if calls <= len(tt.failures) {
					return tt.failures[calls-1]
				}
				return nil
			}, fast)

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestWithRetryCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, func() error { return errors.New("boom") },
		RetryOptions{MaxAttempts: 5, InitialDelay: time.Hour})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.True(t, IsRetryable(&RetryableError{Err: ErrNoText, Retryable: true}))
	assert.False(t, IsRetryable(Permanent(ErrNoText)))
	assert.False(t, IsRetryable(ErrNotFound))
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", lvl.String())

	_, err = ParseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestUserError(t *testing.T) {
	err := NewUserError("cannot read file", ErrNoText)
	assert.Equal(t, "cannot read file: no text extracted", err.Error())
	assert.ErrorIs(t, err, ErrNoText)
}
