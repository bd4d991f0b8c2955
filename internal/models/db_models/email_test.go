package db_models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryDelaySchedule(t *testing.T) {
	assert.Equal(t, 15*time.Minute, RetryDelay(1))
	assert.Equal(t, 45*time.Minute, RetryDelay(2))
	assert.Equal(t, 135*time.Minute, RetryDelay(3))
}

func TestMarkFailedBackoff(t *testing.T) {
	now := time.Date(2024, 10, 26, 10, 0, 0, 0, time.UTC)
	email := &Email{Status: EmailStatusSending, RetryCount: 1}

	email.MarkFailed(now, "mailbox unavailable")

	assert.Equal(t, EmailStatusFailed, email.Status)
	assert.Equal(t, 2, email.RetryCount)
	require.NotNil(t, email.FailedAt)
	require.NotNil(t, email.NextRetryAt)
	// retry_count=2 puts the next attempt 45 minutes after the failure
	assert.Equal(t, now.Add(45*time.Minute), *email.NextRetryAt)
}

func TestCanRetry(t *testing.T) {
	failedAt := time.Date(2024, 10, 26, 10, 0, 0, 0, time.UTC)

	email := &Email{Status: EmailStatusSending, RetryCount: 1}
	email.MarkFailed(failedAt, "boom")

	assert.False(t, email.CanRetry(failedAt.Add(44*time.Minute)), "before the backoff window")
	assert.True(t, email.CanRetry(failedAt.Add(46*time.Minute)), "after the backoff window")

	email.NextRetryAt = nil
	assert.True(t, email.CanRetry(failedAt), "unset next_retry_at means eligible")

	email.RetryCount = MaxEmailRetries
	assert.False(t, email.CanRetry(failedAt.Add(time.Hour)), "retry cap reached")

	sent := &Email{Status: EmailStatusSent}
	assert.False(t, sent.CanRetry(failedAt))
}

func TestMarkSentClearsError(t *testing.T) {
	now := time.Date(2024, 10, 26, 10, 0, 0, 0, time.UTC)
	email := &Email{Status: EmailStatusFailed, ErrorMessage: "old failure"}

	email.MarkSent(now)

	assert.Equal(t, EmailStatusSent, email.Status)
	assert.Empty(t, email.ErrorMessage)
	require.NotNil(t, email.SentAt)
	assert.Equal(t, now, *email.SentAt)
}
