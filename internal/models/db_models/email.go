package db_models

import (
	"math"
	"time"

	"gorm.io/datatypes"
)

type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSending EmailStatus = "sending"
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
	EmailStatusBounced EmailStatus = "bounced"
)

type EmailType string

const (
	EmailTypeOrderConfirmation EmailType = "order_confirmation"
	EmailTypeOrderShipped      EmailType = "order_shipped"
	EmailTypeOrderDelivered    EmailType = "order_delivered"
	EmailTypeOrderCancelled    EmailType = "order_cancelled"
	EmailTypePasswordReset     EmailType = "password_reset"
	EmailTypeWelcome           EmailType = "welcome"
	EmailTypeGeneral           EmailType = "general"
)

const MaxEmailRetries = 5

type Email struct {
	BaseModel
	RecipientEmail string `gorm:"not null;index" json:"recipient_email"`
	RecipientName  string `json:"recipient_name"`
	Subject        string `gorm:"not null" json:"subject"`
	BodyHTML       string `gorm:"type:text" json:"body_html"`
	BodyText       string `gorm:"type:text" json:"body_text"`

	Type EmailType `gorm:"not null;default:general;index" json:"type"`

	// Polymorphic reference, e.g. "order"/order_id
	ReferenceType string `gorm:"index:idx_emails_reference" json:"reference_type"`
	ReferenceID   uint   `gorm:"index:idx_emails_reference" json:"reference_id"`

	Status EmailStatus `gorm:"not null;default:pending;index" json:"status"`

	SentAt    *time.Time `gorm:"index" json:"sent_at"`
	FailedAt  *time.Time `json:"failed_at"`
	BouncedAt *time.Time `json:"bounced_at"`

	ErrorMessage string     `gorm:"type:text" json:"error_message"`
	RetryCount   int        `gorm:"not null;default:0" json:"retry_count"`
	NextRetryAt  *time.Time `json:"next_retry_at"`

	Metadata              datatypes.JSON `json:"metadata"`
	EmailProviderResponse datatypes.JSON `json:"email_provider_response"`
}

func (e *Email) IsSent() bool    { return e.Status == EmailStatusSent }
func (e *Email) IsFailed() bool  { return e.Status == EmailStatusFailed }
func (e *Email) IsBounced() bool { return e.Status == EmailStatusBounced }

// MarkSending, MarkSent, MarkFailed and MarkBounced mutate in memory only;
// persisting the row is the repository's job.

func (e *Email) MarkSending() {
	e.Status = EmailStatusSending
}

func (e *Email) MarkSent(now time.Time) {
	e.Status = EmailStatusSent
	e.SentAt = &now
	e.ErrorMessage = ""
}

// MarkFailed increments the retry counter and schedules the next attempt
// with exponential backoff: 15, 45, 135 minutes and so on (5 x 3^n where n
// is the attempt count after this failure).
func (e *Email) MarkFailed(now time.Time, errorMessage string) {
	e.Status = EmailStatusFailed
	e.FailedAt = &now
	e.ErrorMessage = errorMessage
	e.RetryCount++
	next := now.Add(RetryDelay(e.RetryCount))
	e.NextRetryAt = &next
}

func (e *Email) MarkBounced(now time.Time, reason string) {
	e.Status = EmailStatusBounced
	e.BouncedAt = &now
	e.ErrorMessage = reason
}

func RetryDelay(retryCount int) time.Duration {
	return time.Duration(5*math.Pow(3, float64(retryCount))) * time.Minute
}

func (e *Email) CanRetry(now time.Time) bool {
	return e.IsFailed() &&
		e.RetryCount < MaxEmailRetries &&
		(e.NextRetryAt == nil || e.NextRetryAt.Before(now))
}
