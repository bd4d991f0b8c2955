package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"minishop/internal/models/db_models"
)

type EmailRepositoryInterface interface {
	CreateEmail(ctx context.Context, email *db_models.Email) error
	SaveEmail(ctx context.Context, email *db_models.Email) error
	GetEmailByID(ctx context.Context, id uint) (*db_models.Email, error)
	// ListRetryable returns failed emails whose backoff window has passed
	// and that are still under the retry cap. Query hook for a future retry
	// worker; nothing in the request path consumes it.
	ListRetryable(ctx context.Context, now time.Time) ([]db_models.Email, error)
}

func NewEmailRepository(db *gorm.DB) EmailRepositoryInterface {
	return &EmailRepository{db: db}
}

type EmailRepository struct {
	db *gorm.DB
}

func (r *EmailRepository) CreateEmail(ctx context.Context, email *db_models.Email) error {
	return r.db.WithContext(ctx).Create(email).Error
}

func (r *EmailRepository) SaveEmail(ctx context.Context, email *db_models.Email) error {
	return r.db.WithContext(ctx).Save(email).Error
}

func (r *EmailRepository) GetEmailByID(ctx context.Context, id uint) (*db_models.Email, error) {
	var email db_models.Email
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &email, nil
}

func (r *EmailRepository) ListRetryable(ctx context.Context, now time.Time) ([]db_models.Email, error) {
	var emails []db_models.Email
	err := r.db.WithContext(ctx).
		Where("status = ?", db_models.EmailStatusFailed).
		Where("retry_count < ?", db_models.MaxEmailRetries).
		Where("next_retry_at IS NULL OR next_retry_at < ?", now).
		Order("failed_at").
		Find(&emails).Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}
