package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"minishop/internal/models/db_models"
)

type EmailTemplateRepositoryInterface interface {
	GetActiveByName(ctx context.Context, name string) (*db_models.EmailTemplate, error)
}

func NewEmailTemplateRepository(db *gorm.DB) EmailTemplateRepositoryInterface {
	return &EmailTemplateRepository{db: db}
}

type EmailTemplateRepository struct {
	db *gorm.DB
}

func (r *EmailTemplateRepository) GetActiveByName(ctx context.Context, name string) (*db_models.EmailTemplate, error) {
	var tpl db_models.EmailTemplate
	err := r.db.WithContext(ctx).
		Where("name = ? AND is_active = TRUE", name).
		First(&tpl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tpl, nil
}
