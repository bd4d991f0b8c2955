package response_models

import "minishop/internal/models/db_models"

type EmailSendResult struct {
	EmailID     uint                  `json:"email_id"`
	Status      db_models.EmailStatus `json:"status"`
	Recipient   string                `json:"recipient"`
	OrderNumber string                `json:"order_number"`
}
