package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"minishop/internal/models/request_models"
	"minishop/internal/services"
	"minishop/pkg/utils"
)

type EmailsController struct {
	emailService services.EmailServiceInterface
}

func NewEmailsController(emailService services.EmailServiceInterface) *EmailsController {
	return &EmailsController{
		emailService: emailService,
	}
}

func (ec *EmailsController) SendOrderConfirmationHandler(c *gin.Context) {
	var req request_models.OrderConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationErrors(c, "Validation failed", []string{err.Error()})
		return
	}

	result, err := ec.emailService.SendOrderConfirmation(c.Request.Context(), req)
	if err != nil {
		if err == utils.ErrDatabaseError {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "Failed to send order confirmation email")
		return
	}

	utils.RespondCreated(c, result, "Order confirmation email sent successfully")
}
