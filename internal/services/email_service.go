package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"minishop/internal/models/db_models"
	"minishop/internal/models/request_models"
	"minishop/internal/models/response_models"
	"minishop/internal/repositories"
	"minishop/pkg/utils"
)

const orderConfirmationTemplateName = "order_confirmation"

// Fallback templates used when no active email_templates row exists.
const (
	defaultOrderConfirmationSubject = "Order Confirmation - {{order_number}}"

	defaultOrderConfirmationHTML = `<!doctype html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Thank you for your order, {{customer_name}}!</h2>
  <p>Your order <strong>{{order_number}}</strong> was placed on {{order_date}}.</p>
  <h3>Order summary</h3>
  <pre>{{order_items}}</pre>
  <p><strong>Total: ${{order_total}}</strong></p>
  <p>Shipping to: {{shipping_address}}</p>
  <p>We will let you know as soon as your order ships.</p>
</body>
</html>`

	defaultOrderConfirmationText = `Thank you for your order, {{customer_name}}!

Order {{order_number}} placed on {{order_date}}.

{{order_items}}

Total: ${{order_total}}
Shipping to: {{shipping_address}}

We will let you know as soon as your order ships.`
)

type EmailServiceInterface interface {
	SendOrderConfirmation(ctx context.Context, req request_models.OrderConfirmationRequest) (*response_models.EmailSendResult, error)
}

func NewEmailService(
	emailRepo repositories.EmailRepositoryInterface,
	templateRepo repositories.EmailTemplateRepositoryInterface,
	sender MailSenderInterface,
	clock utils.Clock,
) EmailServiceInterface {
	return &EmailService{
		emailRepo:    emailRepo,
		templateRepo: templateRepo,
		sender:       sender,
		clock:        clock,
	}
}

type EmailService struct {
	emailRepo    repositories.EmailRepositoryInterface
	templateRepo repositories.EmailTemplateRepositoryInterface
	sender       MailSenderInterface
	clock        utils.Clock
}

func (s *EmailService) SendOrderConfirmation(ctx context.Context, req request_models.OrderConfirmationRequest) (*response_models.EmailSendResult, error) {
	variables := map[string]string{
		"customer_name":    req.CustomerName,
		"order_number":     req.OrderNumber,
		"order_total":      fmt.Sprintf("%.2f", req.OrderTotal),
		"order_items":      formatOrderItems(req.OrderItems),
		"shipping_address": orDefault(req.ShippingAddress, "N/A"),
		"order_date":       s.clock.Now().Format("January 2, 2006"),
	}

	rendered := s.renderOrderConfirmation(ctx, variables)

	metadata, _ := json.Marshal(map[string]interface{}{
		"order_number": req.OrderNumber,
		"order_total":  req.OrderTotal,
		"items_count":  len(req.OrderItems),
	})

	email := &db_models.Email{
		RecipientEmail: req.CustomerEmail,
		RecipientName:  req.CustomerName,
		Subject:        rendered.Subject,
		BodyHTML:       rendered.BodyHTML,
		BodyText:       rendered.BodyText,
		Type:           db_models.EmailTypeOrderConfirmation,
		ReferenceType:  "order",
		ReferenceID:    req.OrderID,
		Status:         db_models.EmailStatusSending,
		Metadata:       metadata,
	}

	if err := s.emailRepo.CreateEmail(ctx, email); err != nil {
		log.Printf("email: failed to create record for order %s: %v", req.OrderNumber, err)
		return nil, utils.ErrDatabaseError
	}

	if err := s.sender.Send(req.CustomerEmail, req.CustomerName, rendered.Subject, rendered.BodyHTML, rendered.BodyText); err != nil {
		email.MarkFailed(s.clock.Now(), err.Error())
		if saveErr := s.emailRepo.SaveEmail(ctx, email); saveErr != nil {
			log.Printf("email %d: failed to record failure: %v", email.ID, saveErr)
		}
		log.Printf("email %d: order confirmation for %s failed: %v", email.ID, req.OrderNumber, err)
		return nil, fmt.Errorf("send order confirmation: %w", err)
	}

	email.MarkSent(s.clock.Now())
	providerResponse, _ := json.Marshal(map[string]interface{}{
		"provider":  "smtp",
		"timestamp": s.clock.Now().Format(time.RFC3339),
		"recipient": req.CustomerEmail,
	})
	email.EmailProviderResponse = providerResponse

	if err := s.emailRepo.SaveEmail(ctx, email); err != nil {
		log.Printf("email %d: failed to record delivery: %v", email.ID, err)
	}

	log.Printf("email %d: order confirmation sent for %s to %s", email.ID, req.OrderNumber, req.CustomerEmail)

	return &response_models.EmailSendResult{
		EmailID:     email.ID,
		Status:      email.Status,
		Recipient:   email.RecipientEmail,
		OrderNumber: req.OrderNumber,
	}, nil
}

// renderOrderConfirmation prefers the stored template row and falls back to
// the built-in one.
func (s *EmailService) renderOrderConfirmation(ctx context.Context, variables map[string]string) db_models.RenderedTemplate {
	tpl, err := s.templateRepo.GetActiveByName(ctx, orderConfirmationTemplateName)
	if err != nil {
		log.Printf("email: failed to load template %q, using built-in: %v", orderConfirmationTemplateName, err)
	}
	if tpl != nil {
		return tpl.Render(variables)
	}

	return db_models.RenderedTemplate{
		Subject:  db_models.RenderString(defaultOrderConfirmationSubject, variables),
		BodyHTML: db_models.RenderString(defaultOrderConfirmationHTML, variables),
		BodyText: db_models.RenderString(defaultOrderConfirmationText, variables),
	}
}

func formatOrderItems(items []request_models.OrderConfirmationItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%d x %s - $%.2f", item.Quantity, item.ProductName, item.Price))
	}
	return strings.Join(lines, "\n")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
