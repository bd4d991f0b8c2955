package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// OrderConfirmationPayload is the contract between checkout and the email
// service.
type OrderConfirmationPayload struct {
	OrderID         uint                    `json:"order_id"`
	OrderNumber     string                  `json:"order_number"`
	CustomerEmail   string                  `json:"customer_email"`
	CustomerName    string                  `json:"customer_name"`
	OrderTotal      float64                 `json:"order_total"`
	OrderItems      []OrderConfirmationItem `json:"order_items"`
	ShippingAddress string                  `json:"shipping_address,omitempty"`
}

type OrderConfirmationItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type EmailClientInterface interface {
	SendOrderConfirmation(ctx context.Context, payload OrderConfirmationPayload) error
}

func NewEmailClient(baseURL string, timeout time.Duration) EmailClientInterface {
	return &EmailClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type EmailClient struct {
	baseURL string
	client  *http.Client
}

func (c *EmailClient) SendOrderConfirmation(ctx context.Context, payload OrderConfirmationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal order confirmation: %w", err)
	}

	url := c.baseURL + "/api/order-confirmation"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build order confirmation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send order confirmation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("email service returned status %d", resp.StatusCode)
	}
	return nil
}
