package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// CatalogProduct is the wire shape the catalog service returns under "data".
type CatalogProduct struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Stock       int             `json:"stock"`
	IsActive    bool            `json:"is_active"`
}

// CatalogClientInterface fetches authoritative product data for checkout.
// Timeouts, non-2xx statuses and malformed bodies all collapse to (nil, nil):
// the orchestrator treats every flavor of failure as "unavailable".
type CatalogClientInterface interface {
	GetProduct(ctx context.Context, productID uint) (*CatalogProduct, error)
}

func NewCatalogClient(baseURL string, timeout time.Duration) CatalogClientInterface {
	return &CatalogClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type CatalogClient struct {
	baseURL string
	client  *http.Client
}

type catalogEnvelope struct {
	Data *CatalogProduct `json:"data"`
}

func (c *CatalogClient) GetProduct(ctx context.Context, productID uint) (*CatalogProduct, error) {
	url := fmt.Sprintf("%s/api/products/%d", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("catalog: failed to fetch product %d: %v", productID, err)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("catalog: product %d returned status %d", productID, resp.StatusCode)
		return nil, nil
	}

	var envelope catalogEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Data == nil {
		log.Printf("catalog: malformed response for product %d", productID)
		return nil, nil
	}
	return envelope.Data, nil
}
