package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"minishop/internal/models/db_models"
	"minishop/internal/models/request_models"
	"minishop/internal/models/response_models"
	"minishop/pkg/utils"
)

type stubOrderService struct {
	order *db_models.Order
	err   error
}

func (s *stubOrderService) CreateOrder(ctx context.Context, req request_models.CreateOrderRequest) (*db_models.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) GetOrder(ctx context.Context, identifier string) (*db_models.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) ListOrders(ctx context.Context, query request_models.ListOrdersQuery) (*response_models.OrderPage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &response_models.OrderPage{Page: query.Page, PerPage: query.PerPage}, nil
}

func (s *stubOrderService) CancelOrder(ctx context.Context, id uint) (*db_models.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) GetStatistics(ctx context.Context) (*response_models.OrderStats, error) {
	return &response_models.OrderStats{}, s.err
}

func newOrdersRouter(svc *stubOrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	oc := NewOrdersController(svc)

	r.POST("/api/orders", oc.CreateOrderHandler)
	r.GET("/api/orders", oc.ListOrdersHandler)
	r.GET("/api/orders/:identifier", oc.GetOrderHandler)
	r.POST("/api/orders/:id/cancel", oc.CancelOrderHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

const validCreateBody = `{
	"items": [{"product_id": 1, "quantity": 2}],
	"customer_email": "jane@example.com",
	"payment_method": "credit_card"
}`

func TestCreateOrderHandlerCreated(t *testing.T) {
	svc := &stubOrderService{order: &db_models.Order{OrderNumber: "ORD-1"}}
	r := newOrdersRouter(svc)

	w, resp := doJSON(t, r, http.MethodPost, "/api/orders", validCreateBody)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Order created successfully", resp.Message)
}

func TestCreateOrderHandlerBindingFailure(t *testing.T) {
	r := newOrdersRouter(&stubOrderService{})

	w, resp := doJSON(t, r, http.MethodPost, "/api/orders", `{"items": []}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.NotEmpty(t, resp.Errors)
}

func TestCreateOrderHandlerProductValidation(t *testing.T) {
	svc := &stubOrderService{err: utils.NewValidationErrors("Product validation failed", []string{
		"Widget has insufficient stock. Available: 1, Requested: 5",
	})}
	r := newOrdersRouter(svc)

	w, resp := doJSON(t, r, http.MethodPost, "/api/orders", validCreateBody)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Product validation failed", resp.Message)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "insufficient stock")
}

func TestCreateOrderHandlerPaymentDeclined(t *testing.T) {
	r := newOrdersRouter(&stubOrderService{err: utils.ErrPaymentDeclined})

	w, resp := doJSON(t, r, http.MethodPost, "/api/orders", validCreateBody)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, "Payment processing failed", resp.Message)
}

func TestGetOrderHandlerNotFound(t *testing.T) {
	r := newOrdersRouter(&stubOrderService{err: utils.ErrOrderNotFound})

	w, resp := doJSON(t, r, http.MethodGet, "/api/orders/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", resp.Message)
}

func TestCancelOrderHandlerConflicts(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"already cancelled", utils.ErrOrderAlreadyCancelled, http.StatusBadRequest, "Order is already cancelled"},
		{"shipped", utils.ErrOrderNotCancellable, http.StatusBadRequest, "Cannot cancel order that has been shipped or delivered"},
		{"unknown", utils.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newOrdersRouter(&stubOrderService{err: tc.err})
			w, resp := doJSON(t, r, http.MethodPost, "/api/orders/1/cancel", "")
			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, tc.message, resp.Message)
		})
	}
}

func TestCancelOrderHandlerSuccess(t *testing.T) {
	svc := &stubOrderService{order: &db_models.Order{Status: db_models.OrderStatusCancelled}}
	r := newOrdersRouter(svc)

	w, resp := doJSON(t, r, http.MethodPost, "/api/orders/1/cancel", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Order cancelled successfully", resp.Message)
}

func TestListOrdersHandlerDefaults(t *testing.T) {
	r := newOrdersRouter(&stubOrderService{})

	w, resp := doJSON(t, r, http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Status)

	page, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var decoded response_models.OrderPage
	require.NoError(t, json.Unmarshal(page, &decoded))
	assert.Equal(t, 1, decoded.Page)
	assert.Equal(t, 15, decoded.PerPage)
}
