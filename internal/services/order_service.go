package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"minishop/internal/clients"
	"minishop/internal/models/db_models"
	"minishop/internal/models/request_models"
	"minishop/internal/models/response_models"
	"minishop/internal/repositories"
	"minishop/pkg/utils"
)

var taxRate = decimal.NewFromFloat(0.10)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, req request_models.CreateOrderRequest) (*db_models.Order, error)
	GetOrder(ctx context.Context, identifier string) (*db_models.Order, error)
	ListOrders(ctx context.Context, query request_models.ListOrdersQuery) (*response_models.OrderPage, error)
	CancelOrder(ctx context.Context, id uint) (*db_models.Order, error)
	GetStatistics(ctx context.Context) (*response_models.OrderStats, error)
}

func NewOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	catalog clients.CatalogClientInterface,
	gateway PaymentGateway,
	emailClient clients.EmailClientInterface,
	clock utils.Clock,
) OrderServiceInterface {
	return &OrderService{
		orderRepo:   orderRepo,
		catalog:     catalog,
		gateway:     gateway,
		emailClient: emailClient,
		clock:       clock,
	}
}

type OrderService struct {
	orderRepo   repositories.OrderRepositoryInterface
	catalog     clients.CatalogClientInterface
	gateway     PaymentGateway
	emailClient clients.EmailClientInterface
	clock       utils.Clock
}

// validatedItem carries the catalog snapshot taken at admission time.
type validatedItem struct {
	product  *clients.CatalogProduct
	quantity int
}

// validateOrderItems re-prices every line item against the catalog. Errors
// are collected across all items, not thrown on the first one, so the caller
// sees the complete picture in a single response.
func (s *OrderService) validateOrderItems(ctx context.Context, items []request_models.CheckoutItem) ([]validatedItem, []string) {
	var validated []validatedItem
	var errs []string

	for _, item := range items {
		product, err := s.catalog.GetProduct(ctx, item.ProductID)
		if err != nil || product == nil {
			errs = append(errs, fmt.Sprintf("Product with ID %d not found or unavailable", item.ProductID))
			continue
		}

		if !product.IsActive {
			errs = append(errs, fmt.Sprintf("%s is no longer available", product.Name))
			continue
		}

		if product.Stock < item.Quantity {
			errs = append(errs, fmt.Sprintf("%s has insufficient stock. Available: %d, Requested: %d",
				product.Name, product.Stock, item.Quantity))
			continue
		}

		validated = append(validated, validatedItem{product: product, quantity: item.Quantity})
	}

	return validated, errs
}

func (s *OrderService) CreateOrder(ctx context.Context, req request_models.CreateOrderRequest) (*db_models.Order, error) {
	validated, itemErrs := s.validateOrderItems(ctx, req.Items)

	if len(itemErrs) > 0 {
		return nil, utils.NewValidationErrors("Product validation failed", itemErrs)
	}
	if len(validated) == 0 {
		return nil, utils.NewValidationErrors("No valid items to process", nil)
	}

	// Totals use the authoritative catalog prices, never the caller's.
	subtotal := decimal.Zero
	orderItems := make([]db_models.OrderItem, 0, len(validated))
	for _, v := range validated {
		lineSubtotal := v.product.Price.Mul(decimal.NewFromInt(int64(v.quantity))).Round(2)
		subtotal = subtotal.Add(lineSubtotal)

		orderItems = append(orderItems, db_models.OrderItem{
			ProductID:          v.product.ID,
			ProductName:        v.product.Name,
			ProductDescription: v.product.Description,
			ProductPrice:       v.product.Price,
			ProductImageURL:    v.product.ImageURL,
			Quantity:           v.quantity,
			Subtotal:           lineSubtotal,
		})
	}

	tax := subtotal.Mul(taxRate).Round(2)
	shippingCost := decimal.Zero // free shipping
	totalAmount := subtotal.Add(tax).Add(shippingCost).Round(2)

	orderNumber, err := s.generateOrderNumber(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	transactionID, err := s.generateTransactionID(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	order := &db_models.Order{
		OrderNumber:     orderNumber,
		UserID:          req.UserID,
		Subtotal:        subtotal,
		Tax:             tax,
		ShippingCost:    shippingCost,
		TotalAmount:     totalAmount,
		Status:          db_models.OrderStatusPending,
		PaymentStatus:   db_models.PaymentStatusPending,
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: marshalAddress(req.ShippingAddr),
		BillingAddress:  marshalAddress(req.BillingAddr),
		Notes:           req.Notes,
		OrderItems:      orderItems,
		Transactions: []db_models.Transaction{{
			TransactionID:  transactionID,
			Amount:         totalAmount,
			Currency:       "USD",
			PaymentMethod:  db_models.PaymentMethod(req.PaymentMethod),
			Status:         db_models.TxnStatusPending,
			PaymentGateway: "simulated",
		}},
	}

	// The payment step runs inside the same database transaction as the
	// inserts: a decline rolls the whole graph back, so a failed payment
	// leaves no order record at all.
	err = s.orderRepo.CreateOrder(ctx, order, func(o *db_models.Order) error {
		result := s.gateway.Charge(ctx, o.TotalAmount, o.Transactions[0].PaymentMethod)
		now := s.clock.Now()
		txn := &o.Transactions[0]

		if result.Success {
			txn.Status = db_models.TxnStatusCompleted
			txn.ProcessedAt = &now
			if blob, err := json.Marshal(result.GatewayResponse); err == nil {
				txn.PaymentGatewayResponse = blob
			}

			o.Status = db_models.OrderStatusConfirmed
			o.PaymentStatus = db_models.PaymentStatusPaid
			o.ConfirmedAt = &now
			return nil
		}

		txn.Status = db_models.TxnStatusFailed
		txn.FailedAt = &now
		txn.FailureReason = "Payment declined by processor"
		o.PaymentStatus = db_models.PaymentStatusFailed
		return utils.ErrPaymentDeclined
	})
	if err != nil {
		if err == utils.ErrPaymentDeclined {
			return nil, err
		}
		log.Printf("order: failed to create order: %v", err)
		return nil, utils.ErrDatabaseError
	}

	// Best-effort notification: failures are logged and never affect the
	// persisted order or the response.
	s.sendOrderConfirmationEmail(ctx, order)

	return order, nil
}

func (s *OrderService) sendOrderConfirmationEmail(ctx context.Context, order *db_models.Order) {
	customerName := order.CustomerName
	if customerName == "" {
		customerName = "Valued Customer"
	}

	items := make([]clients.OrderConfirmationItem, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, clients.OrderConfirmationItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.ProductPrice.InexactFloat64(),
		})
	}

	payload := clients.OrderConfirmationPayload{
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		CustomerEmail:   order.CustomerEmail,
		CustomerName:    customerName,
		OrderTotal:      order.TotalAmount.InexactFloat64(),
		OrderItems:      items,
		ShippingAddress: flattenAddress(order.ShippingAddress),
	}

	if err := s.emailClient.SendOrderConfirmation(ctx, payload); err != nil {
		log.Printf("order %s: failed to send confirmation email: %v", order.OrderNumber, err)
		return
	}
	log.Printf("order %s: confirmation email sent to %s", order.OrderNumber, order.CustomerEmail)
}

func (s *OrderService) GetOrder(ctx context.Context, identifier string) (*db_models.Order, error) {
	var order *db_models.Order
	var err error

	if strings.HasPrefix(identifier, db_models.OrderNumberPrefix) {
		order, err = s.orderRepo.GetOrderByNumber(ctx, identifier)
	} else {
		id, parseErr := strconv.ParseUint(identifier, 10, 64)
		if parseErr != nil {
			return nil, utils.ErrOrderNotFound
		}
		order, err = s.orderRepo.GetOrderByID(ctx, uint(id))
	}

	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, query request_models.ListOrdersQuery) (*response_models.OrderPage, error) {
	if query.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if query.PerPage < 1 || query.PerPage > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	orders, total, err := s.orderRepo.ListOrders(ctx, repositories.OrderListFilter{
		Status:        query.Status,
		PaymentStatus: query.PaymentStatus,
		CustomerEmail: query.CustomerEmail,
		Page:          query.Page,
		PerPage:       query.PerPage,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.OrderPage{
		Orders:  orders,
		Total:   total,
		Page:    query.Page,
		PerPage: query.PerPage,
	}, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, id uint) (*db_models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}

	if order.Status == db_models.OrderStatusCancelled {
		return nil, utils.ErrOrderAlreadyCancelled
	}
	if !order.IsCancellable() {
		return nil, utils.ErrOrderNotCancellable
	}

	order.Status = db_models.OrderStatusCancelled
	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return order, nil
}

func (s *OrderService) GetStatistics(ctx context.Context) (*response_models.OrderStats, error) {
	stats, err := s.orderRepo.GetStatistics(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return stats, nil
}

// generateOrderNumber produces ORD-YYYYMMDD-XXXXXXXX, regenerating on the
// rare collision with an existing row.
func (s *OrderService) generateOrderNumber(ctx context.Context) (string, error) {
	for {
		candidate := fmt.Sprintf("%s%s-%s",
			db_models.OrderNumberPrefix,
			s.clock.Now().Format("20060102"),
			randomSuffix())
		exists, err := s.orderRepo.OrderNumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

func (s *OrderService) generateTransactionID(ctx context.Context) (string, error) {
	for {
		candidate := fmt.Sprintf("%s%s-%s",
			db_models.TransactionIDPrefix,
			s.clock.Now().Format("20060102150405"),
			randomSuffix())
		exists, err := s.orderRepo.TransactionIDExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

func randomSuffix() string {
	id := uuid.New()
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

func marshalAddress(addr map[string]interface{}) datatypes.JSON {
	if len(addr) == 0 {
		return nil
	}
	blob, err := json.Marshal(addr)
	if err != nil {
		return nil
	}
	return blob
}

// flattenAddress renders a structured address blob as a single display
// string for the email payload, with keys in stable order.
func flattenAddress(blob datatypes.JSON) string {
	if len(blob) == 0 {
		return ""
	}
	var addr map[string]interface{}
	if err := json.Unmarshal(blob, &addr); err != nil {
		return ""
	}

	keys := make([]string, 0, len(addr))
	for k := range addr {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if s, ok := addr[k].(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
