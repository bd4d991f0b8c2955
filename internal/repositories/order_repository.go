package repositories

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"minishop/internal/models/db_models"
	"minishop/internal/models/response_models"
)

type OrderListFilter struct {
	Status        string
	PaymentStatus string
	CustomerEmail string
	Page          int
	PerPage       int
}

type OrderRepositoryInterface interface {
	// CreateOrder persists the order graph (order, items, transaction) and
	// runs settle inside the same database transaction. A settle error rolls
	// everything back, so a declined payment leaves no rows behind.
	CreateOrder(ctx context.Context, order *db_models.Order, settle func(*db_models.Order) error) error
	GetOrderByID(ctx context.Context, id uint) (*db_models.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*db_models.Order, error)
	ListOrders(ctx context.Context, filter OrderListFilter) ([]db_models.Order, int64, error)
	SaveOrder(ctx context.Context, order *db_models.Order) error
	GetStatistics(ctx context.Context) (*response_models.OrderStats, error)
	OrderNumberExists(ctx context.Context, orderNumber string) (bool, error)
	TransactionIDExists(ctx context.Context, transactionID string) (bool, error)
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryInterface {
	return &OrderRepository{db: db}
}

type OrderRepository struct {
	db *gorm.DB
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order *db_models.Order, settle func(*db_models.Order) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		if err := settle(order); err != nil {
			return err
		}

		if err := tx.Save(order).Error; err != nil {
			return err
		}
		for i := range order.Transactions {
			if err := tx.Save(&order.Transactions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id uint) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("Transactions").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetOrderByNumber(ctx context.Context, orderNumber string) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("Transactions").
		Where("order_number = ?", orderNumber).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) ListOrders(ctx context.Context, filter OrderListFilter) ([]db_models.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Order{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.CustomerEmail != "" {
		query = query.Where("customer_email = ?", filter.CustomerEmail)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []db_models.Order
	offset := (filter.Page - 1) * filter.PerPage
	err := query.
		Preload("OrderItems").
		Preload("Transactions").
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PerPage).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) SaveOrder(ctx context.Context, order *db_models.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *OrderRepository) GetStatistics(ctx context.Context) (*response_models.OrderStats, error) {
	stats := &response_models.OrderStats{}
	db := r.db.WithContext(ctx).Model(&db_models.Order{})

	if err := db.Session(&gorm.Session{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	statusCounts := []struct {
		status db_models.OrderStatus
		dest   *int64
	}{
		{db_models.OrderStatusPending, &stats.PendingOrders},
		{db_models.OrderStatusConfirmed, &stats.ConfirmedOrders},
		{db_models.OrderStatusShipped, &stats.ShippedOrders},
		{db_models.OrderStatusDelivered, &stats.DeliveredOrders},
		{db_models.OrderStatusCancelled, &stats.CancelledOrders},
	}
	for _, sc := range statusCounts {
		if err := db.Session(&gorm.Session{}).Where("status = ?", sc.status).Count(sc.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := r.sumTotalAmount(ctx, db_models.PaymentStatusPaid, &stats.TotalRevenue); err != nil {
		return nil, err
	}
	if err := r.sumTotalAmount(ctx, db_models.PaymentStatusPending, &stats.PendingPayments); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *OrderRepository) sumTotalAmount(ctx context.Context, paymentStatus db_models.PaymentStatus, dest *decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("payment_status = ?", paymentStatus).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(dest).Error
}

func (r *OrderRepository) OrderNumberExists(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("order_number = ?", orderNumber).
		Count(&count).Error
	return count > 0, err
}

func (r *OrderRepository) TransactionIDExists(ctx context.Context, transactionID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("transaction_id = ?", transactionID).
		Count(&count).Error
	return count > 0, err
}
