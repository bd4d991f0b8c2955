package response_models

import (
	"github.com/shopspring/decimal"
	"minishop/internal/models/db_models"
)

type OrderEnvelope struct {
	Order *db_models.Order `json:"order"`
}

type OrderPage struct {
	Orders  []db_models.Order `json:"orders"`
	Total   int64             `json:"total"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
}

type OrderStats struct {
	TotalOrders     int64           `json:"total_orders"`
	PendingOrders   int64           `json:"pending_orders"`
	ConfirmedOrders int64           `json:"confirmed_orders"`
	ShippedOrders   int64           `json:"shipped_orders"`
	DeliveredOrders int64           `json:"delivered_orders"`
	CancelledOrders int64           `json:"cancelled_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	PendingPayments decimal.Decimal `json:"pending_payments"`
}
