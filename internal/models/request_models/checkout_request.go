package request_models

type CheckoutItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Items         []CheckoutItem         `json:"items" binding:"required,min=1,dive"`
	CustomerEmail string                 `json:"customer_email" binding:"required,email"`
	CustomerName  string                 `json:"customer_name"`
	CustomerPhone string                 `json:"customer_phone"`
	PaymentMethod string                 `json:"payment_method" binding:"required,oneof=credit_card debit_card paypal stripe bank_transfer cash_on_delivery"`
	UserID        *uint                  `json:"user_id"`
	ShippingAddr  map[string]interface{} `json:"shipping_address"`
	BillingAddr   map[string]interface{} `json:"billing_address"`
	Notes         string                 `json:"notes"`
}

type ListOrdersQuery struct {
	Status        string `form:"status"`
	PaymentStatus string `form:"payment_status"`
	CustomerEmail string `form:"customer_email"`
	Page          int    `form:"page,default=1"`
	PerPage       int    `form:"per_page,default=15"`
}
