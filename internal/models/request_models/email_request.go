package request_models

type OrderConfirmationItem struct {
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	Price       float64 `json:"price"`
}

type OrderConfirmationRequest struct {
	OrderID         uint                    `json:"order_id" binding:"required"`
	OrderNumber     string                  `json:"order_number" binding:"required"`
	CustomerEmail   string                  `json:"customer_email" binding:"required,email"`
	CustomerName    string                  `json:"customer_name" binding:"required"`
	OrderTotal      float64                 `json:"order_total" binding:"required"`
	OrderItems      []OrderConfirmationItem `json:"order_items" binding:"required,dive"`
	ShippingAddress string                  `json:"shipping_address"`
}
