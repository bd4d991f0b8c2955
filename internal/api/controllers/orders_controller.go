package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"minishop/internal/models/request_models"
	"minishop/internal/models/response_models"
	"minishop/internal/services"
	"minishop/pkg/utils"
)

type OrdersController struct {
	orderService services.OrderServiceInterface
}

func NewOrdersController(orderService services.OrderServiceInterface) *OrdersController {
	return &OrdersController{
		orderService: orderService,
	}
}

// CreateOrderHandler handles checkout: POST /api/orders and POST /api/checkout.
func (oc *OrdersController) CreateOrderHandler(c *gin.Context) {
	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationErrors(c, "Validation failed", []string{err.Error()})
		return
	}

	order, err := oc.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.OrderEnvelope{Order: order}, "Order created successfully")
}

func (oc *OrdersController) ListOrdersHandler(c *gin.Context) {
	var query request_models.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := oc.orderService.ListOrders(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Fetched orders successfully")
}

// GetOrderHandler accepts either a numeric id or an ORD- order number.
func (oc *OrdersController) GetOrderHandler(c *gin.Context) {
	order, err := oc.orderService.GetOrder(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.OrderEnvelope{Order: order}, "")
}

func (oc *OrdersController) CancelOrderHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrOrderNotFound)
		return
	}

	order, svcErr := oc.orderService.CancelOrder(c.Request.Context(), uint(id))
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, response_models.OrderEnvelope{Order: order}, "Order cancelled successfully")
}

func (oc *OrdersController) StatisticsHandler(c *gin.Context) {
	stats, err := oc.orderService.GetStatistics(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "")
}
