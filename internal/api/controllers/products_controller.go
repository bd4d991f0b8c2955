package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"minishop/internal/services"
	"minishop/pkg/utils"
)

type ProductsController struct {
	productService services.ProductServiceInterface
}

func NewProductsController(productService services.ProductServiceInterface) *ProductsController {
	return &ProductsController{
		productService: productService,
	}
}

func (pc *ProductsController) ListProductsHandler(c *gin.Context) {
	products, err := pc.productService.GetAllProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (pc *ProductsController) GetProductHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	product, svcErr := pc.productService.GetProductByID(c.Request.Context(), uint(id))
	if svcErr != nil {
		if svcErr == utils.ErrProductNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		utils.HandleServiceError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}
