package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"minishop/cmd/fx/catalogfx"
	"minishop/internal/api/controllers"
	"minishop/internal/infra"
	"minishop/pkg/metrics"
	"minishop/pkg/middleware"
	"minishop/pkg/utils"
)

const serviceName = "catalog-service"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		fx.Provide(infra.InitPostgresql),
		fx.Provide(provideMetrics),
		catalogfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideMetrics() *metrics.ServerMetrics {
	return metrics.NewServerMetrics("catalog")
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := utils.EnvOr("PORT", "8001")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting %s at :%s", serviceName, port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Printf("Stopping %s", serviceName)
			return nil
		},
	})
}

func ProvideRouter(
	productsController *controllers.ProductsController,
	serverMetrics *metrics.ServerMetrics) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(serverMetrics.GinMiddleware())

	RegisterRoutes(r, productsController)

	return r
}

func RegisterRoutes(r *gin.Engine, productsController *controllers.ProductsController) {
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", healthHandler)
	api.GET("/products", productsController.ListProductsHandler)
	api.GET("/products/:id", productsController.GetProductHandler)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   serviceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
