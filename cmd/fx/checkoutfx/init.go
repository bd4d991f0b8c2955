package checkoutfx

import (
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"minishop/internal/api/controllers"
	"minishop/internal/clients"
	"minishop/internal/infra"
	"minishop/internal/models/db_models"
	"minishop/internal/repositories"
	"minishop/internal/services"
	"minishop/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		provideClock,
		provideCatalogClient,
		provideEmailClient,
		providePaymentGateway,
		provideOrderRepo,
		provideOrderService,
		controllers.NewOrdersController,
	),
	fx.Invoke(migrate),
)

func migrate(db *gorm.DB) {
	infra.AutoMigrate(db,
		&db_models.Order{},
		&db_models.OrderItem{},
		&db_models.Transaction{})
}

func provideClock() utils.Clock {
	return utils.RealClock{}
}

func provideCatalogClient() clients.CatalogClientInterface {
	baseURL := utils.EnvOr("CATALOG_SERVICE_URL", "http://localhost:8001")
	timeout := time.Duration(utils.EnvIntOr("CATALOG_TIMEOUT_SECONDS", 20)) * time.Second
	return clients.NewCatalogClient(baseURL, timeout)
}

func provideEmailClient() clients.EmailClientInterface {
	baseURL := utils.EnvOr("EMAIL_SERVICE_URL", "http://localhost:8003")
	timeout := time.Duration(utils.EnvIntOr("EMAIL_TIMEOUT_SECONDS", 10)) * time.Second
	return clients.NewEmailClient(baseURL, timeout)
}

func providePaymentGateway(clock utils.Clock) services.PaymentGateway {
	return services.NewSimulatedGateway(services.SimulatedGatewayConfig{
		SuccessRate: utils.EnvIntOr("PAYMENT_SUCCESS_RATE", 95),
		Delay:       time.Duration(utils.EnvIntOr("PAYMENT_DELAY_MS", 2000)) * time.Millisecond,
	}, clock)
}

func provideOrderRepo(db *gorm.DB) repositories.OrderRepositoryInterface {
	return repositories.NewOrderRepository(db)
}

func provideOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	catalog clients.CatalogClientInterface,
	gateway services.PaymentGateway,
	emailClient clients.EmailClientInterface,
	clock utils.Clock,
) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo, catalog, gateway, emailClient, clock)
}
