package catalogfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"minishop/internal/api/controllers"
	"minishop/internal/infra"
	"minishop/internal/models/db_models"
	"minishop/internal/repositories"
	"minishop/internal/services"
	"minishop/pkg/memcache"
)

var Module = fx.Options(
	fx.Provide(
		provideProductCache,
		provideProductRepo,
		provideProductService,
		controllers.NewProductsController,
	),
	fx.Invoke(migrate),
)

func migrate(db *gorm.DB) {
	infra.AutoMigrate(db, &db_models.Product{})
}

func provideProductCache() memcache.Store {
	return memcache.NewTTLStore()
}

func provideProductRepo(db *gorm.DB) repositories.ProductRepositoryInterface {
	return repositories.NewProductRepository(db)
}

func provideProductService(repo repositories.ProductRepositoryInterface, cache memcache.Store) services.ProductServiceInterface {
	return services.NewProductService(repo, cache)
}
