package product_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"skinai/internal/repositories"
	"skinai/internal/services"
	"skinai/pkg/utils"
)

var Module = fx.Provide(
	provideProductRepo,
	provideAssessmentRepo,
	provideCatalogService)

func provideProductRepo(db *gorm.DB) repositories.ProductRepository {
	return repositories.NewProductRepository(db)
}

func provideAssessmentRepo(db *gorm.DB) repositories.AssessmentRepository {
	return repositories.NewAssessmentRepository(db)
}

func provideCatalogService(products repositories.ProductRepository, embedder utils.EmbeddingClientInterface, log *zap.Logger) services.ProductCatalogServiceInterface {
	return services.NewProductCatalogService(products, embedder, log)
}
