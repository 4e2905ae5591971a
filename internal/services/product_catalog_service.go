package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"skinai/internal/models/db_models"
	"skinai/internal/repositories"
	"skinai/pkg/utils"
)

type ProductCatalogServiceInterface interface {
	SeedCatalog(ctx context.Context) (int, error)
}

type ProductCatalogService struct {
	products repositories.ProductRepository
	embedder utils.EmbeddingClientInterface
	log      *zap.Logger
}

func NewProductCatalogService(products repositories.ProductRepository, embedder utils.EmbeddingClientInterface, log *zap.Logger) ProductCatalogServiceInterface {
	return &ProductCatalogService{
		products: products,
		embedder: embedder,
		log:      log.Named("catalog"),
	}
}

// SeedCatalog embeds the bundled products and upserts them by brand and name.
// Ingredients are stored lower-cased so allergy filtering can match exactly.
func (p *ProductCatalogService) SeedCatalog(ctx context.Context) (int, error) {
	products := make([]db_models.Product, 0, len(seedProducts))
	for _, seed := range seedProducts {
		vector, err := p.embedder.GetEmbedding(ctx, seed.embeddingText())
		if err != nil {
			return 0, fmt.Errorf("%w: embed %s: %v", utils.ErrUnexpectedBehaviorOfAI, seed.Name, err)
		}
		products = append(products, db_models.Product{
			Name:        seed.Name,
			Brand:       seed.Brand,
			Category:    seed.Category,
			Description: seed.Description,
			SkinTypes:   pq.StringArray(seed.SkinTypes),
			Ingredients: pq.StringArray(lowerAll(seed.Ingredients)),
			Embedding:   vector,
		})
	}

	if err := p.products.UpsertCatalog(ctx, products); err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	p.log.Info("product catalog seeded", zap.Int("products", len(products)))
	return len(products), nil
}

type seedProduct struct {
	Name        string
	Brand       string
	Category    string
	Description string
	SkinTypes   []string
	Ingredients []string
}

// embeddingText mirrors the profile text built for recommendations so both
// land in the same region of the vector space.
func (s seedProduct) embeddingText() string {
	return strings.Join([]string{
		strings.Join(s.SkinTypes, " skin ") + " skin",
		s.Category,
		s.Description,
	}, " ")
}
