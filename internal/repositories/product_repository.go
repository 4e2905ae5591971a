package repositories

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"skinai/internal/infra"
	"skinai/internal/models/db_models"
)

// ProductQuery narrows the catalog before ranking. Products whose ingredient
// list shares any entry with ExcludeIngredients are dropped.
type ProductQuery struct {
	Brand              string
	ExcludeIngredients []string
	Limit              int
}

type ProductRepository interface {
	FindSimilar(ctx context.Context, vector pgvector.Vector, query ProductQuery) ([]db_models.ProductMatch, error)
	UpsertCatalog(ctx context.Context, products []db_models.Product) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (p *productRepository) FindSimilar(ctx context.Context, vector pgvector.Vector, query ProductQuery) ([]db_models.ProductMatch, error) {
	var results []db_models.ProductMatch

	limit := query.Limit
	if limit <= 0 {
		limit = 5
	}

	sql := `
        SELECT *, (1 - (embedding <=> ?)) AS similarity
        FROM products
        WHERE deleted_at IS NULL
          AND lower(brand) = lower(?)
          AND NOT (ingredients && ?::text[])
        ORDER BY embedding <=> ?  -- Cosine distance (closer to 0 is better)
        LIMIT ?
    `

	exclude := pq.StringArray(query.ExcludeIngredients)
	if exclude == nil {
		exclude = pq.StringArray{}
	}

	err := p.db.WithContext(ctx).
		Raw(sql, vector, query.Brand, exclude, vector, limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// UpsertCatalog replaces products matched by brand and name in one transaction.
func (p *productRepository) UpsertCatalog(ctx context.Context, products []db_models.Product) (err error) {
	tx, err := infra.StartTransaction(p.db.WithContext(ctx))
	if err != nil {
		return err
	}
	defer func() {
		err = infra.ReleaseTransaction(tx, err)
	}()

	for i := range products {
		product := products[i]
		var existing db_models.Product
		res := tx.Where("brand = ? AND name = ?", product.Brand, product.Name).Limit(1).Find(&existing)
		if res.Error != nil {
			return fmt.Errorf("find %s/%s: %w", product.Brand, product.Name, res.Error)
		}
		if res.RowsAffected > 0 {
			product.ID = existing.ID
			product.CreatedAt = existing.CreatedAt
		}
		if err := tx.Save(&product).Error; err != nil {
			return fmt.Errorf("save %s/%s: %w", product.Brand, product.Name, err)
		}
	}
	return nil
}
