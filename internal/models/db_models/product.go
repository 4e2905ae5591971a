package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type Product struct {
	BaseModel
	Name        string          `gorm:"not null"`
	Brand       string          `gorm:"index;size:100;not null"`
	Category    string          `gorm:"size:50"`
	Description string          `gorm:"type:text"`
	SkinTypes   pq.StringArray  `gorm:"type:text[]"`
	Ingredients pq.StringArray  `gorm:"type:text[]"`
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
}

// ProductMatch is a product row with its cosine similarity to the query vector.
type ProductMatch struct {
	Product
	Similarity float64
}
