package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"skinai/internal/models/db_models"
)

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *db_models.Assessment) error
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Assessment, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *db_models.Assessment) error {
	return r.db.WithContext(ctx).Create(assessment).Error
}

func (r *assessmentRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Assessment, error) {
	var assessments []db_models.Assessment
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&assessments).Error
	return assessments, err
}
