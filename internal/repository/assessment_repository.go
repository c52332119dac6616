package repository

import (
	"assessment_backend/internal/model"
	"context"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) ListDetailsByCategory(ctx context.Context, categoryID uint) ([]model.AssessmentDetail, error) {
	var ds []model.AssessmentDetail
	err := r.DB.WithContext(ctx).
		Where("assessment_category_id = ?", categoryID).
		Order("id asc").
		Find(&ds).Error
	return ds, err
}

func (r *AssessmentRepository) CreateDetail(ctx context.Context, d *model.AssessmentDetail) error {
	return r.DB.WithContext(ctx).Create(d).Error
}

// CreateEvaluation 写入旧版 student_evaluation 表
func (r *AssessmentRepository) CreateEvaluation(ctx context.Context, e *model.AssessmentEvaluation) error {
	return r.DB.WithContext(ctx).Create(e).Error
}

func (r *AssessmentRepository) ListEvaluations(ctx context.Context, studentID string) ([]model.AssessmentEvaluation, error) {
	var es []model.AssessmentEvaluation
	err := r.DB.WithContext(ctx).
		Where("evaluated_student_id = ?", studentID).
		Order("id asc").
		Find(&es).Error
	return es, err
}
