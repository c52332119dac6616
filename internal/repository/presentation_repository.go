package repository

import (
	"assessment_backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// PresentationSummary 演示记录附带评分项数量
type PresentationSummary struct {
	model.Presentation
	CriteriaCount int64 `gorm:"column:criteria_count"`
}

const criteriaCountColumn = "presentations.*, " +
	"(SELECT COUNT(*) FROM presentation_subcategories WHERE presentation_subcategories.presentation_id = presentations.id) AS criteria_count"

type PresentationRepository struct {
	DB *gorm.DB
}

func NewPresentationRepository(db *gorm.DB) *PresentationRepository {
	return &PresentationRepository{DB: db}
}

// Transaction 在同一事务内执行 fn，fn 收到绑定事务的仓储
func (r *PresentationRepository) Transaction(ctx context.Context, fn func(repo *PresentationRepository) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewPresentationRepository(tx))
	})
}

func (r *PresentationRepository) Create(ctx context.Context, p *model.Presentation) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *PresentationRepository) CreateCriterion(ctx context.Context, c *model.Criterion) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *PresentationRepository) FindByID(ctx context.Context, id uint) (*model.Presentation, error) {
	var p model.Presentation
	err := r.DB.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PresentationRepository) ListByCreator(ctx context.Context, adminID string) ([]PresentationSummary, error) {
	return r.listSummaries(ctx, "presentations.created_by = ?", adminID)
}

func (r *PresentationRepository) ListByCategory(ctx context.Context, categoryID uint) ([]PresentationSummary, error) {
	return r.listSummaries(ctx, "presentations.category_id = ?", categoryID)
}

func (r *PresentationRepository) listSummaries(ctx context.Context, where string, arg interface{}) ([]PresentationSummary, error) {
	var rows []PresentationSummary
	err := r.DB.WithContext(ctx).
		Table("presentations").
		Select(criteriaCountColumn).
		Where(where, arg).
		Order("presentations.id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *PresentationRepository) ListCriteria(ctx context.Context, presentationID uint) ([]model.Criterion, error) {
	var cs []model.Criterion
	err := r.DB.WithContext(ctx).
		Where("presentation_id = ?", presentationID).
		Order("id asc").
		Find(&cs).Error
	return cs, err
}

func (r *PresentationRepository) CreateCategory(ctx context.Context, c *model.Category) error {
	return r.DB.WithContext(ctx).Create(c).Error
}
