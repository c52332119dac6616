package repository

import (
	"assessment_backend/internal/model"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

func scopeCondition(scope model.AnalyticsScope) (string, error) {
	switch scope {
	case model.ScopeCategory:
		return "presentations.category_id = ?", nil
	case model.ScopePresentation:
		return "presentations.id = ?", nil
	default:
		return "", fmt.Errorf("unknown analytics scope %q", scope)
	}
}

// studentRows 学生评分记录联结评分项与演示，按 scope 过滤
func (r *AnalyticsRepository) studentRows(ctx context.Context, studentEmail string, scope model.AnalyticsScope, id uint) (*gorm.DB, error) {
	cond, err := scopeCondition(scope)
	if err != nil {
		return nil, err
	}
	return r.DB.WithContext(ctx).
		Table("student_evaluations").
		Joins("JOIN presentation_subcategories ON student_evaluations.criteria_id = presentation_subcategories.id").
		Joins("JOIN presentations ON student_evaluations.presentation_id = presentations.id").
		Where("student_evaluations.student_email = ?", studentEmail).
		Where(cond, id), nil
}

func (r *AnalyticsRepository) CountRows(ctx context.Context, studentEmail string, scope model.AnalyticsScope, id uint) (int64, error) {
	q, err := r.studentRows(ctx, studentEmail, scope, id)
	if err != nil {
		return 0, err
	}
	var n int64
	err = q.Count(&n).Error
	return n, err
}

// Totals 只累计满分大于 0 的评分项
func (r *AnalyticsRepository) Totals(ctx context.Context, studentEmail string, scope model.AnalyticsScope, id uint) (model.ScoreTotals, error) {
	var totals model.ScoreTotals
	q, err := r.studentRows(ctx, studentEmail, scope, id)
	if err != nil {
		return totals, err
	}
	err = q.Select("COALESCE(SUM(student_evaluations.marks_obtained), 0) AS total_obtained, " +
		"COALESCE(SUM(presentation_subcategories.max_marks), 0) AS total_max, " +
		"COUNT(*) AS row_count").
		Where("presentation_subcategories.max_marks > 0").
		Scan(&totals).Error
	return totals, err
}

func (r *AnalyticsRepository) Logs(ctx context.Context, studentEmail string, scope model.AnalyticsScope, id uint) ([]model.EvaluationScoreRow, error) {
	var rows []model.EvaluationScoreRow
	q, err := r.studentRows(ctx, studentEmail, scope, id)
	if err != nil {
		return nil, err
	}
	err = q.Select(scoreRowColumns).
		Order("presentations.id asc, student_evaluations.id asc").
		Scan(&rows).Error
	return rows, err
}
