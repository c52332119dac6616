package repository

import (
	"assessment_backend/internal/model"
	"context"

	"gorm.io/gorm"
)

const scoreRowColumns = "student_evaluations.id AS evaluation_id, " +
	"student_evaluations.presentation_id, " +
	"student_evaluations.student_email, " +
	"student_evaluations.evaluator_email, " +
	"presentation_subcategories.title AS criteria_name, " +
	"presentation_subcategories.type AS criteria_type, " +
	"student_evaluations.marks_obtained, " +
	"presentation_subcategories.max_marks, " +
	"student_evaluations.comment_text, " +
	"student_evaluations.student_reply"

type EvaluationRepository struct {
	DB *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{DB: db}
}

func (r *EvaluationRepository) Create(ctx context.Context, e *model.StudentEvaluation) error {
	return r.DB.WithContext(ctx).Create(e).Error
}

func (r *EvaluationRepository) FindByID(ctx context.Context, id uint) (*model.StudentEvaluation, error) {
	var e model.StudentEvaluation
	if err := r.DB.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateReply 不存在的 id 不视为错误
func (r *EvaluationRepository) UpdateReply(ctx context.Context, id uint, reply string) error {
	return r.DB.WithContext(ctx).
		Model(&model.StudentEvaluation{}).
		Where("id = ?", id).
		Update("student_reply", reply).Error
}

func (r *EvaluationRepository) scoreRows(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Table("student_evaluations").
		Select(scoreRowColumns).
		Joins("INNER JOIN presentation_subcategories ON student_evaluations.criteria_id = presentation_subcategories.id")
}

// ListFeedbackRows 按评分记录 id 升序返回学生在某个演示下的全部评分
func (r *EvaluationRepository) ListFeedbackRows(ctx context.Context, studentEmail string, presentationID uint) ([]model.EvaluationScoreRow, error) {
	var rows []model.EvaluationScoreRow
	err := r.scoreRows(ctx).
		Where("student_evaluations.student_email = ?", studentEmail).
		Where("student_evaluations.presentation_id = ?", presentationID).
		Order("student_evaluations.id asc").
		Scan(&rows).Error
	return rows, err
}

func (r *EvaluationRepository) ListScoreRowsByPresentation(ctx context.Context, presentationID uint) ([]model.EvaluationScoreRow, error) {
	var rows []model.EvaluationScoreRow
	err := r.scoreRows(ctx).
		Where("student_evaluations.presentation_id = ?", presentationID).
		Order("student_evaluations.student_email asc, student_evaluations.id asc").
		Scan(&rows).Error
	return rows, err
}
