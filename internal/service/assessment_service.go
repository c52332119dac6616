package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/util"
	"assessment_backend/pkg/logger"
	"assessment_backend/pkg/monitoring"
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AssessmentService 旧版评估流程：assessment_details + student_evaluation
type AssessmentService struct {
	Repo *repository.AssessmentRepository
}

func NewAssessmentService(repo *repository.AssessmentRepository) *AssessmentService {
	return &AssessmentService{Repo: repo}
}

type EvaluationEntry struct {
	AssessmentDetailID util.FlexUint  `json:"assessment_detail_id"`
	ObtainedMarks      util.FlexFloat `json:"obtained_marks"`
	Comments           string         `json:"comments"`
}

type OverallEvaluationRequest struct {
	StudentID       util.FlexString   `json:"student_id"`
	EvaluatedBy     util.FlexString   `json:"evaluated_by"`
	Evaluations     []EvaluationEntry `json:"evaluations"`
	OverallComments string            `json:"overall_comments"`
}

func (s *AssessmentService) ListDetails(ctx context.Context, categoryID uint) ([]model.AssessmentDetail, error) {
	ds, err := s.Repo.ListDetailsByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "list assessment details")
	}
	return ds, nil
}

// Submit 每次提交都追加新记录以保留历史；总体评语只写在最后一条上
func (s *AssessmentService) Submit(ctx context.Context, req OverallEvaluationRequest) (int, error) {
	studentID := strings.TrimSpace(string(req.StudentID))
	evaluator := strings.TrimSpace(string(req.EvaluatedBy))
	if studentID == "" || evaluator == "" || len(req.Evaluations) == 0 {
		return 0, util.ErrMissingFields
	}

	saved := 0
	last := len(req.Evaluations) - 1
	for i, entry := range req.Evaluations {
		comment := ""
		if i == last {
			comment = req.OverallComments
		}

		e := &model.AssessmentEvaluation{
			EvaluatedStudentID: studentID,
			EvaluatedBy:        evaluator,
			AssessmentDetailID: uint(entry.AssessmentDetailID),
			ObtainedMarks:      float64(entry.ObtainedMarks),
			Comments:           comment,
		}
		if err := s.Repo.CreateEvaluation(ctx, e); err != nil {
			logger.Log.Warn("assessment evaluation insert failed",
				zap.String("student_id", studentID),
				zap.Uint("assessment_detail_id", e.AssessmentDetailID),
				zap.Error(err))
			monitoring.EvaluationsSaved.WithLabelValues(e.TableName(), "failed").Inc()
			continue
		}
		monitoring.EvaluationsSaved.WithLabelValues(e.TableName(), "saved").Inc()
		saved++
	}

	if saved == 0 {
		return 0, util.ErrNothingSaved
	}
	return saved, nil
}
