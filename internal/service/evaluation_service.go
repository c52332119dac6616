package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/util"
	"assessment_backend/pkg/logger"
	"assessment_backend/pkg/monitoring"
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AnalyticsCacheStore 分析结果缓存，未启用 Redis 时为 nil
type AnalyticsCacheStore interface {
	Get(ctx context.Context, studentID, id string, dest interface{}) (bool, error)
	Set(ctx context.Context, studentID, id string, value interface{}) error
	Invalidate(ctx context.Context, studentID string) error
}

type EvaluationService struct {
	Repo  *repository.EvaluationRepository
	Cache AnalyticsCacheStore
}

func NewEvaluationService(repo *repository.EvaluationRepository, cache AnalyticsCacheStore) *EvaluationService {
	return &EvaluationService{Repo: repo, Cache: cache}
}

type SaveEvaluationRequest struct {
	EvaluatedStudentID util.FlexString   `json:"evaluated_student_id"`
	EvaluatedBy        util.FlexString   `json:"evaluated_by"`
	PresentationID     util.FlexUint     `json:"presentation_id"`
	Evaluations        []EvaluationEntry `json:"evaluations"`
}

// Save 逐条插入评分，失败的记录只计数不中断；相同学生与评分项的重复提交会各自保留
func (s *EvaluationService) Save(ctx context.Context, req SaveEvaluationRequest) int {
	student := string(req.EvaluatedStudentID)
	saved := 0
	for _, entry := range req.Evaluations {
		e := &model.StudentEvaluation{
			StudentEmail:   student,
			EvaluatorEmail: string(req.EvaluatedBy),
			PresentationID: uint(req.PresentationID),
			CriteriaID:     uint(entry.AssessmentDetailID),
			MarksObtained:  float64(entry.ObtainedMarks),
			CommentText:    entry.Comments,
		}
		if err := s.Repo.Create(ctx, e); err != nil {
			logger.Log.Warn("evaluation insert failed",
				zap.String("student", student),
				zap.Uint("criteria_id", e.CriteriaID),
				zap.Error(err))
			monitoring.EvaluationsSaved.WithLabelValues(e.TableName(), "failed").Inc()
			continue
		}
		monitoring.EvaluationsSaved.WithLabelValues(e.TableName(), "saved").Inc()
		saved++
	}

	if saved > 0 && s.Cache != nil {
		if err := s.Cache.Invalidate(ctx, student); err != nil {
			logger.Log.Warn("analytics cache invalidation failed", zap.String("student", student), zap.Error(err))
		}
	}
	return saved
}

func (s *EvaluationService) SaveReply(ctx context.Context, evaluationID uint, reply string) error {
	if err := s.Repo.UpdateReply(ctx, evaluationID, reply); err != nil {
		return errors.Wrap(err, "save student reply")
	}
	return nil
}

type FeedbackEntry struct {
	EvaluationID  uint    `json:"evaluation_id"`
	CriteriaName  string  `json:"criteria_name"`
	ObtainedMarks float64 `json:"obtained_marks"`
	MaxMarks      int     `json:"max_marks"`
	Comments      string  `json:"comments"`
	StudentReply  string  `json:"student_reply"`
}

// FeedbackRecord 每个评分人一条，Data 为 JSON 字符串，与客户端本地缓存表结构一致
type FeedbackRecord struct {
	EvaluatedStudentID string `json:"evaluated_student_id"`
	EvaluatedBy        string `json:"evaluated_by"`
	AssessmentID       uint   `json:"assessment_id"`
	Data               string `json:"data"`
}

type feedbackPayload struct {
	Evaluations []FeedbackEntry `json:"evaluations"`
}

// GroupFeedback 按评分人邮箱分组，分组顺序为首次出现的顺序
func GroupFeedback(rows []model.EvaluationScoreRow) ([]FeedbackRecord, error) {
	type group struct {
		student      string
		evaluator    string
		assessmentID uint
		entries      []FeedbackEntry
	}

	var groups []*group
	index := make(map[string]*group)
	for _, row := range rows {
		g, ok := index[row.EvaluatorEmail]
		if !ok {
			g = &group{
				student:      row.StudentEmail,
				evaluator:    row.EvaluatorEmail,
				assessmentID: row.PresentationID,
			}
			index[row.EvaluatorEmail] = g
			groups = append(groups, g)
		}
		g.entries = append(g.entries, FeedbackEntry{
			EvaluationID:  row.EvaluationID,
			CriteriaName:  row.CriteriaName,
			ObtainedMarks: row.MarksObtained,
			MaxMarks:      row.MaxMarks,
			Comments:      row.CommentText,
			StudentReply:  row.StudentReply,
		})
	}

	records := make([]FeedbackRecord, 0, len(groups))
	for _, g := range groups {
		data, err := json.Marshal(feedbackPayload{Evaluations: g.entries})
		if err != nil {
			return nil, err
		}
		records = append(records, FeedbackRecord{
			EvaluatedStudentID: g.student,
			EvaluatedBy:        g.evaluator,
			AssessmentID:       g.assessmentID,
			Data:               string(data),
		})
	}
	return records, nil
}

func (s *EvaluationService) FetchFeedback(ctx context.Context, studentID string, presentationID uint) ([]FeedbackRecord, error) {
	rows, err := s.Repo.ListFeedbackRows(ctx, studentID, presentationID)
	if err != nil {
		return nil, errors.Wrap(err, "list feedback rows")
	}
	return GroupFeedback(rows)
}
