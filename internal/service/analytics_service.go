package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/util"
	"assessment_backend/pkg/logger"
	"context"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BlankPercentage 满分为 0 的评分项不计算百分比
const BlankPercentage = " "

type AnalyticsService struct {
	Repo  *repository.AnalyticsRepository
	Cache AnalyticsCacheStore
}

func NewAnalyticsService(repo *repository.AnalyticsRepository, cache AnalyticsCacheStore) *AnalyticsService {
	return &AnalyticsService{Repo: repo, Cache: cache}
}

type AnalyticsLog struct {
	Criteria   string      `json:"criteria"`
	Evaluator  string      `json:"evaluator"`
	Score      string      `json:"score"`
	Percentage interface{} `json:"percentage"`
}

type StudentAnalytics struct {
	Scope          model.AnalyticsScope `json:"scope"`
	OverallAverage float64              `json:"overall_average"`
	Logs           []AnalyticsLog       `json:"data"`
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// OverallAverage 总得分 / 总满分 × 100，没有有效评分项时为 0
func OverallAverage(t model.ScoreTotals) float64 {
	if t.TotalMax <= 0 {
		return 0
	}
	return round1(t.TotalObtained / t.TotalMax * 100)
}

// RowPercentage 单条评分的百分比，满分为 0 时返回空白占位
func RowPercentage(obtained float64, max int) interface{} {
	if max <= 0 {
		return BlankPercentage
	}
	return round1(obtained / float64(max) * 100)
}

func BuildLogs(rows []model.EvaluationScoreRow) []AnalyticsLog {
	logs := make([]AnalyticsLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, AnalyticsLog{
			Criteria:   row.CriteriaName,
			Evaluator:  util.EmailLocalPart(row.EvaluatorEmail),
			Score:      util.FormatMarks(row.MarksObtained) + "/" + strconv.Itoa(row.MaxMarks),
			Percentage: RowPercentage(row.MarksObtained, row.MaxMarks),
		})
	}
	return logs
}

// ResolveScope 先按分类解析 id，学生在该分类下没有评分时再按演示 id 解析
func (s *AnalyticsService) ResolveScope(ctx context.Context, studentID string, id uint) (model.AnalyticsScope, error) {
	for _, scope := range []model.AnalyticsScope{model.ScopeCategory, model.ScopePresentation} {
		n, err := s.Repo.CountRows(ctx, studentID, scope, id)
		if err != nil {
			return model.ScopeNone, errors.Wrapf(err, "count %s rows", scope)
		}
		if n > 0 {
			return scope, nil
		}
	}
	return model.ScopeNone, nil
}

func (s *AnalyticsService) GetStudentAnalytics(ctx context.Context, studentID string, id uint) (*StudentAnalytics, error) {
	cacheID := strconv.FormatUint(uint64(id), 10)
	if s.Cache != nil {
		var cached StudentAnalytics
		hit, err := s.Cache.Get(ctx, studentID, cacheID, &cached)
		if err != nil {
			logger.Log.Warn("analytics cache read failed", zap.Error(err))
		} else if hit {
			return &cached, nil
		}
	}

	scope, err := s.ResolveScope(ctx, studentID, id)
	if err != nil {
		return nil, err
	}

	res := &StudentAnalytics{Scope: scope, Logs: []AnalyticsLog{}}
	if scope != model.ScopeNone {
		totals, err := s.Repo.Totals(ctx, studentID, scope, id)
		if err != nil {
			return nil, errors.Wrap(err, "sum scores")
		}
		rows, err := s.Repo.Logs(ctx, studentID, scope, id)
		if err != nil {
			return nil, errors.Wrap(err, "list score rows")
		}
		res.OverallAverage = OverallAverage(totals)
		res.Logs = BuildLogs(rows)
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, studentID, cacheID, res); err != nil {
			logger.Log.Warn("analytics cache write failed", zap.Error(err))
		}
	}
	return res, nil
}
