package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/util"
	"assessment_backend/pkg/logger"
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

var clockLayouts = []string{util.ClockFormat, "15:04", "3:04 PM", "03:04 PM", "3:04PM"}

type PresentationService struct {
	Repo         *repository.PresentationRepository
	AtomicCreate bool
	Location     *time.Location
	Now          func() time.Time
}

func NewPresentationService(repo *repository.PresentationRepository, atomicCreate bool, loc *time.Location) *PresentationService {
	return &PresentationService{
		Repo:         repo,
		AtomicCreate: atomicCreate,
		Location:     loc,
		Now:          time.Now,
	}
}

type CriterionRequest struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	MaxMarks util.FlexUint `json:"max_marks"`
}

type CreatePresentationRequest struct {
	CategoryID       util.FlexUint      `json:"category_id"`
	Name             string             `json:"name"`
	Code             string             `json:"code"`
	StartDate        string             `json:"start_date"`
	StartTime        string             `json:"start_time"`
	EndDate          string             `json:"end_date"`
	EndTime          string             `json:"end_time"`
	TeacherWeightage util.FlexFloat     `json:"teacher_weightage"`
	StudentWeightage util.FlexFloat     `json:"student_weightage"`
	CreatedBy        util.FlexString    `json:"created_by"`
	SubCategories    []CriterionRequest `json:"sub_categories"`
}

type CreatePresentationResult struct {
	PresentationID uint
	SavedCriteria  int
	FailedCriteria int
}

// PresentationView 演示列表项，日期时间按移动端格式输出
type PresentationView struct {
	ID               uint   `json:"id"`
	CategoryID       uint   `json:"category_id"`
	Name             string `json:"name"`
	Code             string `json:"code"`
	StartDate        string `json:"start_date"`
	StartTime        string `json:"start_time"`
	EndDate          string `json:"end_date"`
	EndTime          string `json:"end_time"`
	TeacherWeightage int    `json:"teacher_weightage"`
	StudentWeightage int    `json:"student_weightage"`
	CreatedBy        string `json:"created_by"`
	CriteriaCount    int64  `json:"criteria_count"`
	IsActive         bool   `json:"is_active"`
}

func parseDate(s string, loc *time.Location) (datatypes.Date, error) {
	t, err := time.ParseInLocation(util.DateFormat, strings.TrimSpace(s), loc)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

func parseClock(s string) (datatypes.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
		}
		lastErr = err
	}
	return 0, lastErr
}

func (s *PresentationService) buildPresentation(req CreatePresentationRequest) (*model.Presentation, error) {
	p := &model.Presentation{
		CategoryID:       uint(req.CategoryID),
		Name:             req.Name,
		Code:             req.Code,
		TeacherWeightage: int(req.TeacherWeightage),
		StudentWeightage: int(req.StudentWeightage),
		CreatedBy:        string(req.CreatedBy),
	}

	var err error
	if p.StartDate, err = parseDate(req.StartDate, s.Location); err != nil {
		return nil, errors.Wrap(util.ErrInvalidSchedule, "start_date")
	}
	if p.EndDate, err = parseDate(req.EndDate, s.Location); err != nil {
		return nil, errors.Wrap(util.ErrInvalidSchedule, "end_date")
	}
	if p.StartTime, err = parseClock(req.StartTime); err != nil {
		return nil, errors.Wrap(util.ErrInvalidSchedule, "start_time")
	}
	if p.EndTime, err = parseClock(req.EndTime); err != nil {
		return nil, errors.Wrap(util.ErrInvalidSchedule, "end_time")
	}
	return p, nil
}

func buildCriterion(presentationID uint, sub CriterionRequest) *model.Criterion {
	return &model.Criterion{
		PresentationID: presentationID,
		Type:           sub.Type,
		Title:          sub.Title,
		MaxMarks:       model.NormalizeMaxMarks(sub.Type, int(sub.MaxMarks)),
	}
}

// Create 先写入演示，再逐条写入评分项。
// 非原子模式下某条评分项失败不会回滚已写入的数据，返回 ErrCriteriaFailed。
func (s *PresentationService) Create(ctx context.Context, req CreatePresentationRequest) (*CreatePresentationResult, error) {
	p, err := s.buildPresentation(req)
	if err != nil {
		return nil, err
	}

	if s.AtomicCreate {
		return s.createAtomic(ctx, p, req.SubCategories)
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, errors.Wrap(err, "create presentation")
	}

	res := &CreatePresentationResult{PresentationID: p.ID}
	for _, sub := range req.SubCategories {
		if err := s.Repo.CreateCriterion(ctx, buildCriterion(p.ID, sub)); err != nil {
			logger.Log.Warn("criterion insert failed",
				zap.Uint("presentation_id", p.ID),
				zap.String("title", sub.Title),
				zap.Error(err))
			res.FailedCriteria++
			continue
		}
		res.SavedCriteria++
	}

	if res.FailedCriteria > 0 {
		return res, util.ErrCriteriaFailed
	}
	return res, nil
}

func (s *PresentationService) createAtomic(ctx context.Context, p *model.Presentation, subs []CriterionRequest) (*CreatePresentationResult, error) {
	res := &CreatePresentationResult{}
	err := s.Repo.Transaction(ctx, func(repo *repository.PresentationRepository) error {
		if err := repo.Create(ctx, p); err != nil {
			return errors.Wrap(err, "create presentation")
		}
		for _, sub := range subs {
			if err := repo.CreateCriterion(ctx, buildCriterion(p.ID, sub)); err != nil {
				logger.Log.Warn("criterion insert failed, rolling back",
					zap.String("title", sub.Title),
					zap.Error(err))
				return util.ErrCriteriaFailed
			}
		}
		return nil
	})
	if err != nil {
		return res, err
	}
	res.PresentationID = p.ID
	res.SavedCriteria = len(subs)
	return res, nil
}

func (s *PresentationService) toView(row repository.PresentationSummary, now time.Time) PresentationView {
	p := row.Presentation
	return PresentationView{
		ID:               p.ID,
		CategoryID:       p.CategoryID,
		Name:             p.Name,
		Code:             p.Code,
		StartDate:        time.Time(p.StartDate).Format(util.DateFormat),
		StartTime:        p.StartTime.String(),
		EndDate:          time.Time(p.EndDate).Format(util.DateFormat),
		EndTime:          p.EndTime.String(),
		TeacherWeightage: p.TeacherWeightage,
		StudentWeightage: p.StudentWeightage,
		CreatedBy:        p.CreatedBy,
		CriteriaCount:    row.CriteriaCount,
		IsActive:         p.IsActive(now, s.Location),
	}
}

func (s *PresentationService) toViews(rows []repository.PresentationSummary) []PresentationView {
	now := s.Now()
	views := make([]PresentationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, s.toView(row, now))
	}
	return views
}

func (s *PresentationService) ListByAdmin(ctx context.Context, adminID string) ([]PresentationView, error) {
	rows, err := s.Repo.ListByCreator(ctx, adminID)
	if err != nil {
		return nil, errors.Wrap(err, "list presentations by admin")
	}
	return s.toViews(rows), nil
}

func (s *PresentationService) ListByCategory(ctx context.Context, categoryID uint) ([]PresentationView, error) {
	rows, err := s.Repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "list presentations by category")
	}
	return s.toViews(rows), nil
}

func (s *PresentationService) ListCriteria(ctx context.Context, presentationID uint) ([]model.Criterion, error) {
	cs, err := s.Repo.ListCriteria(ctx, presentationID)
	if err != nil {
		return nil, errors.Wrap(err, "list criteria")
	}
	return cs, nil
}
