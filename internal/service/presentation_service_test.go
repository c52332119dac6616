package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/testutil"
	"assessment_backend/internal/util"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, testutil.Location())

func newPresentationService(t *testing.T, atomic bool) (*PresentationService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	svc := NewPresentationService(repository.NewPresentationRepository(db), atomic, testutil.Location())
	svc.Now = func() time.Time { return fixedNow }
	return svc, db
}

// failCriterion 让标题为 title 的评分项插入失败
func failCriterion(t *testing.T, db *gorm.DB, title string) {
	t.Helper()
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_criterion", func(tx *gorm.DB) {
		if c, ok := tx.Statement.Dest.(*model.Criterion); ok && c.Title == title {
			tx.AddError(errors.New("forced insert failure"))
		}
	})
	require.NoError(t, err)
}

func presentationRequest(subs ...CriterionRequest) CreatePresentationRequest {
	return CreatePresentationRequest{
		CategoryID:       3,
		Name:             "Mid Term",
		Code:             "MT-01",
		StartDate:        "2025-03-10",
		StartTime:        "09:00",
		EndDate:          "2025-03-10",
		EndTime:          "17:00:00",
		TeacherWeightage: 70,
		StudentWeightage: 30,
		CreatedBy:        "admin-1",
		SubCategories:    subs,
	}
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

func TestPresentationCreate(t *testing.T) {
	svc, db := newPresentationService(t, false)
	ctx := context.Background()

	res, err := svc.Create(ctx, presentationRequest(
		CriterionRequest{Type: "Marks", Title: "PPT", MaxMarks: 10},
		CriterionRequest{Type: "Marks", Title: "Confidence", MaxMarks: 5},
		CriterionRequest{Type: model.CommentsCriterionType, Title: "Remarks", MaxMarks: 8},
	))
	require.NoError(t, err)
	assert.NotZero(t, res.PresentationID)
	assert.Equal(t, 3, res.SavedCriteria)
	assert.Zero(t, res.FailedCriteria)

	criteria, err := svc.ListCriteria(ctx, res.PresentationID)
	require.NoError(t, err)
	require.Len(t, criteria, 3)
	assert.Equal(t, "PPT", criteria[0].Title)
	assert.Equal(t, 10, criteria[0].MaxMarks)
	assert.Equal(t, "Remarks", criteria[2].Title)
	assert.Equal(t, 0, criteria[2].MaxMarks, "Comments criteria never carry marks")

	p, err := svc.Repo.FindByID(ctx, res.PresentationID)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", p.CreatedBy)
	assert.Equal(t, "09:00:00", p.StartTime.String())
	assert.Equal(t, int64(1), countRows(t, db, &model.Presentation{}))
}

func TestPresentationCreatePartialWrite(t *testing.T) {
	svc, db := newPresentationService(t, false)
	failCriterion(t, db, "Confidence")

	res, err := svc.Create(context.Background(), presentationRequest(
		CriterionRequest{Type: "Marks", Title: "PPT", MaxMarks: 10},
		CriterionRequest{Type: "Marks", Title: "Confidence", MaxMarks: 10},
		CriterionRequest{Type: "Marks", Title: "Content", MaxMarks: 10},
	))
	assert.ErrorIs(t, err, util.ErrCriteriaFailed)
	require.NotNil(t, res)
	assert.NotZero(t, res.PresentationID)
	assert.Equal(t, 2, res.SavedCriteria)
	assert.Equal(t, 1, res.FailedCriteria)

	// 已写入的演示和评分项不回滚
	criteria, err := svc.ListCriteria(context.Background(), res.PresentationID)
	require.NoError(t, err)
	require.Len(t, criteria, 2)
	assert.Equal(t, "PPT", criteria[0].Title)
	assert.Equal(t, "Content", criteria[1].Title)
	assert.Equal(t, int64(1), countRows(t, db, &model.Presentation{}))
}

func TestPresentationCreateAtomic(t *testing.T) {
	svc, db := newPresentationService(t, true)
	failCriterion(t, db, "Confidence")

	res, err := svc.Create(context.Background(), presentationRequest(
		CriterionRequest{Type: "Marks", Title: "PPT", MaxMarks: 10},
		CriterionRequest{Type: "Marks", Title: "Confidence", MaxMarks: 10},
	))
	assert.ErrorIs(t, err, util.ErrCriteriaFailed)
	require.NotNil(t, res)
	assert.Zero(t, res.PresentationID)
	assert.Zero(t, countRows(t, db, &model.Presentation{}))
	assert.Zero(t, countRows(t, db, &model.Criterion{}))
}

func TestPresentationCreateAtomicSuccess(t *testing.T) {
	svc, db := newPresentationService(t, true)

	res, err := svc.Create(context.Background(), presentationRequest(
		CriterionRequest{Type: "Marks", Title: "PPT", MaxMarks: 10},
	))
	require.NoError(t, err)
	assert.NotZero(t, res.PresentationID)
	assert.Equal(t, 1, res.SavedCriteria)
	assert.Equal(t, int64(1), countRows(t, db, &model.Criterion{}))
}

func TestPresentationCreateInvalidSchedule(t *testing.T) {
	svc, db := newPresentationService(t, false)

	tests := []struct {
		name   string
		mutate func(r *CreatePresentationRequest)
	}{
		{"bad start date", func(r *CreatePresentationRequest) { r.StartDate = "10/03/2025" }},
		{"bad end date", func(r *CreatePresentationRequest) { r.EndDate = "" }},
		{"bad start time", func(r *CreatePresentationRequest) { r.StartTime = "nine" }},
		{"bad end time", func(r *CreatePresentationRequest) { r.EndTime = "25:00" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := presentationRequest()
			tt.mutate(&req)
			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, util.ErrInvalidSchedule)
		})
	}
	assert.Zero(t, countRows(t, db, &model.Presentation{}))
}

func TestParseClockLayouts(t *testing.T) {
	for in, want := range map[string]string{
		"17:00:00": "17:00:00",
		"17:05":    "17:05:00",
		"5:05 PM":  "17:05:00",
		"05:05 AM": "05:05:00",
		" 9:30PM ": "21:30:00",
	} {
		got, err := parseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}
}

func TestPresentationListing(t *testing.T) {
	svc, _ := newPresentationService(t, false)
	ctx := context.Background()

	open := presentationRequest(CriterionRequest{Type: "Marks", Title: "PPT", MaxMarks: 10})
	open.EndTime = "17:00"
	first, err := svc.Create(ctx, open)
	require.NoError(t, err)

	// 结束时间与当前时间相同视为已结束
	closed := presentationRequest(
		CriterionRequest{Type: "Marks", Title: "PPT", MaxMarks: 10},
		CriterionRequest{Type: model.CommentsCriterionType, Title: "Remarks"},
	)
	closed.EndTime = "12:00:00"
	second, err := svc.Create(ctx, closed)
	require.NoError(t, err)

	other := presentationRequest()
	other.CategoryID = 4
	other.CreatedBy = "admin-2"
	_, err = svc.Create(ctx, other)
	require.NoError(t, err)

	views, err := svc.ListByAdmin(ctx, "admin-1")
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, second.PresentationID, views[0].ID, "newest first")
	assert.False(t, views[0].IsActive)
	assert.Equal(t, int64(2), views[0].CriteriaCount)
	assert.Equal(t, "2025-03-10", views[0].EndDate)
	assert.Equal(t, "12:00:00", views[0].EndTime)

	assert.Equal(t, first.PresentationID, views[1].ID)
	assert.True(t, views[1].IsActive)
	assert.Equal(t, int64(1), views[1].CriteriaCount)

	byCategory, err := svc.ListByCategory(ctx, 4)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "admin-2", byCategory[0].CreatedBy)
	assert.Zero(t, byCategory[0].CriteriaCount)

	none, err := svc.ListByAdmin(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}
