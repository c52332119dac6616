package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/testutil"
	"assessment_backend/internal/util"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeCache 记录失效调用，不做实际缓存
type fakeCache struct {
	invalidated []string
}

func (f *fakeCache) Get(ctx context.Context, studentID, id string, dest interface{}) (bool, error) {
	return false, nil
}

func (f *fakeCache) Set(ctx context.Context, studentID, id string, value interface{}) error {
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context, studentID string) error {
	f.invalidated = append(f.invalidated, studentID)
	return nil
}

func seedCriteria(t *testing.T, db *gorm.DB, presentationID uint, criteria ...model.Criterion) []model.Criterion {
	t.Helper()
	out := make([]model.Criterion, 0, len(criteria))
	for _, c := range criteria {
		c.PresentationID = presentationID
		require.NoError(t, db.Create(&c).Error)
		out = append(out, c)
	}
	return out
}

func TestEvaluationSave(t *testing.T) {
	db := testutil.NewDB(t)
	cache := &fakeCache{}
	svc := NewEvaluationService(repository.NewEvaluationRepository(db), cache)
	ctx := context.Background()

	req := SaveEvaluationRequest{
		EvaluatedStudentID: "ayesha@uni.edu",
		EvaluatedBy:        "t.ali@uni.edu",
		PresentationID:     1,
		Evaluations: []EvaluationEntry{
			{AssessmentDetailID: 11, ObtainedMarks: 8, Comments: "good"},
			{AssessmentDetailID: 12, ObtainedMarks: 12.5},
		},
	}

	assert.Equal(t, 2, svc.Save(ctx, req))
	// 重复提交不去重
	assert.Equal(t, 2, svc.Save(ctx, req))

	var rows []model.StudentEvaluation
	require.NoError(t, db.Where("criteria_id = ?", 11).Order("id").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, "good", rows[0].CommentText)
	assert.Equal(t, "t.ali@uni.edu", rows[1].EvaluatorEmail)

	var over model.StudentEvaluation
	require.NoError(t, db.Where("criteria_id = ?", 12).First(&over).Error)
	assert.Equal(t, 12.5, over.MarksObtained, "marks are not capped by max_marks")

	assert.Equal(t, []string{"ayesha@uni.edu", "ayesha@uni.edu"}, cache.invalidated)
}

func TestEvaluationSaveEmpty(t *testing.T) {
	db := testutil.NewDB(t)
	cache := &fakeCache{}
	svc := NewEvaluationService(repository.NewEvaluationRepository(db), cache)

	assert.Zero(t, svc.Save(context.Background(), SaveEvaluationRequest{EvaluatedStudentID: "x@uni.edu"}))
	assert.Empty(t, cache.invalidated)
}

func TestEvaluationSaveReply(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewEvaluationService(repository.NewEvaluationRepository(db), nil)
	ctx := context.Background()

	e := &model.StudentEvaluation{StudentEmail: "s@uni.edu", EvaluatorEmail: "t@uni.edu", PresentationID: 1, CriteriaID: 1}
	require.NoError(t, db.Create(e).Error)

	require.NoError(t, svc.SaveReply(ctx, e.ID, "thanks, will improve"))
	got, err := svc.Repo.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "thanks, will improve", got.StudentReply)

	assert.NoError(t, svc.SaveReply(ctx, 9999, "nobody"), "unknown id is not an error")
}

func TestGroupFeedback(t *testing.T) {
	rows := []model.EvaluationScoreRow{
		{EvaluationID: 1, PresentationID: 5, StudentEmail: "s@uni.edu", EvaluatorEmail: "b@uni.edu", CriteriaName: "PPT", MarksObtained: 8, MaxMarks: 10, CommentText: "ok"},
		{EvaluationID: 2, PresentationID: 5, StudentEmail: "s@uni.edu", EvaluatorEmail: "a@uni.edu", CriteriaName: "PPT", MarksObtained: 6, MaxMarks: 10},
		{EvaluationID: 3, PresentationID: 5, StudentEmail: "s@uni.edu", EvaluatorEmail: "b@uni.edu", CriteriaName: "Remarks", MaxMarks: 0, CommentText: "clear voice", StudentReply: "thanks"},
	}

	records, err := GroupFeedback(rows)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "b@uni.edu", records[0].EvaluatedBy, "first appearance order")
	assert.Equal(t, "a@uni.edu", records[1].EvaluatedBy)
	assert.Equal(t, "s@uni.edu", records[0].EvaluatedStudentID)
	assert.Equal(t, uint(5), records[0].AssessmentID)

	var payload struct {
		Evaluations []FeedbackEntry `json:"evaluations"`
	}
	require.NoError(t, json.Unmarshal([]byte(records[0].Data), &payload))
	require.Len(t, payload.Evaluations, 2)
	assert.Equal(t, FeedbackEntry{EvaluationID: 1, CriteriaName: "PPT", ObtainedMarks: 8, MaxMarks: 10, Comments: "ok"}, payload.Evaluations[0])
	assert.Equal(t, "thanks", payload.Evaluations[1].StudentReply)

	empty, err := GroupFeedback(nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestFetchFeedback(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewEvaluationService(repository.NewEvaluationRepository(db), nil)
	ctx := context.Background()

	cs := seedCriteria(t, db, 5,
		model.Criterion{Title: "PPT", Type: "Marks", MaxMarks: 10},
		model.Criterion{Title: "Remarks", Type: model.CommentsCriterionType},
	)

	svc.Save(ctx, SaveEvaluationRequest{
		EvaluatedStudentID: "s@uni.edu", EvaluatedBy: "t1@uni.edu", PresentationID: 5,
		Evaluations: []EvaluationEntry{
			{AssessmentDetailID: util.FlexUint(cs[0].ID), ObtainedMarks: 7},
			{AssessmentDetailID: util.FlexUint(cs[1].ID), Comments: "nice"},
		},
	})
	svc.Save(ctx, SaveEvaluationRequest{
		EvaluatedStudentID: "s@uni.edu", EvaluatedBy: "t2@uni.edu", PresentationID: 5,
		Evaluations: []EvaluationEntry{{AssessmentDetailID: util.FlexUint(cs[0].ID), ObtainedMarks: 9}},
	})
	// 其他学生与未知评分项不出现在结果中
	svc.Save(ctx, SaveEvaluationRequest{
		EvaluatedStudentID: "other@uni.edu", EvaluatedBy: "t1@uni.edu", PresentationID: 5,
		Evaluations: []EvaluationEntry{{AssessmentDetailID: util.FlexUint(cs[0].ID), ObtainedMarks: 1}},
	})
	svc.Save(ctx, SaveEvaluationRequest{
		EvaluatedStudentID: "s@uni.edu", EvaluatedBy: "t3@uni.edu", PresentationID: 5,
		Evaluations: []EvaluationEntry{{AssessmentDetailID: 999, ObtainedMarks: 1}},
	})

	records, err := svc.FetchFeedback(ctx, "s@uni.edu", 5)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "t1@uni.edu", records[0].EvaluatedBy)
	assert.Contains(t, records[0].Data, `"criteria_name":"Remarks"`)
	assert.Contains(t, records[0].Data, `"comments":"nice"`)
	assert.Equal(t, "t2@uni.edu", records[1].EvaluatedBy)

	none, err := svc.FetchFeedback(ctx, "s@uni.edu", 6)
	require.NoError(t, err)
	assert.Empty(t, none)
}
