package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/testutil"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	presentations := NewPresentationService(repository.NewPresentationRepository(db), true, testutil.Location())
	presentations.Now = func() time.Time { return fixedNow }
	auth := NewAuthService(repository.NewTeacherRepository(db))

	seeder := &SeedService{
		Presentations: presentations,
		Assessments:   repository.NewAssessmentRepository(db),
		Students:      repository.NewStudentRepository(db),
		Auth:          auth,
	}

	res, err := seeder.Seed(ctx)
	require.NoError(t, err)
	assert.NotZero(t, res.CategoryID)
	assert.NotZero(t, res.PresentationID)

	views, err := presentations.ListByCategory(ctx, res.CategoryID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(3), views[0].CriteriaCount)
	assert.True(t, views[0].IsActive)

	criteria, err := presentations.ListCriteria(ctx, res.PresentationID)
	require.NoError(t, err)
	assert.Equal(t, model.CommentsCriterionType, criteria[2].Type)
	assert.Zero(t, criteria[2].MaxMarks)

	students, err := NewStudentService(repository.NewStudentRepository(db)).List(ctx)
	require.NoError(t, err)
	assert.Len(t, students, 2)

	_, err = auth.Login(ctx, res.TeacherEmail, "teacher123")
	assert.NoError(t, err)
}
