package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/testutil"
	"assessment_backend/internal/util"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewTeacherRepository(testutil.NewDB(t)))
}

func TestCheckPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, IsPasswordHashed(hashed))
	assert.False(t, IsPasswordHashed("s3cret"))

	assert.True(t, CheckPassword(hashed, "s3cret"))
	assert.False(t, CheckPassword(hashed, "wrong"))
	assert.True(t, CheckPassword("s3cret", "s3cret"))
	assert.False(t, CheckPassword("s3cret", "S3cret"))
	assert.False(t, CheckPassword("s3cret", ""))
}

func TestLoginPlaintext(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	created, err := svc.CreateTeacher(ctx, "Sana", "sana@uni.edu", "pass123", model.RoleTeacher, false)
	require.NoError(t, err)

	teacher, err := svc.Login(ctx, "sana@uni.edu", "pass123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, teacher.ID)
	assert.Equal(t, "Sana", teacher.Name)
	assert.Equal(t, model.RoleTeacher, teacher.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.CreateTeacher(ctx, "Sana", "sana@uni.edu", "pass123", model.RoleAdmin, false)
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "sana@uni.edu", "nope")
	_, unknownEmail := svc.Login(ctx, "ghost@uni.edu", "pass123")

	assert.ErrorIs(t, wrongPassword, util.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, util.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestHashLegacyPasswords(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.CreateTeacher(ctx, "A", "a@uni.edu", "alpha", model.RoleTeacher, false)
	require.NoError(t, err)
	_, err = svc.CreateTeacher(ctx, "B", "b@uni.edu", "bravo", model.RoleTeacher, true)
	require.NoError(t, err)

	n, err := svc.HashLegacyPasswords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "already hashed rows are skipped")

	stored, err := svc.TeacherRepo.FindByEmail(ctx, "a@uni.edu")
	require.NoError(t, err)
	assert.True(t, IsPasswordHashed(stored.Password))

	// 迁移后原密码仍可登录
	_, err = svc.Login(ctx, "a@uni.edu", "alpha")
	assert.NoError(t, err)
	_, err = svc.Login(ctx, "b@uni.edu", "bravo")
	assert.NoError(t, err)

	n, err = svc.HashLegacyPasswords(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
