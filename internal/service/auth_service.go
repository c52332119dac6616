package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/util"
	"assessment_backend/pkg/monitoring"
	"context"
	"crypto/subtle"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	TeacherRepo *repository.TeacherRepository
}

func NewAuthService(teacherRepo *repository.TeacherRepository) *AuthService {
	return &AuthService{TeacherRepo: teacherRepo}
}

// IsPasswordHashed 判断存储的密码是否为 bcrypt 哈希
func IsPasswordHashed(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

// CheckPassword 历史数据为明文，迁移后为 bcrypt，两种都支持
func CheckPassword(stored, given string) bool {
	if IsPasswordHashed(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Login 邮箱不存在与密码错误返回同一个错误
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Teacher, error) {
	t, err := s.TeacherRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			monitoring.LoginAttempts.WithLabelValues("rejected").Inc()
			return nil, util.ErrInvalidCredentials
		}
		monitoring.LoginAttempts.WithLabelValues("error").Inc()
		return nil, errors.Wrap(err, "find teacher")
	}

	if !CheckPassword(t.Password, password) {
		monitoring.LoginAttempts.WithLabelValues("rejected").Inc()
		return nil, util.ErrInvalidCredentials
	}

	monitoring.LoginAttempts.WithLabelValues("accepted").Inc()
	return t, nil
}

func (s *AuthService) CreateTeacher(ctx context.Context, name, email, password string, role model.TeacherRole, hash bool) (*model.Teacher, error) {
	if hash {
		hashed, err := HashPassword(password)
		if err != nil {
			return nil, err
		}
		password = hashed
	}
	t := &model.Teacher{Name: name, Email: email, Password: password, Role: role}
	if err := s.TeacherRepo.Create(ctx, t); err != nil {
		return nil, errors.Wrap(err, "create teacher")
	}
	return t, nil
}

// HashLegacyPasswords 将所有明文密码替换为 bcrypt 哈希，返回处理的条数
func (s *AuthService) HashLegacyPasswords(ctx context.Context) (int, error) {
	ts, err := s.TeacherRepo.ListAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "list teachers")
	}
	n := 0
	for _, t := range ts {
		if IsPasswordHashed(t.Password) {
			continue
		}
		hashed, err := HashPassword(t.Password)
		if err != nil {
			return n, err
		}
		if err := s.TeacherRepo.UpdatePassword(ctx, t.ID, hashed); err != nil {
			return n, errors.Wrapf(err, "update teacher %d", t.ID)
		}
		n++
	}
	return n, nil
}
