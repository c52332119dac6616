package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"context"

	"github.com/pkg/errors"
)

// StudentService 学生名册
type StudentService struct {
	Repo *repository.StudentRepository
}

func NewStudentService(repo *repository.StudentRepository) *StudentService {
	return &StudentService{Repo: repo}
}

func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	ss, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list students")
	}
	return ss, nil
}
