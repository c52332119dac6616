package repository

import (
	"assessment_backend/internal/model"
	"context"

	"gorm.io/gorm"
)

type TeacherRepository struct {
	DB *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) *TeacherRepository {
	return &TeacherRepository{DB: db}
}

func (r *TeacherRepository) Create(ctx context.Context, t *model.Teacher) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *TeacherRepository) FindByEmail(ctx context.Context, email string) (*model.Teacher, error) {
	var t model.Teacher
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeacherRepository) ListAll(ctx context.Context) ([]model.Teacher, error) {
	var ts []model.Teacher
	err := r.DB.WithContext(ctx).Order("id asc").Find(&ts).Error
	return ts, err
}

func (r *TeacherRepository) UpdatePassword(ctx context.Context, id uint, password string) error {
	return r.DB.WithContext(ctx).
		Model(&model.Teacher{}).
		Where("id = ?", id).
		Update("password", password).Error
}

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) ListAll(ctx context.Context) ([]model.Student, error) {
	var ss []model.Student
	err := r.DB.WithContext(ctx).Order("id asc").Find(&ss).Error
	return ss, err
}

func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	return r.DB.WithContext(ctx).Create(s).Error
}
