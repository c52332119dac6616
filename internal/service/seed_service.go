package service

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/repository"
	"assessment_backend/internal/util"
	"context"
	"time"

	"github.com/pkg/errors"
)

// SeedService 写入一套演示数据，便于本地联调移动端
type SeedService struct {
	Presentations *PresentationService
	Assessments   *repository.AssessmentRepository
	Students      *repository.StudentRepository
	Auth          *AuthService
}

type SeedResult struct {
	CategoryID     uint
	PresentationID uint
	TeacherEmail   string
}

func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	category := &model.Category{Name: "Final Year Project"}
	if err := s.Presentations.Repo.CreateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "seed category")
	}

	now := s.Presentations.Now().In(s.Presentations.Location)
	end := now.Add(7 * 24 * time.Hour)
	created, err := s.Presentations.Create(ctx, CreatePresentationRequest{
		CategoryID:       util.FlexUint(category.ID),
		Name:             "Mid Term Presentation",
		Code:             "FYP-MID",
		StartDate:        now.Format(util.DateFormat),
		StartTime:        "09:00:00",
		EndDate:          end.Format(util.DateFormat),
		EndTime:          "17:00:00",
		TeacherWeightage: 70,
		StudentWeightage: 30,
		CreatedBy:        "1",
		SubCategories: []CriterionRequest{
			{Type: "Marks", Title: "PPT", MaxMarks: 10},
			{Type: "Marks", Title: "Confidence", MaxMarks: 10},
			{Type: model.CommentsCriterionType, Title: "Comments", MaxMarks: 5},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "seed presentation")
	}

	for _, d := range []model.AssessmentDetail{
		{AssessmentCategoryID: category.ID, Title: "Content", Type: "Marks", MaxMarks: 20},
		{AssessmentCategoryID: category.ID, Title: "Delivery", Type: "Marks", MaxMarks: 10},
	} {
		d := d
		if err := s.Assessments.CreateDetail(ctx, &d); err != nil {
			return nil, errors.Wrap(err, "seed assessment detail")
		}
	}

	for _, st := range []model.Student{
		{RollNo: "FA21-BCS-001", Name: "Ayesha Khan", FatherName: "Imran Khan"},
		{RollNo: "FA21-BCS-002", Name: "Bilal Ahmed", FatherName: "Naveed Ahmed"},
	} {
		st := st
		if err := s.Students.Create(ctx, &st); err != nil {
			return nil, errors.Wrap(err, "seed student")
		}
	}

	teacher, err := s.Auth.CreateTeacher(ctx, "Demo Teacher", "teacher@example.com", "teacher123", model.RoleTeacher, true)
	if err != nil {
		return nil, errors.Wrap(err, "seed teacher")
	}

	return &SeedResult{
		CategoryID:     category.ID,
		PresentationID: created.PresentationID,
		TeacherEmail:   teacher.Email,
	}, nil
}
