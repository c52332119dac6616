package service

import (
	"assessment_backend/internal/repository"
	"assessment_backend/internal/util"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var exportHeader = []string{
	"student", "evaluator", "criterion", "type",
	"marks_obtained", "max_marks", "comment", "reply",
}

// ExportService 导出某个演示的全部评分明细为 CSV
type ExportService struct {
	Presentations *repository.PresentationRepository
	Evaluations   *repository.EvaluationRepository
	Storage       *StorageService
}

func NewExportService(presentations *repository.PresentationRepository, evaluations *repository.EvaluationRepository, storage *StorageService) *ExportService {
	return &ExportService{
		Presentations: presentations,
		Evaluations:   evaluations,
		Storage:       storage,
	}
}

// ExportObjectName 导出文件在存储中的对象名
func ExportObjectName(presentationID uint) string {
	return fmt.Sprintf("exports/presentation_%d_%s.csv", presentationID, uuid.NewString())
}

func (s *ExportService) ExportPresentation(ctx context.Context, presentationID uint) (string, error) {
	if _, err := s.Presentations.FindByID(ctx, presentationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrPresentationNotFound
		}
		return "", errors.Wrap(err, "find presentation")
	}

	rows, err := s.Evaluations.ListScoreRowsByPresentation(ctx, presentationID)
	if err != nil {
		return "", errors.Wrap(err, "list score rows")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return "", err
	}
	for _, row := range rows {
		record := []string{
			row.StudentEmail,
			row.EvaluatorEmail,
			row.CriteriaName,
			row.CriteriaType,
			util.FormatMarks(row.MarksObtained),
			strconv.Itoa(row.MaxMarks),
			row.CommentText,
			row.StudentReply,
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrap(err, "write csv")
	}

	url, err := s.Storage.Upload(ctx, ExportObjectName(presentationID), bytes.NewReader(buf.Bytes()), int64(buf.Len()), util.MimeCSV)
	if err != nil {
		return "", errors.Wrap(err, "upload export")
	}
	return url, nil
}
