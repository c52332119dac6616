package model

import (
	"time"

	"gorm.io/datatypes"
)

// CommentsCriterionType 该类型的评分项只收集评语，满分固定为 0
const CommentsCriterionType = "Comments"

// swagger:model Category
type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

// swagger:model Presentation
type Presentation struct {
	ID               uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID       uint           `gorm:"index" json:"category_id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Code             string         `gorm:"size:100" json:"code"`
	StartDate        datatypes.Date `json:"start_date"`
	StartTime        datatypes.Time `json:"start_time"`
	EndDate          datatypes.Date `json:"end_date"`
	EndTime          datatypes.Time `json:"end_time"`
	TeacherWeightage int            `gorm:"default:0" json:"teacher_weightage"`
	StudentWeightage int            `gorm:"default:0" json:"student_weightage"`
	CreatedBy        string         `gorm:"size:100;index" json:"created_by"`
}

func (Presentation) TableName() string {
	return "presentations"
}

// EndsAt 将结束日期与结束时间合并为 loc 时区下的时间点
func (p *Presentation) EndsAt(loc *time.Location) time.Time {
	return combine(time.Time(p.EndDate), p.EndTime, loc)
}

// IsActive 结束时间严格晚于 now 才视为进行中，相等即已结束
func (p *Presentation) IsActive(now time.Time, loc *time.Location) bool {
	return p.EndsAt(loc).After(now)
}

func combine(d time.Time, t datatypes.Time, loc *time.Location) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc).Add(time.Duration(t))
}

// Criterion 对应 presentation_subcategories 表
// swagger:model Criterion
type Criterion struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	PresentationID uint   `gorm:"index" json:"presentation_id"`
	Title          string `gorm:"size:255" json:"title"`
	Type           string `gorm:"size:100" json:"type"`
	MaxMarks       int    `gorm:"default:0" json:"max_marks"`
}

func (Criterion) TableName() string {
	return "presentation_subcategories"
}

// NormalizeMaxMarks Comments 类型强制满分为 0
func NormalizeMaxMarks(criterionType string, maxMarks int) int {
	if criterionType == CommentsCriterionType {
		return 0
	}
	return maxMarks
}

// AssessmentDetail 旧版评估项，按 assessment_category_id 归类
type AssessmentDetail struct {
	ID                   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	AssessmentCategoryID uint   `gorm:"index" json:"assessment_category_id"`
	Title                string `gorm:"size:255" json:"title"`
	Type                 string `gorm:"size:100" json:"type"`
	MaxMarks             int    `gorm:"default:0" json:"max_marks"`
}

func (AssessmentDetail) TableName() string {
	return "assessment_details"
}
