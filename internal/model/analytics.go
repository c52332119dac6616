package model

// AnalyticsScope 标识分析 ID 最终按哪种语义解析
type AnalyticsScope string

const (
	ScopeNone         AnalyticsScope = ""
	ScopeCategory     AnalyticsScope = "category"
	ScopePresentation AnalyticsScope = "presentation"
)

// EvaluationScoreRow 评分记录与评分项的联表结果
type EvaluationScoreRow struct {
	EvaluationID   uint    `gorm:"column:evaluation_id"`
	PresentationID uint    `gorm:"column:presentation_id"`
	StudentEmail   string  `gorm:"column:student_email"`
	EvaluatorEmail string  `gorm:"column:evaluator_email"`
	CriteriaName   string  `gorm:"column:criteria_name"`
	CriteriaType   string  `gorm:"column:criteria_type"`
	MarksObtained  float64 `gorm:"column:marks_obtained"`
	MaxMarks       int     `gorm:"column:max_marks"`
	CommentText    string  `gorm:"column:comment_text"`
	StudentReply   string  `gorm:"column:student_reply"`
}

// ScoreTotals 汇总得分（只统计满分大于 0 的评分项）
type ScoreTotals struct {
	TotalObtained float64 `gorm:"column:total_obtained"`
	TotalMax      float64 `gorm:"column:total_max"`
	Rows          int64   `gorm:"column:row_count"`
}
