package model

// StudentEvaluation 对应 student_evaluations 表，
// 同一学生、评分人、评分项可以存在多条记录，不做去重
// swagger:model StudentEvaluation
type StudentEvaluation struct {
	BaseModel
	StudentEmail   string  `gorm:"size:191;index" json:"student_email"`
	EvaluatorEmail string  `gorm:"size:191;index" json:"evaluator_email"`
	PresentationID uint    `gorm:"index" json:"presentation_id"`
	CriteriaID     uint    `gorm:"column:criteria_id;index" json:"criteria_id"`
	MarksObtained  float64 `gorm:"default:0" json:"marks_obtained"`
	CommentText    string  `gorm:"type:text" json:"comment_text"`
	StudentReply   string  `gorm:"type:text" json:"student_reply"`
}

func (StudentEvaluation) TableName() string {
	return "student_evaluations"
}

// AssessmentEvaluation 对应旧版 student_evaluation 表，只追加不覆盖
// swagger:model AssessmentEvaluation
type AssessmentEvaluation struct {
	BaseModel
	EvaluatedStudentID string  `gorm:"size:191;index" json:"evaluated_student_id"`
	EvaluatedBy        string  `gorm:"size:191;index" json:"evaluated_by"`
	AssessmentDetailID uint    `gorm:"index" json:"assessment_detail_id"`
	ObtainedMarks      float64 `gorm:"default:0" json:"obtained_marks"`
	Comments           string  `gorm:"type:text" json:"comments"`
}

func (AssessmentEvaluation) TableName() string {
	return "student_evaluation"
}
