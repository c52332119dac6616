package model

type TeacherRole string

const (
	RoleTeacher TeacherRole = "teacher"
	RoleAdmin   TeacherRole = "admin"
)

// swagger:model Teacher
type Teacher struct {
	ID       uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string      `gorm:"size:100;not null" json:"name"`
	Email    string      `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Password string      `gorm:"size:255;not null" json:"-"`
	Role     TeacherRole `gorm:"size:20;default:'teacher'" json:"role"`
}

func (Teacher) TableName() string {
	return "teachers"
}

// Student 对应 student_detail 表
// swagger:model Student
type Student struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	RollNo     string `gorm:"column:rollno;size:50;index" json:"rollno"`
	Name       string `gorm:"size:100" json:"name"`
	FatherName string `gorm:"size:100" json:"father_name"`
}

func (Student) TableName() string {
	return "student_detail"
}
