package controller

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	Service *service.StudentService
}

func NewStudentController(svc *service.StudentService) *StudentController {
	return &StudentController{Service: svc}
}

// GetStudents godoc
// @Summary 学生名册
// @Tags 学生
// @Produce json
// @Success 200 {object} util.Envelope{data=[]model.Student}
// @Router /api/get_student [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	students, err := c.Service.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, "list students failed", err)
		util.Reply(ctx, util.Envelope{Status: false, Message: "Database error"})
		return
	}

	if students == nil {
		students = []model.Student{}
	}
	util.Reply(ctx, gin.H{"status": true, "data": students})
}
