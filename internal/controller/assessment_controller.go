package controller

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// AssessmentDetails godoc
// @Summary 评估分类下的评分细则
// @Tags 评估
// @Produce json
// @Param category_id query int true "评估分类ID"
// @Success 200 {object} util.Envelope{data=[]model.AssessmentDetail}
// @Router /api/assessment_details [get]
func (c *AssessmentController) AssessmentDetails(ctx *gin.Context) {
	raw := queryParam(ctx, "category_id")
	if raw == "" {
		util.Reply(ctx, util.Envelope{Status: false, Message: "Category ID required"})
		return
	}

	categoryID, _ := util.ParseID(raw)
	details, err := c.Service.ListDetails(ctx.Request.Context(), categoryID)
	if err != nil {
		util.LogInternalError(ctx, "list assessment details failed", err)
		util.Reply(ctx, util.Envelope{Status: false, Message: "Database error"})
		return
	}

	if details == nil {
		details = []model.AssessmentDetail{}
	}
	util.Reply(ctx, gin.H{"status": true, "data": details})
}

// SubmitEvaluation godoc
// @Summary 提交总体评估
// @Description 每条评分单独追加一行，overall_comments 只保存在最后一条上。也接受表单字段 json_data
// @Tags 评估
// @Accept json
// @Produce json
// @Param body body service.OverallEvaluationRequest true "评估内容"
// @Success 200 {object} util.Envelope
// @Router /api/student_evaluation [post]
func (c *AssessmentController) SubmitEvaluation(ctx *gin.Context) {
	var req service.OverallEvaluationRequest
	raw, ok := readRawBody(ctx)
	if !ok {
		return
	}
	if !decodePayload(raw, &req) && !decodePayload([]byte(ctx.PostForm("json_data")), &req) {
		util.Reply(ctx, util.Envelope{Status: false, Message: "No data received."})
		return
	}

	saved, err := c.Service.Submit(ctx.Request.Context(), req)
	switch {
	case err == nil:
		util.Ok(ctx, fmt.Sprintf("Saved %d records.", saved), nil)
	case errors.Is(err, util.ErrMissingFields):
		util.Reply(ctx, util.Envelope{Status: false, Message: "Fields missing."})
	case errors.Is(err, util.ErrNothingSaved):
		util.Fail(ctx, "Error: no records saved")
	default:
		util.LogInternalError(ctx, "submit evaluation failed", err)
		util.Fail(ctx, "Error: no records saved")
	}
}
