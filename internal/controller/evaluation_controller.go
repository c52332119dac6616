package controller

import (
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type EvaluationController struct {
	Service *service.EvaluationService
}

func NewEvaluationController(svc *service.EvaluationService) *EvaluationController {
	return &EvaluationController{Service: svc}
}

// SaveEvaluation godoc
// @Summary 保存演示评分
// @Description 每个评分项插入一行，失败的行只计数
// @Tags 评分
// @Accept json
// @Produce json
// @Param body body service.SaveEvaluationRequest true "评分内容"
// @Success 200 {object} util.Envelope
// @Router /api/save_evaluation_new [post]
func (c *EvaluationController) SaveEvaluation(ctx *gin.Context) {
	var req service.SaveEvaluationRequest
	raw, ok := readRawBody(ctx)
	if !ok {
		return
	}
	if !decodePayload(raw, &req) {
		util.Fail(ctx, "No data received")
		return
	}

	saved := c.Service.Save(ctx.Request.Context(), req)
	util.Ok(ctx, fmt.Sprintf("Successfully saved %d records", saved), nil)
}

// SaveStudentReply godoc
// @Summary 学生回复评语
// @Tags 评分
// @Accept x-www-form-urlencoded
// @Produce json
// @Param evaluation_id formData int true "评分记录ID"
// @Param reply formData string true "回复内容"
// @Success 200 {object} util.Envelope
// @Router /api/save_student_reply [post]
func (c *EvaluationController) SaveStudentReply(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodPost {
		util.Fail(ctx, "Invalid Request")
		return
	}

	evaluationID, ok := util.ParseID(ctx.PostForm("evaluation_id"))
	reply := ctx.PostForm("reply")
	if !ok || strings.TrimSpace(reply) == "" {
		util.Fail(ctx, "Missing ID or Reply")
		return
	}

	if err := c.Service.SaveReply(ctx.Request.Context(), evaluationID, reply); err != nil {
		util.LogInternalError(ctx, "save student reply failed", err)
		util.Fail(ctx, "Database error")
		return
	}

	util.Ok(ctx, "Reply saved successfully on server", nil)
}

// FetchStudentFeedback godoc
// @Summary 学生收到的评分反馈
// @Description 按评分人分组，data 字段为 JSON 字符串
// @Tags 评分
// @Produce json
// @Param student_id query string true "学生标识（邮箱）"
// @Param assessment_id query int true "演示ID"
// @Success 200 {array} service.FeedbackRecord
// @Router /api/fetch_student_feedback [get]
func (c *EvaluationController) FetchStudentFeedback(ctx *gin.Context) {
	studentID := queryParam(ctx, "student_id")
	rawID := queryParam(ctx, "assessment_id")
	if studentID == "" || rawID == "" {
		util.Reply(ctx, gin.H{"error": "Missing parameters"})
		return
	}

	presentationID, ok := util.ParseID(rawID)
	if !ok {
		util.Reply(ctx, []service.FeedbackRecord{})
		return
	}

	records, err := c.Service.FetchFeedback(ctx.Request.Context(), studentID, presentationID)
	if err != nil {
		util.LogInternalError(ctx, "fetch student feedback failed", err)
		util.Reply(ctx, gin.H{"error": "Database error"})
		return
	}

	util.Reply(ctx, records)
}
