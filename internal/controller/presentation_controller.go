package controller

import (
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type PresentationController struct {
	Service *service.PresentationService
}

func NewPresentationController(svc *service.PresentationService) *PresentationController {
	return &PresentationController{Service: svc}
}

// CreatePresentationResponse 创建结果，presentation_id 在评分项部分失败时仍然返回
type CreatePresentationResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	PresentationID uint   `json:"presentation_id,omitempty"`
}

// CreatePresentation godoc
// @Summary 创建演示及评分项
// @Description 先写入演示，再逐条写入评分项；Comments 类型满分固定为 0
// @Tags 演示
// @Accept json
// @Produce json
// @Param body body service.CreatePresentationRequest true "演示信息"
// @Success 200 {object} CreatePresentationResponse
// @Router /api/create_presentation [post]
func (c *PresentationController) CreatePresentation(ctx *gin.Context) {
	var req service.CreatePresentationRequest
	raw, ok := readRawBody(ctx)
	if !ok {
		return
	}
	if !decodePayload(raw, &req) {
		util.Fail(ctx, "No data received.")
		return
	}

	res, err := c.Service.Create(ctx.Request.Context(), req)
	switch {
	case err == nil:
		util.Reply(ctx, CreatePresentationResponse{
			Status:         util.StatusTrue,
			Message:        "Presentation Created!",
			PresentationID: res.PresentationID,
		})
	case errors.Is(err, util.ErrCriteriaFailed):
		resp := CreatePresentationResponse{
			Status:  util.StatusFalse,
			Message: "Criteria failed to save.",
		}
		if res != nil {
			resp.PresentationID = res.PresentationID
		}
		util.Reply(ctx, resp)
	case errors.Is(err, util.ErrInvalidSchedule):
		util.Fail(ctx, "Error: invalid date or time")
	default:
		util.LogInternalError(ctx, "create presentation failed", err)
		util.Fail(ctx, "Error: could not create presentation")
	}
}

// GetPresentations godoc
// @Summary 管理员创建的演示列表
// @Tags 演示
// @Produce json
// @Param admin_id query string true "管理员ID"
// @Success 200 {object} util.Envelope{data=[]service.PresentationView}
// @Router /api/get_presentations [get]
func (c *PresentationController) GetPresentations(ctx *gin.Context) {
	adminID := queryParam(ctx, "admin_id")
	if adminID == "" {
		util.Fail(ctx, "Admin ID missing")
		return
	}

	views, err := c.Service.ListByAdmin(ctx.Request.Context(), adminID)
	if err != nil {
		util.LogInternalError(ctx, "list presentations failed", err)
		util.Fail(ctx, "Database error")
		return
	}
	if len(views) == 0 {
		util.Fail(ctx, "No presentations found")
		return
	}

	util.Ok(ctx, "", views)
}

// GetPresentationsByCategory godoc
// @Summary 分类下的演示列表
// @Tags 演示
// @Produce json
// @Param category_id query int true "分类ID"
// @Success 200 {object} util.Envelope{data=[]service.PresentationView}
// @Router /api/get_presentations_by_category [get]
func (c *PresentationController) GetPresentationsByCategory(ctx *gin.Context) {
	raw, ok := ctx.GetQuery("category_id")
	if !ok {
		util.Fail(ctx, "category_id missing.")
		return
	}

	// 非数字的分类ID不会匹配任何记录
	categoryID, valid := util.ParseID(raw)
	if !valid {
		util.FailWithEmpty(ctx, "No presentations found.")
		return
	}

	views, err := c.Service.ListByCategory(ctx.Request.Context(), categoryID)
	if err != nil {
		util.LogInternalError(ctx, "list presentations by category failed", err)
		util.Fail(ctx, "Database error")
		return
	}
	if len(views) == 0 {
		util.FailWithEmpty(ctx, "No presentations found.")
		return
	}

	util.Ok(ctx, "", views)
}

// GetSubcategories godoc
// @Summary 演示的评分项
// @Tags 演示
// @Produce json
// @Param presentation_id query int true "演示ID"
// @Success 200 {object} util.Envelope{data=[]model.Criterion}
// @Router /api/get_subcategories [get]
func (c *PresentationController) GetSubcategories(ctx *gin.Context) {
	raw := queryParam(ctx, "presentation_id")
	if raw == "" {
		util.Fail(ctx, "Presentation ID missing")
		return
	}

	// 非数字 ID 不可能有评分项
	presentationID, ok := util.ParseID(raw)
	if !ok {
		util.FailWithEmpty(ctx, "No criteria found")
		return
	}

	criteria, err := c.Service.ListCriteria(ctx.Request.Context(), presentationID)
	if err != nil {
		util.LogInternalError(ctx, "list criteria failed", err)
		util.Fail(ctx, "Database error")
		return
	}
	if len(criteria) == 0 {
		util.FailWithEmpty(ctx, "No criteria found")
		return
	}

	util.Ok(ctx, "", criteria)
}
