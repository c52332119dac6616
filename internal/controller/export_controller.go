package controller

import (
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	Service *service.ExportService
}

func NewExportController(svc *service.ExportService) *ExportController {
	return &ExportController{Service: svc}
}

// ExportPresentationResults godoc
// @Summary 导出演示评分明细
// @Description 生成 CSV 并上传到配置的存储，返回下载地址
// @Tags 演示
// @Produce json
// @Param presentation_id query int true "演示ID"
// @Success 200 {object} map[string]string
// @Router /api/export_presentation_results [get]
func (c *ExportController) ExportPresentationResults(ctx *gin.Context) {
	raw := queryParam(ctx, "presentation_id")
	if raw == "" {
		util.Fail(ctx, "Presentation ID missing")
		return
	}
	presentationID, ok := util.ParseID(raw)
	if !ok {
		util.Fail(ctx, "Presentation not found")
		return
	}

	url, err := c.Service.ExportPresentation(ctx.Request.Context(), presentationID)
	if err != nil {
		if errors.Is(err, util.ErrPresentationNotFound) {
			util.Fail(ctx, "Presentation not found")
			return
		}
		util.LogInternalError(ctx, "export presentation failed", err)
		util.Fail(ctx, "Export failed")
		return
	}

	util.Reply(ctx, gin.H{"status": util.StatusTrue, "url": url})
}
