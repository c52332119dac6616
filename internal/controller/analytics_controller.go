package controller

import (
	"assessment_backend/internal/model"
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Service *service.AnalyticsService
}

func NewAnalyticsController(svc *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: svc}
}

// StudentAnalyticsResponse scope 标明 id 最终按分类还是按演示解析
type StudentAnalyticsResponse struct {
	Status         string                 `json:"status"`
	Message        string                 `json:"message,omitempty"`
	Scope          model.AnalyticsScope   `json:"scope"`
	OverallAverage float64                `json:"overall_average"`
	Data           []service.AnalyticsLog `json:"data"`
}

// GetStudentAnalytics godoc
// @Summary 学生成绩分析
// @Description category_id 先按分类解析，学生在该分类下没有评分时再按演示ID解析
// @Tags 分析
// @Produce json
// @Param student_id query string true "学生标识（邮箱）"
// @Param category_id query int true "分类ID或演示ID"
// @Success 200 {object} StudentAnalyticsResponse
// @Router /api/get_student_analytics_new [get]
func (c *AnalyticsController) GetStudentAnalytics(ctx *gin.Context) {
	studentID := queryParam(ctx, "student_id")
	raw := queryParam(ctx, "category_id")
	if studentID == "" || raw == "" {
		util.Reply(ctx, StudentAnalyticsResponse{
			Status:  util.StatusFalse,
			Message: "student_id and category_id required",
			Data:    []service.AnalyticsLog{},
		})
		return
	}

	// 非数字 ID 匹配不到任何分类或演示，按空结果返回
	id, ok := util.ParseID(raw)
	if !ok {
		util.Reply(ctx, StudentAnalyticsResponse{
			Status: util.StatusTrue,
			Scope:  model.ScopeNone,
			Data:   []service.AnalyticsLog{},
		})
		return
	}

	res, err := c.Service.GetStudentAnalytics(ctx.Request.Context(), studentID, id)
	if err != nil {
		util.LogInternalError(ctx, "student analytics failed", err)
		util.Reply(ctx, StudentAnalyticsResponse{
			Status:  util.StatusFalse,
			Message: "Database error",
			Data:    []service.AnalyticsLog{},
		})
		return
	}

	logs := res.Logs
	if logs == nil {
		logs = []service.AnalyticsLog{}
	}
	util.Reply(ctx, StudentAnalyticsResponse{
		Status:         util.StatusTrue,
		Scope:          res.Scope,
		OverallAverage: res.OverallAverage,
		Data:           logs,
	})
}
