package app

import (
	"assessment_backend/docs"
	"assessment_backend/internal/config"
	"assessment_backend/pkg/monitoring"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// endpoint 一个业务接口，同时挂载在 /api/<name> 与旧客户端使用的 /<name>.php
type endpoint struct {
	method  string
	name    string
	handler gin.HandlerFunc
}

// anyMethod 由处理函数自行校验请求方法
const anyMethod = "ANY"

func (a *App) endpoints(c *controllers) []endpoint {
	return []endpoint{
		// 目录
		{http.MethodGet, "assessment_details", c.assessment.AssessmentDetails},
		{http.MethodPost, "create_presentation", c.presentation.CreatePresentation},
		{http.MethodGet, "get_presentations", c.presentation.GetPresentations},
		{http.MethodGet, "get_presentations_by_category", c.presentation.GetPresentationsByCategory},
		{http.MethodGet, "get_subcategories", c.presentation.GetSubcategories},
		{http.MethodGet, "get_student", c.student.GetStudents},

		// 评分提交
		{http.MethodPost, "save_evaluation_new", c.evaluation.SaveEvaluation},
		{http.MethodPost, "student_evaluation", c.assessment.SubmitEvaluation},
		{anyMethod, "save_student_reply", c.evaluation.SaveStudentReply},

		// 反馈与分析
		{http.MethodGet, "fetch_student_feedback", c.evaluation.FetchStudentFeedback},
		{http.MethodGet, "get_student_analytics_new", c.analytics.GetStudentAnalytics},
		{http.MethodGet, "export_presentation_results", c.export.ExportPresentationResults},

		// 认证
		{http.MethodPost, "teacher_login", c.auth.TeacherLogin},
	}
}

func mount(r gin.IRoutes, method, path string, h gin.HandlerFunc) {
	if method == anyMethod {
		r.Any(path, h)
		return
	}
	r.Handle(method, path, h)
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.GET("/health", c.health.HealthCheck)

	for _, e := range a.endpoints(c) {
		mount(api, e.method, "/"+e.name, e.handler)
		if cfg.Server.LegacyRoutes {
			mount(router, e.method, "/"+e.name+".php", e.handler)
		}
	}
}
