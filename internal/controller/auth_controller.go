package controller

import (
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type TeacherLoginResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

// TeacherLogin godoc
// @Summary 教师登录
// @Description 邮箱不存在和密码错误返回相同的提示
// @Tags 认证
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "邮箱"
// @Param password formData string true "密码"
// @Success 200 {object} TeacherLoginResponse
// @Router /api/teacher_login [post]
func (c *AuthController) TeacherLogin(ctx *gin.Context) {
	email := strings.TrimSpace(ctx.PostForm("email"))
	password := ctx.PostForm("password")
	if email == "" || password == "" {
		util.Fail(ctx, "Email and Password are required")
		return
	}

	teacher, err := c.AuthService.Login(ctx.Request.Context(), email, password)
	if err != nil {
		if !errors.Is(err, util.ErrInvalidCredentials) {
			util.LogInternalError(ctx, "teacher login failed", err)
		}
		util.Fail(ctx, "Invalid Teacher Credentials")
		return
	}

	util.Reply(ctx, TeacherLoginResponse{
		Status:  util.StatusTrue,
		Message: "Teacher Login Successful",
		UserID:  teacher.ID,
		Name:    teacher.Name,
		Role:    string(teacher.Role),
	})
}
