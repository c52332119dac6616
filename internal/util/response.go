package util

import (
	"assessment_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构（健康检查等新接口使用）
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// 移动端沿用的状态值：部分接口返回布尔值，部分返回字符串
const (
	StatusTrue  = "true"
	StatusFalse = "false"
)

// Envelope 移动端约定的响应外壳，Status 可能是 bool 或 "true"/"false"
type Envelope struct {
	Status  interface{} `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

// Reply 旧接口一律返回 200，错误语义放在 status 字段中
func Reply(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// Fail 字符串状态的失败响应
func Fail(c *gin.Context, message string) {
	Reply(c, Envelope{Status: StatusFalse, Message: message})
}

// FailWithEmpty 软性“未找到”：附带空数组
func FailWithEmpty(c *gin.Context, message string) {
	Reply(c, gin.H{"status": StatusFalse, "message": message, "data": []interface{}{}})
}

// Ok 字符串状态的成功响应
func Ok(c *gin.Context, message string, data interface{}) {
	Reply(c, Envelope{Status: StatusTrue, Message: message, Data: data})
}

func LogInternalError(c *gin.Context, msg string, err error) {
	logger.Log.Error(msg,
		zap.Error(err),
		zap.String("path", c.FullPath()),
		zap.String("client_ip", c.ClientIP()),
	)
}
