package controller

import (
	"assessment_backend/internal/util"
	"assessment_backend/pkg/logger"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxBodyBytes 单个请求体上限
const maxBodyBytes = 1 << 20

// readRawBody 读取请求体后放回，后续仍可解析表单。
// 超过上限时已直接响应 413，返回 ok=false
func readRawBody(ctx *gin.Context) ([]byte, bool) {
	if ctx.Request.Body == nil {
		return nil, true
	}
	raw, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, util.Envelope{
				Status:  util.StatusFalse,
				Message: "Request body too large",
			})
			return nil, false
		}
		logger.Log.Warn("read request body failed", zap.String("path", ctx.FullPath()), zap.Error(err))
		return nil, true
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(raw))
	return raw, true
}

// decodePayload 空体、null、{} 与 [] 都视为没有数据
func decodePayload(raw []byte, dest interface{}) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}

	var shape interface{}
	if err := json.Unmarshal(raw, &shape); err != nil {
		return false
	}
	switch v := shape.(type) {
	case nil:
		return false
	case map[string]interface{}:
		if len(v) == 0 {
			return false
		}
	case []interface{}:
		if len(v) == 0 {
			return false
		}
	default:
		return false
	}

	// 合法 JSON 但字段类型不符，客户端同样收到 "No data received"，这里留下原因
	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Log.Warn("request payload does not match schema", zap.Error(err))
		return false
	}
	return true
}

func queryParam(ctx *gin.Context, key string) string {
	return strings.TrimSpace(ctx.Query(key))
}
