package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ==================== 请求日志中间件 ====================

// RequestLog 请求日志中间件
// 每个请求记一条结构化日志，带上 JWT 里解析出来的用户 ID（未登录为 0）
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		evt := log.Info()
		if len(c.Errors) > 0 || c.Writer.Status() >= 500 {
			evt = log.Error()
		}

		evt.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Int64("user_id", GetUserID(c)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
