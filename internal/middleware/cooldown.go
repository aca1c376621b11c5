package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// ==================== CooldownLimiter 冷却限流器 ====================

// CooldownLimiter 按 key 的冷却限流器
// 第三方生成接口按次计费，防止用户连点试穿按钮刷调用量
type CooldownLimiter struct {
	locks sync.Map // key -> *cooldownEntry
}

type cooldownEntry struct {
	lastTime time.Time
	mu       sync.Mutex
}

// 全局限流器实例
var globalCooldown = &CooldownLimiter{}

// GetCooldownLimiter 获取全局限流器
func GetCooldownLimiter() *CooldownLimiter {
	return globalCooldown
}

// CheckResult 检查结果
type CheckResult struct {
	Allowed    bool          // 是否允许
	RetryAfter time.Duration // 剩余冷却时间
}

// Check 检查是否允许执行
// key: 限流键，如 "tryon:user:123"
// interval: 冷却间隔
func (l *CooldownLimiter) Check(key string, interval time.Duration) CheckResult {
	actual, _ := l.locks.LoadOrStore(key, &cooldownEntry{})
	entry := actual.(*cooldownEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(entry.lastTime)

	if elapsed < interval {
		return CheckResult{
			Allowed:    false,
			RetryAfter: interval - elapsed,
		}
	}

	entry.lastTime = now
	return CheckResult{Allowed: true}
}

// Reset 重置某个 key 的冷却（调用失败时回滚，允许用户立刻重试）
func (l *CooldownLimiter) Reset(key string) {
	l.locks.Delete(key)
}

// ==================== Gin 中间件 ====================

// Cooldown 冷却限流中间件，按登录用户维度限流
//
// 使用示例:
//
//	router.POST("/api/try-on", middleware.JWTAuth(), middleware.Cooldown("tryon", 10*time.Second), ctl.TryOn)
func Cooldown(name string, interval time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:user:%d", name, GetUserID(c))

		result := globalCooldown.Check(key, interval)
		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "thao tác quá nhanh, vui lòng thử lại sau",
				"retry_after": int(result.RetryAfter.Seconds()) + 1,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
