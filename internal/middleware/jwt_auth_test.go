package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== Token 生成 / 解析 ====================

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(42, "chu_cua_hang")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "chu_cua_hang", claims.Role)
	// 与旧版后端一致：token 永不过期
	assert.Nil(t, claims.ExpiresAt)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("khong.phai.token")
	assert.Error(t, err)
}

// ==================== 中间件 ====================

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "role": GetUserRole(c)})
	})
	r.GET("/secret", handlers...)
	return r
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/secret", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_NoHeader(t *testing.T) {
	w := doGet(protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_BadScheme(t *testing.T) {
	w := doGet(protectedRouter(), "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	token, err := GenerateToken(7, "khach_hang")
	require.NoError(t, err)

	w := doGet(protectedRouter(), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestRequireRole(t *testing.T) {
	token, err := GenerateToken(7, "khach_hang")
	require.NoError(t, err)

	// 角色不符 → 403
	w := doGet(protectedRouter(RequireRole("chu_cua_hang")), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 角色匹配 → 放行
	w = doGet(protectedRouter(RequireRole("khach_hang", "chu_cua_hang")), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
