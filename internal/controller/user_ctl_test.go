package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/phamkimtung/nhom8web/internal/middleware"
	"github.com/phamkimtung/nhom8web/internal/model"
	"github.com/phamkimtung/nhom8web/internal/repository"
	"github.com/phamkimtung/nhom8web/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试辅助 ====================

func openTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models...))
	return db
}

func performJSON(r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		buf = bytes.NewBuffer(raw)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func setupUserTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := openTestDB(t, &model.User{}, &model.SearchHistory{})

	userSvc := service.NewUserService(
		repository.NewUserRepository(db),
		repository.NewSearchHistoryRepository(db),
	)
	ctl := NewUserController(userSvc)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/register", ctl.Register)
	api.POST("/login", ctl.Login)
	api.GET("/users/profile", middleware.JWTAuth(), ctl.GetProfile)
	api.PUT("/users/profile", middleware.JWTAuth(), ctl.UpdateProfile)
	api.POST("/search-history", ctl.CreateSearchHistory)
	api.GET("/search-history/:userId", ctl.ListSearchHistory)
	return r, db
}

// ==================== 注册 / 登录 ====================

func TestRegisterThenLogin(t *testing.T) {
	r, db := setupUserTestRouter(t)

	w := performJSON(r, http.MethodPost, "/api/register", map[string]interface{}{
		"username":  "nguyenvana",
		"email":     "a@example.com",
		"password":  "matkhau123",
		"full_name": "Nguyễn Văn A",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// 密码必须是 bcrypt 散列入库，不能存明文
	var user model.User
	require.NoError(t, db.First(&user, "username = ?", "nguyenvana").Error)
	assert.NotEqual(t, "matkhau123", user.Password)
	assert.Equal(t, model.RoleCustomer, user.Role)

	w = performJSON(r, http.MethodPost, "/api/login", map[string]interface{}{
		"username": "nguyenvana",
		"password": "matkhau123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	// token 里要带用户 ID 和角色
	claims, err := middleware.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleCustomer, claims.Role)
	// 旧版后端签发的 token 不带过期时间
	assert.Nil(t, claims.ExpiresAt)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	r, _ := setupUserTestRouter(t)

	body := map[string]interface{}{
		"username": "trung",
		"password": "abc12345",
	}
	w := performJSON(r, http.MethodPost, "/api/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(r, http.MethodPost, "/api/register", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_StoreOwnerRole(t *testing.T) {
	r, db := setupUserTestRouter(t)

	w := performJSON(r, http.MethodPost, "/api/register", map[string]interface{}{
		"username": "chucuahang",
		"password": "abc12345",
		"role":     model.RoleStoreOwner,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var user model.User
	require.NoError(t, db.First(&user, "username = ?", "chucuahang").Error)
	assert.Equal(t, model.RoleStoreOwner, user.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _ := setupUserTestRouter(t)

	performJSON(r, http.MethodPost, "/api/register", map[string]interface{}{
		"username": "hoa",
		"password": "dungmatkhau",
	}, "")

	w := performJSON(r, http.MethodPost, "/api/login", map[string]interface{}{
		"username": "hoa",
		"password": "saimatkhau",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	r, _ := setupUserTestRouter(t)

	w := performJSON(r, http.MethodPost, "/api/login", map[string]interface{}{
		"username": "khongtontai",
		"password": "whatever1",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// ==================== 个人资料 ====================

func TestProfile_RequiresToken(t *testing.T) {
	r, _ := setupUserTestRouter(t)

	w := performJSON(r, http.MethodGet, "/api/users/profile", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfile_GetAndUpdate(t *testing.T) {
	r, _ := setupUserTestRouter(t)

	performJSON(r, http.MethodPost, "/api/register", map[string]interface{}{
		"username": "minh",
		"email":    "minh@example.com",
		"password": "abc12345",
	}, "")
	w := performJSON(r, http.MethodPost, "/api/login", map[string]interface{}{
		"username": "minh",
		"password": "abc12345",
	}, "")
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = performJSON(r, http.MethodGet, "/api/users/profile", nil, login.Token)
	require.Equal(t, http.StatusOK, w.Code)
	var info map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "minh", info["username"])

	w = performJSON(r, http.MethodPut, "/api/users/profile", map[string]interface{}{
		"username": "minhmoi",
		"email":    "moi@example.com",
	}, login.Token)
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(r, http.MethodGet, "/api/users/profile", nil, login.Token)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "minhmoi", info["username"])
}

// ==================== 搜索历史 ====================

func TestSearchHistory_CreateAndList(t *testing.T) {
	r, db := setupUserTestRouter(t)

	user := model.User{Username: "tim", Password: "x", Role: model.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)

	for _, kw := range []string{"áo khoác", "quần jean"} {
		w := performJSON(r, http.MethodPost, "/api/search-history", map[string]interface{}{
			"user_id": user.ID,
			"keyword": kw,
		}, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := performJSON(r, http.MethodGet, "/api/search-history/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var records []model.SearchHistory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 2)
}
