package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/phamkimtung/nhom8web/internal/api/dto"
	"github.com/phamkimtung/nhom8web/internal/middleware"
	"github.com/phamkimtung/nhom8web/internal/service"
)

// TryOnController AI 试穿模块
type TryOnController struct {
	tryOnService *service.TryOnService
}

func NewTryOnController(s *service.TryOnService) *TryOnController {
	return &TryOnController{tryOnService: s}
}

// TryOn 发起试穿，同步等第三方出图
func (ctrl *TryOnController) TryOn(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "chưa đăng nhập"})
		return
	}

	var req dto.TryOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := ctrl.tryOnService.TryOn(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// History 当前用户最近的试穿记录，limit 默认 20
func (ctrl *TryOnController) History(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "chưa đăng nhập"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit phải là số"})
			return
		}
		limit = n
	}

	logs, err := ctrl.tryOnService.History(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
