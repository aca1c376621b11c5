package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/phamkimtung/nhom8web/internal/service"
)

// StatsController 统计模块：营收、周报、客户汇总
type StatsController struct {
	statsService *service.StatsService
}

func NewStatsController(s *service.StatsService) *StatsController {
	return &StatsController{statsService: s}
}

// Revenue 已完成订单的总营收
func (ctrl *StatsController) Revenue(c *gin.Context) {
	resp, err := ctrl.statsService.Revenue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// WeeklySummary 最近 N 周的订单量和营收，默认 7 周
func (ctrl *StatsController) WeeklySummary(c *gin.Context) {
	weeks := 7
	if raw := c.Query("weeks"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weeks phải là số dương"})
			return
		}
		weeks = n
	}

	rows, err := ctrl.statsService.WeeklySummary(c.Request.Context(), weeks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// CustomerSummaries 每个客户的订单状态汇总
func (ctrl *StatsController) CustomerSummaries(c *gin.Context) {
	rows, err := ctrl.statsService.CustomerSummaries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}
