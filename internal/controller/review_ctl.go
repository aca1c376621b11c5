package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/phamkimtung/nhom8web/internal/api/dto"
	"github.com/phamkimtung/nhom8web/internal/service"
)

// ReviewController 评价模块
type ReviewController struct {
	reviewService *service.ReviewService
}

func NewReviewController(s *service.ReviewService) *ReviewController {
	return &ReviewController{reviewService: s}
}

// Create 发表评价，写入后重算商品平均分
func (ctrl *ReviewController) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := ctrl.reviewService.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListByProduct 某商品的评价（带用户名）
func (ctrl *ReviewController) ListByProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id phải là số"})
		return
	}

	reviews, err := ctrl.reviewService.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// HasReviewed 查某用户是否评价过某商品
func (ctrl *ReviewController) HasReviewed(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId phải là số"})
		return
	}
	productID, err := strconv.ParseInt(c.Query("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId phải là số"})
		return
	}

	reviewed, review, err := ctrl.reviewService.HasReviewed(c.Request.Context(), userID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviewed": reviewed, "review": review})
}

// ListAll 全部评价
func (ctrl *ReviewController) ListAll(c *gin.Context) {
	reviews, err := ctrl.reviewService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// Overview 首页评价总览：最新几条 + 全站平均分
func (ctrl *ReviewController) Overview(c *gin.Context) {
	overview, err := ctrl.reviewService.GetOverview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, overview)
}
