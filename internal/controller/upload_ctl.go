package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phamkimtung/nhom8web/internal/api/dto"
	"github.com/phamkimtung/nhom8web/internal/service"
)

// 上传大小上限 10MB
const maxUploadSize = 10 << 20

// UploadController 图片上传：multipart 表单 → 对象存储
type UploadController struct {
	storageService *service.StorageService
}

func NewUploadController(s *service.StorageService) *UploadController {
	return &UploadController{storageService: s}
}

// UploadImage 上传一张图片，字段名 image
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.UploadResponse{
			Success: false,
			Message: "thiếu file ảnh (trường image)",
		})
		return
	}

	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, dto.UploadResponse{
			Success: false,
			Message: "file quá lớn, tối đa 10MB",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.UploadResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.UploadResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := ctrl.storageService.Upload(c.Request.Context(), data, fileHeader.Filename, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.UploadResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{
		Success:  true,
		Message:  "tải ảnh lên thành công",
		ImageURL: url,
	})
}
