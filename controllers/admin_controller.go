package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminController covers the endpoints that back the admin landing page:
// image upload and the dashboard summary.
type AdminController struct {
	uploads   UploadAPI
	dashboard DashboardAPI
}

func NewAdminController(uploads UploadAPI, dashboard DashboardAPI) *AdminController {
	return &AdminController{uploads: uploads, dashboard: dashboard}
}

// UploadImage handles POST /api/admin/upload_image (multipart, field "image").
func (ac *AdminController) UploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No image file provided"})
		return
	}

	result, svcErr := ac.uploads.Process(header)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}

	zap.L().Info("image uploaded",
		zap.String("filename", result.Filename),
		zap.Int64("size", result.Size),
	)
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Image uploaded successfully",
		"filename":      result.Filename,
		"thumbnail":     result.Thumbnail,
		"original_name": result.OriginalName,
		"size":          result.Size,
		"width":         result.Width,
		"height":        result.Height,
		"url":           result.URL,
		"thumbnail_url": result.ThumbnailURL,
	})
}

// DashboardStats handles GET /api/admin/dashboard_stats.
func (ac *AdminController) DashboardStats(c *gin.Context) {
	stats, svcErr := ac.dashboard.Stats(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "message": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
