package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaoyai-getaway/content-service/internal/storage"
	"github.com/khaoyai-getaway/content-service/pkg/logger"
	"github.com/khaoyai-getaway/content-service/pkg/metrics"
)

// FileStore is the slice of the blob adapter the upload routes need.
type FileStore interface {
	UploadFile(ctx context.Context, r io.Reader, size int64, filename, contentType, folder string) (*storage.UploadResult, error)
	DeleteByURL(ctx context.Context, url string) error
	ListByPrefix(ctx context.Context, prefix string) ([]storage.FileInfo, error)
}

// RegisterUploadRoutes wires the binary upload surface used by the admin
// image pickers. adminMW guards the mutating verbs.
func RegisterUploadRoutes(r *gin.Engine, store FileStore, adminMW ...gin.HandlerFunc) {
	r.POST("/api/upload", guarded(adminMW, func(c *gin.Context) { UploadFile(c, store) })...)
	r.DELETE("/api/upload/delete", guarded(adminMW, func(c *gin.Context) { DeleteFile(c, store) })...)
	r.GET("/api/upload/list", func(c *gin.Context) { ListFiles(c, store) })
}

func guarded(guards []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(guards)+1)
	out = append(out, guards...)
	return append(out, h)
}

// UploadFile accepts a multipart form with a `file` field, validates it
// locally and stores it under images/ with a generated name.
func UploadFile(c *gin.Context, store FileStore) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ไม่พบไฟล์"})
		return
	}

	contentType := fh.Header.Get("Content-Type")
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ไม่พบไฟล์"})
		return
	}
	defer f.Close()

	res, err := store.UploadFile(c.Request.Context(), f, fh.Size, fh.Filename, contentType, "images")
	if err != nil {
		if storage.IsValidationError(err) {
			metrics.Uploads.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		logger.Errorf("file upload failed: %v", err)
		metrics.Uploads.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "เกิดข้อผิดพลาดในการอัพโหลด"})
		return
	}

	metrics.Uploads.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"url":         res.URL,
		"pathname":    res.Pathname,
		"contentType": res.ContentType,
		"size":        fh.Size,
	})
}

// DeleteFile removes a stored object given its public URL.
func DeleteFile(c *gin.Context, store FileStore) {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ไม่พบ URL ของไฟล์"})
		return
	}
	if err := store.DeleteByURL(c.Request.Context(), req.URL); err != nil {
		logger.Errorf("file delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "ไม่สามารถลบไฟล์ได้"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "ลบไฟล์สำเร็จ"})
}

// ListFiles enumerates stored objects for admin tooling.
func ListFiles(c *gin.Context, store FileStore) {
	prefix := c.Query("prefix")
	files, err := store.ListByPrefix(c.Request.Context(), prefix)
	if err != nil {
		logger.Errorf("file list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "ไม่สามารถดึงรายการไฟล์ได้"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "files": files, "count": len(files)})
}
