package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaoyai-getaway/content-service/internal/content"
	"github.com/khaoyai-getaway/content-service/internal/content/service"
	"github.com/khaoyai-getaway/content-service/pkg/logger"
)

// Handler exposes the content document over HTTP: fetch the whole document,
// replace the whole document, and the one-shot migration bootstrap.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register wires the data routes. adminMW guards the mutating verbs; pass
// none to leave them open.
func (h *Handler) Register(r *gin.Engine, adminMW ...gin.HandlerFunc) {
	r.GET("/api/data", h.GetContent)

	r.PUT("/api/data", withGuards(adminMW, h.PutContent)...)
	r.POST("/api/data/migrate", withGuards(adminMW, h.Migrate)...)
}

func withGuards(guards []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(guards)+1)
	out = append(out, guards...)
	return append(out, h)
}

// GetContent returns the whole document. Reads never fail (the service falls
// back to defaults), so there is no error branch here.
func (h *Handler) GetContent(c *gin.Context) {
	doc, src := h.svc.Read(c.Request.Context())
	logger.Debugf("content read served from %s", src)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": doc, "source": src.String()})
}

// PutContent replaces the whole document. Malformed JSON and a structurally
// wrong document are distinct 400s; the write is never attempted on either.
func (h *Handler) PutContent(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON format"})
		return
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON format"})
		return
	}
	if err := content.ValidateShape(raw); err != nil {
		logger.Warnf("content update rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid data structure"})
		return
	}

	var doc content.ContentDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid data structure"})
		return
	}

	if err := h.svc.Write(c.Request.Context(), &doc); err != nil {
		logger.Errorf("content update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update content data", "message": "ไม่สามารถบันทึกข้อมูลได้"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Migrate copies the local seed document into the blob store. Intended to be
// called once during deployment setup.
func (h *Handler) Migrate(c *gin.Context) {
	doc, err := h.svc.Migrate(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrSeedNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "ไม่พบไฟล์ content.json",
				"message": "กรุณาตรวจสอบว่าไฟล์ data/content.json มีอยู่",
			})
			return
		}
		logger.Errorf("content migration failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Migration failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Migration completed successfully",
		"version": doc.Version,
	})
}
