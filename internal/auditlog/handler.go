package auditlog

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 📋 Audit Trail - GET /admin/auditlogs?limit=
func (h *Handler) GetAuditLogs(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
	if limit < 0 {
		limit = 0
	}

	entries, err := h.Service.GetAuditLogs(c.Request.Context(), limit)
	if err != nil {
		log.Printf("❌ failed to fetch audit logs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(entries),
		"data":    entries,
	})
}
