package reports

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mwhitfield/wedding-website-backend/internal/auditlog"
	"github.com/mwhitfield/wedding-website-backend/internal/rsvp"
	"github.com/mwhitfield/wedding-website-backend/middleware"
)

type Handler struct {
	rsvpSvc  *rsvp.Service
	exporter Exporter
	auditSvc auditlog.Service
}

func NewHandler(rsvpSvc *rsvp.Service, exporter Exporter, auditSvc auditlog.Service) *Handler {
	return &Handler{rsvpSvc: rsvpSvc, exporter: exporter, auditSvc: auditSvc}
}

// ===========================
// 📦 Export Guest List - GET /admin/rsvps/export?format=csv|excel|pdf
func (h *Handler) ExportGuestList(c *gin.Context) {
	format := c.DefaultQuery("format", FormatCSV)
	if format != FormatCSV && format != FormatExcel && format != FormatPDF {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "format must be csv, excel, or pdf"})
		return
	}

	records, err := h.rsvpSvc.ListAdmin(c.Request.Context(), nil, nil, 0)
	if err != nil {
		log.Printf("❌ export: failed to fetch RSVPs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	data, filename, contentType, err := h.exporter.Export(format, records)
	if err != nil {
		log.Printf("❌ export: failed to render %s: %v", format, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	actor := middleware.GetAdminEmail(c)
	ip := middleware.GetIPFromContext(c)
	if err := h.auditSvc.LogAction(c.Request.Context(), actor, "", auditlog.ActionRSVPExported,
		map[string]interface{}{"format": format, "records": len(records)}, ip, auditlog.StatusSuccess); err != nil {
		log.Printf("⚠️ Failed to write audit log for export: %v", err)
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, contentType, data)
}
