package rsvp

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mwhitfield/wedding-website-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 📄 List RSVPs - GET /rsvps?attending=&limit=
func (h *Handler) ListRSVPs(c *gin.Context) {
	attending, ok := parseOptionalBool(c, "attending")
	if !ok {
		return
	}
	limit := parseLimit(c)

	records, err := h.Service.List(c.Request.Context(), attending, limit)
	if err != nil {
		h.storeError(c, "failed to fetch RSVPs", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(records),
		"data":    records,
	})
}

// ===========================
// 🎯 Create RSVP - POST /rsvps
func (h *Handler) CreateRSVP(c *gin.Context) {
	var in SubmissionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	rec, verrs, err := h.Service.Submit(c.Request.Context(), &in)
	if len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed",
			"errors":  verrs,
		})
		return
	}
	if err != nil {
		h.storeError(c, "failed to create RSVP", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": rec})
}

// ===========================
// 🔍 Get RSVP - GET /rsvps/:id
func (h *Handler) GetRSVPByID(c *gin.Context) {
	id, ok := requireRecordID(c)
	if !ok {
		return
	}

	rec, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		h.recordError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rec})
}

// ===========================
// 🛠 Update RSVP - PUT /rsvps/:id
func (h *Handler) UpdateRSVP(c *gin.Context) {
	id, ok := requireRecordID(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	rec, err := h.Service.Update(c.Request.Context(), id, &req)
	if errors.Is(err, ErrEmptyUpdate) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No fields to update"})
		return
	}
	if errors.Is(err, ErrInvalidEmailFormat) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid email format"})
		return
	}
	if err != nil {
		h.recordError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rec})
}

// ===========================
// ❌ Delete RSVP - DELETE /rsvps/:id
// Public: the client's "replace my RSVP" flow deletes the old record before
// resubmitting.
func (h *Handler) DeleteRSVP(c *gin.Context) {
	id, ok := requireRecordID(c)
	if !ok {
		return
	}

	deleted, err := h.Service.Delete(c.Request.Context(), id)
	if err != nil {
		h.recordError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "RSVP not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "RSVP deleted successfully"})
}

// ===========================
// 📊 Stats - GET /rsvps/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		h.storeError(c, "failed to compute stats", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// ===========================
// 📧 Check Email - GET /rsvps/check-email?email=
func (h *Handler) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "email query parameter is required"})
		return
	}

	rec, exists, err := h.Service.CheckEmail(c.Request.Context(), email)
	if err != nil {
		h.storeError(c, "failed to check email", err)
		return
	}

	resp := gin.H{"success": true, "exists": exists}
	if exists {
		resp["rsvp"] = rec
	} else {
		resp["rsvp"] = nil
	}
	c.JSON(http.StatusOK, resp)
}

// ===========================
// 📄 Admin List - GET /admin/rsvps?approved=&attending=&limit=
func (h *Handler) AdminListRSVPs(c *gin.Context) {
	approved, ok := parseOptionalBool(c, "approved")
	if !ok {
		return
	}
	attending, ok := parseOptionalBool(c, "attending")
	if !ok {
		return
	}
	limit := parseLimit(c)

	records, err := h.Service.ListAdmin(c.Request.Context(), approved, attending, limit)
	if err != nil {
		h.storeError(c, "failed to fetch RSVPs", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(records),
		"data":    records,
	})
}

// ===========================
// ✅ Approval - PATCH /admin/rsvps/:id/approval
func (h *Handler) UpdateApproval(c *gin.Context) {
	id, ok := requireRecordID(c)
	if !ok {
		return
	}

	var req struct {
		Approved *bool `json:"approved"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Approved == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "approved (boolean) is required"})
		return
	}

	actor := middleware.GetAdminEmail(c)
	ip := middleware.GetIPFromContext(c)

	rec, err := h.Service.SetApproval(c.Request.Context(), id, *req.Approved, actor, ip)
	if err != nil {
		h.recordError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rec})
}

// ===========================
// ❌ Admin Delete - DELETE /admin/rsvps/:id
func (h *Handler) AdminDeleteRSVP(c *gin.Context) {
	id, ok := requireRecordID(c)
	if !ok {
		return
	}

	actor := middleware.GetAdminEmail(c)
	ip := middleware.GetIPFromContext(c)

	deleted, err := h.Service.AdminDelete(c.Request.Context(), id, actor, ip)
	if err != nil {
		h.recordError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "RSVP not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "RSVP deleted successfully"})
}

// ===========================
// helpers

// requireRecordID rejects malformed ids with 400 before any store access.
// Record ids are 24-character hex strings.
func requireRecordID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if len(id) != 24 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid RSVP id"})
		return "", false
	}
	return id, true
}

// parseOptionalBool reads a bool query param; a missing param yields nil.
// Writes the 400 response itself when the value is unparsable.
func parseOptionalBool(c *gin.Context, name string) (*bool, bool) {
	raw, present := c.GetQuery(name)
	if !present {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": name + " must be a boolean"})
		return nil, false
	}
	return &v, true
}

// parseLimit reads the limit query param; 0 or garbage means unbounded.
func parseLimit(c *gin.Context) int64 {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
	if limit < 0 {
		return 0
	}
	return limit
}

// recordError maps repository sentinels onto the response envelope.
func (h *Handler) recordError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid RSVP id"})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "RSVP not found"})
	default:
		h.storeError(c, "store operation failed", err)
	}
}

// storeError logs driver-level detail server-side and returns a generic 500.
func (h *Handler) storeError(c *gin.Context, msg string, err error) {
	log.Printf("❌ %s %s: %s: %v", c.Request.Method, c.Request.URL.Path, msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
}
