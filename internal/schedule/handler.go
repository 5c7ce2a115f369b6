package schedule

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{Repo: repo}
}

// ===========================
// 📆 List Schedule - GET /schedule
func (h *Handler) ListSchedule(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

// ===========================
// 🎯 Create Item - POST /admin/schedule
func (h *Handler) CreateItem(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input: " + err.Error()})
		return
	}

	item, err := h.Repo.Create(c.Request.Context(), fromRequest(&req))
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": item})
}

// ===========================
// 🛠 Update Item - PUT /admin/schedule/:id
func (h *Handler) UpdateItem(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input: " + err.Error()})
		return
	}

	item, err := h.Repo.Update(c.Request.Context(), c.Param("id"), fromRequest(&req))
	if err != nil {
		h.itemError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// ===========================
// ❌ Delete Item - DELETE /admin/schedule/:id
func (h *Handler) DeleteItem(c *gin.Context) {
	deleted, err := h.Repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.itemError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Schedule item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Schedule item deleted successfully"})
}

func fromRequest(req *ItemRequest) *Item {
	return &Item{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		Location:    req.Location,
		Order:       req.Order,
	}
}

func (h *Handler) itemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid schedule item id"})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Schedule item not found"})
	default:
		h.storeError(c, err)
	}
}

func (h *Handler) storeError(c *gin.Context, err error) {
	log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
}
