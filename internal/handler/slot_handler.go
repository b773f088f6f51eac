package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"appointment-booking-api/internal/middleware"
	"appointment-booking-api/internal/model"
	"appointment-booking-api/pkg/apperr"
)

type createSlotRequest struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// GET /slots — public; ?all=true is honored for admins only.
func (h *Handler) listSlots(c *gin.Context) {
	var identity *model.Identity
	if id, ok := middleware.IdentityFrom(c); ok {
		identity = &id
	}

	slots := h.scheduler.ListSlots(identity, c.Query("all") == "true")
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// POST /slots — admin only.
func (h *Handler) createSlot(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	var req createSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperr.Invalid("Start time and end time are required"))
		return
	}

	slot, err := h.scheduler.CreateSlot(identity, req.StartTime, req.EndTime)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"slot": slot})
}

// DELETE /slots/:id — admin only; refuses while a live booking holds it.
func (h *Handler) deleteSlot(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	if err := h.scheduler.DeleteSlot(identity, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slot deleted successfully"})
}
