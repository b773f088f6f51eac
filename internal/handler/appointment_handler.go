package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"appointment-booking-api/internal/middleware"
	"appointment-booking-api/pkg/apperr"
)

type bookRequest struct {
	SlotID string `json:"slotId"`
}

type rescheduleRequest struct {
	NewSlotID string `json:"newSlotId"`
}

// GET /appointments — admins see everything, users their own.
func (h *Handler) listAppointments(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	c.JSON(http.StatusOK, gin.H{"appointments": h.scheduler.ListAppointments(identity)})
}

// POST /appointments — book a slot.
func (h *Handler) book(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperr.Invalid("Slot ID is required"))
		return
	}

	appt, err := h.scheduler.Book(identity, req.SlotID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// PUT /appointments/:id — reschedule to another slot.
func (h *Handler) reschedule(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperr.Invalid("New slot ID is required"))
		return
	}

	appt, err := h.scheduler.Reschedule(identity, c.Param("id"), req.NewSlotID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// DELETE /appointments/:id — cancel; the row stays for history.
func (h *Handler) cancel(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	if err := h.scheduler.Cancel(identity, c.Param("id")); err != nil {
		h.writeErrorConflict(c, err, http.StatusConflict)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled successfully"})
}
