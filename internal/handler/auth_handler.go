package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"appointment-booking-api/internal/auth"
	"appointment-booking-api/internal/model"
	"appointment-booking-api/pkg/apperr"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperr.Invalid("Invalid request body"))
		return
	}

	u, err := h.users.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		h.writeErrorConflict(c, err, http.StatusConflict)
		return
	}

	h.respondWithToken(c, u)
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperr.Invalid("Invalid request body"))
		return
	}

	u, err := h.users.Login(req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.respondWithToken(c, u)
}

func (h *Handler) respondWithToken(c *gin.Context, u *model.User) {
	tok, err := auth.MakeToken(u, h.secret)
	if err != nil {
		h.writeError(c, apperr.Internal("Failed to issue token", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tok, "user": u})
}
