package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"appointment-booking-api/internal/middleware"
	"appointment-booking-api/internal/service"
)

type Handler struct {
	users     *service.UserService
	scheduler *service.Scheduler
	secret    string
	logger    *zap.Logger
}

func New(users *service.UserService, scheduler *service.Scheduler, secret string, logger *zap.Logger) *Handler {
	return &Handler{users: users, scheduler: scheduler, secret: secret, logger: logger}
}

// Routes mounts every endpoint. Slot management relies on the service-side
// policy check rather than RequireAuth: an anonymous caller gets the same
// 403 as a non-admin, matching the contract.
func (h *Handler) Routes(r *gin.Engine) {
	r.Use(middleware.Prometheus())

	r.GET("/healthz", h.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/register", h.register)
	r.POST("/login", h.login)

	r.GET("/slots", middleware.OptionalAuth(h.secret), h.listSlots)
	r.POST("/slots", middleware.OptionalAuth(h.secret), h.createSlot)
	r.DELETE("/slots/:id", middleware.OptionalAuth(h.secret), h.deleteSlot)

	appts := r.Group("/appointments", middleware.RequireAuth(h.secret))
	appts.GET("", h.listAppointments)
	appts.POST("", h.book)
	appts.PUT("/:id", h.reschedule)
	appts.DELETE("/:id", h.cancel)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
