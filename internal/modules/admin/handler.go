package admin

import (
	"net/http"

	"oceanbreeze/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group already guarded by JWTAuth and AdminOnly.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/stats", h.GetStats)
	admin.GET("/reservations", h.GetReservations)
	admin.GET("/users", h.GetUsers)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) GetReservations(c *gin.Context) {
	rows, err := h.service.Reservations(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.service.Users(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
}
