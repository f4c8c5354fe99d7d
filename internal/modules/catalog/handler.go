package catalog

import (
	"errors"
	"net/http"

	"oceanbreeze/internal/pkg/response"
	"oceanbreeze/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/rooms/:id", h.GetRoom)
}

// RegisterAdminRoutes expects a group already guarded by JWTAuth and AdminOnly.
func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	rooms := admin.Group("/rooms")
	{
		rooms.POST("", h.CreateRoom)
		rooms.PUT("/:id", h.UpdateRoom)
		rooms.DELETE("/:id", h.DeleteRoom)
	}
}

// GetRoom handles GET /api/v1/rooms/:id
func (h *Handler) GetRoom(c *gin.Context) {
	room, err := h.service.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, room)
}

// CreateRoom handles POST /api/v1/admin/rooms
func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room", errs)
		return
	}

	room, err := h.service.AddRoom(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, room)
}

// UpdateRoom handles PUT /api/v1/admin/rooms/:id
func (h *Handler) UpdateRoom(c *gin.Context) {
	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/v1/admin/rooms/:id
func (h *Handler) DeleteRoom(c *gin.Context) {
	if err := h.service.DeleteRoom(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Room deleted"})
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
	case errors.Is(err, ErrNameRequired), errors.Is(err, ErrInvalidPrice):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
