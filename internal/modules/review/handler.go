package review

import (
	"errors"
	"net/http"

	"oceanbreeze/internal/middleware"
	"oceanbreeze/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/rooms/:id/reviews", h.ListByRoom)
	public.GET("/rooms/:id/rating", h.GetRating)

	protected.POST("/rooms/:id/reviews", h.Create)
}

// Create handles POST /api/v1/rooms/:id/reviews
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.svc.AddReview(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rv)
}

// ListByRoom handles GET /api/v1/rooms/:id/reviews
func (h *Handler) ListByRoom(c *gin.Context) {
	items, err := h.svc.RoomReviewDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// GetRating handles GET /api/v1/rooms/:id/rating
func (h *Handler) GetRating(c *gin.Context) {
	summary, err := h.svc.Rating(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoSession):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Login required")
	case errors.Is(err, ErrInvalidRating), errors.Is(err, ErrCommentTooLong):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
