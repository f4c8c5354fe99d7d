package booking

import (
	"errors"
	"net/http"

	"oceanbreeze/internal/domain"
	"oceanbreeze/internal/middleware"
	"oceanbreeze/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/rooms", h.SearchRooms)
	v1.GET("/rooms/:id/quote", h.QuoteStay)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	reservations := protected.Group("/reservations")
	{
		reservations.POST("", h.CreateReservation)
		reservations.GET("/me", h.MyReservations)
	}
}

// SearchRooms handles GET /api/v1/rooms?check_in=&check_out=
func (h *Handler) SearchRooms(c *gin.Context) {
	checkIn, checkOut, ok := parseStayQuery(c)
	if !ok {
		return
	}
	if !checkIn.IsZero() && !checkOut.IsZero() && !checkOut.After(checkIn) {
		response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", ErrInvalidDateRange.Error())
		return
	}

	rooms, err := h.service.AvailableRooms(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rooms)
}

// QuoteStay handles GET /api/v1/rooms/:id/quote?check_in=&check_out=
func (h *Handler) QuoteStay(c *gin.Context) {
	checkIn, checkOut, ok := parseStayQuery(c)
	if !ok {
		return
	}

	q, err := h.service.Quote(c.Request.Context(), c.Param("id"), checkIn, checkOut)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, q)
}

// CreateReservation handles POST /api/v1/reservations
func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.CreateReservation(
		c.Request.Context(),
		middleware.CurrentUser(c),
		req.RoomID,
		req.CheckInDate,
		req.CheckOutDate,
	)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

// MyReservations handles GET /api/v1/reservations/me
func (h *Handler) MyReservations(c *gin.Context) {
	views, err := h.service.MyReservations(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, views)
}

func parseStayQuery(c *gin.Context) (domain.Date, domain.Date, bool) {
	checkIn, err := domain.ParseDate(c.Query("check_in"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in must be YYYY-MM-DD")
		return domain.Date{}, domain.Date{}, false
	}
	checkOut, err := domain.ParseDate(c.Query("check_out"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be YYYY-MM-DD")
		return domain.Date{}, domain.Date{}, false
	}
	return checkIn, checkOut, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoSession):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Login required")
	case errors.Is(err, ErrInvalidDateRange):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", err.Error())
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
	case errors.Is(err, ErrNotAvailable):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Room is not available for the selected dates")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
