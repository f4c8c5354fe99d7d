package auth

import (
	"errors"
	"net/http"

	"oceanbreeze/internal/domain"
	"oceanbreeze/internal/pkg/response"
	"oceanbreeze/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
	tokens  TokenIssuer
}

func NewHandler(service *Service, tokens TokenIssuer) *Handler {
	return &Handler{
		service: service,
		tokens:  tokens,
	}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	authGroup := protected.Group("/auth")
	{
		authGroup.GET("/me", h.GetMe)
		authGroup.PUT("/profile", h.UpdateProfile)
		authGroup.POST("/logout", h.Logout)
	}
}

// Register handles POST /api/v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid registration", errs)
		return
	}
	req.Role = domain.RoleUser

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	h.respondWithToken(c, http.StatusCreated, user)
}

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password are required")
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	h.respondWithToken(c, http.StatusOK, user)
}

// Logout handles POST /api/v1/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// GetMe handles GET /api/v1/auth/me
func (h *Handler) GetMe(c *gin.Context) {
	user := h.service.Current()
	if user == nil {
		handleError(c, ErrNoSession)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// UpdateProfile handles PUT /api/v1/auth/profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *Handler) respondWithToken(c *gin.Context, status int, user *domain.SessionUser) {
	token, err := h.tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, status, AuthResponse{User: *user, Token: token})
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
	case errors.Is(err, ErrNoSession):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Login required")
	case errors.Is(err, ErrUsernameTaken):
		response.Error(c, http.StatusConflict, "USERNAME_TAKEN", "Username already in use")
	case errors.Is(err, ErrEmailTaken):
		response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email already in use")
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
