package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "ecommerce-api/internal/handler/dto/request"
	resdto "ecommerce-api/internal/handler/dto/response"
	"ecommerce-api/internal/handler/httperr"
	"ecommerce-api/internal/handler/middleware"
	"ecommerce-api/internal/pkg/errs"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"
)

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.UserQueries
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q}
}

// @Summary Register
// @Description Register a new customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errors.Is(err, commands.ErrEmailTaken) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email already registered")
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Registration failed")
		return
	}
	httperr.Created(c, resdto.FromAuthResult(result))
}

// @Summary Login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Failure 401 {object} httperr.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed")
		return
	}
	httperr.OK(c, resdto.FromAuthResult(result))
}

// @Summary Me
// @Description Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httperr.Envelope
// @Failure 401 {object} httperr.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user")
		return
	}
	httperr.OK(c, resdto.FromUserView(view))
}
