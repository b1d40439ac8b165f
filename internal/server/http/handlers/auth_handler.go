package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/gopherauth/internal/domain/errors"
	"github.com/polkiloo/gopherauth/internal/server/http/dto"
)

// AuthHandler processes registration, login and token checks.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("Invalid request body"))
		return
	}

	session, err := h.facade.Register(c.Request.Context(), req.Input())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(dto.NewSessionResponse(session), "Registration successful"))
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("Invalid request body"))
		return
	}

	session, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.NewSessionResponse(session), "Login successful"))
}

// Verify handles GET /api/v1/auth/verify. The token is checked by AuthRequired.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		writeError(c, domainErrors.ErrInvalidToken)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.VerifyResponse{UserID: claims.UserID, Email: claims.Email}, "Token is valid"))
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		writeError(c, domainErrors.ErrInvalidToken)
		return
	}

	user, err := h.facade.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ProfileResponse{User: *user}, "Profile loaded"))
}
