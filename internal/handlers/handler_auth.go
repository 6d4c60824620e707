package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heliowash/backoffice/internal/apperrors"
	"github.com/heliowash/backoffice/internal/core/domain"
	portssvc "github.com/heliowash/backoffice/internal/core/ports/services"
	"github.com/heliowash/backoffice/internal/dto"
	"github.com/heliowash/backoffice/internal/platform/config"
	"github.com/heliowash/backoffice/internal/utils"
)

// AuthHandler serves login and registration.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	oauthService portssvc.GoogleOAuthSvcFacade
	cfg          *config.AppConfig
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(userService portssvc.UserSvcFacade, oauthService portssvc.GoogleOAuthSvcFacade, cfg *config.AppConfig) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		oauthService: oauthService,
		cfg:          cfg,
	}
}

// Login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
			return
		}
		respondWithError(c, err)
		return
	}

	if !user.IsActive || user.AuthProvider != domain.ProviderLocal ||
		!utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTIssuer, h.cfg.JWTExpiryMinutes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// Register godoc
// @Summary Register a local operator account
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "Account"
// @Success 201 {object} dto.UserResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// googleExchangeRequest carries the authorization code from the front end.
type googleExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleExchangeCode godoc
// @Summary Log in by exchanging a Google authorization code
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body googleExchangeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *AuthHandler) GoogleExchangeCode(c *gin.Context) {
	var req googleExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	identity, err := h.oauthService.ExchangeCodeForIdentity(c.Request.Context(), req.Code)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.CreateOAuthUser(c.Request.Context(),
		identity.Name, identity.Email, domain.ProviderGoogle, identity.Subject, identity.EmailVerified)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTIssuer, h.cfg.JWTExpiryMinutes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
