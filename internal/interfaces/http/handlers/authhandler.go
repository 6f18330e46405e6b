package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/infrastructure/auth"
	sharedConfig "github.com/beacon-cms/beacon/internal/shared/config"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

// AuthHandler issues admin tokens. There is a single admin identity configured
// through the environment; no user store backs it.
type AuthHandler struct {
	jwtService *auth.JWTService
	hasher     *auth.BcryptPasswordHasher
	adminCfg   sharedConfig.AdminConfig
	logger     logger.Interface
}

func NewAuthHandler(jwtService *auth.JWTService, hasher *auth.BcryptPasswordHasher, adminCfg sharedConfig.AdminConfig) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		hasher:     hasher,
		adminCfg:   adminCfg,
		logger:     logger.NewLogger(),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if h.adminCfg.Email == "" || h.adminCfg.PasswordHash == "" {
		h.logger.Warnw("admin credentials are not configured")
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if req.Email != h.adminCfg.Email {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err := h.hasher.Verify(req.Password, h.adminCfg.PasswordHash); err != nil {
		h.logger.Warnw("admin login failed", "client_ip", c.ClientIP())
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, expiresIn, err := h.jwtService.Generate(req.Email)
	if err != nil {
		h.logger.Errorw("failed to generate token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	h.logger.Infow("admin logged in", "client_ip", c.ClientIP())
	utils.SuccessResponse(c, http.StatusOK, "", LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	})
}

func (h *AuthHandler) GetCurrentAdmin(c *gin.Context) {
	email, _ := c.Get("admin_email")
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"email": email})
}
