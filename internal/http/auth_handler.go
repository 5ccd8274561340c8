package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zangjing/ztq-pricing-service/internal/domain/dto"
	"github.com/zangjing/ztq-pricing-service/internal/i18n"
	"github.com/zangjing/ztq-pricing-service/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Login
// @Description  Authenticates a configured account and returns a JWT bearer token and the resolved role. Wrong username and wrong password are indistinguishable.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.SuccessResponse "Token and role"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	token, role, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn().Str("username", req.Username).Msg("Failed login attempt")
			builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	log.Info().Str("username", req.Username).Str("role", string(role)).Msg("User logged in")
	builder.SuccessOK(dto.LoginResponse{Token: token, Role: role})
}

// Logout handles POST /api/auth/logout requests.
//
// Tokens are stateless, logging out is the client discarding its token. The
// endpoint exists so every session transition has a server acknowledgement.
//
// @Summary      Logout
// @Description  Acknowledges a logout. Tokens are stateless and simply expire, the client discards its copy.
// @Tags         Auth
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Logout acknowledged"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	locale := i18n.GetLocale(c)
	message := i18n.GetTranslator().Translate(i18n.SuccessKeyLoggedOut, locale)
	NewResponseBuilder(c).SuccessOK(map[string]string{"message": message})
}
