// Package middleware provides role resolution from bearer tokens.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zangjing/ztq-pricing-service/internal/domain/dto"
	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
	"github.com/zangjing/ztq-pricing-service/internal/i18n"
	"github.com/zangjing/ztq-pricing-service/internal/service"
)

const (
	// RoleKey is the context key for the resolved role.
	RoleKey ContextKey = "role"
	// UsernameKey is the context key for the authenticated username.
	UsernameKey ContextKey = "username"
)

// RoleAuth returns a middleware that resolves the caller's role from the
// Authorization header. A missing, malformed or invalid token downgrades the
// caller to guest instead of rejecting the request: every read path works
// without logging in, prices are filtered later by role.
func RoleAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(RoleKey), model.RoleGuest)

		authHeader := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok && token != "" && authService != nil {
			if claims, err := authService.ValidateToken(token); err == nil {
				c.Set(string(RoleKey), claims.Role)
				c.Set(string(UsernameKey), claims.Username)
			}
		}

		c.Next()
	}
}

// RequireConfigurator returns a middleware that rejects callers whose role
// may not change the catalog. Runs after RoleAuth.
func RequireConfigurator() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetRole(c).CanConfigure() {
			locale := i18n.GetLocale(c)
			requestID := GetRequestID(c)
			message := i18n.GetTranslator().Translate(i18n.ErrKeyForbidden, locale)
			errorResp := dto.NewError(dto.ErrCodeForbidden, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusForbidden, errorResp)
			return
		}
		c.Next()
	}
}

// GetRole retrieves the resolved role from the gin context. Callers outside
// the RoleAuth chain count as guests.
func GetRole(c *gin.Context) model.Role {
	if v, exists := c.Get(string(RoleKey)); exists {
		if role, ok := v.(model.Role); ok {
			return role
		}
	}
	return model.RoleGuest
}
