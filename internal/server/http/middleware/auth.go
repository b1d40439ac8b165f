package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/gopherauth/internal/domain/errors"
	"github.com/polkiloo/gopherauth/internal/domain/model"
	"github.com/polkiloo/gopherauth/internal/server/http/dto"
)

const (
	// ClaimsContextKey is a gin context key for verified token claims.
	ClaimsContextKey = "claims"
	bearerPrefix     = "bearer "
)

// TokenVerifier decodes bearer tokens into claims.
type TokenVerifier interface {
	VerifyToken(token string) (*model.Claims, error)
}

// AuthRequired ensures the request carries a valid bearer token before accessing handler.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure("Invalid authentication"))
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			if domainErr, ok := domainErrors.AsError(err); ok && domainErr.Kind == domainErrors.KindUnauthorized {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(domainErr.Message))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Failure(http.StatusText(http.StatusInternalServerError)))
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) < len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(authHeader[len(bearerPrefix):])
}
