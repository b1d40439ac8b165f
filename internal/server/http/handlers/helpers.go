package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/gopherauth/internal/domain/errors"
	"github.com/polkiloo/gopherauth/internal/domain/model"
	"github.com/polkiloo/gopherauth/internal/server/http/dto"
	"github.com/polkiloo/gopherauth/internal/server/http/middleware"
)

// CurrentClaims extracts verified token claims from context.
func CurrentClaims(c *gin.Context) *model.Claims {
	val, ok := c.Get(middleware.ClaimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := val.(*model.Claims)
	return claims
}

// StatusFor maps a domain error kind to its HTTP status code.
func StatusFor(kind domainErrors.Kind) int {
	switch kind {
	case domainErrors.KindValidation, domainErrors.KindBadRequest:
		return http.StatusBadRequest
	case domainErrors.KindConflict:
		return http.StatusConflict
	case domainErrors.KindUnauthorized:
		return http.StatusUnauthorized
	case domainErrors.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as an error envelope. Errors outside the domain
// taxonomy never leak their text.
func writeError(c *gin.Context, err error) {
	domainErr, ok := domainErrors.AsError(err)
	if !ok {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.Failure(http.StatusText(http.StatusInternalServerError)))
		return
	}
	c.JSON(StatusFor(domainErr.Kind), dto.Failure(domainErr.Message, domainErr.Violations...))
}

// NotFound renders the fallback for unknown routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.Failure("Route not found"))
}
