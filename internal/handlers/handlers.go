package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"roomstay/internal/helpers"
	"roomstay/internal/models"
)

// statusFromError maps the service error taxonomy onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrNotCancellable):
		return http.StatusConflict
	case errors.Is(err, models.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// userFromContext pulls the claims stored by the auth middleware and parses
// the subject into a user id.
func userFromContext(c *gin.Context) (*helpers.EnhancedClaims, uuid.UUID, bool) {
	claims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, uuid.Nil, false
	}

	userClaims, ok := claims.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
		return nil, uuid.Nil, false
	}

	userId, err := uuid.Parse(userClaims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid user ID in token"))
		return nil, uuid.Nil, false
	}

	return userClaims, userId, true
}
