// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"brewclub/internal/delivery/http/response"
	"brewclub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// actorID extracts the authenticated user's ID set by the auth middleware.
func actorID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// actorRole extracts the authenticated user's role set by the auth middleware.
func actorRole(c echo.Context) entity.Role {
	role, _ := c.Get("role").(string)

	return entity.Role(role)
}
