package handler

import (
	"net/http"

	"upkeep/internal/delivery/api/middleware"
	"upkeep/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// TestHandler serves diagnostic endpoints for wiring checks in non-production environments
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// WhoAmI echoes the identity the auth middleware extracted from the bearer token
func (h *TestHandler) WhoAmI(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	roles, ok := middleware.GetRoles(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User roles not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id": userID,
		"roles":   roles,
		"status":  "authenticated",
	})
}

// Public needs no credentials
func (h *TestHandler) Public(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status": "public",
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
