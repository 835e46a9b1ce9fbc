package handler

import (
	"log/slog"
	"net/http"

	"upkeep/config"
	"upkeep/internal/delivery/api/middleware"
	"upkeep/internal/delivery/api/response"
	"upkeep/internal/domain/entity"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegistrationHandlerParams holds dependencies for RegistrationHandler, injected by Fx.
type RegistrationHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// RegistrationHandler holds dependencies for device registration handlers
type RegistrationHandler struct {
	registrationUC usecase.RegistrationUsecase
	vapidPublicKey string
	logger         *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler
func NewRegistrationHandler(params RegistrationHandlerParams) *RegistrationHandler {
	h := &RegistrationHandler{
		registrationUC: params.RegistrationUC,
		logger:         params.Logger,
	}
	if params.Config.WebPush != nil {
		h.vapidPublicKey = params.Config.WebPush.VAPIDPublicKey
	}

	return h
}

// RegisterRequest represents the request body for registering a device with one channel
type RegisterRequest struct {
	Channel    string         `json:"channel" validate:"required,oneof=web_push native_push"`
	ExternalID string         `json:"external_id" validate:"required,max=2048"`
	Platform   string         `json:"platform" validate:"omitempty,max=32"`
	DeviceInfo map[string]any `json:"device_info"`
}

// RevokeRequest identifies a registration by its channel identifier
type RevokeRequest struct {
	Channel    string `json:"channel" validate:"required,oneof=web_push native_push"`
	ExternalID string `json:"external_id" validate:"required"`
}

// Register upserts the caller's registration
func (h *RegistrationHandler) Register(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	registration, err := h.registrationUC.Register(c.Request().Context(), userID, &usecase.RegisterInput{
		Channel:    entity.Channel(req.Channel),
		ExternalID: req.ExternalID,
		Platform:   req.Platform,
		DeviceInfo: req.DeviceInfo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, registration)
}

// List returns the caller's active registrations
func (h *RegistrationHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	registrations, err := h.registrationUC.ListActive(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, registrations)
}

// Delete deactivates one of the caller's registrations
func (h *RegistrationHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	registrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid registration ID")
	}

	if err := h.registrationUC.Revoke(c.Request().Context(), userID, registrationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Revoke deactivates the caller's registration after the user withdrew permission
func (h *RegistrationHandler) Revoke(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RevokeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid revoke input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.registrationUC.RevokeByExternalID(c.Request().Context(), userID, entity.Channel(req.Channel), req.ExternalID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// VAPIDKey returns the application server key browsers subscribe with
func (h *RegistrationHandler) VAPIDKey(c echo.Context) error {
	if h.vapidPublicKey == "" {
		return response.Error(c, http.StatusServiceUnavailable, "WEB_PUSH_DISABLED", "Web push is not configured", nil)
	}

	return response.Success(c, http.StatusOK, map[string]string{"public_key": h.vapidPublicKey})
}
