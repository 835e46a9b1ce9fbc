package handler

import (
	"log/slog"
	"net/http"

	"upkeep/internal/delivery/api/middleware"
	"upkeep/internal/delivery/api/response"
	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/service"
	"upkeep/internal/errors"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DispatchHandlerParams holds dependencies for DispatchHandler, injected by Fx.
type DispatchHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// DispatchHandler exposes ad-hoc dispatch to operators and a self-test to every user
type DispatchHandler struct {
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewDispatchHandler is the constructor for DispatchHandler
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
}

// DispatchRequest names exactly one of user_id, user_ids or filter
type DispatchRequest struct {
	UserID   *uuid.UUID                 `json:"user_id"`
	UserIDs  []uuid.UUID                `json:"user_ids" validate:"omitempty,max=1000"`
	Filter   *entity.RegistrationFilter `json:"filter"`
	Title    string                     `json:"title" validate:"required,max=200"`
	Body     string                     `json:"body" validate:"max=2000"`
	Data     map[string]string          `json:"data"`
	Type     string                     `json:"type" validate:"omitempty,max=64"`
	DedupKey string                     `json:"dedup_key" validate:"omitempty,max=255"`
}

// TestNotificationRequest is the optional body of a self-test
type TestNotificationRequest struct {
	Title string `json:"title" validate:"omitempty,max=200"`
	Body  string `json:"body" validate:"omitempty,max=2000"`
}

// Dispatch sends an ad-hoc notification. Targets other than the caller require the admin role.
func (h *DispatchHandler) Dispatch(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req DispatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dispatch input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := service.ValidatePushData(req.Data); err != nil {
		return response.HandleAppError(c, domainerrors.ErrPushDataInvalid.WithDetails(err.Error()))
	}

	target, err := buildTarget(&req)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !callerMayTarget(c, userID, target) {
		return response.HandleAppError(c, domainerrors.ErrDispatchForbidden)
	}

	notificationType := req.Type
	if notificationType == "" {
		notificationType = entity.NotificationTypeTest
	}

	summary, err := h.dispatchUC.Dispatch(c.Request().Context(), &usecase.DispatchIntent{
		Target:           target,
		Title:            req.Title,
		Body:             req.Body,
		Data:             req.Data,
		NotificationType: notificationType,
		DedupKey:         req.DedupKey,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDispatchTarget) {
			return response.HandleAppError(c, domainerrors.ErrDispatchTargetInvalid)
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// Test sends a test notification to every active registration of the caller
func (h *DispatchHandler) Test(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req TestNotificationRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid test notification input")
		}
		if err := c.Validate(&req); err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
		}
	}
	if req.Title == "" {
		req.Title = "Test notification"
	}
	if req.Body == "" {
		req.Body = "Push notifications are working on this device."
	}

	summary, err := h.dispatchUC.Dispatch(c.Request().Context(), &usecase.DispatchIntent{
		Target:           usecase.TargetUsers(userID),
		Title:            req.Title,
		Body:             req.Body,
		NotificationType: entity.NotificationTypeTest,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

func buildTarget(req *DispatchRequest) (usecase.DispatchTarget, error) {
	forms := 0
	if req.UserID != nil {
		forms++
	}
	if len(req.UserIDs) > 0 {
		forms++
	}
	if req.Filter != nil {
		forms++
	}
	if forms != 1 {
		return usecase.DispatchTarget{}, domainerrors.ErrDispatchTargetInvalid
	}

	switch {
	case req.UserID != nil:
		return usecase.TargetUsers(*req.UserID), nil
	case len(req.UserIDs) > 0:
		return usecase.TargetUsers(req.UserIDs...), nil
	default:
		if req.Filter.Channel != "" && !req.Filter.Channel.Valid() {
			return usecase.DispatchTarget{}, domainerrors.ErrDispatchTargetInvalid.WithDetails("unknown channel in filter")
		}

		return usecase.TargetFilter(*req.Filter), nil
	}
}

// callerMayTarget allows a plain user to address only themselves.
func callerMayTarget(c echo.Context, callerID uuid.UUID, target usecase.DispatchTarget) bool {
	if roles, ok := middleware.GetRoles(c); ok && roles.Contains(entity.RoleAdmin) {
		return true
	}
	if target.Filter != nil {
		return false
	}
	for _, id := range target.UserIDs {
		if id != callerID {
			return false
		}
	}

	return true
}
