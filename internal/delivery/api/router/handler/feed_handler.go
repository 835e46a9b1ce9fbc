package handler

import (
	"log/slog"
	"net/http"

	"upkeep/internal/delivery/api/middleware"
	"upkeep/internal/delivery/api/response"
	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	"upkeep/internal/domain/service"
	"upkeep/internal/errors"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeedHandlerParams holds dependencies for FeedHandler, injected by Fx.
type FeedHandlerParams struct {
	fx.In

	FeedUC usecase.FeedUsecase
	Logger *slog.Logger
}

// FeedHandler serves the in-app notification feed
type FeedHandler struct {
	feedUC usecase.FeedUsecase
	logger *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler
func NewFeedHandler(params FeedHandlerParams) *FeedHandler {
	return &FeedHandler{
		feedUC: params.FeedUC,
		logger: params.Logger,
	}
}

// CreateNotificationRequest is posted by user-interaction producers such as like or follow handlers
type CreateNotificationRequest struct {
	UserID   uuid.UUID      `json:"user_id" validate:"required"`
	Type     string         `json:"type" validate:"required,max=64"`
	Title    string         `json:"title" validate:"required,max=200"`
	Message  string         `json:"message" validate:"max=2000"`
	Data     map[string]any `json:"data"`
	DedupKey string         `json:"dedup_key" validate:"omitempty,max=255"`
}

// List returns the caller's feed, optionally only unread rows
func (h *FeedHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset := response.Pagination(c)
	unreadOnly := c.QueryParam("unread") == "true"

	notifications, err := h.feedUC.List(c.Request().Context(), userID, unreadOnly, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// MarkRead acknowledges one of the caller's notifications
func (h *FeedHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.feedUC.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Create stores a feed row for another user and triggers its push fan-out
func (h *FeedHandler) Create(c echo.Context) error {
	var req CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}
	if err := service.ValidatePushData(req.Data); err != nil {
		return response.HandleAppError(c, domainerrors.ErrPushDataInvalid.WithDetails(err.Error()))
	}

	notification := &entity.InAppNotification{
		UserID:   req.UserID,
		Type:     req.Type,
		Title:    req.Title,
		Message:  req.Message,
		Data:     req.Data,
		DedupKey: req.DedupKey,
	}

	if err := h.feedUC.Create(c.Request().Context(), notification); err != nil {
		if errors.Is(err, repository.ErrDuplicateNotification) {
			return response.HandleAppError(c, domainerrors.ErrNotificationDuplicate)
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, notification)
}
