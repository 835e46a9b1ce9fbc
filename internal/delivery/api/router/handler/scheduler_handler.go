package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"upkeep/config"
	"upkeep/internal/delivery/api/response"
	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderSchedulerToken carries the shared secret of the external cron trigger.
const HeaderSchedulerToken = "X-Scheduler-Token"

// SchedulerHandlerParams holds dependencies for SchedulerHandler, injected by Fx.
type SchedulerHandlerParams struct {
	fx.In

	SchedulerUC usecase.SchedulerUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// SchedulerHandler lets an external cron trigger one reminder tick
type SchedulerHandler struct {
	schedulerUC  usecase.SchedulerUsecase
	triggerToken string
	logger       *slog.Logger
}

// NewSchedulerHandler is the constructor for SchedulerHandler
func NewSchedulerHandler(params SchedulerHandlerParams) *SchedulerHandler {
	h := &SchedulerHandler{
		schedulerUC: params.SchedulerUC,
		logger:      params.Logger,
	}
	if params.Config.Scheduler != nil {
		h.triggerToken = params.Config.Scheduler.TriggerToken
	}

	return h
}

// RunRequest selects which reminder jobs to run; empty runs all of them
type RunRequest struct {
	ReminderKind string `json:"reminder_kind" validate:"omitempty,oneof=cleaning event"`
}

// Run executes a scheduler tick and returns its report
func (h *SchedulerHandler) Run(c echo.Context) error {
	if !h.authorized(c.Request()) {
		return response.Unauthorized(c, "INVALID_TRIGGER_TOKEN", "Invalid scheduler trigger token")
	}

	var req RunRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid scheduler input")
		}
		if err := c.Validate(&req); err != nil {
			return response.HandleAppError(c, domainerrors.ErrReminderKindInvalid.WithDetails(err.Error()))
		}
	}

	report, err := h.schedulerUC.Run(c.Request().Context(), entity.ReminderKind(req.ReminderKind))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// authorized accepts the token as a bearer credential or in the dedicated header.
// An unset token disables the endpoint.
func (h *SchedulerHandler) authorized(req *http.Request) bool {
	if h.triggerToken == "" {
		return false
	}

	token := req.Header.Get(HeaderSchedulerToken)
	if token == "" {
		token, _ = strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(h.triggerToken)) == 1
}
