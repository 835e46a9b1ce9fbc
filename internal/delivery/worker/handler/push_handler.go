// Package handler holds the worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"upkeep/config"
	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/constants"
	"upkeep/internal/domain/service"
	"upkeep/internal/errors"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives fan-out events pushed by Pub/Sub or the local emulation
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	fanoutUC       usecase.FanoutUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	FanoutUC usecase.FanoutUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		verifyPushAuth: shouldVerifyPushAuth(params.Config),
		validateToken:  idtoken.Validate,
		fanoutUC:       params.FanoutUC,
		logger:         params.Logger,
	}
}

// shouldVerifyPushAuth is true when forced by config or when real Pub/Sub pushes outside develop.
func shouldVerifyPushAuth(cfg *config.Config) bool {
	if cfg.PubSub == nil {
		return false
	}
	if cfg.PubSub.VerifyPushAuth {
		return true
	}

	return cfg.PubSub.Provider == constants.PubSubProviderGoogle && cfg.Env.Env != constants.EnvDevelop
}

// HandlePush answers 503 for retryable failures so Pub/Sub redelivers, and 200 for
// everything else, including events that can never succeed.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Worker] Dropping unparsable push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	event, err := decodeEvent(pushMsg.Message.Data)
	if err != nil {
		// Redelivery cannot fix a malformed payload
		logger.Error("[Worker] Dropping undecodable message",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := extractRequestID(ctx, pushMsg.Message.Attributes, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing fan-out event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("notification_id", event.NotificationID),
		slog.String("user_id", event.UserID),
	)

	if _, err := h.fanoutUC.HandleFanoutEvent(ctx, event); err != nil {
		retryable := !errors.Is(err, usecase.ErrInvalidFanoutEvent)
		reqLogger.Error("[Worker] Failed to process fan-out event",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

func decodeEvent(data string) (*service.FanoutEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.FanoutEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse fan-out event")
	}

	return &event, nil
}

// extractRequestID prefers message attributes, then the event payload, then the
// X-Request-Id of the push request, and finally generates one.
func extractRequestID(ctx context.Context, attributes map[string]string, event *service.FanoutEvent) string {
	if requestID := attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing or malformed authorization header")
	}

	// The audience is the push endpoint URL configured on the subscription
	scheme := "https"
	if req.TLS == nil && req.Header.Get(echo.HeaderXForwardedProto) != "https" {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
