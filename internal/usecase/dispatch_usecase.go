// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"upkeep/internal/domain/entity"
	"upkeep/internal/errors"

	"github.com/google/uuid"
)

// ErrInvalidDispatchTarget is returned when a target names neither users nor a filter, or both.
var ErrInvalidDispatchTarget = errors.New("dispatch target must name users or a filter")

// DispatchTarget is either a set of users or a registration filter.
type DispatchTarget struct {
	UserIDs []uuid.UUID
	Filter  *entity.RegistrationFilter
}

// TargetUsers targets the active registrations of the given users.
func TargetUsers(userIDs ...uuid.UUID) DispatchTarget {
	return DispatchTarget{UserIDs: userIDs}
}

// TargetFilter targets every active registration matching filter.
func TargetFilter(filter entity.RegistrationFilter) DispatchTarget {
	return DispatchTarget{Filter: &filter}
}

// Validate reports ErrInvalidDispatchTarget unless exactly one target form is set.
func (t DispatchTarget) Validate() error {
	hasUsers := len(t.UserIDs) > 0
	hasFilter := t.Filter != nil
	if hasUsers == hasFilter {
		return ErrInvalidDispatchTarget
	}

	return nil
}

// DispatchIntent is one notification to fan out to every resolved registration.
type DispatchIntent struct {
	Target           DispatchTarget
	Title            string
	Body             string
	Data             map[string]string
	NotificationType string
	// DedupKey suppresses a repeat send to a user who already received this key inside the dedup window.
	DedupKey string
}

// DeliveryResult is the outcome for one registration.
type DeliveryResult struct {
	RegistrationID    uuid.UUID             `json:"registration_id"`
	UserID            uuid.UUID             `json:"user_id"`
	Channel           entity.Channel        `json:"channel"`
	Status            entity.DeliveryStatus `json:"status"`
	ExternalMessageID string                `json:"external_message_id,omitempty"`
	ErrorCode         string                `json:"error_code,omitempty"`
	ErrorMessage      string                `json:"error_message,omitempty"`
}

// DispatchSummary aggregates one dispatch call.
type DispatchSummary struct {
	Sent    int              `json:"sent"`
	Failed  int              `json:"failed"`
	Skipped int              `json:"skipped"`
	Results []DeliveryResult `json:"results"`
}

// DispatchUsecase delivers notification intents through the channel adapters.
type DispatchUsecase interface {
	// Dispatch sends intent to every resolved registration. Per-registration failures are
	// reported in the summary; an error means the target could not be resolved.
	Dispatch(ctx context.Context, intent *DispatchIntent) (*DispatchSummary, error)
}
