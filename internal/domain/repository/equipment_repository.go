package repository

import (
	"context"
	"time"

	"upkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// EquipmentRepository reads equipment for the cleaning reminder job.
type EquipmentRepository interface {
	// FindReminderCandidates returns equipment with notifications enabled,
	// a cleaning frequency and a last-cleaned timestamp.
	FindReminderCandidates(ctx context.Context) ([]*entity.Equipment, error)
}

// EventRepository reads and updates events for the event reminder job.
type EventRepository interface {
	// FindStartingBetween returns events with from <= start_date < to whose reminder is not yet sent.
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]*entity.Event, error)

	// MarkReminderSent flips reminder_sent. Returns false when it was already set.
	MarkReminderSent(ctx context.Context, id uuid.UUID) (bool, error)
}

// UserRepository reads user profile data needed for scheduling.
type UserRepository interface {
	// FindTimezones returns the stored IANA timezone per user. Users without one are omitted.
	FindTimezones(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error)
}
