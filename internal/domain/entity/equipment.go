// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Equipment is a maintained item with a cleaning cadence.
type Equipment struct {
	ID                    uuid.UUID  `json:"id"`
	OwnerID               uuid.UUID  `json:"owner_id"`
	Name                  string     `json:"name"`
	CleaningFrequencyDays int        `json:"cleaning_frequency_days"`
	LastCleanedAt         *time.Time `json:"last_cleaned_at"`
	NotificationsEnabled  bool       `json:"notifications_enabled"`
}

// NextDue returns when the next cleaning is due. ok is false without a
// last-cleaned timestamp or a positive frequency.
func (e *Equipment) NextDue() (due time.Time, ok bool) {
	if e.LastCleanedAt == nil || e.CleaningFrequencyDays <= 0 {
		return time.Time{}, false
	}

	return e.LastCleanedAt.AddDate(0, 0, e.CleaningFrequencyDays), true
}

// Event is a scheduled gathering with an owner and attendees.
type Event struct {
	ID           uuid.UUID   `json:"id"`
	OwnerID      uuid.UUID   `json:"owner_id"`
	Title        string      `json:"title"`
	StartDate    time.Time   `json:"start_date"`
	ReminderSent bool        `json:"reminder_sent"`
	AttendeeIDs  []uuid.UUID `json:"attendee_ids"`
}

// Recipients returns the owner followed by each distinct attendee.
func (e *Event) Recipients() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(e.AttendeeIDs)+1)
	recipients := make([]uuid.UUID, 0, len(e.AttendeeIDs)+1)

	for _, id := range append([]uuid.UUID{e.OwnerID}, e.AttendeeIDs...) {
		if id == uuid.Nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		recipients = append(recipients, id)
	}

	return recipients
}

// ReminderKind selects which scheduler job runs.
type ReminderKind string

const (
	ReminderKindAll      ReminderKind = ""
	ReminderKindCleaning ReminderKind = "cleaning"
	ReminderKindEvent    ReminderKind = "event"
)

// Valid reports whether k names a known job or all jobs.
func (k ReminderKind) Valid() bool {
	return k == ReminderKindAll || k == ReminderKindCleaning || k == ReminderKindEvent
}
