package usecase

import (
	"context"
	"time"

	"upkeep/internal/domain/entity"
)

// SchedulerReport summarizes one scheduler run.
type SchedulerReport struct {
	RemindersScheduled int `json:"reminders_scheduled"`
	// Reminders whose stored row was handed to the fan-out again after an earlier push failed
	RemindersRedelivered int       `json:"reminders_redelivered,omitempty"`
	Errors               []string  `json:"errors"`
	Timestamp            time.Time `json:"timestamp"`
}

// SchedulerUsecase runs the reminder jobs. Safe to run repeatedly within one window.
type SchedulerUsecase interface {
	// Run executes the selected jobs. Per-item failures land in the report;
	// an error is returned only for an unknown kind.
	Run(ctx context.Context, kind entity.ReminderKind) (*SchedulerReport, error)
}
