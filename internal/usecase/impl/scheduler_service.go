package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"
	_ "time/tzdata" // IANA zones for hosts without a zoneinfo database

	"upkeep/config"
	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	"upkeep/internal/domain/service"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	dateLayout = "2006-01-02"
	// failOpenTarget replaces the HH:MM part of a dedup key when the zone could not be resolved.
	failOpenTarget = "any"
)

// clockTime is a local wall-clock time of day.
type clockTime struct {
	hour   int
	minute int
}

func (c clockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

func parseClockTime(s string) (clockTime, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return clockTime{}, errors.Errorf("target time %q is not HH:MM", s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return clockTime{}, errors.Errorf("target time %q has an invalid hour", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return clockTime{}, errors.Errorf("target time %q has an invalid minute", s)
	}

	return clockTime{hour: hour, minute: minute}, nil
}

// matchTargetTime finds the target occurrence within tolerance of now in loc.
// Occurrences on the previous and next local day are checked so windows that
// straddle local midnight still match.
func matchTargetTime(now time.Time, loc *time.Location, targets []clockTime, tolerance time.Duration) (time.Time, clockTime, bool) {
	local := now.In(loc)

	for _, target := range targets {
		for _, dayOffset := range []int{0, -1, 1} {
			candidate := time.Date(local.Year(), local.Month(), local.Day()+dayOffset, target.hour, target.minute, 0, 0, loc)

			diff := now.Sub(candidate)
			if diff < 0 {
				diff = -diff
			}
			if diff <= tolerance {
				return candidate, target, true
			}
		}
	}

	return time.Time{}, clockTime{}, false
}

// isDueToday reports whether due has passed or falls on now's local date.
func isDueToday(now, due time.Time, loc *time.Location) bool {
	if !now.Before(due) {
		return true
	}

	return now.In(loc).Format(dateLayout) == due.In(loc).Format(dateLayout)
}

func cleaningDedupKey(equipmentID uuid.UUID, occurrenceDate, target string) string {
	return entity.NotificationTypeCleaningReminder + ":" + equipmentID.String() + ":" + occurrenceDate + ":" + target
}

func eventDedupKey(eventID, userID uuid.UUID) string {
	return entity.NotificationTypeEventReminder + ":" + eventID.String() + ":" + userID.String()
}

type schedulerService struct {
	equipmentRepo repository.EquipmentRepository
	eventRepo     repository.EventRepository
	userRepo      repository.UserRepository
	txManager     repository.TransactionManager
	feed          usecase.FeedUsecase
	guard         service.DedupGuard

	targets        []clockTime
	tolerance      time.Duration
	lookaheadFrom  time.Duration
	lookaheadTo    time.Duration
	defaultZone    *time.Location
	claimTTL       time.Duration
	now            func() time.Time
	logger         *slog.Logger
	zoneCacheMutex sync.Mutex
	zoneCache      map[string]zoneLookup
}

type zoneLookup struct {
	loc *time.Location
	err error
}

// SchedulerServiceParams holds dependencies for SchedulerService, injected by Fx.
type SchedulerServiceParams struct {
	fx.In

	EquipmentRepo repository.EquipmentRepository
	EventRepo     repository.EventRepository
	UserRepo      repository.UserRepository
	TxManager     repository.TransactionManager
	Feed          usecase.FeedUsecase
	Guard         service.DedupGuard
	Config        *config.Config
	Logger        *slog.Logger
}

// NewSchedulerService is the constructor for schedulerService.
func NewSchedulerService(params SchedulerServiceParams) (usecase.SchedulerUsecase, error) {
	if params.Config.Scheduler == nil || params.Config.Dispatch == nil {
		params.Config.ApplyDefaults()
	}
	cfg := params.Config.Scheduler

	targets := make([]clockTime, 0, len(cfg.CleaningTargetTimes))
	for _, raw := range cfg.CleaningTargetTimes {
		target, err := parseClockTime(raw)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}

	defaultZone, err := time.LoadLocation(cfg.DefaultTimezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid default timezone %q", cfg.DefaultTimezone)
	}

	return &schedulerService{
		equipmentRepo: params.EquipmentRepo,
		eventRepo:     params.EventRepo,
		userRepo:      params.UserRepo,
		txManager:     params.TxManager,
		feed:          params.Feed,
		guard:         params.Guard,
		targets:       targets,
		tolerance:     cfg.Tolerance,
		lookaheadFrom: cfg.EventLookaheadFrom,
		lookaheadTo:   cfg.EventLookaheadTo,
		defaultZone:   defaultZone,
		claimTTL:      cfg.ClaimTTL,
		now:           time.Now,
		logger:        params.Logger,
		zoneCache:     make(map[string]zoneLookup),
	}, nil
}

// Run executes the cleaning and/or event reminder jobs.
func (s *schedulerService) Run(ctx context.Context, kind entity.ReminderKind) (*usecase.SchedulerReport, error) {
	if !kind.Valid() {
		return nil, domainerrors.ErrReminderKindInvalid
	}

	now := s.now()
	report := &usecase.SchedulerReport{
		Errors:    []string{},
		Timestamp: now.UTC(),
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("reminder_kind", string(kind)))

	if kind == entity.ReminderKindAll || kind == entity.ReminderKindCleaning {
		s.runCleaning(ctx, logger, now, report)
	}
	if kind == entity.ReminderKindAll || kind == entity.ReminderKindEvent {
		s.runEvents(ctx, logger, now, report)
	}

	logger.Info("[Scheduler] Run completed",
		slog.Int("reminders_scheduled", report.RemindersScheduled),
		slog.Int("reminders_redelivered", report.RemindersRedelivered),
		slog.Int("errors", len(report.Errors)),
	)

	return report, nil
}

func (s *schedulerService) runCleaning(ctx context.Context, logger *slog.Logger, now time.Time, report *usecase.SchedulerReport) {
	equipment, err := s.equipmentRepo.FindReminderCandidates(ctx)
	if err != nil {
		logger.Error("[Scheduler] Failed to load equipment", slog.Any("error", err))
		report.Errors = append(report.Errors, "cleaning: "+err.Error())

		return
	}

	ownerIDs := make([]uuid.UUID, 0, len(equipment))
	for _, e := range equipment {
		ownerIDs = append(ownerIDs, e.OwnerID)
	}

	timezones, err := s.userRepo.FindTimezones(ctx, uniqueUserIDs(ownerIDs))
	if err != nil {
		// Fall back to the default zone for everyone rather than skipping the tick.
		logger.Warn("[Scheduler] Failed to load timezones, using default", slog.Any("error", err))
		report.Errors = append(report.Errors, "cleaning: load timezones: "+err.Error())
		timezones = map[uuid.UUID]string{}
	}

	for _, e := range equipment {
		outcome, err := s.remindCleaning(ctx, logger, now, e, timezones[e.OwnerID])
		if err != nil {
			logger.Error("[Scheduler] Cleaning reminder failed",
				slog.String("equipment_id", e.ID.String()),
				slog.Any("error", err),
			)
			report.Errors = append(report.Errors, fmt.Sprintf("equipment %s: %v", e.ID, err))

			continue
		}
		switch outcome {
		case reminderCreated:
			report.RemindersScheduled++
		case reminderRedelivered:
			report.RemindersRedelivered++
		}
	}
}

type reminderOutcome int

const (
	reminderSkipped reminderOutcome = iota
	reminderCreated
	reminderRedelivered
)

// remindCleaning stores at most one reminder per (equipment, local date, target time).
// A later tick that finds the row already stored hands it to the fan-out again, so a
// push lost to a transient failure is retried while the target window is open.
func (s *schedulerService) remindCleaning(ctx context.Context, logger *slog.Logger, now time.Time, e *entity.Equipment, timezone string) (reminderOutcome, error) {
	if !e.NotificationsEnabled {
		return reminderSkipped, nil
	}
	due, ok := e.NextDue()
	if !ok {
		return reminderSkipped, nil
	}

	var dedupKey string
	loc, err := s.location(timezone)
	if err != nil {
		// Fail open: without a usable zone the time-of-day gate is skipped and the key is per UTC day.
		logger.Warn("[Scheduler] Timezone resolution failed, treating owner as eligible",
			slog.String("equipment_id", e.ID.String()),
			slog.String("timezone", timezone),
			slog.Any("error", errors.Wrap(domainerrors.ErrTimezoneResolution, err.Error())),
		)
		loc = time.UTC
		if !isDueToday(now, due, loc) {
			return reminderSkipped, nil
		}
		dedupKey = cleaningDedupKey(e.ID, now.UTC().Format(dateLayout), failOpenTarget)
	} else {
		if !isDueToday(now, due, loc) {
			return reminderSkipped, nil
		}
		occurrence, target, matched := matchTargetTime(now, loc, s.targets, s.tolerance)
		if !matched {
			return reminderSkipped, nil
		}
		dedupKey = cleaningDedupKey(e.ID, occurrence.Format(dateLayout), target.String())
	}

	// The claim only keeps overlapping runs apart. It expires before the next tick.
	claimed, err := s.guard.Claim(ctx, dedupKey, s.claimTTL)
	if err != nil {
		// The feed's dedup index still prevents a double insert.
		logger.Warn("[Scheduler] Dedup claim failed, continuing", slog.String("dedup_key", dedupKey), slog.Any("error", err))
		claimed = true
	}
	if !claimed {
		return reminderSkipped, nil
	}

	notification := buildCleaningNotification(e, due, now, loc, dedupKey)
	err = s.feed.Create(ctx, notification)
	if err == nil {
		return reminderCreated, nil
	}
	if errors.Is(err, repository.ErrDuplicateNotification) {
		republished, err := s.feed.Republish(ctx, e.OwnerID, dedupKey)
		if err != nil {
			return reminderSkipped, errors.Wrap(err, "redeliver stored reminder")
		}
		if republished {
			return reminderRedelivered, nil
		}

		return reminderSkipped, nil
	}
	if releaseErr := s.guard.Release(ctx, dedupKey); releaseErr != nil {
		logger.Warn("[Scheduler] Failed to release dedup claim", slog.String("dedup_key", dedupKey), slog.Any("error", releaseErr))
	}

	return reminderSkipped, err
}

func (s *schedulerService) runEvents(ctx context.Context, logger *slog.Logger, now time.Time, report *usecase.SchedulerReport) {
	from := now.Add(s.lookaheadFrom)
	to := now.Add(s.lookaheadTo)

	events, err := s.eventRepo.FindStartingBetween(ctx, from, to)
	if err != nil {
		logger.Error("[Scheduler] Failed to load events", slog.Any("error", err))
		report.Errors = append(report.Errors, "event: "+err.Error())

		return
	}

	for _, event := range events {
		// Only events starting in [from, to) are due, whatever the query returned.
		if event.StartDate.Before(from) || !event.StartDate.Before(to) {
			continue
		}

		created, err := s.remindEvent(ctx, now, event)
		if err != nil {
			logger.Error("[Scheduler] Event reminder failed",
				slog.String("event_id", event.ID.String()),
				slog.Any("error", err),
			)
			report.Errors = append(report.Errors, fmt.Sprintf("event %s: %v", event.ID, err))

			continue
		}
		report.RemindersScheduled += created
	}
}

// remindEvent marks the event and stores one reminder per recipient in one transaction,
// then publishes the fan-out events once the rows are committed.
func (s *schedulerService) remindEvent(ctx context.Context, now time.Time, event *entity.Event) (int, error) {
	var created []*entity.InAppNotification

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		created = nil

		marked, err := factory.NewEventRepository().MarkReminderSent(ctx, event.ID)
		if err != nil {
			return err
		}
		if !marked {
			return nil
		}

		notificationRepo := factory.NewInAppNotificationRepository()
		for _, userID := range event.Recipients() {
			notification := buildEventNotification(event, userID, now)
			if err := notificationRepo.Create(ctx, notification); err != nil {
				return errors.Wrapf(err, "create reminder for user %s", userID)
			}
			created = append(created, notification)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, notification := range created {
		s.feed.Publish(ctx, notification)
	}

	return len(created), nil
}

// location resolves an IANA zone name, caching both hits and misses.
func (s *schedulerService) location(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.defaultZone, nil
	}

	s.zoneCacheMutex.Lock()
	defer s.zoneCacheMutex.Unlock()

	if cached, ok := s.zoneCache[name]; ok {
		return cached.loc, cached.err
	}

	loc, err := time.LoadLocation(name)
	s.zoneCache[name] = zoneLookup{loc: loc, err: err}

	return loc, err
}

func buildCleaningNotification(e *entity.Equipment, due, now time.Time, loc *time.Location, dedupKey string) *entity.InAppNotification {
	title := "Time to clean " + e.Name
	message := e.Name + " is due for cleaning today."
	if now.Sub(due) >= 24*time.Hour {
		title = e.Name + " is overdue for cleaning"
		message = fmt.Sprintf("%s was due for cleaning on %s.", e.Name, due.In(loc).Format("Jan 2"))
	}

	return &entity.InAppNotification{
		UserID:  e.OwnerID,
		Type:    entity.NotificationTypeCleaningReminder,
		Title:   title,
		Message: message,
		Data: map[string]any{
			"equipment_id": e.ID.String(),
			"due_at":       due.UTC().Format(time.RFC3339),
		},
		DedupKey: dedupKey,
	}
}

func buildEventNotification(event *entity.Event, userID uuid.UUID, now time.Time) *entity.InAppNotification {
	minutes := int(math.Round(event.StartDate.Sub(now).Minutes()))

	return &entity.InAppNotification{
		UserID:  userID,
		Type:    entity.NotificationTypeEventReminder,
		Title:   "Upcoming: " + event.Title,
		Message: fmt.Sprintf("%s starts in %d minutes.", event.Title, minutes),
		Data: map[string]any{
			"event_id":   event.ID.String(),
			"start_date": event.StartDate.UTC().Format(time.RFC3339),
		},
		DedupKey: eventDedupKey(event.ID, userID),
	}
}
