package impl

import (
	"context"
	"testing"
	"time"

	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	mockRepo "upkeep/internal/mocks/repository"
	mockSvc "upkeep/internal/mocks/service"
	mockUsecase "upkeep/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type schedulerFixtures struct {
	service       *schedulerService
	equipmentRepo *mockRepo.MockEquipmentRepository
	eventRepo     *mockRepo.MockEventRepository
	userRepo      *mockRepo.MockUserRepository
	txManager     *mockRepo.MockTransactionManager
	feed          *mockUsecase.MockFeedUsecase
	guard         *mockSvc.MockDedupGuard
}

func createTestSchedulerService(t *testing.T, now time.Time) schedulerFixtures {
	f := schedulerFixtures{
		equipmentRepo: mockRepo.NewMockEquipmentRepository(t),
		eventRepo:     mockRepo.NewMockEventRepository(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		txManager:     mockRepo.NewMockTransactionManager(t),
		feed:          mockUsecase.NewMockFeedUsecase(t),
		guard:         mockSvc.NewMockDedupGuard(t),
	}

	svc, err := NewSchedulerService(SchedulerServiceParams{
		EquipmentRepo: f.equipmentRepo,
		EventRepo:     f.eventRepo,
		UserRepo:      f.userRepo,
		TxManager:     f.txManager,
		Feed:          f.feed,
		Guard:         f.guard,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})
	require.NoError(t, err)

	f.service = svc.(*schedulerService)
	f.service.now = func() time.Time { return now }

	return f
}

// overdueEquipment was due a day before now.
func overdueEquipment(ownerID uuid.UUID, now time.Time) *entity.Equipment {
	lastCleaned := now.AddDate(0, 0, -8)

	return &entity.Equipment{
		ID:                    uuid.New(),
		OwnerID:               ownerID,
		Name:                  "Espresso machine",
		CleaningFrequencyDays: 7,
		LastCleanedAt:         &lastCleaned,
		NotificationsEnabled:  true,
	}
}

func (f schedulerFixtures) expectTimezone(ownerID uuid.UUID, tz string) {
	timezones := map[uuid.UUID]string{}
	if tz != "" {
		timezones[ownerID] = tz
	}
	f.userRepo.EXPECT().FindTimezones(mock.Anything, []uuid.UUID{ownerID}).Return(timezones, nil)
}

func TestSchedulerService_Cleaning_TimezoneWindows(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		now      time.Time
		wantKey  string // date and target suffix
	}{
		{
			name:     "utc owner at noon",
			timezone: "UTC",
			now:      time.Date(2026, 3, 1, 12, 10, 0, 0, time.UTC),
			wantKey:  "2026-03-01:12:00",
		},
		{
			name:     "utc+13 owner is already on the next day",
			timezone: "Etc/GMT-13",
			now:      time.Date(2026, 3, 1, 23, 5, 0, 0, time.UTC),
			wantKey:  "2026-03-02:12:00",
		},
		{
			name:     "utc-12 owner is still on the previous day",
			timezone: "Etc/GMT+12",
			now:      time.Date(2026, 3, 2, 11, 40, 0, 0, time.UTC),
			wantKey:  "2026-03-01:23:30",
		},
		{
			name:     "owner without timezone uses default",
			timezone: "",
			now:      time.Date(2026, 3, 1, 23, 55, 0, 0, time.UTC),
			wantKey:  "2026-03-01:23:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestSchedulerService(t, tt.now)
			ctx := context.Background()
			ownerID := uuid.New()
			equipment := overdueEquipment(ownerID, tt.now)
			wantKey := "cleaning_reminder:" + equipment.ID.String() + ":" + tt.wantKey

			f.equipmentRepo.EXPECT().FindReminderCandidates(ctx).Return([]*entity.Equipment{equipment}, nil)
			f.expectTimezone(ownerID, tt.timezone)
			f.guard.EXPECT().Claim(ctx, wantKey, 10*time.Minute).Return(true, nil)
			f.feed.EXPECT().Create(ctx, mock.MatchedBy(func(n *entity.InAppNotification) bool {
				return n.UserID == ownerID &&
					n.Type == entity.NotificationTypeCleaningReminder &&
					n.DedupKey == wantKey &&
					n.Data["equipment_id"] == equipment.ID.String()
			})).Return(nil)

			report, err := f.service.Run(ctx, entity.ReminderKindCleaning)

			require.NoError(t, err)
			assert.Equal(t, 1, report.RemindersScheduled)
			assert.Empty(t, report.Errors)
		})
	}
}

func TestSchedulerService_Cleaning_OutsideWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	f := createTestSchedulerService(t, now)
	ctx := context.Background()
	ownerID := uuid.New()

	f.equipmentRepo.EXPECT().FindReminderCandidates(ctx).Return([]*entity.Equipment{overdueEquipment(ownerID, now)}, nil)
	f.expectTimezone(ownerID, "UTC")

	report, err := f.service.Run(ctx, entity.ReminderKindCleaning)

	require.NoError(t, err)
	assert.Zero(t, report.RemindersScheduled)
	f.guard.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything)
}

func TestSchedulerService_Cleaning_NotDueYet(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := createTestSchedulerService(t, now)
	ctx := context.Background()
	ownerID := uuid.New()
	lastCleaned := now.AddDate(0, 0, -2)
	equipment := &entity.Equipment{
		ID:                    uuid.New(),
		OwnerID:               ownerID,
		Name:                  "Grinder",
		CleaningFrequencyDays: 7,
		LastCleanedAt:         &lastCleaned,
		NotificationsEnabled:  true,
	}

	f.equipmentRepo.EXPECT().FindReminderCandidates(ctx).Return([]*entity.Equipment{equipment}, nil)
	f.expectTimezone(ownerID, "UTC")

	report, err := f.service.Run(ctx, entity.ReminderKindCleaning)

	require.NoError(t, err)
	assert.Zero(t, report.RemindersScheduled)
}

func TestSchedulerService_Cleaning_DueLaterToday(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := createTestSchedulerService(t, now)
	ctx := context.Background()
	ownerID := uuid.New()
	lastCleaned := time.Date(2026, 2, 22, 18, 0, 0, 0, time.UTC)
	equipment := &entity.Equipment{
		ID:                    uuid.New(),
		OwnerID:               ownerID,
		Name:                  "Kettle",
		CleaningFrequencyDays: 7,
		LastCleanedAt:         &lastCleaned,
		NotificationsEnabled:  true,
	}

	f.equipmentRepo.EXPECT().FindReminderCandidates(ctx).Return([]*entity.Equipment{equipment}, nil)
	f.expectTimezone(ownerID, "UTC")
	f.guard.EXPECT().Claim(ctx, mock.Anything, mock.Anything).Return(true, nil)
	f.feed.EXPECT().Create(ctx, mock.MatchedBy(func(n *entity.InAppNotification) bool {
		return n.Title == "Time to clean Kettle"
	})).Return(nil)

	report, err := f.service.Run(ctx, entity.ReminderKindCleaning)

	require.NoError(t, err)
	assert.Equal(t, 1, report.RemindersScheduled)
}

func TestSchedulerService_Cleaning_SecondRunIsIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 10, 0, 0, time.UTC)
	f := createTestSchedulerService(t, now)
	ctx := context.Background()
	ownerID := uuid.New()
	equipment := overdueEquipment(ownerID, now)

	f.equipmentRepo.EXPECT().FindReminderCandidates(ctx).Return([]*entity.Equipment{equipment}, nil).Times(2)
	f.userRepo.EXPECT().FindTimezones(ctx, []uuid.UUID{ownerID}).Return(map[uuid.UUID]string{ownerID: "UTC"}, nil).Times(2)
	f.guard.EXPECT().Claim(ctx, mock.Anything, mock.Anything).Return(true, nil).Once()
	f.guard.EXPECT().Claim(ctx, mock.Anything, mock.Anything).Return(false, nil).Once()
	f.feed.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()

	first, err := f.service.Run(ctx, entity.ReminderKindCleaning)
	require.NoError(t, err)
	second, err := f.service.Run(ctx, entity.ReminderKindCleaning)
	require.NoError(t, err)

	assert.Equal(t, 1, first.RemindersScheduled)
	assert.Zero(t, second.RemindersScheduled)
}

func TestSchedulerService_Cleaning_StoredRowIsRedeliveredOnLaterTick(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 10, 0, 0, time.UTC)
	f := createTestSchedulerService(t, now)
	ctx := context.Background()
	ownerID := uuid.New()
	equipment := overdueEquipment(ownerID, now)
	wantKey := "cleaning_reminder:" + equipment.ID.String() + ":2026-03-01:12:00"

	f.equipmentRepo.EXPECT().FindReminderCandidates(ctx).Return([]*entity.Equipment{equipment}, nil)
	f.expectTimezone(ownerID, "UTC")
	f.guard.EXPECT().Claim(ctx, wantKey, 10*time.Minute).Return(true, nil)
	f.feed.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateNotification)
	f.feed.EXPECT().Republish(ctx, ownerID, wantKey).Return(true, nil)

	report, err := f.service.Run(ctx, entity.ReminderKindCleaning)

	require.NoError(t, err)
	assert.Zero(t, report.RemindersScheduled)
	assert.Equal(t, 1, report.RemindersRedelivered)
	assert.Empty(t, report.Errors)
	f.guard.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestSchedulerService_Cleaning_ReadRowIsNotRedelivered(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 10, 0, 0, time.UTC)
	f := createTestSchedulerService(t, now)
	ctx := context.Background()
	ownerID := uuid.New()

	f.equipmentRepo.EXPECT().FindReminderCandidates(ctx).Return([]*entity.Equipment{overdueEquipment(ownerID, now)}, nil)
	f.expectTimezone(ownerID, "UTC")
	f.guard.EXPECT().Claim(ctx, mock.Anything, mock.Anything).Return(true, nil)
	f.feed.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateNotification)
	f.feed.EXPECT().Republish(ctx, ownerID, mock.Anything).Return(false, nil)

	report, err := f.service.Run(ctx, entity.ReminderKindCleaning)

	require.NoError(t, err)
	assert.Zero(t, report.RemindersScheduled)
	assert.Zero(t, report.RemindersRedelivered)
	assert.Empty(t, report.Errors)
}

func TestSchedulerService_Cleaning_RedeliveryFailureIsReported(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 10, 0, 0, time.UTC)
	f := createTestSchedulerService(t, now)
	ctx := context.Background()
	ownerID := uuid.New()
	equipment := overdueEquipment(ownerID, now)

	f.equipmentRepo.EXPECT().FindReminderCandidates(ctx).Return([]*entity.Equipment{equipment}, nil)
	f.expectTimezone(ownerID, "UTC")
	f.guard.EXPECT().Claim(ctx, mock.Anything, mock.Anything).Return(true, nil)
	f.feed.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateNotification)
	f.feed.EXPECT().Republish(ctx, ownerID, mock.Anything).Return(false, errors.New("db down"))

	report, err := f.service.Run(ctx, entity.ReminderKindCleaning)

	require.NoError(t, err)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], equipment.ID.String())
	f.guard.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestSchedulerService_Cleaning_FailureReleasesClaimAndContinues(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 10, 0, 0, time.UTC)
	f := createTestSchedulerService(t, now)
	ctx := context.Background()
	ownerID := uuid.New()
	failing := overdueEquipment(ownerID, now)
	healthy := overdueEquipment(ownerID, now)
	failingKey := "cleaning_reminder:" + failing.ID.String() + ":2026-03-01:12:00"

	f.equipmentRepo.EXPECT().FindReminderCandidates(ctx).Return([]*entity.Equipment{failing, healthy}, nil)
	f.expectTimezone(ownerID, "UTC")
	f.guard.EXPECT().Claim(ctx, mock.Anything, mock.Anything).Return(true, nil).Times(2)
	f.feed.EXPECT().Create(ctx, mock.MatchedBy(func(n *entity.InAppNotification) bool {
		return n.DedupKey == failingKey
	})).Return(errors.New("insert failed"))
	f.feed.EXPECT().Create(ctx, mock.MatchedBy(func(n *entity.InAppNotification) bool {
		return n.DedupKey != failingKey
	})).Return(nil)
	f.guard.EXPECT().Release(ctx, failingKey).Return(nil)

	report, err := f.service.Run(ctx, entity.ReminderKindCleaning)

	require.NoError(t, err)
	assert.Equal(t, 1, report.RemindersScheduled)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], failing.ID.String())
}

func TestSchedulerService_Cleaning_InvalidTimezoneFailsOpen(t *testing.T) {
	now := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	f := createTestSchedulerService(t, now)
	ctx := context.Background()
	ownerID := uuid.New()
	equipment := overdueEquipment(ownerID, now)
	wantKey := "cleaning_reminder:" + equipment.ID.String() + ":2026-03-01:any"

	f.equipmentRepo.EXPECT().FindReminderCandidates(ctx).Return([]*entity.Equipment{equipment}, nil)
	f.expectTimezone(ownerID, "Not/AZone")
	f.guard.EXPECT().Claim(ctx, wantKey, mock.Anything).Return(true, nil)
	f.feed.EXPECT().Create(ctx, mock.Anything).Return(nil)

	report, err := f.service.Run(ctx, entity.ReminderKindCleaning)

	require.NoError(t, err)
	assert.Equal(t, 1, report.RemindersScheduled)
}

func TestSchedulerService_Cleaning_TimezoneLookupErrorUsesDefault(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := createTestSchedulerService(t, now)
	ctx := context.Background()
	ownerID := uuid.New()

	f.equipmentRepo.EXPECT().FindReminderCandidates(ctx).Return([]*entity.Equipment{overdueEquipment(ownerID, now)}, nil)
	f.userRepo.EXPECT().FindTimezones(ctx, []uuid.UUID{ownerID}).Return(nil, errors.New("db down"))
	f.guard.EXPECT().Claim(ctx, mock.Anything, mock.Anything).Return(true, nil)
	f.feed.EXPECT().Create(ctx, mock.Anything).Return(nil)

	report, err := f.service.Run(ctx, entity.ReminderKindCleaning)

	require.NoError(t, err)
	assert.Equal(t, 1, report.RemindersScheduled)
	assert.Len(t, report.Errors, 1)
}

func TestSchedulerService_Events_RemindsEveryRecipientOnce(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	f := createTestSchedulerService(t, now)
	ctx := context.Background()

	ownerID := uuid.New()
	attendeeID := uuid.New()
	event := &entity.Event{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       "Team tasting",
		StartDate:   now.Add(32 * time.Minute),
		AttendeeIDs: []uuid.UUID{attendeeID, ownerID},
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txEventRepo := mockRepo.NewMockEventRepository(t)
	txNotificationRepo := mockRepo.NewMockInAppNotificationRepository(t)

	f.eventRepo.EXPECT().FindStartingBetween(ctx, now.Add(30*time.Minute), now.Add(35*time.Minute)).
		Return([]*entity.Event{event}, nil)
	f.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewEventRepository().Return(txEventRepo)
	factory.EXPECT().NewInAppNotificationRepository().Return(txNotificationRepo)
	txEventRepo.EXPECT().MarkReminderSent(ctx, event.ID).Return(true, nil)
	txNotificationRepo.EXPECT().Create(ctx, mock.MatchedBy(func(n *entity.InAppNotification) bool {
		return n.Type == entity.NotificationTypeEventReminder &&
			n.DedupKey == "event_reminder:"+event.ID.String()+":"+n.UserID.String() &&
			n.Message == "Team tasting starts in 32 minutes."
	})).Return(nil).Times(2)
	f.feed.EXPECT().Publish(ctx, mock.Anything).Times(2)

	report, err := f.service.Run(ctx, entity.ReminderKindEvent)

	require.NoError(t, err)
	assert.Equal(t, 2, report.RemindersScheduled)
	assert.Empty(t, report.Errors)
}

func TestSchedulerService_Events_AlreadyMarkedIsSkipped(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	f := createTestSchedulerService(t, now)
	ctx := context.Background()
	event := &entity.Event{ID: uuid.New(), OwnerID: uuid.New(), Title: "Cupping", StartDate: now.Add(31 * time.Minute)}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txEventRepo := mockRepo.NewMockEventRepository(t)

	f.eventRepo.EXPECT().FindStartingBetween(ctx, mock.Anything, mock.Anything).Return([]*entity.Event{event}, nil)
	f.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewEventRepository().Return(txEventRepo)
	txEventRepo.EXPECT().MarkReminderSent(ctx, event.ID).Return(false, nil)

	report, err := f.service.Run(ctx, entity.ReminderKindEvent)

	require.NoError(t, err)
	assert.Zero(t, report.RemindersScheduled)
	f.feed.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSchedulerService_Events_RollbackDoesNotPublish(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	f := createTestSchedulerService(t, now)
	ctx := context.Background()
	event := &entity.Event{ID: uuid.New(), OwnerID: uuid.New(), Title: "Cupping", StartDate: now.Add(31 * time.Minute)}

	f.eventRepo.EXPECT().FindStartingBetween(ctx, mock.Anything, mock.Anything).Return([]*entity.Event{event}, nil)
	f.txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("serialization failure"))

	report, err := f.service.Run(ctx, entity.ReminderKindEvent)

	require.NoError(t, err)
	assert.Zero(t, report.RemindersScheduled)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], event.ID.String())
}

func TestSchedulerService_Events_OutsideLookaheadAreIgnored(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Duration
	}{
		{name: "starts before the window", start: 29 * time.Minute},
		{name: "starts exactly at the window end", start: 35 * time.Minute},
		{name: "starts well after the window", start: 45 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestSchedulerService(t, now)
			ctx := context.Background()
			event := &entity.Event{ID: uuid.New(), OwnerID: uuid.New(), Title: "Cupping", StartDate: now.Add(tt.start)}

			f.eventRepo.EXPECT().FindStartingBetween(ctx, now.Add(30*time.Minute), now.Add(35*time.Minute)).
				Return([]*entity.Event{event}, nil)

			report, err := f.service.Run(ctx, entity.ReminderKindEvent)

			require.NoError(t, err)
			assert.Zero(t, report.RemindersScheduled)
			assert.Empty(t, report.Errors)
			f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestSchedulerService_Events_WindowStartIsInclusive(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	f := createTestSchedulerService(t, now)
	ctx := context.Background()
	event := &entity.Event{ID: uuid.New(), OwnerID: uuid.New(), Title: "Cupping", StartDate: now.Add(30 * time.Minute)}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txEventRepo := mockRepo.NewMockEventRepository(t)
	txNotificationRepo := mockRepo.NewMockInAppNotificationRepository(t)

	f.eventRepo.EXPECT().FindStartingBetween(ctx, mock.Anything, mock.Anything).Return([]*entity.Event{event}, nil)
	f.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewEventRepository().Return(txEventRepo)
	factory.EXPECT().NewInAppNotificationRepository().Return(txNotificationRepo)
	txEventRepo.EXPECT().MarkReminderSent(ctx, event.ID).Return(true, nil)
	txNotificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.feed.EXPECT().Publish(ctx, mock.Anything).Once()

	report, err := f.service.Run(ctx, entity.ReminderKindEvent)

	require.NoError(t, err)
	assert.Equal(t, 1, report.RemindersScheduled)
}

func TestSchedulerService_Run_AllRunsBothJobs(t *testing.T) {
	now := time.Date(2026, 3, 1, 3, 0, 0, 0, time.UTC)
	f := createTestSchedulerService(t, now)
	ctx := context.Background()

	f.equipmentRepo.EXPECT().FindReminderCandidates(ctx).Return([]*entity.Equipment{}, nil)
	f.userRepo.EXPECT().FindTimezones(ctx, []uuid.UUID{}).Return(map[uuid.UUID]string{}, nil)
	f.eventRepo.EXPECT().FindStartingBetween(ctx, mock.Anything, mock.Anything).Return([]*entity.Event{}, nil)

	report, err := f.service.Run(ctx, entity.ReminderKindAll)

	require.NoError(t, err)
	assert.Zero(t, report.RemindersScheduled)
	assert.Equal(t, now, report.Timestamp)
}

func TestSchedulerService_Run_InvalidKind(t *testing.T) {
	f := createTestSchedulerService(t, time.Now())

	_, err := f.service.Run(context.Background(), entity.ReminderKind("weekly"))

	assert.ErrorIs(t, err, domainerrors.ErrReminderKindInvalid)
}

func TestNewSchedulerService_RejectsBadTargetTime(t *testing.T) {
	cfg := newTestConfig()
	cfg.Scheduler.CleaningTargetTimes = []string{"25:00"}

	_, err := NewSchedulerService(SchedulerServiceParams{Config: cfg, Logger: newDiscardLogger()})

	assert.Error(t, err)
}

func TestMatchTargetTime(t *testing.T) {
	targets := []clockTime{{hour: 12}, {hour: 23, minute: 30}}
	utc13, err := time.LoadLocation("Etc/GMT-13")
	require.NoError(t, err)
	utcMinus12, err := time.LoadLocation("Etc/GMT+12")
	require.NoError(t, err)

	tests := []struct {
		name      string
		now       time.Time
		loc       *time.Location
		wantMatch bool
		wantDate  string
		wantTime  string
	}{
		{"exact target", time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC), time.UTC, true, "2026-05-01", "12:00"},
		{"edge of tolerance", time.Date(2026, 5, 1, 12, 30, 0, 0, time.UTC), time.UTC, true, "2026-05-01", "12:00"},
		{"past tolerance", time.Date(2026, 5, 1, 12, 31, 0, 0, time.UTC), time.UTC, false, "", ""},
		{"late target after local midnight", time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), time.UTC, true, "2026-05-01", "23:30"},
		{"plus thirteen", time.Date(2026, 5, 1, 10, 45, 0, 0, time.UTC), utc13, true, "2026-05-01", "23:30"},
		{"minus twelve", time.Date(2026, 5, 2, 0, 15, 0, 0, time.UTC), utcMinus12, true, "2026-05-01", "12:00"},
		{"morning", time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC), time.UTC, false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occurrence, target, ok := matchTargetTime(tt.now, tt.loc, targets, 30*time.Minute)

			require.Equal(t, tt.wantMatch, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantDate, occurrence.Format(dateLayout))
			assert.Equal(t, tt.wantTime, target.String())
		})
	}
}

func TestParseClockTime(t *testing.T) {
	got, err := parseClockTime(" 07:05 ")
	require.NoError(t, err)
	assert.Equal(t, "07:05", got.String())

	for _, bad := range []string{"", "7", "24:00", "12:60", "ab:cd"} {
		_, err := parseClockTime(bad)
		assert.Error(t, err, bad)
	}
}
