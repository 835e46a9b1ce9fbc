package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEquipment_NextDue(t *testing.T) {
	cleaned := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	due, ok := (&Equipment{CleaningFrequencyDays: 7, LastCleanedAt: &cleaned}).NextDue()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC), due)

	_, ok = (&Equipment{CleaningFrequencyDays: 7}).NextDue()
	assert.False(t, ok)

	_, ok = (&Equipment{LastCleanedAt: &cleaned}).NextDue()
	assert.False(t, ok)
}

func TestEvent_RecipientsDeduplicatesOwner(t *testing.T) {
	owner := uuid.New()
	attendee := uuid.New()

	event := &Event{OwnerID: owner, AttendeeIDs: []uuid.UUID{attendee, owner, attendee, uuid.Nil}}

	assert.Equal(t, []uuid.UUID{owner, attendee}, event.Recipients())
}

func TestIsPushableType(t *testing.T) {
	assert.True(t, IsPushableType(NotificationTypeLike))
	assert.True(t, IsPushableType(NotificationTypeEventReminder))
	assert.False(t, IsPushableType(NotificationTypeTest))
	assert.False(t, IsPushableType("system_banner"))
}

func TestRegistrationFilter_IsEmpty(t *testing.T) {
	var nilFilter *RegistrationFilter
	assert.True(t, nilFilter.IsEmpty())
	assert.True(t, (&RegistrationFilter{}).IsEmpty())
	assert.False(t, (&RegistrationFilter{Tags: map[string]string{"app": "x"}}).IsEmpty())
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"user", "merchant", "admin"})
	assert.Equal(t, Roles{RoleUser, RoleAdmin}, roles)
	assert.True(t, roles.Contains(RoleAdmin))
}
