package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePushData(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]string
		wantErr string
	}{
		{name: "nil", data: nil},
		{name: "ordinary keys", data: map[string]string{"event_id": "e1", "type": "event_reminder"}},
		{name: "from", data: map[string]string{"from": "x"}, wantErr: `"from" is reserved`},
		{name: "google prefix", data: map[string]string{"google.c.a": "1"}, wantErr: "reserved"},
		{name: "gcm prefix", data: map[string]string{"GCM_x": "1"}, wantErr: "reserved"},
		{name: "message_type", data: map[string]string{"message_type": "1"}, wantErr: "reserved"},
		{name: "empty key", data: map[string]string{"": "1"}, wantErr: "empty"},
		{name: "too large", data: map[string]string{"blob": strings.Repeat("a", MaxPushDataBytes)}, wantErr: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePushData(tt.data)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidatePushData_MeasuresNonStringValues(t *testing.T) {
	assert.NoError(t, ValidatePushData(map[string]any{"count": 3, "empty": nil}))
	assert.Error(t, ValidatePushData(map[string]any{"list": strings.Split(strings.Repeat("x,", MaxPushDataBytes), ",")}))
}

func TestSendErrorCode_Deactivates(t *testing.T) {
	assert.True(t, SendErrorInvalidRegistration.Deactivates())
	assert.True(t, SendErrorPermissionRevoked.Deactivates())
	assert.False(t, SendErrorInvalidPayload.Deactivates())
	assert.False(t, SendErrorTransient.Deactivates())
	assert.False(t, SendErrorChannelUnavailable.Deactivates())
}
