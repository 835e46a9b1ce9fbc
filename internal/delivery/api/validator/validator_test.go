package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Channel string `json:"channel" validate:"required,oneof=web_push native_push"`
	Title   string `json:"title,omitempty" validate:"max=5"`
}

func TestValidate_ReportsJSONFieldName(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Channel: "web_push"}))

	err := v.Validate(&sample{Channel: "sms"})
	require.Error(t, err)
	assert.Equal(t, "channel failed on oneof=web_push native_push", err.Error())

	err = v.Validate(&sample{Channel: "native_push", Title: "too long"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title failed on max")
}
