package service

import (
	"fmt"
	"strings"

	"upkeep/internal/errors"
)

// MaxPushDataBytes caps the summed key and value length of a push data map.
// Both providers limit the whole message to 4KB, title and body included.
const MaxPushDataBytes = 2048

// reservedDataKeys are refused by FCM as data keys.
var reservedDataKeys = map[string]struct{}{
	"from":         {},
	"notification": {},
	"message_type": {},
}

// ValidatePushData rejects data maps that a provider would refuse as a whole message.
// Non-string values are measured by their fmt.Sprint form, which is how they are sent.
func ValidatePushData[V any](data map[string]V) error {
	size := 0
	for key, value := range data {
		if key == "" {
			return errors.New("data keys must not be empty")
		}
		lower := strings.ToLower(key)
		if _, reserved := reservedDataKeys[lower]; reserved || strings.HasPrefix(lower, "google") || strings.HasPrefix(lower, "gcm") {
			return errors.Errorf("data key %q is reserved", key)
		}

		size += len(key)
		switch v := any(value).(type) {
		case string:
			size += len(v)
		case nil:
		default:
			size += len(fmt.Sprint(v))
		}
	}
	if size > MaxPushDataBytes {
		return errors.Errorf("data is %d bytes, limit is %d", size, MaxPushDataBytes)
	}

	return nil
}
