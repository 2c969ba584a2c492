package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The notification API speaks camelCase. Read-state and ordering both ride on
// these fields, so a record must round out of the backend's JSON intact.
func TestNotificationRecordDecodesWireFormat(t *testing.T) {
	raw := []byte(`{
		"id": 5,
		"userId": 42,
		"title": "Charging complete",
		"message": "Your vehicle is fully charged",
		"type": "charging_complete",
		"referenceId": 9,
		"isRead": true,
		"createdAt": "2026-08-01T10:30:00Z"
	}`)

	var record NotificationRecord
	require.NoError(t, json.Unmarshal(raw, &record))

	assert.Equal(t, int64(5), record.ID)
	assert.Equal(t, int64(42), record.UserID)
	assert.Equal(t, TypeChargingComplete, record.Type)
	require.NotNil(t, record.ReferenceID)
	assert.Equal(t, int64(9), *record.ReferenceID)
	assert.True(t, record.IsRead)
	assert.Equal(t, time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC), record.CreatedAt)
}

func TestParseNotificationTypeFallsBackToSystem(t *testing.T) {
	assert.Equal(t, TypeReservation, ParseNotificationType("reservation"))
	assert.Equal(t, TypeSystem, ParseNotificationType("firmware_update"))
	assert.Equal(t, TypeSystem, ParseNotificationType(""))
}

func TestIsSessionLifecycle(t *testing.T) {
	assert.True(t, TypeChargingStarted.IsSessionLifecycle())
	assert.True(t, TypeChargingInterrupted.IsSessionLifecycle())
	assert.False(t, TypePayment.IsSessionLifecycle())
}
