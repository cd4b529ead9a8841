package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pondlink.io/starterbox-settings-service/pkg/common"
	"pondlink.io/starterbox-settings-service/pkg/models"
	_ "pondlink.io/starterbox-settings-service/pkg/testing"
)

func TestUpdateAndGetMinMaxRange(t *testing.T) {
	common.SetTestLoggerNop()

	storeObj := newTestStore()
	deviceID := uuid.NewString()

	err := storeObj.Limits.UpdateMinMaxRange(deviceID, &models.DeviceSettingsLimits{
		Ranges: datatypes.JSONMap{
			"low_voltage_fault_min": 300.0,
			"low_voltage_fault_max": 400.0,
		},
	})
	require.NoError(t, err)

	limits, err := storeObj.Limits.GetMinMaxRange(deviceID)
	require.NoError(t, err)
	assert.Equal(t, deviceID, limits.DeviceID)
	assert.Equal(t, 300.0, limits.Ranges["low_voltage_fault_min"])
	assert.Equal(t, 400.0, limits.Ranges["low_voltage_fault_max"])
}

func TestUpdateMinMaxRangeUpserts(t *testing.T) {
	common.SetTestLoggerNop()

	storeObj := newTestStore()
	deviceID := uuid.NewString()

	require.NoError(t, storeObj.Limits.UpdateMinMaxRange(deviceID, &models.DeviceSettingsLimits{
		Ranges: datatypes.JSONMap{"seed_time_min": 0.0, "seed_time_max": 60.0},
	}))
	require.NoError(t, storeObj.Limits.UpdateMinMaxRange(deviceID, &models.DeviceSettingsLimits{
		Ranges: datatypes.JSONMap{"seed_time_min": 5.0, "seed_time_max": 30.0},
	}))

	limits, err := storeObj.Limits.GetMinMaxRange(deviceID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, limits.Ranges["seed_time_min"])
	assert.Equal(t, 30.0, limits.Ranges["seed_time_max"])
}

func TestGetMinMaxRangeUnknownDevice(t *testing.T) {
	common.SetTestLoggerNop()

	storeObj := newTestStore()

	_, err := storeObj.Limits.GetMinMaxRange(uuid.NewString())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
