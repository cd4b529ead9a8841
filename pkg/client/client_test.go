package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pondlink.io/starterbox-settings-service/pkg/common"
	"pondlink.io/starterbox-settings-service/pkg/models"
	"pondlink.io/starterbox-settings-service/pkg/store"
	_ "pondlink.io/starterbox-settings-service/pkg/testing"
)

func TestGetDeviceSettings(t *testing.T) {
	common.SetTestLoggerNop()

	deviceID := uuid.NewString()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/devices/"+deviceID+"/settings", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.DeviceSettings{
			DeviceID:        deviceID,
			SerialNumber:    "SBX-5005",
			LowVoltageFault: 350,
			CapableMotors:   2,
		})
	}))
	defer server.Close()

	settings, err := New(server.URL).GetDeviceSettings(deviceID)
	require.NoError(t, err)
	assert.Equal(t, "SBX-5005", settings.SerialNumber)
	assert.Equal(t, 350.0, settings.LowVoltageFault)
	assert.Equal(t, 2, settings.CapableMotors)
}

func TestGetDeviceSettings_NotFound(t *testing.T) {
	common.SetTestLoggerNop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New(server.URL).GetDeviceSettings(uuid.NewString())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestSaveDeviceSettingsMarksUnconfirmed(t *testing.T) {
	common.SetTestLoggerNop()

	deviceID := uuid.NewString()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/devices/"+deviceID+"/settings", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		// the envelope always ships the snapshot as not yet device-confirmed
		assert.Equal(t, 0.0, body["is_new_configuration_saved"])

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := New(server.URL).SaveDeviceSettings(deviceID, &models.DeviceSettings{
		CapableMotors:   1,
		LowVoltageFault: 360,
	})
	assert.NoError(t, err)
}

func TestGetAndUpdateMinMaxRange(t *testing.T) {
	common.SetTestLoggerNop()

	deviceID := uuid.NewString()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/devices/"+deviceID+"/limits", r.URL.Path)

		switch r.Method {
		case "GET":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"device_id":"` + deviceID + `","ranges":{"seed_time_min":0,"seed_time_max":60}}`))
		case "POST":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Contains(t, body, "ranges")
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	c := New(server.URL)

	limits, err := c.GetMinMaxRange(deviceID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, limits.Ranges["seed_time_min"])
	assert.Equal(t, 60.0, limits.Ranges["seed_time_max"])

	limits.Ranges["seed_time_max"] = 30.0
	assert.NoError(t, c.UpdateMinMaxRange(deviceID, limits))
}

func TestGetSettingLogs(t *testing.T) {
	common.SetTestLoggerNop()

	starterID := uuid.NewString()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/devices/"+starterID+"/settings/logs", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page_index"))
		assert.Equal(t, "5", r.URL.Query().Get("page_size"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SettingLogsPage{
			Data: []models.SettingsHistoryRecord{
				{StarterID: starterID, IsNewConfigurationSaved: 1},
			},
			Pagination: store.Pagination{PageIndex: 1, PageSize: 5, Total: 6},
		})
	}))
	defer server.Close()

	page, err := New(server.URL).GetSettingLogs(starterID, 1, 5)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, starterID, page.Data[0].StarterID)
	assert.Equal(t, int64(6), page.Pagination.Total)
}
