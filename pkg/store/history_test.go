package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pondlink.io/starterbox-settings-service/pkg/common"
	"pondlink.io/starterbox-settings-service/pkg/models"
	_ "pondlink.io/starterbox-settings-service/pkg/testing"
)

func seedHistory(t *testing.T, storeObj *Store, starterID string, count int) {
	t.Helper()
	base := time.Now().Add(-time.Duration(count) * time.Minute)
	for i := 0; i < count; i++ {
		record := models.SettingsHistoryRecord{
			StarterID:               starterID,
			Timestamp:               base.Add(time.Duration(i) * time.Minute),
			Settings:                []byte(`{}`),
			IsNewConfigurationSaved: 0,
		}
		require.NoError(t, storeObj.Db.Conn.Create(&record).Error)
	}
}

func TestGetSettingLogsPagination(t *testing.T) {
	common.SetTestLoggerNop()

	storeObj := newTestStore()
	starterID := uuid.NewString()
	seedHistory(t, storeObj, starterID, 7)

	records, pagination, err := storeObj.History.GetSettingLogs(starterID, 0, 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, int64(7), pagination.Total)
	assert.Equal(t, 0, pagination.PageIndex)
	assert.Equal(t, 3, pagination.PageSize)

	// newest first
	assert.True(t, records[0].Timestamp.After(records[1].Timestamp))

	records, _, err = storeObj.History.GetSettingLogs(starterID, 2, 3)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// negative index and zero size fall back to defaults
	records, pagination, err = storeObj.History.GetSettingLogs(starterID, -1, 0)
	require.NoError(t, err)
	assert.Len(t, records, 7)
	assert.Equal(t, 10, pagination.PageSize)
}

func TestConfirmLatestFlipsNewestPendingRecord(t *testing.T) {
	common.SetTestLoggerNop()

	storeObj := newTestStore()
	starterID := uuid.NewString()
	seedHistory(t, storeObj, starterID, 3)

	require.NoError(t, storeObj.History.ConfirmLatest(starterID))

	records, _, err := storeObj.History.GetSettingLogs(starterID, 0, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// only the newest record flipped
	assert.Equal(t, 1, records[0].IsNewConfigurationSaved)
	assert.Equal(t, 0, records[1].IsNewConfigurationSaved)
	assert.Equal(t, 0, records[2].IsNewConfigurationSaved)
}

func TestConfirmLatestWithNoPendingRecordIsNoop(t *testing.T) {
	common.SetTestLoggerNop()

	storeObj := newTestStore()
	starterID := uuid.NewString()

	assert.NoError(t, storeObj.History.ConfirmLatest(starterID))
}
