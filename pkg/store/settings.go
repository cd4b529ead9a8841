package store

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"pondlink.io/starterbox-settings-service/pkg/common"
	"pondlink.io/starterbox-settings-service/pkg/models"
)

func (s *Store) getDeviceSettings(deviceID string) (*models.DeviceSettings, error) {
	var settings models.DeviceSettings
	err := s.Db.Conn.
		Preload("MotorSpecificLimits", func(db *gorm.DB) *gorm.DB {
			return db.Order("motor_index asc")
		}).
		First(&settings, "device_id = ?", deviceID).Error
	return &settings, err
}

// saveDeviceSettings replaces the device's settings snapshot and appends an
// unconfirmed history record in the same transaction. The history record is
// written with is_new_configuration_saved = 0; the device flips it through
// the status ingestion path once it has applied the configuration.
func (s *Store) saveDeviceSettings(deviceID string, input *models.DeviceSettings) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSettingsCore,
		zap.String(common.LoggerFieldSBXCategory, common.LoggerCategorySBXStore),
	)

	input.DeviceID = deviceID
	for i := range input.MotorSpecificLimits {
		input.MotorSpecificLimits[i].DeviceID = deviceID
		input.MotorSpecificLimits[i].MotorIndex = i
	}

	logger.Info("Received settings for device", zap.String("device_id", deviceID))

	snapshot, err := json.Marshal(input)
	if err != nil {
		return err
	}

	err = s.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			UpdateAll: true,
		}).Omit("MotorSpecificLimits").Create(input).Error; err != nil {
			return err
		}

		// motor rows are index-addressed, replace them wholesale
		if err := tx.Where("device_id = ?", deviceID).Delete(&models.MotorSettings{}).Error; err != nil {
			return err
		}
		for i := range input.MotorSpecificLimits {
			motor := input.MotorSpecificLimits[i]
			motor.ID = 0
			if err := tx.Create(&motor).Error; err != nil {
				return err
			}
		}

		record := models.SettingsHistoryRecord{
			StarterID:               deviceID,
			Timestamp:               time.Now(),
			Settings:                snapshot,
			IsNewConfigurationSaved: 0,
		}
		return tx.Create(&record).Error
	})

	if err == nil {
		logger.Info("Saved settings for device", zap.String("device_id", deviceID))
	}

	return err
}

type ISettingsImpl struct {
	store *Store
}

func (is *ISettingsImpl) GetDeviceSettings(deviceID string) (*models.DeviceSettings, error) {
	return is.store.getDeviceSettings(deviceID)
}

func (is *ISettingsImpl) SaveDeviceSettings(deviceID string, input *models.DeviceSettings) error {
	return is.store.saveDeviceSettings(deviceID, input)
}

func (s *Store) GetISettings() ISettings {
	return &ISettingsImpl{store: s}
}
