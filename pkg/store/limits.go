package store

import (
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"pondlink.io/starterbox-settings-service/pkg/common"
	"pondlink.io/starterbox-settings-service/pkg/models"
)

func (s *Store) getMinMaxRange(deviceID string) (*models.DeviceSettingsLimits, error) {
	var limits models.DeviceSettingsLimits
	err := s.Db.Conn.First(&limits, "device_id = ?", deviceID).Error
	return &limits, err
}

func (s *Store) updateMinMaxRange(deviceID string, input *models.DeviceSettingsLimits) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSettingsCore,
		zap.String(common.LoggerFieldSBXCategory, common.LoggerCategorySBXLimits),
	)

	limits := models.DeviceSettingsLimits{
		DeviceID: deviceID,
		Ranges:   input.Ranges,
	}

	logger.Info("Received limits for device", zap.Reflect("limits", limits))

	err := s.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_id"}},
		UpdateAll: true,
	}).Create(&limits).Error

	if err == nil {
		logger.Info("Upserted limits for device", zap.Reflect("limits", limits))
	}

	return err
}

type ILimitsImpl struct {
	store *Store
}

func (il *ILimitsImpl) GetMinMaxRange(deviceID string) (*models.DeviceSettingsLimits, error) {
	return il.store.getMinMaxRange(deviceID)
}

func (il *ILimitsImpl) UpdateMinMaxRange(deviceID string, input *models.DeviceSettingsLimits) error {
	return il.store.updateMinMaxRange(deviceID, input)
}

func (s *Store) GetILimits() ILimits {
	return &ILimitsImpl{store: s}
}
