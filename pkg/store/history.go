package store

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"pondlink.io/starterbox-settings-service/pkg/common"
	"pondlink.io/starterbox-settings-service/pkg/models"
)

func (s *Store) getSettingLogs(starterID string, pageIndex int, pageSize int) ([]models.SettingsHistoryRecord, Pagination, error) {
	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	pagination := Pagination{PageIndex: pageIndex, PageSize: pageSize}

	var total int64
	if err := s.Db.Conn.Model(&models.SettingsHistoryRecord{}).
		Where("starter_id = ?", starterID).
		Count(&total).Error; err != nil {
		return nil, pagination, err
	}
	pagination.Total = total

	var records []models.SettingsHistoryRecord
	err := s.Db.Conn.
		Where("starter_id = ?", starterID).
		Order("timestamp desc").
		Offset(pageIndex * pageSize).
		Limit(pageSize).
		Find(&records).Error
	return records, pagination, err
}

// confirmLatest flips the newest unconfirmed history record for the starter
// to confirmed. Called from the device status ingestion path; a device ack
// with no pending record is not an error.
func (s *Store) confirmLatest(starterID string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSettingsCore,
		zap.String(common.LoggerFieldSBXCategory, common.LoggerCategorySBXHistory),
	)

	var record models.SettingsHistoryRecord
	err := s.Db.Conn.
		Where("starter_id = ? AND is_new_configuration_saved = 0", starterID).
		Order("timestamp desc").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Info("Device ack with no pending configuration", zap.String("starter_id", starterID))
		return nil
	}
	if err != nil {
		return err
	}

	record.IsNewConfigurationSaved = 1
	if err := s.Db.Conn.Save(&record).Error; err != nil {
		return err
	}

	logger.Info("Configuration confirmed by device",
		zap.String("starter_id", starterID),
		zap.Uint("record_id", record.ID))
	return nil
}

type IHistoryImpl struct {
	store *Store
}

func (ih *IHistoryImpl) GetSettingLogs(starterID string, pageIndex int, pageSize int) ([]models.SettingsHistoryRecord, Pagination, error) {
	return ih.store.getSettingLogs(starterID, pageIndex, pageSize)
}

func (ih *IHistoryImpl) ConfirmLatest(starterID string) error {
	return ih.store.confirmLatest(starterID)
}

func (s *Store) GetIHistory() IHistory {
	return &IHistoryImpl{store: s}
}
