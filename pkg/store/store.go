package store

import (
	"pondlink.io/starterbox-settings-service/pkg/db"
	"pondlink.io/starterbox-settings-service/pkg/models"
)

type Pagination struct {
	PageIndex int   `json:"page_index"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
}

type ISettings interface {
	GetDeviceSettings(deviceID string) (*models.DeviceSettings, error)
	SaveDeviceSettings(deviceID string, input *models.DeviceSettings) error
}

type ILimits interface {
	GetMinMaxRange(deviceID string) (*models.DeviceSettingsLimits, error)
	UpdateMinMaxRange(deviceID string, input *models.DeviceSettingsLimits) error
}

type IHistory interface {
	GetSettingLogs(starterID string, pageIndex int, pageSize int) ([]models.SettingsHistoryRecord, Pagination, error)
	ConfirmLatest(starterID string) error
}

type Store struct {
	Db       db.DB
	Settings ISettings
	Limits   ILimits
	History  IHistory
}

type ServiceOpts struct {
	Settings ISettings
	Limits   ILimits
	History  IHistory
}

func (s *Store) WithServices(opts ServiceOpts) *Store {
	if opts.Settings != nil {
		s.Settings = opts.Settings
	}
	if opts.Limits != nil {
		s.Limits = opts.Limits
	}
	if opts.History != nil {
		s.History = opts.History
	}
	return s
}
