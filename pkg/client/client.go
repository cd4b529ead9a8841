package client

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"pondlink.io/starterbox-settings-service/pkg/common"
	"pondlink.io/starterbox-settings-service/pkg/models"
	"pondlink.io/starterbox-settings-service/pkg/store"
)

// Client talks to a remote settings store / range provider over REST. It
// satisfies the engine's SettingsSource and LimitsSource so a panel can run
// against either the local store or a remote one.
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func New(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		logger:     common.GetLoggerWith(common.LoggerNameSettingsCore, zap.String(common.LoggerFieldSBXCategory, common.LoggerCategorySBXStore)),
	}
}

func (c *Client) GetDeviceSettings(deviceID string) (*models.DeviceSettings, error) {
	var settings models.DeviceSettings
	resp, err := c.httpClient.R().
		SetResult(&settings).
		Get(fmt.Sprintf("/devices/%s/settings", deviceID))
	if err != nil {
		return nil, fmt.Errorf("get device settings: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get device settings: status %d", resp.StatusCode())
	}
	return &settings, nil
}

// settingsEnvelope marks the persisted snapshot as not yet confirmed by the
// device; the flag only flips through the status ingestion path.
type settingsEnvelope struct {
	models.DeviceSettings
	IsNewConfigurationSaved int `json:"is_new_configuration_saved"`
}

func (c *Client) SaveDeviceSettings(deviceID string, input *models.DeviceSettings) error {
	body := settingsEnvelope{DeviceSettings: *input, IsNewConfigurationSaved: 0}

	resp, err := c.httpClient.R().
		SetBody(body).
		Post(fmt.Sprintf("/devices/%s/settings", deviceID))
	if err != nil {
		return fmt.Errorf("save device settings: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("save device settings: status %d", resp.StatusCode())
	}

	c.logger.Info("Persisted settings to remote store", zap.String("device_id", deviceID))
	return nil
}

func (c *Client) GetMinMaxRange(deviceID string) (*models.DeviceSettingsLimits, error) {
	var limits models.DeviceSettingsLimits
	resp, err := c.httpClient.R().
		SetResult(&limits).
		Get(fmt.Sprintf("/devices/%s/limits", deviceID))
	if err != nil {
		return nil, fmt.Errorf("get min/max range: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get min/max range: status %d", resp.StatusCode())
	}
	return &limits, nil
}

func (c *Client) UpdateMinMaxRange(deviceID string, input *models.DeviceSettingsLimits) error {
	resp, err := c.httpClient.R().
		SetBody(input).
		Post(fmt.Sprintf("/devices/%s/limits", deviceID))
	if err != nil {
		return fmt.Errorf("update min/max range: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("update min/max range: status %d", resp.StatusCode())
	}
	return nil
}

// SettingLogsPage mirrors the paginated history response.
type SettingLogsPage struct {
	Data       []models.SettingsHistoryRecord `json:"data"`
	Pagination store.Pagination               `json:"pagination"`
}

func (c *Client) GetSettingLogs(starterID string, pageIndex int, pageSize int) (*SettingLogsPage, error) {
	var page SettingLogsPage
	resp, err := c.httpClient.R().
		SetQueryParam("page_index", strconv.Itoa(pageIndex)).
		SetQueryParam("page_size", strconv.Itoa(pageSize)).
		SetResult(&page).
		Get(fmt.Sprintf("/devices/%s/settings/logs", starterID))
	if err != nil {
		return nil, fmt.Errorf("get setting logs: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get setting logs: status %d", resp.StatusCode())
	}
	return &page, nil
}
