package mqtt

import (
	"encoding/json"

	"go.uber.org/zap"
	"pondlink.io/starterbox-settings-service/pkg/common"
	"pondlink.io/starterbox-settings-service/pkg/engine"
)

// DeviceStatus is the report a starter box publishes on its gateway's status
// topic after applying a configuration.
type DeviceStatus struct {
	DeviceID    string `json:"d_id"`
	ConfigSaved int    `json:"cfg_saved"`
}

// Confirmer flips the pending history record for a starter once the device
// reports the new configuration applied.
type Confirmer interface {
	ConfirmLatest(starterID string) error
}

// ListenForStatus subscribes to every gateway's status channel and drives
// the is_new_configuration_saved 0 -> 1 transition.
func ListenForStatus(c *Client, history Confirmer) error {
	return c.Subscribe(engine.StatusTopicFilter, engine.QoSAtMostOnce, StatusHandler(history))
}

// StatusHandler processes one raw status message.
func StatusHandler(history Confirmer) Handler {
	logger := common.GetLoggerWith(common.LoggerNameMqttClient)

	return func(topic string, payload []byte) {
		var status DeviceStatus
		if err := json.Unmarshal(payload, &status); err != nil {
			logger.Warn("Unparseable device status", zap.String("topic", topic), zap.Error(err))
			return
		}
		if status.DeviceID == "" || status.ConfigSaved != 1 {
			return
		}
		if err := history.ConfirmLatest(status.DeviceID); err != nil {
			logger.Error("Failed to confirm configuration",
				zap.String("device_id", status.DeviceID), zap.Error(err))
			return
		}
		logger.Info("Device confirmed configuration",
			zap.String("device_id", status.DeviceID), zap.String("topic", topic))
	}
}
