package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"pondlink.io/starterbox-settings-service/pkg/common"
)

var (
	// ErrNotConnected means no live pub/sub connection exists; the save is
	// aborted before any publish attempt.
	ErrNotConnected = errors.New("not connected to the device broker")

	// ErrPayload means the assembled payload could not be serialized.
	ErrPayload = errors.New("error generating payload")

	// ErrNoGatewayTitle means no source in the resolution chain produced a
	// gateway title to address the config topic.
	ErrNoGatewayTitle = errors.New("no gateway title available")

	// ErrPersist means the device received the configuration but the store
	// write failed afterwards; device and server state may diverge.
	ErrPersist = errors.New("persist after publish failed")
)

// ValidationError aggregates the offending fields of a failed validation.
// The field list is diagnostic; callers surface a single generic message.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("settings out of range: %d invalid field(s)", len(e.Fields))
}

// ResolveGatewayTitle walks the ordered title sources, first non-empty wins.
func ResolveGatewayTitle(sources ...string) (string, error) {
	title := common.FirstNonEmpty(sources...)
	if title == "" {
		return "", ErrNoGatewayTitle
	}
	return title, nil
}

// ConfigTopic is the publish target for one gateway's config channel.
func ConfigTopic(gatewayTitle string) string {
	return fmt.Sprintf("gateways/%s/devices/config", gatewayTitle)
}

// StatusTopicFilter matches the status channel every gateway reports acks on.
const StatusTopicFilter = "gateways/+/devices/status"

// QoSAtMostOnce is the transport level for config publishes.
const QoSAtMostOnce byte = 0

// PublishAndPersist sends the payload to the device and, only after the
// publish confirms, persists the settings record. Persistence failure does
// not roll back the publish; the device may already have applied the change.
func PublishAndPersist(pub Publisher, deviceID string, topic string, payload []byte, persistFn func() error) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSettingsCore,
		zap.String(common.LoggerFieldSBXCategory, common.LoggerCategorySBXPublish),
	)

	if pub == nil || !pub.IsConnected() {
		return ErrNotConnected
	}

	if err := pub.Publish(topic, QoSAtMostOnce, false, payload); err != nil {
		logger.Error("Publish to device failed",
			zap.String("device_id", deviceID),
			zap.String("topic", topic),
			zap.Error(err))
		return fmt.Errorf("publish config: %w", err)
	}

	logger.Info("Published config to device",
		zap.String("device_id", deviceID),
		zap.String("topic", topic))

	if err := persistFn(); err != nil {
		// device and server records may now diverge until the next save
		logger.Error("Persist after publish failed",
			zap.String("device_id", deviceID),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	logger.Info("Persisted settings after publish", zap.String("device_id", deviceID))
	return nil
}
