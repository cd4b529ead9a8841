package engine

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"pondlink.io/starterbox-settings-service/pkg/common"
)

// PublisherFactory creates the pub/sub connection for one panel. Connections
// are established lazily when a panel opens and torn down when it closes.
type PublisherFactory func() (Publisher, error)

// Manager tracks open panel sessions by id.
type Manager struct {
	mu     sync.Mutex
	panels map[string]*Panel

	settings            SettingsSource
	limits              LimitsSource
	newPublisher        PublisherFactory
	defaultGatewayTitle string
}

type ManagerOpts struct {
	Settings            SettingsSource
	Limits              LimitsSource
	NewPublisher        PublisherFactory
	DefaultGatewayTitle string
}

func NewManager(opts ManagerOpts) *Manager {
	return &Manager{
		panels:              make(map[string]*Panel),
		settings:            opts.Settings,
		limits:              opts.Limits,
		newPublisher:        opts.NewPublisher,
		defaultGatewayTitle: opts.DefaultGatewayTitle,
	}
}

// Open starts a panel session for the device. gatewayTitle is the explicit
// title from the caller and outranks the configured default in the topic
// resolution chain; either may be empty.
func (m *Manager) Open(deviceID string, gatewayTitle string) (*Panel, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSettingsCore,
		zap.String(common.LoggerFieldSBXCategory, common.LoggerCategorySBXReconcile),
	)

	var pub Publisher
	if m.newPublisher != nil {
		var err error
		pub, err = m.newPublisher()
		if err != nil {
			// the panel still opens read-only; saves will report not connected
			logger.Warn("Publisher unavailable for panel",
				zap.String("device_id", deviceID), zap.Error(err))
			pub = nil
		}
	}

	panel, err := OpenPanel(deviceID, PanelDeps{
		Settings:     m.settings,
		Limits:       m.limits,
		Pub:          pub,
		TitleSources: []string{gatewayTitle, m.defaultGatewayTitle},
	})
	if err != nil {
		if pub != nil {
			pub.Close()
		}
		return nil, fmt.Errorf("open panel for device %s: %w", deviceID, err)
	}

	m.mu.Lock()
	m.panels[panel.ID] = panel
	m.mu.Unlock()

	logger.Info("Panel opened",
		zap.String("panel_id", panel.ID),
		zap.String("device_id", deviceID))
	return panel, nil
}

func (m *Manager) Get(panelID string) (*Panel, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	panel, ok := m.panels[panelID]
	return panel, ok
}

// Close tears down the panel's connection and forgets the session.
func (m *Manager) Close(panelID string) {
	m.mu.Lock()
	panel, ok := m.panels[panelID]
	delete(m.panels, panelID)
	m.mu.Unlock()

	if ok {
		panel.Close()
	}
}
