package engine

import (
	"testing"

	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"pondlink.io/starterbox-settings-service/pkg/engine/mocks"
	"pondlink.io/starterbox-settings-service/pkg/models"
)

func f(v float64) *float64 {
	return &v
}

// testSettingsModel is a two-motor starter with the motor thresholds stored
// as absolute amperes, the way the store keeps them after a save.
func testSettingsModel(deviceID string) *models.DeviceSettings {
	return &models.DeviceSettings{
		DeviceID:     deviceID,
		SerialNumber: "SBX-1001",

		PhaseFailureFault:     180,
		LowVoltageFault:       350,
		HighVoltageFault:      460,
		VoltageImbalanceFault: 25,
		MinPhaseAngleFault:    100,
		MaxPhaseAngleFault:    140,
		OverTemperatureFault:  75,

		PhaseFailureAlert:     190,
		LowVoltageAlert:       360,
		HighVoltageAlert:      450,
		VoltageImbalanceAlert: 20,
		MinPhaseAngleAlert:    105,
		MaxPhaseAngleAlert:    135,
		OverTemperatureAlert:  70,

		LowVoltageRecovery:  370,
		HighVoltageRecovery: 445,

		FltEn:             1,
		SeedTime:          5,
		StartTimingOffset: 2,

		UGainR: 1, UGainY: 1, UGainB: 1,
		IGainR: 1, IGainY: 1, IGainB: 1,

		CurrentMultiplier: 1,
		CapableMotors:     2,

		MotorSpecificLimits: []models.MotorSettings{
			{
				MotorIndex:      0,
				HP:              5,
				FullLoadCurrent: 10,

				DryRunFault:           f(5),
				OverLoadFault:         f(120),
				LockedRotorFault:      f(40),
				CurrentImbalanceFault: f(3),
				OutputPhaseFailure:    f(1),

				DryRunAlert:           f(6),
				OverLoadAlert:         f(11),
				LockedRotorAlert:      f(30),
				CurrentImbalanceAlert: f(2),

				OverLoadRecovery:         f(10.5),
				LockedRotorRecovery:      f(12),
				CurrentImbalanceRecovery: f(2.5),
			},
			{
				MotorIndex:      1,
				HP:              3,
				FullLoadCurrent: 6,

				DryRunFault:           f(3),
				OverLoadFault:         f(7.2),
				LockedRotorFault:      f(24),
				CurrentImbalanceFault: f(1.8),

				DryRunAlert:           f(3.6),
				OverLoadAlert:         f(6.6),
				LockedRotorAlert:      f(18),
				CurrentImbalanceAlert: f(1.2),
			},
		},
	}
}

func testLimitsModel(deviceID string) *models.DeviceSettingsLimits {
	return &models.DeviceSettingsLimits{
		DeviceID: deviceID,
		Ranges: datatypes.JSONMap{
			"low_voltage_fault_min": 300.0,
			"low_voltage_fault_max": 400.0,

			"seed_time_min": 0.0,
			"seed_time_max": 60.0,

			"over_load_fault_min": 1.0,
			"over_load_fault_max": 500.0,

			"full_load_current_min": 0.5,
			"full_load_current_max": 100.0,
		},
	}
}

// newMockedPanel opens a panel wired to mocked sources. Callers register
// their own expectations on top of the open-time fetches.
func newMockedPanel(t *testing.T, deviceID string) (
	*gomock.Controller,
	*mocks.MockSettingsSource,
	*mocks.MockLimitsSource,
	*mocks.MockPublisher,
	*Panel,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	settings := mocks.NewMockSettingsSource(ctrl)
	limits := mocks.NewMockLimitsSource(ctrl)
	pub := mocks.NewMockPublisher(ctrl)

	settings.EXPECT().GetDeviceSettings(deviceID).Return(testSettingsModel(deviceID), nil)
	limits.EXPECT().GetMinMaxRange(deviceID).Return(testLimitsModel(deviceID), nil)

	panel, err := OpenPanel(deviceID, PanelDeps{
		Settings:     settings,
		Limits:       limits,
		Pub:          pub,
		TitleSources: []string{"", "gw-main"},
	})
	if err != nil {
		t.Fatalf("failed to open panel: %v", err)
	}

	return ctrl, settings, limits, pub, panel
}

// newFailingSettings is a settings source whose fetch always errors.
func newFailingSettings(ctrl *gomock.Controller, deviceID string) *mocks.MockSettingsSource {
	settings := mocks.NewMockSettingsSource(ctrl)
	settings.EXPECT().GetDeviceSettings(deviceID).Return(nil, gorm.ErrRecordNotFound)
	return settings
}
