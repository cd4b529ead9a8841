package engine

import (
	"pondlink.io/starterbox-settings-service/pkg/models"
)

// SettingsSource is where the engine reads and persists device settings.
// Satisfied by the local store and by the resty client against a remote one.
type SettingsSource interface {
	GetDeviceSettings(deviceID string) (*models.DeviceSettings, error)
	SaveDeviceSettings(deviceID string, input *models.DeviceSettings) error
}

// LimitsSource supplies the per-field min/max ranges used for validation.
type LimitsSource interface {
	GetMinMaxRange(deviceID string) (*models.DeviceSettingsLimits, error)
}

// Publisher is the pub/sub surface the coordinator needs. One publisher is
// created per open panel and shared across its saves.
type Publisher interface {
	IsConnected() bool
	Publish(topic string, qos byte, retained bool, payload []byte) error
	Close()
}

// Top-level settings field names. These double as edit-buffer keys and as
// the "<field>_min"/"<field>_max" prefixes in the limits table.
const (
	FieldPhaseFailureFault     = "phase_failure_fault"
	FieldLowVoltageFault       = "low_voltage_fault"
	FieldHighVoltageFault      = "high_voltage_fault"
	FieldVoltageImbalanceFault = "voltage_imbalance_fault"
	FieldMinPhaseAngleFault    = "min_phase_angle_fault"
	FieldMaxPhaseAngleFault    = "max_phase_angle_fault"
	FieldOverTemperatureFault  = "over_temperature_fault"

	FieldPhaseFailureAlert     = "phase_failure_alert"
	FieldLowVoltageAlert       = "low_voltage_alert"
	FieldHighVoltageAlert      = "high_voltage_alert"
	FieldVoltageImbalanceAlert = "voltage_imbalance_alert"
	FieldMinPhaseAngleAlert    = "min_phase_angle_alert"
	FieldMaxPhaseAngleAlert    = "max_phase_angle_alert"
	FieldOverTemperatureAlert  = "over_temperature_alert"

	FieldLowVoltageRecovery  = "low_voltage_recovery"
	FieldHighVoltageRecovery = "high_voltage_recovery"

	FieldFltEn             = "flt_en"
	FieldSeedTime          = "seed_time"
	FieldStartTimingOffset = "start_timing_offset"

	FieldUGainR = "u_gain_r"
	FieldUGainY = "u_gain_y"
	FieldUGainB = "u_gain_b"
	FieldIGainR = "i_gain_r"
	FieldIGainY = "i_gain_y"
	FieldIGainB = "i_gain_b"

	FieldCurrentMultiplier = "current_multiplier"
	FieldCapableMotors     = "capable_motors"
)

// Motor-settings field names, shared between both motor indexes.
const (
	MotorFieldHP              = "hp"
	MotorFieldFullLoadCurrent = "full_load_current"

	MotorFieldDryRunFault           = "dry_run_fault"
	MotorFieldOverLoadFault         = "over_load_fault"
	MotorFieldLockedRotorFault      = "locked_rotor_fault"
	MotorFieldCurrentImbalanceFault = "current_imbalance_fault"
	MotorFieldOutputPhaseFailure    = "output_phase_failure"

	MotorFieldDryRunAlert           = "dry_run_alert"
	MotorFieldOverLoadAlert         = "over_load_alert"
	MotorFieldLockedRotorAlert      = "locked_rotor_alert"
	MotorFieldCurrentImbalanceAlert = "current_imbalance_alert"

	MotorFieldOverLoadRecovery         = "over_load_recovery"
	MotorFieldLockedRotorRecovery      = "locked_rotor_recovery"
	MotorFieldCurrentImbalanceRecovery = "current_imbalance_recovery"
)

// MaxMotors is the number of motor slots a starter box can carry; the edit
// buffer preallocates one record per slot regardless of capable_motors.
const MaxMotors = 2
