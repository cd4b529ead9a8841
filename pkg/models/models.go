package models

import (
	"time"

	"gorm.io/datatypes"
)

// DeviceSettings is the last-known persisted configuration for one
// starter-box device. Voltage thresholds are volts, phase angles degrees,
// temperature celsius, timing fields seconds, gains dimensionless.
type DeviceSettings struct {
	DeviceID string `gorm:"primaryKey" json:"device_id"`

	SerialNumber string `json:"serial_number"`

	PhaseFailureFault     float64 `json:"phase_failure_fault"`
	LowVoltageFault       float64 `json:"low_voltage_fault"`
	HighVoltageFault      float64 `json:"high_voltage_fault"`
	VoltageImbalanceFault float64 `json:"voltage_imbalance_fault"`
	MinPhaseAngleFault    float64 `json:"min_phase_angle_fault"`
	MaxPhaseAngleFault    float64 `json:"max_phase_angle_fault"`
	OverTemperatureFault  float64 `json:"over_temperature_fault"`

	PhaseFailureAlert     float64 `json:"phase_failure_alert"`
	LowVoltageAlert       float64 `json:"low_voltage_alert"`
	HighVoltageAlert      float64 `json:"high_voltage_alert"`
	VoltageImbalanceAlert float64 `json:"voltage_imbalance_alert"`
	MinPhaseAngleAlert    float64 `json:"min_phase_angle_alert"`
	MaxPhaseAngleAlert    float64 `json:"max_phase_angle_alert"`
	OverTemperatureAlert  float64 `json:"over_temperature_alert"`

	LowVoltageRecovery  float64 `json:"low_voltage_recovery"`
	HighVoltageRecovery float64 `json:"high_voltage_recovery"`

	// FltEn is a boolean stored as 0/1, the way the device reports it.
	FltEn float64 `json:"flt_en"`

	SeedTime          float64 `json:"seed_time"`
	StartTimingOffset float64 `json:"start_timing_offset"`

	UGainR float64 `json:"u_gain_r"`
	UGainY float64 `json:"u_gain_y"`
	UGainB float64 `json:"u_gain_b"`
	IGainR float64 `json:"i_gain_r"`
	IGainY float64 `json:"i_gain_y"`
	IGainB float64 `json:"i_gain_b"`

	CurrentMultiplier float64 `json:"current_multiplier"`

	CapableMotors int `json:"capable_motors"`

	// MotorSpecificLimits is index-addressed: index 0 is Motor 1, index 1 is
	// Motor 2. Entries at index >= CapableMotors are ignored downstream.
	MotorSpecificLimits []MotorSettings `gorm:"foreignKey:DeviceID;references:DeviceID" json:"motor_specific_limits"`
}

// MotorSettings holds per-motor tunables. The fault/alert thresholds other
// than OutputPhaseFailure are stored as absolute amperes once persisted, but
// arrive from the edit surface as percentages of the motor's effective full
// load current. Nil means the server has never stored a value for the field.
type MotorSettings struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	DeviceID   string `gorm:"index" json:"-"`
	MotorIndex int    `json:"motor_index"`

	HP              float64 `json:"hp"`
	FullLoadCurrent float64 `json:"full_load_current"`

	DryRunFault           *float64 `json:"dry_run_fault"`
	OverLoadFault         *float64 `json:"over_load_fault"`
	LockedRotorFault      *float64 `json:"locked_rotor_fault"`
	CurrentImbalanceFault *float64 `json:"current_imbalance_fault"`
	OutputPhaseFailure    *float64 `json:"output_phase_failure"`

	DryRunAlert           *float64 `json:"dry_run_alert"`
	OverLoadAlert         *float64 `json:"over_load_alert"`
	LockedRotorAlert      *float64 `json:"locked_rotor_alert"`
	CurrentImbalanceAlert *float64 `json:"current_imbalance_alert"`

	OverLoadRecovery         *float64 `json:"over_load_recovery"`
	LockedRotorRecovery      *float64 `json:"locked_rotor_recovery"`
	CurrentImbalanceRecovery *float64 `json:"current_imbalance_recovery"`
}

// DeviceSettingsLimits is the flat per-device min/max table. Ranges is keyed
// "<field>_min" / "<field>_max"; a field with no pair is unbounded.
type DeviceSettingsLimits struct {
	DeviceID string            `gorm:"primaryKey" json:"device_id"`
	Ranges   datatypes.JSONMap `json:"ranges"`
}

// SettingsHistoryRecord is the append-only log entry written on every
// successful save. IsNewConfigurationSaved starts at 0 and flips to 1 only
// when the device acknowledges the configuration over the status topic.
type SettingsHistoryRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StarterID string    `gorm:"index" json:"starter_id"`
	Timestamp time.Time `json:"timestamp"`

	Settings datatypes.JSON `json:"settings"`

	IsNewConfigurationSaved int `json:"is_new_configuration_saved"`
}
