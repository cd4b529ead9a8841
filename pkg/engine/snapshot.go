package engine

import (
	"pondlink.io/starterbox-settings-service/pkg/models"
)

// FieldMap is a flat numeric view of a settings record. A key that is absent
// means the server has never stored a value for that field.
type FieldMap map[string]float64

// Snapshot is the engine's read model of the last-fetched server settings.
type Snapshot struct {
	DeviceID      string
	SerialNumber  string
	CapableMotors int

	Fields FieldMap
	Motors [MaxMotors]FieldMap
}

func SnapshotFromModel(m *models.DeviceSettings) *Snapshot {
	snap := &Snapshot{
		DeviceID:      m.DeviceID,
		SerialNumber:  m.SerialNumber,
		CapableMotors: m.CapableMotors,
		Fields: FieldMap{
			FieldPhaseFailureFault:     m.PhaseFailureFault,
			FieldLowVoltageFault:       m.LowVoltageFault,
			FieldHighVoltageFault:      m.HighVoltageFault,
			FieldVoltageImbalanceFault: m.VoltageImbalanceFault,
			FieldMinPhaseAngleFault:    m.MinPhaseAngleFault,
			FieldMaxPhaseAngleFault:    m.MaxPhaseAngleFault,
			FieldOverTemperatureFault:  m.OverTemperatureFault,

			FieldPhaseFailureAlert:     m.PhaseFailureAlert,
			FieldLowVoltageAlert:       m.LowVoltageAlert,
			FieldHighVoltageAlert:      m.HighVoltageAlert,
			FieldVoltageImbalanceAlert: m.VoltageImbalanceAlert,
			FieldMinPhaseAngleAlert:    m.MinPhaseAngleAlert,
			FieldMaxPhaseAngleAlert:    m.MaxPhaseAngleAlert,
			FieldOverTemperatureAlert:  m.OverTemperatureAlert,

			FieldLowVoltageRecovery:  m.LowVoltageRecovery,
			FieldHighVoltageRecovery: m.HighVoltageRecovery,

			FieldFltEn:             m.FltEn,
			FieldSeedTime:          m.SeedTime,
			FieldStartTimingOffset: m.StartTimingOffset,

			FieldUGainR: m.UGainR,
			FieldUGainY: m.UGainY,
			FieldUGainB: m.UGainB,
			FieldIGainR: m.IGainR,
			FieldIGainY: m.IGainY,
			FieldIGainB: m.IGainB,

			FieldCurrentMultiplier: m.CurrentMultiplier,
			FieldCapableMotors:     float64(m.CapableMotors),
		},
	}

	for i := 0; i < MaxMotors; i++ {
		snap.Motors[i] = FieldMap{}
	}

	for i := range m.MotorSpecificLimits {
		if i >= MaxMotors {
			break
		}
		motor := m.MotorSpecificLimits[i]
		fields := FieldMap{
			MotorFieldHP:              motor.HP,
			MotorFieldFullLoadCurrent: motor.FullLoadCurrent,
		}
		putOptional(fields, MotorFieldDryRunFault, motor.DryRunFault)
		putOptional(fields, MotorFieldOverLoadFault, motor.OverLoadFault)
		putOptional(fields, MotorFieldLockedRotorFault, motor.LockedRotorFault)
		putOptional(fields, MotorFieldCurrentImbalanceFault, motor.CurrentImbalanceFault)
		putOptional(fields, MotorFieldOutputPhaseFailure, motor.OutputPhaseFailure)
		putOptional(fields, MotorFieldDryRunAlert, motor.DryRunAlert)
		putOptional(fields, MotorFieldOverLoadAlert, motor.OverLoadAlert)
		putOptional(fields, MotorFieldLockedRotorAlert, motor.LockedRotorAlert)
		putOptional(fields, MotorFieldCurrentImbalanceAlert, motor.CurrentImbalanceAlert)
		putOptional(fields, MotorFieldOverLoadRecovery, motor.OverLoadRecovery)
		putOptional(fields, MotorFieldLockedRotorRecovery, motor.LockedRotorRecovery)
		putOptional(fields, MotorFieldCurrentImbalanceRecovery, motor.CurrentImbalanceRecovery)
		snap.Motors[i] = fields
	}

	return snap
}

func putOptional(fields FieldMap, field string, value *float64) {
	if value != nil {
		fields[field] = *value
	}
}

// LimitsFromModel flattens the JSONMap ranges record into numeric limits.
// Non-numeric entries are dropped, which leaves their field unbounded.
func LimitsFromModel(m *models.DeviceSettingsLimits) map[string]float64 {
	limits := make(map[string]float64)
	if m == nil {
		return limits
	}
	for key, value := range m.Ranges {
		switch v := value.(type) {
		case float64:
			limits[key] = v
		case int:
			limits[key] = float64(v)
		case int64:
			limits[key] = float64(v)
		}
	}
	return limits
}
