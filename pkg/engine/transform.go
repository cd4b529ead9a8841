package engine

import (
	"encoding/json"
	"fmt"
	"math"
)

// Default percentage thresholds applied when neither an edit nor a stored
// absolute value exists for a motor threshold.
const (
	DefaultDryRunFaultPct           = 50
	DefaultOverLoadFaultPct         = 120
	DefaultLockedRotorFaultPct      = 400
	DefaultCurrentImbalanceFaultPct = 30

	DefaultDryRunAlertPct           = 60
	DefaultOverLoadAlertPct         = 110
	DefaultLockedRotorAlertPct      = 300
	DefaultCurrentImbalanceAlertPct = 20
)

// AmpsPerHorsepower seeds a default full load current from the motor's rated
// horsepower when no usable FLC is stored or entered. Rule-of-thumb figure
// for 3-phase 415V induction motors.
const AmpsPerHorsepower = 1.5

// calculateFLC resolves the effective full load current for one motor. The
// edited (or stored) FLC wins when usable; otherwise hp seeds a default.
// hp always comes from the server snapshot, horsepower is not user-editable.
func calculateFLC(hp float64, editedFLC float64) float64 {
	if editedFLC > 0 {
		return editedFLC
	}
	return hp * AmpsPerHorsepower
}

// convertPercentageToValue turns a percentage-of-FLC threshold into absolute
// amperes. An edit arrives as a percentage and is recomputed against the
// effective FLC; an unedited threshold keeps the server's already-absolute
// value untouched. Only when neither exists is the default percentage applied.
func convertPercentageToValue(pctOverride *float64, flc float64, absoluteFallback *float64, defaultPct float64) float64 {
	if pctOverride != nil {
		return *pctOverride / 100.0 * flc
	}
	if absoluteFallback != nil {
		return *absoluteFallback
	}
	return defaultPct / 100.0 * flc
}

// formatNumber is the NaN-safe normalization every numeric payload value
// passes through: two decimal places, non-finite values collapse to 0.
func formatNumber(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}

// motorResolved carries one motor's fully resolved absolute values, shared
// between the wire payload and the persisted settings record.
type motorResolved struct {
	FLC float64

	FaultDR  float64
	FaultOL  float64
	FaultLR  float64
	FaultCI  float64
	FaultOPF *float64

	AlertDR float64
	AlertOL float64
	AlertLR float64
	AlertCI float64

	RecOL *float64
	RecLR *float64
	RecCI *float64
}

// resolveMotor computes the effective FLC and converts every percentage
// threshold for the motor at the given index.
func resolveMotor(buf *EditBuffer, snap *Snapshot, motorIndex int) motorResolved {
	server := snap.Motors[motorIndex]

	hp := server[MotorFieldHP]

	editedFLC := 0.0
	if v, ok := buf.MotorNumber(motorIndex, MotorFieldFullLoadCurrent); ok {
		editedFLC = v
	} else if v, ok := server[MotorFieldFullLoadCurrent]; ok {
		editedFLC = v
	}
	flc := calculateFLC(hp, editedFLC)

	pct := func(field string) *float64 {
		if v, ok := buf.MotorNumber(motorIndex, field); ok {
			return &v
		}
		return nil
	}
	abs := func(field string) *float64 {
		if v, ok := server[field]; ok {
			return &v
		}
		return nil
	}
	// absolute fields: edit wins, then server, else absent
	effAbs := func(field string) *float64 {
		if v, ok := buf.MotorNumber(motorIndex, field); ok {
			return &v
		}
		return abs(field)
	}

	return motorResolved{
		FLC: flc,

		FaultDR:  convertPercentageToValue(pct(MotorFieldDryRunFault), flc, abs(MotorFieldDryRunFault), DefaultDryRunFaultPct),
		FaultOL:  convertPercentageToValue(pct(MotorFieldOverLoadFault), flc, abs(MotorFieldOverLoadFault), DefaultOverLoadFaultPct),
		FaultLR:  convertPercentageToValue(pct(MotorFieldLockedRotorFault), flc, abs(MotorFieldLockedRotorFault), DefaultLockedRotorFaultPct),
		FaultCI:  convertPercentageToValue(pct(MotorFieldCurrentImbalanceFault), flc, abs(MotorFieldCurrentImbalanceFault), DefaultCurrentImbalanceFaultPct),
		FaultOPF: effAbs(MotorFieldOutputPhaseFailure),

		AlertDR: convertPercentageToValue(pct(MotorFieldDryRunAlert), flc, abs(MotorFieldDryRunAlert), DefaultDryRunAlertPct),
		AlertOL: convertPercentageToValue(pct(MotorFieldOverLoadAlert), flc, abs(MotorFieldOverLoadAlert), DefaultOverLoadAlertPct),
		AlertLR: convertPercentageToValue(pct(MotorFieldLockedRotorAlert), flc, abs(MotorFieldLockedRotorAlert), DefaultLockedRotorAlertPct),
		AlertCI: convertPercentageToValue(pct(MotorFieldCurrentImbalanceAlert), flc, abs(MotorFieldCurrentImbalanceAlert), DefaultCurrentImbalanceAlertPct),

		RecOL: effAbs(MotorFieldOverLoadRecovery),
		RecLR: effAbs(MotorFieldLockedRotorRecovery),
		RecCI: effAbs(MotorFieldCurrentImbalanceRecovery),
	}
}

func (m motorResolved) payload() map[string]any {
	flt := map[string]any{
		"dr": formatNumber(m.FaultDR),
		"ol": formatNumber(m.FaultOL),
		"lr": formatNumber(m.FaultLR),
		"ci": formatNumber(m.FaultCI),
	}
	if m.FaultOPF != nil {
		flt["opf"] = formatNumber(*m.FaultOPF)
	}

	alt := map[string]any{
		"dr": formatNumber(m.AlertDR),
		"ol": formatNumber(m.AlertOL),
		"lr": formatNumber(m.AlertLR),
		"ci": formatNumber(m.AlertCI),
	}

	rec := map[string]any{}
	if m.RecOL != nil {
		rec["ol"] = formatNumber(*m.RecOL)
	}
	if m.RecLR != nil {
		rec["lr"] = formatNumber(*m.RecLR)
	}
	if m.RecCI != nil {
		rec["ci"] = formatNumber(*m.RecCI)
	}

	return map[string]any{
		"flc": formatNumber(m.FLC),
		"flt": flt,
		"alt": alt,
		"rec": rec,
	}
}

// topLevelWireKeys maps long settings field names to the device's short
// protocol keys. Timing fields are handled separately (seconds -> ms).
var topLevelWireKeys = []struct {
	field string
	key   string
}{
	{FieldPhaseFailureFault, "ipf"},
	{FieldLowVoltageFault, "lvf"},
	{FieldHighVoltageFault, "hvf"},
	{FieldVoltageImbalanceFault, "vif"},
	{FieldMinPhaseAngleFault, "paminf"},
	{FieldMaxPhaseAngleFault, "pamaxf"},
	{FieldOverTemperatureFault, "otf"},

	{FieldPhaseFailureAlert, "pfa"},
	{FieldLowVoltageAlert, "lva"},
	{FieldHighVoltageAlert, "hva"},
	{FieldVoltageImbalanceAlert, "via"},
	{FieldMinPhaseAngleAlert, "pamina"},
	{FieldMaxPhaseAngleAlert, "pamaxa"},
	{FieldOverTemperatureAlert, "ota"},

	{FieldLowVoltageRecovery, "lvr"},
	{FieldHighVoltageRecovery, "hvr"},

	{FieldUGainR, "ug_r"},
	{FieldUGainY, "ug_y"},
	{FieldUGainB, "ug_b"},
	{FieldIGainR, "ig_r"},
	{FieldIGainY, "ig_y"},
	{FieldIGainB, "ig_b"},

	{FieldCurrentMultiplier, "am"},
	{FieldFltEn, "flt_en"},
}

// BuildDevicePayload assembles the wire object published to the device.
// Every numeric value passes through formatNumber; timing fields convert
// seconds to milliseconds; m2 only exists on two-motor starters; keys with
// no value are simply absent, never null.
func BuildDevicePayload(buf *EditBuffer, snap *Snapshot) map[string]any {
	eff := EffectiveView(buf, snap)

	p := map[string]any{}

	for _, wire := range topLevelWireKeys {
		if v, ok := eff.Number(wire.field); ok {
			p[wire.key] = formatNumber(v)
		}
	}

	if v, ok := eff.Number(FieldSeedTime); ok {
		p["st"] = formatNumber(v * 1000)
	}
	if v, ok := eff.Number(FieldStartTimingOffset); ok {
		p["sto"] = formatNumber(v * 1000)
	}

	if snap.SerialNumber != "" {
		p["sn"] = snap.SerialNumber
	}
	p["d_id"] = snap.DeviceID
	p["n_mtr"] = snap.CapableMotors

	p["m1"] = resolveMotor(buf, snap, 0).payload()
	if snap.CapableMotors == 2 {
		p["m2"] = resolveMotor(buf, snap, 1).payload()
	}

	return stripNulls(p)
}

// stripNulls drops nil values recursively; the wire payload never carries
// null entries.
func stripNulls(m map[string]any) map[string]any {
	for key, value := range m {
		if value == nil {
			delete(m, key)
			continue
		}
		if nested, ok := value.(map[string]any); ok {
			m[key] = stripNulls(nested)
		}
	}
	return m
}

// MarshalPayload serializes the payload the way the device expects it:
// pretty-printed JSON with 2-space indent.
func MarshalPayload(p map[string]any) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayload, err)
	}
	return data, nil
}
