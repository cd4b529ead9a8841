package engine

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"pondlink.io/starterbox-settings-service/pkg/common"
	"pondlink.io/starterbox-settings-service/pkg/models"
)

// Panel is one open settings panel for one device. It owns the edit buffer
// for its lifetime; the mutex also acts as the per-device in-flight guard so
// two saves on the same panel cannot interleave publish/persist.
type Panel struct {
	ID       string
	DeviceID string

	mu sync.Mutex

	settings     SettingsSource
	limits       LimitsSource
	pub          Publisher
	titleSources []string

	model  *models.DeviceSettings
	snap   *Snapshot
	ranges map[string]float64

	buf          *EditBuffer
	editBaseline *EditBuffer
	editing      bool
}

// PanelDeps is everything a panel needs besides its device.
type PanelDeps struct {
	Settings SettingsSource
	Limits   LimitsSource
	Pub      Publisher
	// TitleSources is the ordered gateway-title resolution chain,
	// first non-empty wins.
	TitleSources []string
}

// OpenPanel fetches the device's settings and limits and starts a session
// with an empty edit buffer.
func OpenPanel(deviceID string, deps PanelDeps) (*Panel, error) {
	p := &Panel{
		ID:           uuid.NewString(),
		DeviceID:     deviceID,
		settings:     deps.Settings,
		limits:       deps.Limits,
		pub:          deps.Pub,
		titleSources: deps.TitleSources,
		buf:          NewEditBuffer(),
	}
	if err := p.refresh(); err != nil {
		return nil, err
	}
	return p, nil
}

// refresh re-reads server truth and resets the edit buffer to it.
func (p *Panel) refresh() error {
	model, err := p.settings.GetDeviceSettings(p.DeviceID)
	if err != nil {
		return fmt.Errorf("fetch settings: %w", err)
	}

	limits, err := p.limits.GetMinMaxRange(p.DeviceID)
	if err != nil {
		return fmt.Errorf("fetch limits: %w", err)
	}

	p.model = model
	p.snap = SnapshotFromModel(model)
	p.ranges = LimitsFromModel(limits)
	p.buf.Reset()
	return nil
}

// BeginEdit snapshots the current buffer so Cancel can restore it atomically.
func (p *Panel) BeginEdit() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.editing {
		return
	}
	p.editing = true
	p.editBaseline = p.buf.Clone()
}

func (p *Panel) Editing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.editing
}

func (p *Panel) SetField(field string, raw string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.beginEditLocked()
	p.buf.SetField(field, raw)
}

func (p *Panel) SetMotorField(motorIndex int, field string, raw string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.beginEditLocked()
	p.buf.SetMotorField(motorIndex, field, raw)
}

func (p *Panel) beginEditLocked() {
	if !p.editing {
		p.editing = true
		p.editBaseline = p.buf.Clone()
	}
}

// Effective returns the merged view the panel should currently render.
func (p *Panel) Effective() *Effective {
	p.mu.Lock()
	defer p.mu.Unlock()
	return EffectiveView(p.buf, p.snap)
}

func (p *Panel) Ranges() map[string]float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ranges
}

// Validate checks the current effective view against the device's ranges.
func (p *Panel) Validate() Verdict {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Validate(EffectiveView(p.buf, p.snap), p.ranges)
}

// Cancel restores the buffer captured when edit mode was entered and leaves
// edit mode.
func (p *Panel) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.editBaseline != nil {
		p.buf = p.editBaseline.Clone()
	} else {
		p.buf.Reset()
	}
	p.editing = false
}

// Save validates, transforms and publishes the effective settings, then
// persists them. Edit mode is exited whatever the outcome, so the panel can
// never get stuck editing after a failed save.
func (p *Panel) Save() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	defer func() {
		p.editing = false
		p.editBaseline = nil
	}()

	logger := common.GetLoggerWith(
		common.LoggerNameSettingsCore,
		zap.String(common.LoggerFieldSBXCategory, common.LoggerCategorySBXReconcile),
	)

	if p.pub == nil || !p.pub.IsConnected() {
		return ErrNotConnected
	}

	verdict := Validate(EffectiveView(p.buf, p.snap), p.ranges)
	if !verdict.IsValid {
		logger.Warn("Validation failed",
			zap.String("device_id", p.DeviceID),
			zap.Strings("invalid_fields", verdict.InvalidFields))
		return &ValidationError{Fields: verdict.InvalidFields}
	}

	payload := BuildDevicePayload(p.buf, p.snap)
	data, err := MarshalPayload(payload)
	if err != nil {
		return err
	}

	title, err := ResolveGatewayTitle(p.titleSources...)
	if err != nil {
		return err
	}

	persist := p.buildPersistModel()
	err = PublishAndPersist(p.pub, p.DeviceID, ConfigTopic(title), data, func() error {
		return p.settings.SaveDeviceSettings(p.DeviceID, persist)
	})
	if err != nil {
		return err
	}

	// server truth changed, pick it up and drop the buffer
	if err := p.refresh(); err != nil {
		logger.Warn("Refetch after save failed", zap.String("device_id", p.DeviceID), zap.Error(err))
	}

	return nil
}

// Close tears down the panel's publisher connection, best effort.
func (p *Panel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pub != nil {
		p.pub.Close()
	}
}

// buildPersistModel folds the effective edits back into a settings record.
// Motor thresholds are stored as the resolved absolute amperes, which is
// what makes the unedited-threshold fallback coherent on the next load.
func (p *Panel) buildPersistModel() *models.DeviceSettings {
	eff := EffectiveView(p.buf, p.snap)

	out := *p.model
	num := func(field string, fallback float64) float64 {
		if v, ok := eff.Number(field); ok {
			return v
		}
		return fallback
	}

	out.PhaseFailureFault = num(FieldPhaseFailureFault, out.PhaseFailureFault)
	out.LowVoltageFault = num(FieldLowVoltageFault, out.LowVoltageFault)
	out.HighVoltageFault = num(FieldHighVoltageFault, out.HighVoltageFault)
	out.VoltageImbalanceFault = num(FieldVoltageImbalanceFault, out.VoltageImbalanceFault)
	out.MinPhaseAngleFault = num(FieldMinPhaseAngleFault, out.MinPhaseAngleFault)
	out.MaxPhaseAngleFault = num(FieldMaxPhaseAngleFault, out.MaxPhaseAngleFault)
	out.OverTemperatureFault = num(FieldOverTemperatureFault, out.OverTemperatureFault)

	out.PhaseFailureAlert = num(FieldPhaseFailureAlert, out.PhaseFailureAlert)
	out.LowVoltageAlert = num(FieldLowVoltageAlert, out.LowVoltageAlert)
	out.HighVoltageAlert = num(FieldHighVoltageAlert, out.HighVoltageAlert)
	out.VoltageImbalanceAlert = num(FieldVoltageImbalanceAlert, out.VoltageImbalanceAlert)
	out.MinPhaseAngleAlert = num(FieldMinPhaseAngleAlert, out.MinPhaseAngleAlert)
	out.MaxPhaseAngleAlert = num(FieldMaxPhaseAngleAlert, out.MaxPhaseAngleAlert)
	out.OverTemperatureAlert = num(FieldOverTemperatureAlert, out.OverTemperatureAlert)

	out.LowVoltageRecovery = num(FieldLowVoltageRecovery, out.LowVoltageRecovery)
	out.HighVoltageRecovery = num(FieldHighVoltageRecovery, out.HighVoltageRecovery)

	out.FltEn = num(FieldFltEn, out.FltEn)
	out.SeedTime = num(FieldSeedTime, out.SeedTime)
	out.StartTimingOffset = num(FieldStartTimingOffset, out.StartTimingOffset)

	out.UGainR = num(FieldUGainR, out.UGainR)
	out.UGainY = num(FieldUGainY, out.UGainY)
	out.UGainB = num(FieldUGainB, out.UGainB)
	out.IGainR = num(FieldIGainR, out.IGainR)
	out.IGainY = num(FieldIGainY, out.IGainY)
	out.IGainB = num(FieldIGainB, out.IGainB)

	out.CurrentMultiplier = num(FieldCurrentMultiplier, out.CurrentMultiplier)

	motorCount := out.CapableMotors
	if motorCount > MaxMotors {
		motorCount = MaxMotors
	}
	motors := make([]models.MotorSettings, 0, motorCount)
	for i := 0; i < motorCount; i++ {
		var base models.MotorSettings
		if i < len(p.model.MotorSpecificLimits) {
			base = p.model.MotorSpecificLimits[i]
		}
		resolved := resolveMotor(p.buf, p.snap, i)

		base.DeviceID = p.DeviceID
		base.MotorIndex = i
		base.FullLoadCurrent = formatNumber(resolved.FLC)
		base.DryRunFault = ptr(formatNumber(resolved.FaultDR))
		base.OverLoadFault = ptr(formatNumber(resolved.FaultOL))
		base.LockedRotorFault = ptr(formatNumber(resolved.FaultLR))
		base.CurrentImbalanceFault = ptr(formatNumber(resolved.FaultCI))
		base.OutputPhaseFailure = fmtPtr(resolved.FaultOPF)
		base.DryRunAlert = ptr(formatNumber(resolved.AlertDR))
		base.OverLoadAlert = ptr(formatNumber(resolved.AlertOL))
		base.LockedRotorAlert = ptr(formatNumber(resolved.AlertLR))
		base.CurrentImbalanceAlert = ptr(formatNumber(resolved.AlertCI))
		base.OverLoadRecovery = fmtPtr(resolved.RecOL)
		base.LockedRotorRecovery = fmtPtr(resolved.RecLR)
		base.CurrentImbalanceRecovery = fmtPtr(resolved.RecCI)

		motors = append(motors, base)
	}
	out.MotorSpecificLimits = motors

	return &out
}

func ptr(v float64) *float64 {
	return &v
}

func fmtPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return ptr(formatNumber(*v))
}
