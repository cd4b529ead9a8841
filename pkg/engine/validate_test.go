package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"pondlink.io/starterbox-settings-service/pkg/common"
	_ "pondlink.io/starterbox-settings-service/pkg/testing"
)

func TestValidateBoundsAreInclusive(t *testing.T) {
	common.SetTestLoggerNop()

	snap := SnapshotFromModel(testSettingsModel(uuid.NewString()))
	limits := map[string]float64{
		"low_voltage_fault_min": 300,
		"low_voltage_fault_max": 400,
	}

	for _, tc := range []struct {
		value string
		valid bool
	}{
		{"300", true},  // exactly min
		{"400", true},  // exactly max
		{"350", true},
		{"299.99", false},
		{"400.01", false},
	} {
		buf := NewEditBuffer()
		buf.SetField(FieldLowVoltageFault, tc.value)

		verdict := Validate(EffectiveView(buf, snap), limits)
		assert.Equal(t, tc.valid, verdict.IsValid, "value %s", tc.value)
		if !tc.valid {
			assert.Contains(t, verdict.InvalidFields, FieldLowVoltageFault)
		}
	}
}

func TestValidateUnboundedFieldAlwaysPasses(t *testing.T) {
	common.SetTestLoggerNop()

	snap := SnapshotFromModel(testSettingsModel(uuid.NewString()))
	buf := NewEditBuffer()
	buf.SetField(FieldOverTemperatureFault, "99999")

	// no limits at all: everything is unbounded
	verdict := Validate(EffectiveView(buf, snap), map[string]float64{})
	assert.True(t, verdict.IsValid)
	assert.Empty(t, verdict.InvalidFields)

	// a half-specified pair is also unbounded
	verdict = Validate(EffectiveView(buf, snap), map[string]float64{
		"over_temperature_fault_min": 0,
	})
	assert.True(t, verdict.IsValid)
}

func TestValidateEmptyStringIsNotYetEntered(t *testing.T) {
	common.SetTestLoggerNop()

	buf := NewEditBuffer()
	buf.SetField(FieldLowVoltageFault, "")

	verdict := Validate(EffectiveView(buf, nil), map[string]float64{
		"low_voltage_fault_min": 300,
		"low_voltage_fault_max": 400,
	})
	assert.True(t, verdict.IsValid)
}

func TestValidateUnparseableTextFails(t *testing.T) {
	common.SetTestLoggerNop()

	buf := NewEditBuffer()
	buf.SetField(FieldLowVoltageFault, "3.5.0")

	verdict := Validate(EffectiveView(buf, nil), map[string]float64{
		"low_voltage_fault_min": 300,
		"low_voltage_fault_max": 400,
	})
	assert.False(t, verdict.IsValid)
	assert.Equal(t, []string{FieldLowVoltageFault}, verdict.InvalidFields)
}

func TestValidateQualifiesMotorFields(t *testing.T) {
	common.SetTestLoggerNop()

	snap := SnapshotFromModel(testSettingsModel(uuid.NewString()))
	limits := map[string]float64{
		"full_load_current_min": 0.5,
		"full_load_current_max": 100,
	}

	buf := NewEditBuffer()
	buf.SetMotorField(0, MotorFieldFullLoadCurrent, "150")
	buf.SetMotorField(1, MotorFieldFullLoadCurrent, "0.1")

	verdict := Validate(EffectiveView(buf, snap), limits)
	assert.False(t, verdict.IsValid)
	assert.ElementsMatch(t,
		[]string{"motor_1.full_load_current", "motor_2.full_load_current"},
		verdict.InvalidFields)
}

func TestValidateAllOrNothing(t *testing.T) {
	common.SetTestLoggerNop()

	snap := SnapshotFromModel(testSettingsModel(uuid.NewString()))
	limits := LimitsFromModel(testLimitsModel(snap.DeviceID))

	buf := NewEditBuffer()
	buf.SetField(FieldLowVoltageFault, "380")       // fine
	buf.SetField(FieldSeedTime, "120")              // out of [0, 60]
	buf.SetMotorField(0, MotorFieldOverLoadFault, "700") // out of [1, 500]

	verdict := Validate(EffectiveView(buf, snap), limits)
	assert.False(t, verdict.IsValid)
	assert.ElementsMatch(t,
		[]string{FieldSeedTime, "motor_1.over_load_fault"},
		verdict.InvalidFields)
}
