package engine

import (
	"fmt"

	"go.uber.org/zap"
	"pondlink.io/starterbox-settings-service/pkg/common"
)

// Verdict is the aggregate validation result. Validation is all-or-nothing:
// a single offending field fails the whole save.
type Verdict struct {
	IsValid       bool
	InvalidFields []string
}

// Validate checks every effective value against its "<field>_min" /
// "<field>_max" pair. Bounds are inclusive on both ends. A field with no
// pair in the limits table is unbounded and always passes; the empty string
// means "not yet entered" and passes as well. Motor fields are reported
// qualified as "motor_<index+1>.<field>".
func Validate(eff *Effective, limits map[string]float64) Verdict {
	logger := common.GetLoggerWith(
		common.LoggerNameSettingsCore,
		zap.String(common.LoggerFieldSBXCategory, common.LoggerCategorySBXValidate),
	)

	var invalid []string

	for field, raw := range eff.Fields {
		if !checkField(field, raw, limits, logger) {
			invalid = append(invalid, field)
		}
	}

	for i := 0; i < MaxMotors; i++ {
		for field, raw := range eff.Motors[i] {
			if !checkField(field, raw, limits, logger) {
				invalid = append(invalid, fmt.Sprintf("motor_%d.%s", i+1, field))
			}
		}
	}

	return Verdict{IsValid: len(invalid) == 0, InvalidFields: invalid}
}

func checkField(field string, raw RawInput, limits map[string]float64, logger *zap.Logger) bool {
	min, hasMin := limits[field+"_min"]
	max, hasMax := limits[field+"_max"]
	if !hasMin || !hasMax {
		// unbounded field, never a failure
		logger.Debug("No range for field, skipping validation", zap.String("field", field))
		return true
	}

	if raw.Kind == KindText && raw.Text == "" {
		return true
	}

	v, ok := raw.Num()
	if !ok {
		return false
	}

	return v >= min && v <= max
}
