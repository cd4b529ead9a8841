package engine

import (
	"strconv"
)

// MissingValue is the display sentinel for a field neither edited locally
// nor present in the server snapshot.
const MissingValue = "-"

type InputKind int

const (
	KindNumber InputKind = iota
	KindText
)

// RawInput keeps in-progress typing alive: "1." must survive until the user
// finishes "1.5", so non-coercible input is held as text and only resolved
// to a number at validation/save time.
type RawInput struct {
	Kind   InputKind
	Number float64
	Text   string
}

func NumberInput(v float64) RawInput {
	return RawInput{Kind: KindNumber, Number: v}
}

func TextInput(s string) RawInput {
	return RawInput{Kind: KindText, Text: s}
}

// Num resolves the input to a canonical number. Text resolves through
// ParseFloat; the second return is false when it cannot be resolved.
func (r RawInput) Num() (float64, bool) {
	if r.Kind == KindNumber {
		return r.Number, true
	}
	v, err := strconv.ParseFloat(r.Text, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (r RawInput) Display() string {
	if r.Kind == KindText {
		return r.Text
	}
	return strconv.FormatFloat(r.Number, 'f', -1, 64)
}

// EditBuffer is the partial overlay of unsaved edits over the server
// snapshot. It is owned by exactly one panel session and never persisted.
type EditBuffer struct {
	fields map[string]RawInput
	motors [MaxMotors]map[string]RawInput
}

func NewEditBuffer() *EditBuffer {
	b := &EditBuffer{fields: make(map[string]RawInput)}
	for i := 0; i < MaxMotors; i++ {
		b.motors[i] = make(map[string]RawInput)
	}
	return b
}

// SetField stores the parsed number when the input is numeric-coercible and
// the raw text otherwise. flt_en is flag-like and always coerces to a number.
func (b *EditBuffer) SetField(field string, raw string) {
	b.fields[field] = coerce(field, raw)
}

func (b *EditBuffer) SetMotorField(motorIndex int, field string, raw string) {
	if motorIndex < 0 || motorIndex >= MaxMotors {
		return
	}
	b.motors[motorIndex][field] = coerce(field, raw)
}

func coerce(field string, raw string) RawInput {
	if field == FieldFltEn {
		v, _ := strconv.ParseFloat(raw, 64)
		return NumberInput(v)
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return NumberInput(v)
	}
	return TextInput(raw)
}

func (b *EditBuffer) Field(field string) (RawInput, bool) {
	v, ok := b.fields[field]
	return v, ok
}

func (b *EditBuffer) MotorField(motorIndex int, field string) (RawInput, bool) {
	if motorIndex < 0 || motorIndex >= MaxMotors {
		return RawInput{}, false
	}
	v, ok := b.motors[motorIndex][field]
	return v, ok
}

// MotorNumber resolves an edited motor field to a number; absent or
// unresolvable edits return false so callers can fall back to server truth.
func (b *EditBuffer) MotorNumber(motorIndex int, field string) (float64, bool) {
	raw, ok := b.MotorField(motorIndex, field)
	if !ok {
		return 0, false
	}
	return raw.Num()
}

func (b *EditBuffer) Clone() *EditBuffer {
	clone := NewEditBuffer()
	for k, v := range b.fields {
		clone.fields[k] = v
	}
	for i := 0; i < MaxMotors; i++ {
		for k, v := range b.motors[i] {
			clone.motors[i][k] = v
		}
	}
	return clone
}

func (b *EditBuffer) Reset() {
	b.fields = make(map[string]RawInput)
	for i := 0; i < MaxMotors; i++ {
		b.motors[i] = make(map[string]RawInput)
	}
}

// Effective is the merged view: edit buffer over server snapshot, with two
// motor records preallocated even when neither side has motor data.
type Effective struct {
	Fields map[string]RawInput
	Motors [MaxMotors]map[string]RawInput
}

// EffectiveView merges the edit buffer over the snapshot, buffer wins.
func EffectiveView(buf *EditBuffer, snap *Snapshot) *Effective {
	eff := &Effective{Fields: make(map[string]RawInput)}
	for i := 0; i < MaxMotors; i++ {
		eff.Motors[i] = make(map[string]RawInput)
	}

	if snap != nil {
		for field, value := range snap.Fields {
			eff.Fields[field] = NumberInput(value)
		}
		for i := 0; i < MaxMotors; i++ {
			for field, value := range snap.Motors[i] {
				eff.Motors[i][field] = NumberInput(value)
			}
		}
	}

	if buf != nil {
		for field, value := range buf.fields {
			eff.Fields[field] = value
		}
		for i := 0; i < MaxMotors; i++ {
			for field, value := range buf.motors[i] {
				eff.Motors[i][field] = value
			}
		}
	}

	return eff
}

// Display returns what the field should currently show, "-" when absent.
func (e *Effective) Display(field string) string {
	if v, ok := e.Fields[field]; ok {
		return v.Display()
	}
	return MissingValue
}

func (e *Effective) MotorDisplay(motorIndex int, field string) string {
	if motorIndex < 0 || motorIndex >= MaxMotors {
		return MissingValue
	}
	if v, ok := e.Motors[motorIndex][field]; ok {
		return v.Display()
	}
	return MissingValue
}

func (e *Effective) Number(field string) (float64, bool) {
	v, ok := e.Fields[field]
	if !ok {
		return 0, false
	}
	return v.Num()
}

func (e *Effective) MotorNumber(motorIndex int, field string) (float64, bool) {
	if motorIndex < 0 || motorIndex >= MaxMotors {
		return 0, false
	}
	v, ok := e.Motors[motorIndex][field]
	if !ok {
		return 0, false
	}
	return v.Num()
}
