package live

import "fmt"

// Input bounds checked before any bytes are sent.
const (
	minTempo = 20.0
	maxTempo = 999.0
)

func validateRange(field string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return &ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("%v is outside [%v, %v]", v, lo, hi),
		}
	}
	return nil
}

func validateIndex(field string, v int) error {
	if v < 0 {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("%d is negative", v)}
	}
	return nil
}

// validateInsertIndex allows -1, which Live reads as "append at the end".
func validateInsertIndex(field string, v int) error {
	if v < -1 {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("%d is below -1", v)}
	}
	return nil
}

func validateMIDIValue(field string, v int) error {
	if v < 0 || v > 127 {
		return &ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("%d is outside [0, 127]", v),
		}
	}
	return nil
}

func validateNote(i int, n Note) error {
	if err := validateMIDIValue(fmt.Sprintf("note[%d].pitch", i), n.Pitch); err != nil {
		return err
	}
	if err := validateMIDIValue(fmt.Sprintf("note[%d].velocity", i), n.Velocity); err != nil {
		return err
	}
	if n.Start < 0 {
		return &ValidationError{
			Field:  fmt.Sprintf("note[%d].start", i),
			Reason: fmt.Sprintf("%v is negative", n.Start),
		}
	}
	if n.Duration <= 0 {
		return &ValidationError{
			Field:  fmt.Sprintf("note[%d].duration", i),
			Reason: fmt.Sprintf("%v is not positive", n.Duration),
		}
	}
	return nil
}
