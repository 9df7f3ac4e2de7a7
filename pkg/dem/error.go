package dem

import "fmt"

// InvalidStatusError is returned when a value outside 0x00-0xFF, or input
// that does not parse as one, is offered as a DTC status byte. The value
// is never clamped or truncated.
type InvalidStatusError struct {
	Value int
	Input string
}

func (e *InvalidStatusError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("invalid DTC status byte %q, expected a hex value between 0x00 and 0xFF", e.Input)
	}
	return fmt.Sprintf("invalid DTC status byte %d, expected a value between 0 and 255", e.Value)
}

// BitIndexError is returned by Lookup for bit positions outside 0-7.
type BitIndexError struct {
	Index int
}

func (e *BitIndexError) Error() string {
	return fmt.Sprintf("bit index %d out of range, a DTC status byte has bits 0-7", e.Index)
}
