package dem

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is a validated DTC status byte.
type Status uint8

// ParseStatus validates v as a DTC status byte.
func ParseStatus(v int) (Status, error) {
	if v < 0 || v > 0xFF {
		return 0, &InvalidStatusError{Value: v}
	}
	return Status(v), nil
}

// ParseStatusString parses a hex status byte as typed by a user, with or
// without 0x prefix, eg. "6C", "0x6C" or "0X6C".
func ParseStatusString(s string) (Status, error) {
	in := strings.TrimSpace(s)
	hs := strings.TrimPrefix(strings.TrimPrefix(in, "0x"), "0X")
	if hs == "" {
		return 0, &InvalidStatusError{Input: s}
	}
	v, err := strconv.ParseUint(hs, 16, 64)
	if err != nil || v > 0xFF {
		return 0, &InvalidStatusError{Value: int(v), Input: s}
	}
	return Status(v), nil
}

// Has reports whether bit b is set.
func (s Status) Has(b Bit) bool {
	return uint8(s)&b.Mask() != 0
}

// Binary returns the zero-padded 8-bit binary representation.
func (s Status) Binary() string {
	return fmt.Sprintf("%08b", uint8(s))
}

// String returns the abbreviations of all set bits joined by pipes,
// eg. "TF|CDTC|TFSLC", or "none" when no bit is set.
func (s Status) String() string {
	if s == 0 {
		return "none"
	}
	var out strings.Builder
	for i := Bit(0); i < 8; i++ {
		if !s.Has(i) {
			continue
		}
		if out.Len() > 0 {
			out.WriteString("|")
		}
		out.WriteString(i.Abbr())
	}
	return out.String()
}

// Entry pairs a bit definition with its state in a decoded status byte.
type Entry struct {
	Def BitDefinition
	Set bool
}

// Decoded is the per-bit breakdown of one status byte. Entries are
// ordered ascending by bit position.
type Decoded struct {
	Status  Status
	Entries [8]Entry
}

// Decode validates v and breaks it down into its 8 status bits.
func Decode(v int) (*Decoded, error) {
	s, err := ParseStatus(v)
	if err != nil {
		return nil, err
	}
	return s.Decode(), nil
}

// Decode breaks the status byte down into its 8 bits.
func (s Status) Decode() *Decoded {
	d := &Decoded{Status: s}
	for i := Bit(0); i < 8; i++ {
		d.Entries[i] = Entry{Def: bitDefinitions[i], Set: s.Has(i)}
	}
	return d
}

// SetBits returns the entries whose bit is set, highest bit first, the
// order in which the detail views present them.
func (d *Decoded) SetBits() []Entry {
	var out []Entry
	for i := 7; i >= 0; i-- {
		if d.Entries[i].Set {
			out = append(out, d.Entries[i])
		}
	}
	return out
}
