package dem

import (
	"errors"
	"testing"
)

func TestBits_CompletenessAndUniqueness(t *testing.T) {
	defs := Bits()
	if len(defs) != 8 {
		t.Fatalf("Bits() returned %d definitions, want 8", len(defs))
	}
	names := make(map[string]bool)
	abbrs := make(map[string]bool)
	for i, d := range defs {
		if int(d.Bit) != i {
			t.Errorf("Bits()[%d].Bit = %d, not ascending", i, d.Bit)
		}
		if names[d.Name] {
			t.Errorf("duplicate name %q", d.Name)
		}
		if abbrs[d.Abbr] {
			t.Errorf("duplicate abbreviation %q", d.Abbr)
		}
		names[d.Name] = true
		abbrs[d.Abbr] = true
		if d.Name == "" || d.Abbr == "" || d.Intro == "" || d.DescSet == "" || d.DescClear == "" {
			t.Errorf("bit %d has empty display fields", i)
		}
		if len(d.SetConditions) == 0 || len(d.ClearConditions) == 0 {
			t.Errorf("bit %d has no transition conditions", i)
		}
	}
}

func TestBits_NormativeNames(t *testing.T) {
	want := []struct {
		name string
		abbr string
	}{
		{"testFailed", "TF"},
		{"testFailedThisOperationCycle", "TFTOC"},
		{"pendingDTC", "PDTC"},
		{"confirmedDTC", "CDTC"},
		{"testNotCompleteSinceLastClear", "TNCSLC"},
		{"testFailedSinceLastClear", "TFSLC"},
		{"testNotCompletedThisOperationCycle", "TNCTOC"},
		{"warningIndicatorRequested", "WIR"},
	}
	defs := Bits()
	for i, w := range want {
		if defs[i].Name != w.name {
			t.Errorf("bit %d name = %q, want %q", i, defs[i].Name, w.name)
		}
		if defs[i].Abbr != w.abbr {
			t.Errorf("bit %d abbr = %q, want %q", i, defs[i].Abbr, w.abbr)
		}
	}
}

func TestBits_ReturnsCopy(t *testing.T) {
	defs := Bits()
	defs[0].Name = "mutated"
	if Bits()[0].Name != "testFailed" {
		t.Error("Bits() exposes registry state for mutation")
	}
}

func TestLookup(t *testing.T) {
	defs := Bits()
	for i := 0; i < 8; i++ {
		d, err := Lookup(i)
		if err != nil {
			t.Fatalf("Lookup(%d) error = %v", i, err)
		}
		if int(d.Bit) != i {
			t.Errorf("Lookup(%d).Bit = %d", i, d.Bit)
		}
		if d.Name != defs[i].Name {
			t.Errorf("Lookup(%d) = %q, Bits()[%d] = %q", i, d.Name, i, defs[i].Name)
		}
	}
	for _, i := range []int{-1, 8, 255} {
		_, err := Lookup(i)
		if err == nil {
			t.Errorf("Lookup(%d) did not fail", i)
			continue
		}
		var bie *BitIndexError
		if !errors.As(err, &bie) {
			t.Errorf("Lookup(%d) error = %T, want *BitIndexError", i, err)
		}
	}
}

func TestBit_Mask(t *testing.T) {
	for i := Bit(0); i < 8; i++ {
		if i.Mask() != 1<<i {
			t.Errorf("Bit(%d).Mask() = %#02x", i, i.Mask())
		}
	}
}
