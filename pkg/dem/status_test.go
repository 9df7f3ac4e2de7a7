package dem

import (
	"errors"
	"testing"
)

func TestDecode_BitCorrectness(t *testing.T) {
	for v := 0; v <= 0xFF; v++ {
		d, err := Decode(v)
		if err != nil {
			t.Fatalf("Decode(%#02x) error = %v", v, err)
		}
		if len(d.Entries) != 8 {
			t.Fatalf("Decode(%#02x) returned %d entries, want 8", v, len(d.Entries))
		}
		for i := 0; i < 8; i++ {
			want := (v>>i)&1 == 1
			if d.Entries[i].Set != want {
				t.Errorf("Decode(%#02x).Entries[%d].Set = %v, want %v", v, i, d.Entries[i].Set, want)
			}
			if int(d.Entries[i].Def.Bit) != i {
				t.Errorf("Decode(%#02x).Entries[%d] carries bit %d", v, i, d.Entries[i].Def.Bit)
			}
		}
	}
}

func TestDecode_BoundaryValues(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  [8]bool
	}{
		{name: "all clear", value: 0x00, want: [8]bool{}},
		{name: "testFailed only", value: 0x01, want: [8]bool{true}},
		{name: "failed this cycle", value: 0x03, want: [8]bool{true, true}},
		{name: "pending", value: 0x07, want: [8]bool{true, true, true}},
		{name: "confirmed", value: 0x0F, want: [8]bool{true, true, true, true}},
		{name: "all set", value: 0xFF, want: [8]bool{true, true, true, true, true, true, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Decode(tt.value)
			if err != nil {
				t.Fatalf("Decode(%#02x) error = %v", tt.value, err)
			}
			for i := 0; i < 8; i++ {
				if d.Entries[i].Set != tt.want[i] {
					t.Errorf("bit %d = %v, want %v", i, d.Entries[i].Set, tt.want[i])
				}
			}
		})
	}
}

func TestDecode_RangeRejection(t *testing.T) {
	for _, v := range []int{-1, 256, 1000, -255} {
		d, err := Decode(v)
		if err == nil {
			t.Errorf("Decode(%d) did not fail", v)
			continue
		}
		if d != nil {
			t.Errorf("Decode(%d) returned a partial result", v)
		}
		var ise *InvalidStatusError
		if !errors.As(err, &ise) {
			t.Errorf("Decode(%d) error = %T, want *InvalidStatusError", v, err)
		}
	}
}

func TestDecode_Determinism(t *testing.T) {
	for _, v := range []int{0x00, 0x6C, 0xFF} {
		a, err := Decode(v)
		if err != nil {
			t.Fatalf("Decode(%#02x) error = %v", v, err)
		}
		b, _ := Decode(v)
		if a.Status != b.Status {
			t.Errorf("Decode(%#02x) not deterministic", v)
		}
		for i := 0; i < 8; i++ {
			if a.Entries[i].Set != b.Entries[i].Set || a.Entries[i].Def.Bit != b.Entries[i].Def.Bit || a.Entries[i].Def.Name != b.Entries[i].Def.Name {
				t.Errorf("Decode(%#02x) entry %d differs between calls", v, i)
			}
		}
	}
}

func TestParseStatusString(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "6C", want: 0x6C},
		{in: "0x6C", want: 0x6C},
		{in: "0X6C", want: 0x6C},
		{in: " 0x01 ", want: 0x01},
		{in: "ff", want: 0xFF},
		{in: "0", want: 0x00},
		{in: "", wantErr: true},
		{in: "0x", wantErr: true},
		{in: "100", wantErr: true},
		{in: "zz", wantErr: true},
		{in: "-1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatusString(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatusString(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				var ise *InvalidStatusError
				if !errors.As(err, &ise) {
					t.Errorf("ParseStatusString(%q) error = %T, want *InvalidStatusError", tt.in, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseStatusString(%q) = %#02x, want %#02x", tt.in, uint8(got), uint8(tt.want))
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{status: 0x00, want: "none"},
		{status: 0x01, want: "TF"},
		{status: 0x29, want: "TF|CDTC|TFSLC"},
		{status: 0xFF, want: "TF|TFTOC|PDTC|CDTC|TNCSLC|TFSLC|TNCTOC|WIR"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%#02x).String() = %q, want %q", uint8(tt.status), got, tt.want)
		}
	}
}

func TestStatus_Binary(t *testing.T) {
	if got := Status(0x6C).Binary(); got != "01101100" {
		t.Errorf("Binary() = %q, want %q", got, "01101100")
	}
}

func TestDecoded_SetBits(t *testing.T) {
	d := Status(0x89).Decode() // WIR, CDTC, TF
	got := d.SetBits()
	if len(got) != 3 {
		t.Fatalf("SetBits() returned %d entries, want 3", len(got))
	}
	wantOrder := []Bit{WarningIndicatorRequested, ConfirmedDTC, TestFailed}
	for i, e := range got {
		if e.Def.Bit != wantOrder[i] {
			t.Errorf("SetBits()[%d] = bit %d, want %d", i, e.Def.Bit, wantOrder[i])
		}
	}
}
