package money

import "testing"

func TestParseMajorUnits(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "95.00", want: 9500},
		{in: "95", want: 9500},
		{in: "0.05", want: 5},
		{in: "100.5", want: 10050},
		{in: "0", want: 0},
		{in: "12.345", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseMajorUnits(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseMajorUnits(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMajorUnits(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseMajorUnits(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatCents(t *testing.T) {
	if got := FormatCents(9500); got != "95.00" {
		t.Fatalf("FormatCents(9500) = %q", got)
	}
	if got := FormatCents(5); got != "0.05" {
		t.Fatalf("FormatCents(5) = %q", got)
	}
	if got := FormatCents(-150); got != "-1.50" {
		t.Fatalf("FormatCents(-150) = %q", got)
	}
}

func TestRoundPct(t *testing.T) {
	if got := RoundPct(10000, 20); got != 2000 {
		t.Fatalf("RoundPct(10000, 20) = %d", got)
	}
	if got := RoundPct(999, 10); got != 100 {
		t.Fatalf("RoundPct(999, 10) = %d, want half-up 100", got)
	}
	if got := RoundPct(0, 50); got != 0 {
		t.Fatalf("RoundPct(0, 50) = %d", got)
	}
}
