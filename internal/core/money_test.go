package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.34", 12.34, true},
		{"12,34", 12.34, true},
		{"12.345", 12.35, true}, // half-up on the third decimal
		{"12.344", 12.34, true},
		{" 7 ", 7, true},
		{"0.01", 0.01, true},
		{"", 0, false},
		{"0", 0, false},
		{"0.00", 0, false},
		{"-3", 0, false},
		{"+3", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"12e3", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("ParseAmount(%q) = %v, %v; want %v, nil", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("ParseAmount(%q) expected error", tc.in)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(42.5); got != "$42.50" {
		t.Fatalf("FormatAmount = %q, want $42.50", got)
	}
	if got := FormatSigned(-42.5); got != "-$42.50" {
		t.Fatalf("FormatSigned = %q, want -$42.50", got)
	}
	if got := FormatSigned(50); got != "+$50.00" {
		t.Fatalf("FormatSigned = %q, want +$50.00", got)
	}
}
