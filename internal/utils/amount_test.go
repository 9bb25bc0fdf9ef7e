package utils

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"2", 2, false},
		{"1.5", 1.5, false},
		{"1,5", 1.5, false},
		{" 0 ", 0, false},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"NaN", 0, true},
		{"nan", 0, true},
		{"Inf", 0, true},
		{"+Inf", 0, true},
		{"-inf", 0, true},
		{"1e400", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := map[float64]string{2: "2", 1.5: "1.5", 10000: "10000", 0.25: "0.25"}
	for v, want := range tests {
		if got := FormatAmount(v); got != want {
			t.Errorf("FormatAmount(%v) = %q, want %q", v, got, want)
		}
	}
}
