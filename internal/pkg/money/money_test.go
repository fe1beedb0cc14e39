package money

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"5000", 500000, false},
		{"5000.5", 500050, false},
		{"5000.50", 500050, false},
		{"0.01", 1, false},
		{"0", 0, false},
		{"-120.25", -12025, false},
		{".50", 50, false},
		{" 1500 ", 150000, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.234", 0, true},
		{"1.2.3", 0, true},
		{"1.-5", 0, true},
		{"--3", 0, true},
		{"1x.00", 0, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{500000, "5000.00"},
		{500050, "5000.50"},
		{1, "0.01"},
		{0, "0.00"},
		{-12025, "-120.25"},
	}

	for _, tt := range tests {
		if got := Format(tt.cents); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 150000, 250000} {
		got, err := Parse(Format(cents))
		if err != nil {
			t.Fatalf("Parse(Format(%d)) error: %v", cents, err)
		}
		if got != cents {
			t.Errorf("round trip %d -> %d", cents, got)
		}
	}
}
