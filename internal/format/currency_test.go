package format

import "testing"

func TestPounds(t *testing.T) {
	tests := []struct {
		name  string
		pence int64
		want  string
	}{
		{name: "zero", pence: 0, want: "£0.00"},
		{name: "under a pound", pence: 45, want: "£0.45"},
		{name: "plain", pence: 84_000, want: "£840.00"},
		{name: "thousands grouped", pence: 123_456, want: "£1,234.56"},
		{name: "millions grouped", pence: 1_234_567_89, want: "£1,234,567.89"},
		{name: "negative", pence: -9_99, want: "-£9.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pounds(tt.pence); got != tt.want {
				t.Fatalf("Pounds(%d) = %q, want %q", tt.pence, got, tt.want)
			}
		})
	}
}

func TestPoundsCompact(t *testing.T) {
	tests := []struct {
		name  string
		pence int64
		want  string
	}{
		{name: "small", pence: 84_000, want: "£840"},
		{name: "thousands", pence: 2_500_00, want: "£2.5k"},
		{name: "millions", pence: 1_200_000_00, want: "£1.2m"},
		{name: "pence dropped", pence: 99, want: "£0"},
		{name: "negative thousands", pence: -1_500_00, want: "-£1.5k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PoundsCompact(tt.pence); got != tt.want {
				t.Fatalf("PoundsCompact(%d) = %q, want %q", tt.pence, got, tt.want)
			}
		})
	}
}

func TestParsePounds(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "symbol and separators", raw: "£1,234.56", want: 123_456},
		{name: "bare integer", raw: "950", want: 95_000},
		{name: "one decimal place", raw: "1234.5", want: 123_450},
		{name: "negative", raw: "-£9.99", want: -999},
		{name: "leading dot", raw: ".50", want: 50},
		{name: "too many decimals", raw: "1.234", wantErr: true},
		{name: "not a number", raw: "about £50", wantErr: true},
		{name: "empty", raw: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePounds(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePounds(%q) expected error, got %d", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePounds(%q) returned error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("ParsePounds(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPoundsParseRoundTrip(t *testing.T) {
	for _, pence := range []int64{0, 45, 84_000, 123_456, 1_234_567_89} {
		got, err := ParsePounds(Pounds(pence))
		if err != nil {
			t.Fatalf("round trip %d: %v", pence, err)
		}
		if got != pence {
			t.Fatalf("round trip %d = %d", pence, got)
		}
	}
}
