package date

import (
	"testing"
	"time"
)

func TestNewRange(t *testing.T) {
	testCases := []struct {
		name   string
		in     Date
		period Period
		want   Range
	}{
		{
			name:   "A Wednesday",
			in:     New(2025, time.September, 10),
			period: Weekly,
			want:   Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)},
		},
		{
			name:   "A leap year",
			in:     New(2024, time.February, 15),
			period: Monthly,
			want:   Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)},
		},
		{
			name:   "Third quarter",
			in:     New(2025, time.August, 20),
			period: Quarterly,
			want:   Range{From: New(2025, time.July, 1), To: New(2025, time.September, 30)},
		},
		{
			name:   "Year",
			in:     New(2025, time.August, 20),
			period: Yearly,
			want:   Range{From: New(2025, time.January, 1), To: New(2025, time.December, 31)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRange(tc.in, tc.period); got != tc.want {
				t.Errorf("NewRange() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRange_Next(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want Range
	}{
		{
			name: "month rolls to next month",
			in:   NewRange(New(2025, time.January, 15), Monthly),
			want: Range{From: New(2025, time.February, 1), To: New(2025, time.February, 28)},
		},
		{
			name: "custom span keeps its length",
			in:   Range{From: New(2025, time.January, 1), To: New(2025, time.January, 10)},
			want: Range{From: New(2025, time.January, 11), To: New(2025, time.January, 20)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Next(); got != tc.want {
				t.Errorf("Next() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		in   Range
		want string
	}{
		{NewRange(New(2025, time.March, 3), Monthly), "2025-03"},
		{NewRange(New(2025, time.March, 3), Quarterly), "2025-Q1"},
		{NewRange(New(2025, time.March, 3), Weekly), "2025-W10"},
		{Range{From: New(2025, 1, 1), To: New(2025, 1, 10)}, "2025-01-01_2025-01-10"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.in.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
	}{
		{"month", Monthly},
		{"Monthly", Monthly},
		{" quarter ", Quarterly},
		{"day", Daily},
		{"yearly", Yearly},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParsePeriod(tt.in)
			if err != nil || p != tt.want {
				t.Errorf("ParsePeriod(%q) = %v, %v want %v", tt.in, p, err, tt.want)
			}
			if again, err := ParsePeriod(p.String()); err != nil || again != p {
				t.Errorf("ParsePeriod(%q) = %v, %v want %v", p.String(), again, err, p)
			}
			if again, err := ParsePeriod(p.Unit()); err != nil || again != p {
				t.Errorf("ParsePeriod(%q) = %v, %v want %v", p.Unit(), again, err, p)
			}
		})
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Error("ParsePeriod(fortnight) expected an error")
	}
}

func TestPeriodNames(t *testing.T) {
	names := PeriodNames()
	if len(names) != 5 || names[0] != "daily" || names[4] != "yearly" {
		t.Errorf("PeriodNames() = %v", names)
	}
}
