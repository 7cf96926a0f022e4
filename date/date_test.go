package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestDaysInclusive(t *testing.T) {
	testCases := []struct {
		name       string
		start, end Date
		want       int
	}{
		{"same day", New(2025, 1, 10), New(2025, 1, 10), 1},
		{"ten day window", New(2025, 1, 1), New(2025, 1, 10), 10},
		{"across month end", New(2025, 1, 30), New(2025, 2, 2), 4},
		{"across leap day", New(2024, 2, 28), New(2024, 3, 1), 3},
		{"start after end", New(2025, 1, 11), New(2025, 1, 10), 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysInclusive(tc.start, tc.end); got != tc.want {
				t.Errorf("DaysInclusive(%v, %v) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-01-10", New(2025, time.January, 10), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{" 2025-07-01 ", New(2025, time.July, 1), false},
		{"2025-07-01T15:04:05Z", New(2025, time.July, 1), false},
		{"10/01/2025", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate_JSON(t *testing.T) {
	var got struct {
		On Date `json:"on"`
	}
	if err := json.Unmarshal([]byte(`{"on":"2025-3-4"}`), &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if got.On != New(2025, 3, 4) {
		t.Errorf("json.Unmarshal() = %v, want 2025-03-04", got.On)
	}
	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"on":"2025-03-04"}` {
		t.Errorf("json.Marshal() = %s", data)
	}
}
