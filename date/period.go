package date

import (
	"fmt"
	"strings"
)

// Period is a calendar period an accounting window can span.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

// periodNames holds, for each period, its name and the unit accepted as an alias.
var periodNames = [...][2]string{
	Daily:     {"daily", "day"},
	Weekly:    {"weekly", "week"},
	Monthly:   {"monthly", "month"},
	Quarterly: {"quarterly", "quarter"},
	Yearly:    {"yearly", "year"},
}

func (p Period) String() string {
	if p < Daily || p > Yearly {
		panic(fmt.Sprintf("unknown period %d", p))
	}
	return periodNames[p][0]
}

// Unit returns the name of one such period: "month" for Monthly.
func (p Period) Unit() string { return periodNames[p][1] }

// PeriodNames returns the names ParsePeriod accepts, units excluded, shortest period first.
func PeriodNames() []string {
	names := make([]string, len(periodNames))
	for i, n := range periodNames {
		names[i] = n[0]
	}
	return names
}

// ParsePeriod reads a period by name ("monthly") or unit ("month"), ignoring case.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, n := range periodNames {
		if s == n[0] || s == n[1] {
			return Period(p), nil
		}
	}
	return Daily, fmt.Errorf("unknown period %q, want one of %s", s, strings.Join(PeriodNames(), ", "))
}
