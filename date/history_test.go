package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 7, 1), "25 Jul 1"
	d2, v2 := New(2024, 7, 1), "24 Jul 1"

	// Appending two values in reverse order must keep the history sorted.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[0] != d2 || h.days[1] != d1 {
		t.Errorf("history days = %v want [%v %v]", h.days, d2, d1)
	}
	if h.values[0] != v2 || h.values[1] != v1 {
		t.Errorf("history values = %v want [%v %v]", h.values, v2, v1)
	}

	h.Append(d1, "replaced")
	if got, _ := h.Get(d1); got != "replaced" || h.Len() != 2 {
		t.Errorf("Append() on existing day = %q (len %d) want %q (len 2)", got, h.Len(), "replaced")
	}
}

func TestHistory_Values(t *testing.T) {
	h := new(History[int])
	h.Append(New(2025, 1, 20), 20)
	h.Append(New(2025, 1, 10), 10)
	h.Append(New(2025, 1, 15), 15)

	var got []int
	for _, v := range h.Values() {
		if v == 15 {
			break
		}
		got = append(got, v)
	}
	if len(got) != 1 || got[0] != 10 {
		t.Errorf("Values() stopped at %v want [10]", got)
	}

	if _, ok := h.Get(New(2025, 1, 11)); ok {
		t.Errorf("Get(2025-01-11) found a value on a missing day")
	}
}
