package bankbook

import (
	"testing"
	"time"
)

func TestDate_Sub(t *testing.T) {
	testCases := []struct {
		d, x Date
		want int
	}{
		{d: NewDate(2025, time.June, 15), x: NewDate(2025, time.June, 15), want: 0},
		{d: NewDate(2025, time.June, 16), x: NewDate(2025, time.June, 15), want: 1},
		{d: NewDate(2025, time.June, 14), x: NewDate(2025, time.June, 15), want: -1},
		{d: NewDate(2025, time.June, 15), x: NewDate(2024, time.June, 15), want: 365},
		// 2024 is a leap year, so a full calendar year spans 366 days.
		{d: NewDate(2024, time.June, 15), x: NewDate(2023, time.June, 15), want: 366},
	}
	for _, tc := range testCases {
		if got := tc.d.Sub(tc.x); got != tc.want {
			t.Errorf("%s.Sub(%s) = %d, want %d", tc.d, tc.x, got, tc.want)
		}
	}
}

func TestDate_Add_Normalizes(t *testing.T) {
	if got, want := NewDate(2025, time.January, 31).Add(1), NewDate(2025, time.February, 1); got != want {
		t.Errorf("Add(1) = %s, want %s", got, want)
	}
	if got, want := NewDate(2024, time.June, 15).Add(365), NewDate(2025, time.June, 15); got != want {
		t.Errorf("Add(365) = %s, want %s", got, want)
	}
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{input: "2025-06-15", want: NewDate(2025, time.June, 15)},
		{input: "2025-6-1", want: NewDate(2025, time.June, 1)},
		{input: " 2025-06-15 ", want: NewDate(2025, time.June, 15)},
		{input: "15/06/2025", wantErr: true},
		{input: "not a date", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %s, want an error", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) returned an unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(NewDate(2025, time.June, 1), NewDate(2025, time.June, 30))

	if !r.Contains(NewDate(2025, time.June, 1)) || !r.Contains(NewDate(2025, time.June, 30)) {
		t.Error("Contains() excludes the boundaries")
	}
	if r.Contains(NewDate(2025, time.May, 31)) || r.Contains(NewDate(2025, time.July, 1)) {
		t.Error("Contains() includes dates outside the range")
	}

	// Swapped bounds are normalized.
	swapped := NewRange(NewDate(2025, time.June, 30), NewDate(2025, time.June, 1))
	if swapped != r {
		t.Errorf("NewRange(swapped) = %+v, want %+v", swapped, r)
	}
}

func TestPeriod_Range(t *testing.T) {
	d := NewDate(2025, time.June, 15) // a Sunday

	testCases := []struct {
		period   Period
		from, to Date
	}{
		{period: Daily, from: d, to: d},
		{period: Weekly, from: NewDate(2025, time.June, 9), to: NewDate(2025, time.June, 15)},
		{period: Monthly, from: NewDate(2025, time.June, 1), to: NewDate(2025, time.June, 30)},
		{period: Quarterly, from: NewDate(2025, time.April, 1), to: NewDate(2025, time.June, 30)},
		{period: Yearly, from: NewDate(2025, time.January, 1), to: NewDate(2025, time.December, 31)},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			got := tc.period.Range(d)
			if got.From != tc.from || got.To != tc.to {
				t.Errorf("Range(%s) = [%s, %s], want [%s, %s]", d, got.From, got.To, tc.from, tc.to)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	for input, want := range map[string]Period{
		"daily": Daily, "week": Weekly, "Monthly": Monthly, "quarter": Quarterly, " yearly ": Yearly,
	} {
		got, err := ParsePeriod(input)
		if err != nil || got != want {
			t.Errorf("ParsePeriod(%q) = %v, %v, want %v", input, got, err, want)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Error("ParsePeriod(fortnight) did not fail")
	}
}
