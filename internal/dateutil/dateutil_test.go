package dateutil

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"wednesday", date(2025, time.March, 12), date(2025, time.March, 10)},
		{"monday is its own start", date(2025, time.March, 10), date(2025, time.March, 10)},
		{"sunday belongs to the ending week", date(2025, time.March, 16), date(2025, time.March, 10)},
		{"with time of day", time.Date(2025, time.March, 12, 23, 59, 0, 0, time.Local), date(2025, time.March, 10)},
		{"across month boundary", date(2025, time.April, 2), date(2025, time.March, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.in); !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWeekDates(t *testing.T) {
	dates := WeekDates(date(2025, time.March, 12), 0)

	if !dates[0].Equal(date(2025, time.March, 10)) {
		t.Errorf("monday = %v, want 10/03", dates[0])
	}
	if !dates[6].Equal(date(2025, time.March, 16)) {
		t.Errorf("sunday = %v, want 16/03", dates[6])
	}
	for i := 1; i < 7; i++ {
		if !dates[i].Equal(dates[i-1].AddDate(0, 0, 1)) {
			t.Errorf("dates[%d] is not consecutive: %v after %v", i, dates[i], dates[i-1])
		}
	}
}

func TestWeekDates_Offset(t *testing.T) {
	today := date(2025, time.March, 12)

	next := WeekDates(today, 1)
	if !next[0].Equal(date(2025, time.March, 17)) {
		t.Errorf("next week starts %v, want 17/03", next[0])
	}
	prev := WeekDates(today, -1)
	if !prev[0].Equal(date(2025, time.March, 3)) {
		t.Errorf("previous week starts %v, want 03/03", prev[0])
	}
}

func TestParseMonthDay(t *testing.T) {
	now := date(2025, time.June, 1)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"03/14", date(2025, time.March, 14)},
		{"3/14", date(2025, time.March, 14)},
		{"12/31", date(2025, time.December, 31)},
		{" 07/04 ", date(2025, time.July, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMonthDay(tt.in, now)
			if err != nil {
				t.Fatalf("ParseMonthDay(%q) failed: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseMonthDay(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMonthDay_Invalid(t *testing.T) {
	now := date(2025, time.June, 1)

	for _, in := range []string{"", "14", "14/03/2025", "ab/cd", "13/01", "00/10", "01/32", "02/30", "04/31"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseMonthDay(in, now); !errors.Is(err, ErrInvalidMonthDay) {
				t.Errorf("ParseMonthDay(%q) = %v, want ErrInvalidMonthDay", in, err)
			}
		})
	}
}

func TestMonthBounds(t *testing.T) {
	feb := date(2025, time.February, 15)
	if got := MonthStart(feb); !got.Equal(date(2025, time.February, 1)) {
		t.Errorf("MonthStart = %v", got)
	}
	if got := MonthEnd(feb); !got.Equal(date(2025, time.February, 28)) {
		t.Errorf("MonthEnd = %v", got)
	}
	leap := date(2024, time.February, 15)
	if got := MonthEnd(leap); !got.Equal(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local)) {
		t.Errorf("leap MonthEnd = %v", got)
	}
}
