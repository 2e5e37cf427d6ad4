package task

import (
	"testing"
	"time"
)

func TestParseWeekdayCode(t *testing.T) {
	tests := []struct {
		input string
		want  Weekday
		ok    bool
	}{
		{"mon", Monday, true},
		{"sun", Sunday, true},
		{" wed ", Wednesday, true},
		{"FRI", Friday, true},
		{"monday", 0, false},
		{"xyz", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseWeekdayCode(tc.input)
			if ok != tc.ok || (ok && got != tc.want) {
				t.Errorf("ParseWeekdayCode(%q) = (%v, %v), want (%v, %v)", tc.input, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestFromTime(t *testing.T) {
	tests := []struct {
		input time.Weekday
		want  Weekday
	}{
		{time.Monday, Monday},
		{time.Friday, Friday},
		{time.Saturday, Saturday},
		{time.Sunday, Sunday},
	}

	for _, tc := range tests {
		t.Run(tc.input.String(), func(t *testing.T) {
			if got := FromTime(tc.input); got != tc.want {
				t.Errorf("FromTime(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseDaySpec(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []Weekday
	}{
		{"daily", "daily", []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}},
		{"single day", "mon", []Weekday{Monday}},
		{"multiple days", "mon,wed,fri", []Weekday{Monday, Wednesday, Friday}},
		{"spaces tolerated", " tue , thu ", []Weekday{Tuesday, Thursday}},
		{"unknown codes skipped", "mon,xyz,fri", []Weekday{Monday, Friday}},
		{"duplicates coalesce", "sat,sat", []Weekday{Saturday}},
		{"all unknown", "foo,bar", nil},
		{"empty", "", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseDaySpec(tc.spec).Days()
			if len(got) != len(tc.want) {
				t.Fatalf("ParseDaySpec(%q).Days() = %v, want %v", tc.spec, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("ParseDaySpec(%q).Days() = %v, want %v", tc.spec, got, tc.want)
					break
				}
			}
		})
	}
}

func TestParseDaySpecStrict(t *testing.T) {
	if _, err := ParseDaySpecStrict("mon,xyz"); err == nil {
		t.Error("expected error for unknown code")
	}
	if _, err := ParseDaySpecStrict(""); err == nil {
		t.Error("expected error for empty spec")
	}
	set, err := ParseDaySpecStrict("Daily")
	if err != nil {
		t.Fatalf("ParseDaySpecStrict failed: %v", err)
	}
	if set != AllDays {
		t.Errorf("expected all days, got %v", set.Days())
	}
}

func TestDaySetString(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"daily", "daily"},
		{"wed,mon", "mon,wed"}, // canonical order is Monday first
		{"sun", "sun"},
	}

	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			if got := ParseDaySpec(tc.spec).String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDaySetRoundTrip(t *testing.T) {
	var set DaySet
	set.Add(Tuesday)
	set.Add(Saturday)

	parsed := ParseDaySpec(set.String())
	if parsed != set {
		t.Errorf("round trip changed the set: %v -> %v", set.Days(), parsed.Days())
	}
}
