package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateArithmetic(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	end := NewDate(2024, time.January, 31)

	if got := start.DaysUntil(end); got != 30 {
		t.Errorf("DaysUntil: expected 30, got %d", got)
	}
	if got := start.AddDays(14); !got.Equal(NewDate(2024, time.January, 15)) {
		t.Errorf("AddDays: got %s", got)
	}
	if start.Weekday() != time.Monday {
		t.Errorf("Jan 1 2024 should be a Monday, got %s", start.Weekday())
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.September, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-09-01"` {
		t.Errorf("expected ISO date string, got %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip mismatch: %s vs %s", back, d)
	}
}

func TestDateAtCombinesTime(t *testing.T) {
	d := NewDate(2024, time.January, 5)
	got := d.At(TimeOfDay{Hour: 13, Minute: 45})
	if got.Hour() != 13 || got.Minute() != 45 || got.Day() != 5 {
		t.Errorf("unexpected instant %v", got)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("08:30")
	if err != nil {
		t.Fatalf("ParseTimeOfDay: %v", err)
	}
	if tod.Minutes() != 510 {
		t.Errorf("expected 510 minutes, got %d", tod.Minutes())
	}
	if tod.String() != "08:30" {
		t.Errorf("expected 08:30, got %s", tod)
	}

	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Error("expected error for out-of-range hour")
	}
}

func TestWeekdaySetRoundTrip(t *testing.T) {
	days := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	s := FormatWeekdays(days)
	if s != "MONDAY,WEDNESDAY,FRIDAY" {
		t.Errorf("unexpected encoding %q", s)
	}

	back, err := ParseWeekdays(s)
	if err != nil {
		t.Fatalf("ParseWeekdays: %v", err)
	}
	if len(back) != 3 || back[0] != time.Monday || back[1] != time.Wednesday || back[2] != time.Friday {
		t.Errorf("round trip mismatch: %v", back)
	}
}

func TestParseWeekdaysEmpty(t *testing.T) {
	days, err := ParseWeekdays("")
	if err != nil {
		t.Fatalf("ParseWeekdays(\"\"): %v", err)
	}
	if len(days) != 0 {
		t.Errorf("expected empty set, got %v", days)
	}
}

func TestISOWeekdayToGo(t *testing.T) {
	cases := map[int]time.Weekday{
		1: time.Monday,
		2: time.Tuesday,
		3: time.Wednesday,
		4: time.Thursday,
		5: time.Friday,
		6: time.Saturday,
		7: time.Sunday,
		0: time.Sunday, // lenient, matches the mobile client
	}
	for in, want := range cases {
		if got := ISOWeekdayToGo(in); got != want {
			t.Errorf("ISOWeekdayToGo(%d): expected %s, got %s", in, want, got)
		}
	}
}
