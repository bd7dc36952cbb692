// pkg/recurrence/pattern_test.go
package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidate(t *testing.T) {
	monthDay := 15
	badDay := 42
	zeroMax := 0

	tests := []struct {
		name    string
		pattern Pattern
		wantErr bool
	}{
		{"valid daily", Pattern{Type: TypeDaily, Interval: 1}, false},
		{"valid weekly with weekdays", Pattern{Type: TypeWeekly, Interval: 2, Weekdays: []string{"monday", "friday"}}, false},
		{"valid monthly", Pattern{Type: TypeMonthly, Interval: 1, MonthDay: &monthDay}, false},
		{"unknown type", Pattern{Type: "fortnightly", Interval: 1}, true},
		{"zero interval", Pattern{Type: TypeDaily, Interval: 0}, true},
		{"negative interval", Pattern{Type: TypeDaily, Interval: -3}, true},
		{"month day out of range", Pattern{Type: TypeMonthly, Interval: 1, MonthDay: &badDay}, true},
		{"unknown weekday", Pattern{Type: TypeWeekly, Interval: 1, Weekdays: []string{"funday"}}, true},
		{"zero max instances", Pattern{Type: TypeDaily, Interval: 1, MaxInstances: &zeroMax}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pattern.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_NilPattern(t *testing.T) {
	var p *Pattern
	assert.Error(t, p.Validate())
}

func TestFromLegacy(t *testing.T) {
	p, ok := FromLegacy("weekly", 2)
	require.True(t, ok)
	assert.Equal(t, TypeWeekly, p.Type)
	assert.Equal(t, 2, p.Interval)

	// Missing interval defaults to 1.
	p, ok = FromLegacy("daily", 0)
	require.True(t, ok)
	assert.Equal(t, 1, p.Interval)

	_, ok = FromLegacy("", 1)
	assert.False(t, ok)

	_, ok = FromLegacy("none", 1)
	assert.False(t, ok)

	_, ok = FromLegacy("sometimes", 1)
	assert.False(t, ok)
}

func TestNormalize_StructuredWins(t *testing.T) {
	structured := &Pattern{Type: TypeMonthly, Interval: 3}
	assert.Same(t, structured, Normalize(structured, "daily", 1))

	legacy := Normalize(nil, "daily", 2)
	require.NotNil(t, legacy)
	assert.Equal(t, TypeDaily, legacy.Type)
	assert.Equal(t, 2, legacy.Interval)

	assert.Nil(t, Normalize(nil, "", 0))
}

func TestDueOn_Daily(t *testing.T) {
	p := &Pattern{Type: TypeDaily, Interval: 3}
	anchor := date(2026, time.March, 2)

	assert.True(t, DueOn(p, anchor, nil, date(2026, time.March, 2)))
	assert.False(t, DueOn(p, anchor, nil, date(2026, time.March, 3)))
	assert.True(t, DueOn(p, anchor, nil, date(2026, time.March, 5)))
	assert.True(t, DueOn(p, anchor, nil, date(2026, time.March, 8)))

	// After a generation the spacing counts from that date instead.
	last := date(2026, time.March, 5)
	assert.False(t, DueOn(p, anchor, &last, date(2026, time.March, 7)))
	assert.True(t, DueOn(p, anchor, &last, date(2026, time.March, 8)))
}

func TestDueOn_WeeklyWithWeekdays(t *testing.T) {
	p := &Pattern{Type: TypeWeekly, Interval: 1, Weekdays: []string{"monday", "wednesday"}}
	anchor := date(2026, time.March, 2) // a Monday

	assert.True(t, DueOn(p, anchor, nil, date(2026, time.March, 2)))  // Monday
	assert.False(t, DueOn(p, anchor, nil, date(2026, time.March, 3))) // Tuesday
	assert.True(t, DueOn(p, anchor, nil, date(2026, time.March, 4)))  // Wednesday
	assert.True(t, DueOn(p, anchor, nil, date(2026, time.March, 9)))  // next Monday
}

func TestDueOn_BiweeklySkipsOffWeeks(t *testing.T) {
	p := &Pattern{Type: TypeWeekly, Interval: 2, Weekdays: []string{"monday"}}
	anchor := date(2026, time.March, 2) // a Monday

	assert.True(t, DueOn(p, anchor, nil, date(2026, time.March, 2)))
	assert.False(t, DueOn(p, anchor, nil, date(2026, time.March, 9)))
	assert.True(t, DueOn(p, anchor, nil, date(2026, time.March, 16)))
}

func TestDueOn_LegacyWeeklyStaysOnAnchorWeekday(t *testing.T) {
	// No weekday set: occurrences stay on the anchor's weekday.
	p := &Pattern{Type: TypeWeekly, Interval: 1}
	anchor := date(2026, time.March, 5) // a Thursday

	assert.True(t, DueOn(p, anchor, nil, date(2026, time.March, 5)))
	assert.False(t, DueOn(p, anchor, nil, date(2026, time.March, 6)))
	assert.True(t, DueOn(p, anchor, nil, date(2026, time.March, 12)))
}

func TestDueOn_Monthly(t *testing.T) {
	day := 15
	p := &Pattern{Type: TypeMonthly, Interval: 1, MonthDay: &day}
	anchor := date(2026, time.January, 15)

	assert.True(t, DueOn(p, anchor, nil, date(2026, time.February, 15)))
	assert.False(t, DueOn(p, anchor, nil, date(2026, time.February, 14)))

	quarterly := &Pattern{Type: TypeMonthly, Interval: 3, MonthDay: &day}
	assert.False(t, DueOn(quarterly, anchor, nil, date(2026, time.February, 15)))
	assert.True(t, DueOn(quarterly, anchor, nil, date(2026, time.April, 15)))
}

func TestDueOn_MonthlyClampsShortMonths(t *testing.T) {
	day := 31
	p := &Pattern{Type: TypeMonthly, Interval: 1, MonthDay: &day}
	anchor := date(2026, time.January, 31)

	// February 2026 has 28 days; the occurrence lands on the last day
	// instead of being skipped.
	assert.True(t, DueOn(p, anchor, nil, date(2026, time.February, 28)))
	assert.False(t, DueOn(p, anchor, nil, date(2026, time.February, 27)))
	assert.True(t, DueOn(p, anchor, nil, date(2026, time.March, 31)))
}

func TestDueOn_MonthlyWithoutMonthDayNeverFires(t *testing.T) {
	p := &Pattern{Type: TypeMonthly, Interval: 1}
	assert.False(t, DueOn(p, date(2026, time.January, 1), nil, date(2026, time.February, 1)))
}

func TestDueOn_CustomBehavesLikeWeekly(t *testing.T) {
	p := &Pattern{Type: TypeCustom, Interval: 1, Weekdays: []string{"saturday", "sunday"}}
	anchor := date(2026, time.March, 2)

	assert.True(t, DueOn(p, anchor, nil, date(2026, time.March, 7)))  // Saturday
	assert.True(t, DueOn(p, anchor, nil, date(2026, time.March, 8)))  // Sunday
	assert.False(t, DueOn(p, anchor, nil, date(2026, time.March, 9))) // Monday
}

func TestDueOn_GuardsBadInput(t *testing.T) {
	assert.False(t, DueOn(nil, time.Now(), nil, time.Now()))
	assert.False(t, DueOn(&Pattern{Type: TypeDaily, Interval: 0}, time.Now(), nil, time.Now()))
	// Dates before the anchor never fire.
	p := &Pattern{Type: TypeDaily, Interval: 1}
	assert.False(t, DueOn(p, date(2026, time.March, 10), nil, date(2026, time.March, 9)))
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("Monday")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d)

	_, err = ParseWeekday("funday")
	assert.Error(t, err)
}
