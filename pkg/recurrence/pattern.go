// pkg/recurrence/pattern.go
package recurrence

import (
	"fmt"
	"strings"
	"time"
)

// Type identifies how a pattern spaces its occurrences.
type Type string

const (
	TypeDaily   Type = "daily"
	TypeWeekly  Type = "weekly"
	TypeMonthly Type = "monthly"
	TypeCustom  Type = "custom"
)

// ParseType validates a raw pattern type string
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeDaily, TypeWeekly, TypeMonthly, TypeCustom:
		return Type(s), nil
	default:
		return "", fmt.Errorf("unknown recurrence type %q", s)
	}
}

// Pattern describes a recurring schedule. It is embedded as JSON on both
// tasks and recurring task templates.
//
// Depending on Type either Weekdays or MonthDay is meaningful; the other is
// carried along untouched so partially filled forms round-trip cleanly.
type Pattern struct {
	Type         Type       `json:"type"`
	Interval     int        `json:"interval"`
	Weekdays     []string   `json:"weekdays,omitempty"`
	MonthDay     *int       `json:"month_day,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	MaxInstances *int       `json:"max_instances,omitempty"`
}

// Validate checks the closed type set and the numeric bounds.
func (p *Pattern) Validate() error {
	if p == nil {
		return fmt.Errorf("recurrence pattern is required")
	}
	if _, err := ParseType(string(p.Type)); err != nil {
		return err
	}
	if p.Interval <= 0 {
		return fmt.Errorf("recurrence interval must be positive, got %d", p.Interval)
	}
	if p.MonthDay != nil && (*p.MonthDay < 1 || *p.MonthDay > 31) {
		return fmt.Errorf("month_day must be between 1 and 31, got %d", *p.MonthDay)
	}
	for _, name := range p.Weekdays {
		if _, err := ParseWeekday(name); err != nil {
			return err
		}
	}
	if p.MaxInstances != nil && *p.MaxInstances <= 0 {
		return fmt.Errorf("max_instances must be positive, got %d", *p.MaxInstances)
	}
	return nil
}

// FromLegacy lowers the old scalar recurrence/recurrence_interval pair into a
// structured pattern. The bool reports whether the legacy fields described a
// recurrence at all.
func FromLegacy(legacyType string, legacyInterval int) (*Pattern, bool) {
	if legacyType == "" || legacyType == "none" {
		return nil, false
	}
	t, err := ParseType(legacyType)
	if err != nil {
		return nil, false
	}
	if legacyInterval <= 0 {
		legacyInterval = 1
	}
	return &Pattern{Type: t, Interval: legacyInterval}, true
}

// Normalize returns the single structured shape the scheduler operates on.
// A structured pattern always wins over the legacy scalar fields.
func Normalize(structured *Pattern, legacyType string, legacyInterval int) *Pattern {
	if structured != nil {
		return structured
	}
	p, ok := FromLegacy(legacyType, legacyInterval)
	if !ok {
		return nil
	}
	return p
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday maps a lowercase weekday name to time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	if d, ok := weekdayNames[strings.ToLower(name)]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

// DueOn reports whether a pattern produces an occurrence on asOf.
//
// anchor is the template creation date, used when nothing has been generated
// yet. lastGenerated is the date of the most recent generation, nil if none.
// Only the pattern-specific spacing is evaluated here; activity, end-date,
// instance-cap and same-day guards belong to the caller because they need
// store state.
func DueOn(p *Pattern, anchor time.Time, lastGenerated *time.Time, asOf time.Time) bool {
	if p == nil || p.Interval <= 0 {
		return false
	}
	since := dateOnly(anchor)
	if lastGenerated != nil {
		since = dateOnly(*lastGenerated)
	}
	day := dateOnly(asOf)

	switch p.Type {
	case TypeDaily:
		days := daysBetween(since, day)
		return days >= 0 && days%p.Interval == 0

	case TypeWeekly, TypeCustom:
		if !weekdayMatches(p, since, day) {
			return false
		}
		weeks := weeksBetween(since, day)
		return weeks >= 0 && weeks%p.Interval == 0

	case TypeMonthly:
		if p.MonthDay == nil {
			return false
		}
		if day.Day() != clampMonthDay(*p.MonthDay, day) {
			return false
		}
		months := monthsBetween(since, day)
		return months >= 0 && months%p.Interval == 0
	}
	return false
}

func weekdayMatches(p *Pattern, since, day time.Time) bool {
	if len(p.Weekdays) == 0 {
		// Legacy weekly patterns carry no weekday set; they stay on the
		// weekday of the anchor.
		return day.Weekday() == since.Weekday()
	}
	for _, name := range p.Weekdays {
		if d, err := ParseWeekday(name); err == nil && d == day.Weekday() {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// weeksBetween counts whole weeks between the Monday-anchored weeks
// containing from and to.
func weeksBetween(from, to time.Time) int {
	return daysBetween(weekStart(from), weekStart(to)) / 7
}

func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return t.AddDate(0, 0, -offset)
}

func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// clampMonthDay pulls a requested day-of-month back to the last valid day of
// the month containing ref, so month_day=31 still fires in February.
func clampMonthDay(day int, ref time.Time) int {
	last := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	return day
}
