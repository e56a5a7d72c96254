package service

import (
	"errors"
	"time"
)

// Scheduling rule violations. Each maps to one validation message.
var (
	ErrScheduleInvalid       = errors.New("schedule: unparseable date")
	ErrSchedulePast          = errors.New("schedule: in the past")
	ErrScheduleLeadTime      = errors.New("schedule: lead time too short")
	ErrScheduleBusinessHours = errors.New("schedule: outside business hours")
	ErrScheduleSunday        = errors.New("schedule: sunday")
	ErrScheduleSaturday      = errors.New("schedule: saturday afternoon")
)

const scheduleInputLayout = "2006-01-02T15:04"

// ScheduleRules validates order scheduling against the store's
// business-hours window.
type ScheduleRules struct {
	// MinLead is the minimum notice between now and the slot.
	MinLead time.Duration
	// OpeningHour..ClosingHour is the acceptable hour-of-day range,
	// both ends inclusive.
	OpeningHour int
	ClosingHour int
	// SaturdayClosingHour caps Saturday slots (exclusive).
	SaturdayClosingHour int
	// Location is the store's timezone for wall-clock rules.
	Location *time.Location
}

// DefaultScheduleRules returns the store's standard window: 2h lead,
// 8h to 18h, Saturdays only before 12h, closed on Sundays.
func DefaultScheduleRules(loc *time.Location) ScheduleRules {
	if loc == nil {
		loc = time.Local
	}
	return ScheduleRules{
		MinLead:             2 * time.Hour,
		OpeningHour:         8,
		ClosingHour:         18,
		SaturdayClosingHour: 12,
		Location:            loc,
	}
}

// Parse reads a scheduling input in datetime-local form
// ("2006-01-02T15:04", interpreted in the store timezone) or RFC3339.
func (r ScheduleRules) Parse(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(scheduleInputLayout, s, r.Location); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(r.Location), nil
	}
	return time.Time{}, ErrScheduleInvalid
}

// Validate checks a slot against every rule and returns the first
// violation in rule order.
func (r ScheduleRules) Validate(slot, now time.Time) error {
	slot = slot.In(r.Location)

	if slot.Before(now) {
		return ErrSchedulePast
	}
	if slot.Sub(now) < r.MinLead {
		return ErrScheduleLeadTime
	}
	if hour := slot.Hour(); hour < r.OpeningHour || hour > r.ClosingHour {
		return ErrScheduleBusinessHours
	}
	switch slot.Weekday() {
	case time.Sunday:
		return ErrScheduleSunday
	case time.Saturday:
		if slot.Hour() >= r.SaturdayClosingHour {
			return ErrScheduleSaturday
		}
	}
	return nil
}
