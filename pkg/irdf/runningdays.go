package irdf

import (
	"time"

	"golang.org/x/exp/slices"
)

type RunningDay string

const (
	RunningDaySunday    RunningDay = "SUN"
	RunningDayMonday    RunningDay = "MON"
	RunningDayTuesday   RunningDay = "TUE"
	RunningDayWednesday RunningDay = "WED"
	RunningDayThursday  RunningDay = "THU"
	RunningDayFriday    RunningDay = "FRI"
	RunningDaySaturday  RunningDay = "SAT"
)

// Sunday-first, matching time.Weekday numbering.
var runningDayOrder = [7]RunningDay{
	RunningDaySunday,
	RunningDayMonday,
	RunningDayTuesday,
	RunningDayWednesday,
	RunningDayThursday,
	RunningDayFriday,
	RunningDaySaturday,
}

// FlexibleSearchWindowDays is the fixed half-width of the flexible date
// window. Not configurable by the query.
const FlexibleSearchWindowDays = 3

func RunningDayForDate(date time.Time) RunningDay {
	return runningDayOrder[int(date.Weekday())]
}

// RunsOnDate reports whether the train's weekly schedule includes the
// given calendar date. Time-of-day is irrelevant.
func (t *Train) RunsOnDate(date time.Time) bool {
	return slices.Contains(t.RunningDays, RunningDayForDate(date))
}

// ExpandSearchWindow turns a base journey date into the list of candidate
// dates a search should consider. Non-flexible searches get just the base
// date; flexible searches get the seven days from base-3 to base+3 in
// ascending order. All dates are truncated to day granularity.
func ExpandSearchWindow(base time.Time, flexible bool) []time.Time {
	day := TruncateToDay(base)

	if !flexible {
		return []time.Time{day}
	}

	window := make([]time.Time, 0, 2*FlexibleSearchWindowDays+1)
	for offset := -FlexibleSearchWindowDays; offset <= FlexibleSearchWindowDays; offset++ {
		window = append(window, day.AddDate(0, 0, offset))
	}
	return window
}

// AvailableDates returns the dates within the flexible window around base on
// which the train actually runs, ascending.
func (t *Train) AvailableDates(base time.Time) []time.Time {
	var dates []time.Time
	for _, candidate := range ExpandSearchWindow(base, true) {
		if t.RunsOnDate(candidate) {
			dates = append(dates, candidate)
		}
	}
	return dates
}

func TruncateToDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}
