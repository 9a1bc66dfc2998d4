package irdf

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var durationPattern = regexp.MustCompile(`(\d+)h\s*(\d+)m`)

// ParseClockMinutes parses an "HH:MM" 24 hour clock value into minutes since
// midnight. Malformed values report ok=false and zero minutes.
func ParseClockMinutes(value string) (int, bool) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}

	hours, hoursErr := strconv.Atoi(strings.TrimSpace(parts[0]))
	minutes, minutesErr := strconv.Atoi(strings.TrimSpace(parts[1]))
	if hoursErr != nil || minutesErr != nil {
		return 0, false
	}

	return hours*60 + minutes, true
}

// ParseDurationMinutes parses a "<int>h <int>m" duration string. Malformed
// values report ok=false and zero minutes - callers decide whether zero is an
// acceptable fallback.
func ParseDurationMinutes(value string) (int, bool) {
	match := durationPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, false
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])

	return hours*60 + minutes, true
}

// FormatClock renders minutes-since-midnight as "HH:MM", wrapping past
// midnight.
func FormatClock(minutes int) string {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDuration renders a minute count as "<int>h <int>m".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
