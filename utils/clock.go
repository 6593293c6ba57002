package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The backend embeds opening hours and some timestamps in full ISO datetime
// strings of which only the "THH:mm" fragment is meaningful.
var clockRe = regexp.MustCompile(`T(\d{2}:\d{2})`)

// InvalidClock is the sentinel returned when no clock fragment can be found.
const InvalidClock = "Invalid time"

// ExtractClock pulls the "HH:mm" fragment out of an ISO datetime string.
// A bare "HH:mm" string is returned as-is; anything else yields InvalidClock.
func ExtractClock(s string) string {
	if m := clockRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if _, err := ClockMinutes(s); err == nil {
		return s
	}
	return InvalidClock
}

// ClockMinutes converts "HH:mm" to minutes since midnight.
func ClockMinutes(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClockRange renders "HH:mm - HH:mm" for display, tolerating ISO inputs.
func FormatClockRange(start, end string) string {
	return ExtractClock(start) + " - " + ExtractClock(end)
}
