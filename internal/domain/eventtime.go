package domain

import (
	"regexp"
	"strings"
	"time"
)

const (
	// EventTimeLayout is the 24-hour form invites are stored with.
	EventTimeLayout = "15:04"
	// DisplayTimeLayout is the 12-hour form shown to users.
	DisplayTimeLayout = "03:04 PM"

	// parseTimeLayout accepts one or two digit hours and minutes ("2:30 PM",
	// "02:30 PM", "2:5 PM").
	parseTimeLayout = "3:4 PM"
)

// time.Parse lets a 12-hour clock read hour 0, so the shape is checked first.
var clock12h = regexp.MustCompile(`^(0?[1-9]|1[0-2]):[0-5]?[0-9] (AM|PM)$`)

// ParseEventTime12h converts a 12-hour time with an AM/PM marker ("02:30 PM",
// "2:30 pm") into the stored 24-hour form ("14:30").
func ParseEventTime12h(s string) (string, error) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(s), " "))
	if !clock12h.MatchString(normalized) {
		return "", NewValidationError("Invalid time format.")
	}
	t, err := time.Parse(parseTimeLayout, normalized)
	if err != nil {
		return "", NewValidationError("Invalid time format.")
	}
	return t.Format(EventTimeLayout), nil
}

// FormatEventTime12h converts a stored 24-hour time into the 12-hour display
// form. Values that do not parse are returned unchanged.
func FormatEventTime12h(stored string) string {
	t, err := time.Parse(EventTimeLayout, strings.TrimSpace(stored))
	if err != nil {
		return stored
	}
	return t.Format(DisplayTimeLayout)
}
