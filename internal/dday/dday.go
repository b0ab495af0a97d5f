// Package dday computes signed day distances to deadline dates and the
// display conventions built on them (D-Day labels, urgency buckets).
package dday

import (
	"fmt"
	"math"
	"time"
)

// Policy controls how timestamps are reduced before a day distance is taken.
type Policy int

const (
	// Midnight truncates both endpoints to local midnight so the distance
	// counts calendar days.
	Midnight Policy = iota
	// Exact subtracts the raw clock values.
	Exact
)

// Urgency classifies how pressing a deadline is for display purposes.
type Urgency string

const (
	UrgencyUnknown  Urgency = "unknown"
	UrgencyNeutral  Urgency = "neutral"
	UrgencyNormal   Urgency = "normal"
	UrgencyWarning  Urgency = "warning"
	UrgencyCritical Urgency = "critical"
)

// warningWindowDays is the span ahead of a deadline that counts as "due soon".
const warningWindowDays = 7

const dateLayout = "2006-01-02"

// Days returns the signed ceiling day distance from now to the target date
// ("YYYY-MM-DD"). Positive means days remaining, negative means overdue.
// ok is false when the date is absent or does not parse.
func Days(target string, now time.Time, policy Policy) (int, bool) {
	if target == "" {
		return 0, false
	}
	t, err := time.ParseInLocation(dateLayout, target, now.Location())
	if err != nil {
		return 0, false
	}
	from := now
	if policy == Midnight {
		from = midnight(from)
		t = midnight(t)
	}
	days := int(math.Ceil(t.Sub(from).Hours() / 24))
	return days, true
}

// Label renders the day distance in the D-Day convention: "D-Day" when due
// today, "D-{n}" with n days remaining, "D+{n}" when n days overdue. An
// absent or unparsable date yields an empty label.
func Label(target string, now time.Time) string {
	days, ok := Days(target, now, Midnight)
	if !ok {
		return ""
	}
	switch {
	case days == 0:
		return "D-Day"
	case days > 0:
		return fmt.Sprintf("D-%d", days)
	default:
		return fmt.Sprintf("D+%d", -days)
	}
}

// Classify buckets a deadline for display. Completed tasks are neutral no
// matter the date, a missing date is unknown, overdue or due-today deadlines
// are critical, deadlines inside the warning window are warnings.
func Classify(target string, completed bool, now time.Time) Urgency {
	if completed {
		return UrgencyNeutral
	}
	days, ok := Days(target, now, Midnight)
	if !ok {
		return UrgencyUnknown
	}
	switch {
	case days <= 0:
		return UrgencyCritical
	case days <= warningWindowDays:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
