package format

import (
	"fmt"
	"time"
)

var timeNow = time.Now

// RelativeTime returns a compact, human-friendly description of how long ago
// t occurred. Results never exceed ~8 characters so they fit inside tight
// table columns.
func RelativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	now := timeNow()

	// Future timestamps fall back to absolute dates.
	if t.After(now) {
		return formatAbsoluteTime(t, now)
	}

	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "now"
	case diff < time.Hour:
		minutes := int(diff / time.Minute)
		if minutes < 1 {
			minutes = 1
		}
		return fmt.Sprintf("%dm ago", minutes)
	case diff < 24*time.Hour:
		hours := int(diff / time.Hour)
		return fmt.Sprintf("%dh ago", hours)
	case diff < 100*24*time.Hour:
		days := int(diff / (24 * time.Hour))
		return fmt.Sprintf("%dd ago", days)
	default:
		return formatAbsoluteTime(t, now)
	}
}

// ShortDate renders the absolute form used in detail panes: "2 Jan 2026".
func ShortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 Jan 2006")
}

func formatAbsoluteTime(t, now time.Time) string {
	local := t.In(now.Location())
	if local.Year() == now.Year() {
		return local.Format("Jan 2")
	}
	return local.Format("Jan '06")
}
