package feed

import (
	"fmt"
	"time"
)

// absoluteThreshold is the age past which timestamps render as a full date
// instead of a relative phrase.
const absoluteThreshold = 7 * 24 * time.Hour

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatTimestamp renders a timestamp for display: a French relative phrase
// while younger than seven days, a full French date afterwards. Pure
// function of (t, now); the same stored timestamp can change rendering
// between sessions as now moves.
func FormatTimestamp(t, now time.Time) string {
	age := now.Sub(t)
	if age > absoluteThreshold {
		return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
	}

	switch {
	case age < time.Minute:
		return "à l'instant"
	case age < time.Hour:
		return relative(int(age.Minutes()), "minute")
	case age < 24*time.Hour:
		return relative(int(age.Hours()), "heure")
	default:
		return relative(int(age.Hours()/24), "jour")
	}
}

func relative(n int, unit string) string {
	if n > 1 {
		unit += "s"
	}
	return fmt.Sprintf("il y a %d %s", n, unit)
}
