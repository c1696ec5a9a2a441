package engine

import (
	"fmt"

	"imokay/i18n"
)

// FormatStreak renders a streak count in the largest fitting unit, matching
// the dashboard's display rules: days under a week, then weeks, months,
// years.
func FormatStreak(streak int, lang string) string {
	t := i18n.For(lang)
	switch {
	case streak < 7:
		return fmt.Sprintf("%d %s", streak, t.StreakDays)
	case streak < 30:
		return fmt.Sprintf("%d %s", streak/7, t.StreakWeeks)
	case streak < 365:
		return fmt.Sprintf("%d %s", streak/30, t.StreakMonths)
	default:
		return fmt.Sprintf("%d %s", streak/365, t.StreakYears)
	}
}
