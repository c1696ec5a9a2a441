// Package i18n holds the localized strings the service itself needs:
// generator fallbacks, streak units, and share-card text. Full UI
// translations live in the client.
package i18n

import "fmt"

// Strings is one language's bundle.
type Strings struct {
	FallbackAffirmation string
	FallbackSupport     string
	FallbackReply       string

	StreakDays   string
	StreakWeeks  string
	StreakMonths string
	StreakYears  string

	ShareTitle   string
	ShareSuffix  string
	ImSafe       string
	shareMessage string
}

var translations = map[string]Strings{
	"en": {
		FallbackAffirmation: "Have a great day!",
		FallbackSupport:     "How are you? Just checking in.",
		FallbackReply:       "...",
		StreakDays:          "days",
		StreakWeeks:         "weeks",
		StreakMonths:        "months",
		StreakYears:         "years",
		ShareTitle:          "I'm Okay!",
		ShareSuffix:         "straight",
		ImSafe:              "I'm safe and sound",
		shareMessage:        "%s %s just checked in safe on I'm Okay — %s %s!",
	},
	"ua": {
		FallbackAffirmation: "Гарного дня!",
		FallbackSupport:     "Як ти? Турбуюсь про тебе.",
		FallbackReply:       "...",
		StreakDays:          "днів",
		StreakWeeks:         "тижнів",
		StreakMonths:        "місяців",
		StreakYears:         "років",
		ShareTitle:          "Я в порядку!",
		ShareSuffix:         "поспіль",
		ImSafe:              "Я в безпеці",
		shareMessage:        "%s %s щойно відмітився у безпеці в I'm Okay — %s %s!",
	},
}

// For returns the bundle for a language tag, falling back to English.
func For(lang string) Strings {
	if t, ok := translations[lang]; ok {
		return t
	}
	return translations["en"]
}

// ShareMessage composes the social share text for a user and their formatted
// streak.
func ShareMessage(lang, name, mood, formattedStreak string) string {
	t := For(lang)
	return fmt.Sprintf(t.shareMessage, name, mood, formattedStreak, t.ShareSuffix)
}
