package utils

import "github.com/microcosm-cc/bluemonday"

// Chat text, moods, and names are plain text; strip all markup rather than
// allowing a UGC subset.
var sanitizer = bluemonday.StrictPolicy()

// Sanitize removes any HTML from free-form user input.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
