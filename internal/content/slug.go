package content

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^\w-]`)
)

// Slugify derives a URL-safe id from a human-readable title: lowercase,
// whitespace runs collapse to a single hyphen, everything outside [A-Za-z0-9_-]
// is stripped. Deterministic for any input; non-Latin characters fall away,
// which matches how the admin editors generated ids.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = whitespaceRe.ReplaceAllString(s, "-")
	return nonWordRe.ReplaceAllString(s, "")
}

// EnsureActivityIDs fills in missing activity ids from their titles. Uniqueness
// within the slice is the editor's responsibility; this only reconstructs a
// plausible id for records that arrive without one.
func EnsureActivityIDs(cards []ActivityCard) {
	for i := range cards {
		if cards[i].ID == "" {
			cards[i].ID = Slugify(cards[i].Title)
		}
	}
}
