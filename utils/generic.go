package utils

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// TimeNow returns epoch UTC.
func TimeNow() int64 {
	return time.Now().UTC().Unix()
}

// Slugify converts a display name into a storage key.
func Slugify(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	replacer := strings.NewReplacer("%", "_",
		"/", "_",
		"\\", "_",
		":", "_",
		";", "_",
		".", "_",
		"$", "_",
		"-", "_",
		" ", "_")
	return replacer.Replace(raw)
}

// Deslugify converts a storage key into a human-readable name:
// underscores become spaces, first letter is upper-cased, the rest lower-cased.
func Deslugify(slug string) string {
	text := []rune(strings.ToLower(strings.Replace(slug, "_", " ", -1)))
	if 0 == len(text) {
		return ""
	}

	text[0] = unicode.ToUpper(text[0])
	return string(text)
}

// LocationID returns provider-specific unique ID of the coordinates.
func LocationID(latitude, longitude float64) string {
	return strconv.FormatFloat(latitude, 'f', -1, 64) + "-" + strconv.FormatFloat(longitude, 'f', -1, 64)
}

// FloatPtr returns pointer to a copy of the value.
func FloatPtr(v float64) *float64 {
	return &v
}

// StringPtr returns pointer to a copy of the value.
func StringPtr(v string) *string {
	return &v
}
