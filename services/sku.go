package services

import (
	"strings"
	"time"
	"unicode"
)

// GenerateSKU builds a product SKU from up to three leading characters of the
// category name, up to five alphanumeric characters of the product name and a
// second-resolution timestamp: CAT-NAMEX-20240115103045. With no category the
// prefix is omitted. Uniqueness rests on the timestamp; two creations for the
// same name within the same second would collide.
func GenerateSKU(name, categoryName string, now time.Time) string {
	var b strings.Builder

	if categoryName != "" {
		prefix := categoryName
		if len(prefix) > 3 {
			prefix = prefix[:3]
		}
		b.WriteString(strings.ToUpper(prefix))
		b.WriteByte('-')
	}

	// First five characters of the name, with anything non-alphanumeric
	// stripped afterwards.
	raw := name
	if len(raw) > 5 {
		raw = raw[:5]
	}
	for _, r := range raw {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	b.WriteByte('-')
	b.WriteString(now.Format("20060102150405"))

	return b.String()
}

// Slugify lowercases the name and collapses every non-alphanumeric run into a
// single hyphen.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
