package review

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxReviewLen = 1000

var quoteReplacer = strings.NewReplacer(
	"‘", "'", "’", "'",
	"“", `"`, "”", `"`,
	"–", "-", "—", "-",
	" ", " ",
)

// Clean prepares raw scraped review texts for analysis: smart quotes are
// straightened, control characters and emoji stripped, whitespace collapsed,
// over-long texts truncated, empties dropped. Order is preserved.
func Clean(reviews []string) []string {
	out := make([]string, 0, len(reviews))
	for _, r := range reviews {
		c := CleanOne(r)
		if c == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CleanOne cleans a single review text. Returns "" when nothing is left.
func CleanOne(s string) string {
	s = quoteReplacer.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(' ')
		case unicode.IsControl(r):
			// drop
		case r >= 0x1F000 && r <= 0x1FAFF, r >= 0x2600 && r <= 0x27BF:
			// emoji and dingbat blocks
		default:
			b.WriteRune(r)
		}
	}

	s = strings.Join(strings.Fields(b.String()), " ")
	if len(s) > maxReviewLen {
		cut := maxReviewLen - 3
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}
