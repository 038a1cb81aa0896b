package db

import (
	"math"
	"strconv"
	"strings"
)

// MatchAll is the FT.SEARCH query matching every document in an index.
const MatchAll = "*"

// TagQuery matches documents whose TAG attribute equals any of values.
func TagQuery(attr string, values ...string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = EscapeTag(v)
	}
	return "@" + attr + ":{" + strings.Join(escaped, " | ") + "}"
}

// TagPrefixQuery matches documents whose TAG attribute starts with prefix.
// An empty prefix matches every document.
func TagPrefixQuery(attr, prefix string) string {
	if prefix == "" {
		return MatchAll
	}
	return "@" + attr + ":{" + EscapeTag(prefix) + "*}"
}

// NumericRangeQuery matches documents whose NUMERIC attribute lies in [lower, upper].
// A nil bound is open on that side.
func NumericRangeQuery(attr string, lower, upper *float64) string {
	minBound := "-inf"
	maxBound := "+inf"
	if lower != nil {
		minBound = formatFloat(*lower)
	}
	if upper != nil {
		maxBound = formatFloat(*upper)
	}
	return "@" + attr + ":[" + minBound + " " + maxBound + "]"
}

// EscapeTag escapes TAG query punctuation so the value is matched literally.
func EscapeTag(value string) string {
	return tagEscaper.Replace(value)
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "+inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var tagEscaper = strings.NewReplacer(
	`\`, `\\`,
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"[", "\\[",
	"]", "\\]",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	"|", "\\|",
	"/", "\\/",
	" ", "\\ ",
)
