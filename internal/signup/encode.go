package signup

import "strings"

const (
	nullLiteral  = "NULL"
	nullSentinel = `\N`
)

// Encoder renders a raw field as a SQL literal
type Encoder func(v string) string

func isNull(v string) bool {
	return v == "" || v == nullSentinel
}

// Numeric returns the trimmed value as an unquoted SQL token, or NULL for an empty or \N value.
// The value is not checked to be a number.
func Numeric(v string) string {
	v = strings.TrimSpace(v)
	if isNull(v) {
		return nullLiteral
	}
	return v
}

// Text returns the trimmed value as a single-quoted SQL string with embedded quotes doubled,
// or NULL for an empty or \N value.
func Text(v string) string {
	v = strings.TrimSpace(v)
	if isNull(v) {
		return nullLiteral
	}
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}
