// Package nccase converts strings between common identifier casing
// conventions: camelCase, kebab-case, dot.case and snake_case.
//
// Every conversion validates its input before transforming it. An input
// must be a non-empty string that does not start with a delimiter and
// does not contain two or more consecutive delimiters; the delimiter set
// is space, underscore and hyphen, plus dot for the kebab conversion.
// Failures are reported as Err values whose Kind tells the caller which
// rule was broken.
//
// Word boundaries are ASCII only. There is no locale-aware casing and no
// acronym splitting ("XMLParser" is one word, not two).
package nccase

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Delimiter sets per target format. Kebab additionally treats dot as a
// delimiter so that dot.case input can be re-delimited.
const (
	delimiters      = " _-"
	kebabDelimiters = " _.-"
)

// Matches strings that are already valid camelCase: one or more lowercase
// letters followed by letters of any case, no delimiters or digits. Note
// that "Hello" does not match and goes through full conversion.
var camelPattern = regexp.MustCompile(`^[a-z]+[A-Za-z]*$`)

// ToCamelCase converts a string into camelCase: delimiters are removed
// and every word after the first starts with an uppercase letter.
// Example: ToCamelCase("SCREEN_NAME") -> "screenName"
func ToCamelCase(v any) (string, error) {
	s, err := validate(v, delimiters)
	if err != nil {
		return "", err
	}
	if camelPattern.MatchString(s) {
		return s, nil
	}

	words := strings.Split(collapseDelimiters(s, delimiters, ' '), " ")
	buffer := make([]rune, 0, len(s))
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(lowerString(word))
		if i > 0 {
			runes[0] = toUpper(runes[0])
		}
		buffer = append(buffer, runes...)
	}
	return string(buffer), nil
}

// ToDotCase converts a string into dot.case: each delimiter becomes a
// dot and the result is lowercased.
// Example: ToDotCase("mobile-number") -> "mobile.number"
func ToDotCase(v any) (string, error) {
	s, err := validate(v, delimiters)
	if err != nil {
		return "", err
	}
	return lowerString(collapseDelimiters(s, delimiters, '.')), nil
}

// ToSnakeCase converts a string into snake_case: each delimiter becomes
// an underscore and the result is lowercased.
// Example: ToSnakeCase("hello world") -> "hello_world"
func ToSnakeCase(v any) (string, error) {
	s, err := validate(v, delimiters)
	if err != nil {
		return "", err
	}
	return lowerString(collapseDelimiters(s, delimiters, '_')), nil
}

// coerce extracts the string value from v. Nil values and nil *string
// report ErrMissingValue; any other non-string type reports ErrNotAString.
func coerce(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case *string:
		if s == nil {
			return "", ErrMissingValue
		}
		return *s, nil
	case nil:
		return "", ErrMissingValue
	default:
		return "", ErrNotAString
	}
}

// validate applies the shared input rules in order: string type, present,
// non-empty after trimming, no leading delimiter, no consecutive
// delimiters. The original string is returned untouched; trimming is only
// used for the emptiness check, so " hello" fails with ErrLeadingDelimiter
// rather than being silently trimmed.
func validate(v any, delims string) (string, error) {
	s, err := coerce(v)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s) == "" {
		return "", ErrEmptyInput
	}
	first, _ := utf8.DecodeRuneInString(s)
	if isDelimiter(delims, first) {
		return "", ErrLeadingDelimiter
	}
	var prev rune
	for _, curr := range s {
		if isDelimiter(delims, curr) && isDelimiter(delims, prev) {
			return "", ErrConsecutiveDelimiters
		}
		prev = curr
	}
	return s, nil
}

// collapseDelimiters rewrites every maximal run of delimiter characters
// into a single sep. Validation rejects runs of two or more, but the
// transform stays total on any string it is handed.
func collapseDelimiters(s string, delims string, sep rune) string {
	buffer := make([]rune, 0, len(s)+3)

	var prev rune
	for _, curr := range s {
		if isDelimiter(delims, curr) {
			if !isDelimiter(delims, prev) {
				buffer = append(buffer, sep)
			}
		} else {
			buffer = append(buffer, curr)
		}
		prev = curr
	}

	return string(buffer)
}

// isDelimiter checks if a character belongs to the delimiter set delims.
func isDelimiter(delims string, ch rune) bool {
	return strings.ContainsRune(delims, ch)
}

// lowerString lowercases the ASCII letters of s. Other characters remain
// the same.
func lowerString(s string) string {
	buffer := make([]rune, 0, len(s))
	for _, ch := range s {
		buffer = append(buffer, toLower(ch))
	}
	return string(buffer)
}

// upperString uppercases the ASCII letters of s. Other characters remain
// the same.
func upperString(s string) string {
	buffer := make([]rune, 0, len(s))
	for _, ch := range s {
		buffer = append(buffer, toUpper(ch))
	}
	return string(buffer)
}

// toLower converts a character in the range of ASCII characters 'A' to 'Z'
// to its lower case counterpart. Other characters remain the same.
func toLower(ch rune) rune {
	if ch >= 'A' && ch <= 'Z' {
		return ch + 32
	}
	return ch
}

// toUpper converts a character in the range of ASCII characters 'a' to 'z'
// to its upper case counterpart. Other characters remain the same.
func toUpper(ch rune) rune {
	if ch >= 'a' && ch <= 'z' {
		return ch - 32
	}
	return ch
}

// isLetter checks if a character is an ASCII letter.
func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isDigit checks if a character is a digit. More precisely it evaluates if
// it is in the range of ASCII characters '0' to '9'.
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
