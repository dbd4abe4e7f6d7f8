package nccase

import "unicode/utf8"

// CaseStyle selects the letter-case policy applied by ToKebabCase after
// the delimiters have been replaced.
type CaseStyle string

const (
	CaseLower CaseStyle = "lower"
	CaseUpper CaseStyle = "upper"
	CaseTitle CaseStyle = "title"
)

// KebabOptions configures ToKebabCase. The zero value of a field means
// "use the default".
type KebabOptions struct {
	// Separator replaces each delimiter. Must be exactly one character.
	// Default "-".
	Separator string
	// Case is the letter-case policy for the result. Default CaseLower.
	Case CaseStyle
}

func (o KebabOptions) withDefaults() KebabOptions {
	if o.Separator == "" {
		o.Separator = "-"
	}
	if o.Case == "" {
		o.Case = CaseLower
	}
	return o
}

func (o KebabOptions) validate() error {
	if utf8.RuneCountInString(o.Separator) != 1 {
		return ErrInvalidSeparator
	}
	switch o.Case {
	case CaseLower, CaseUpper, CaseTitle:
		return nil
	default:
		return ErrInvalidCaseOption
	}
}

// ToKebabCase converts a string into kebab-case, or into any delimited
// case selected by opts. Unlike the other conversions it also treats dot
// as a delimiter, so dot.case input can be re-delimited. Options are
// validated after the shared input rules and before transforming.
// Example: ToKebabCase("hello world", KebabOptions{Case: CaseUpper}) -> "HELLO-WORLD"
func ToKebabCase(v any, opts ...KebabOptions) (string, error) {
	s, err := validate(v, kebabDelimiters)
	if err != nil {
		return "", err
	}

	var o KebabOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	o = o.withDefaults()
	if err := o.validate(); err != nil {
		return "", err
	}

	sep, _ := utf8.DecodeRuneInString(o.Separator)
	out := collapseDelimiters(s, kebabDelimiters, sep)
	switch o.Case {
	case CaseUpper:
		return upperString(out), nil
	case CaseTitle:
		return titleWords(out), nil
	default:
		return lowerString(out), nil
	}
}

// titleWords uppercases the first character of every maximal alphanumeric
// word. A word begins at the start of the string or right after a
// non-alphanumeric character; all other characters are left as-is.
func titleWords(s string) string {
	runes := []rune(s)
	inWord := false
	for i, ch := range runes {
		if isLetter(ch) || isDigit(ch) {
			if !inWord {
				runes[i] = toUpper(ch)
			}
			inWord = true
		} else {
			inWord = false
		}
	}
	return string(runes)
}
