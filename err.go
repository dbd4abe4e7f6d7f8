package nccase

// ErrKind identifies the class of a conversion failure so callers can
// branch on it rather than matching message text.
type ErrKind int

const (
	KindTypeMismatch ErrKind = iota + 1
	KindMissingValue
	KindEmptyInput
	KindLeadingDelimiter
	KindConsecutiveDelimiters
	KindInvalidOption
)

// Err is the error type returned by every conversion function. It is a
// comparable value, so errors.Is(err, ErrEmptyInput) works directly
// against the sentinels below.
type Err struct {
	Kind ErrKind
	Msg  string
}

func (e Err) Error() string {
	return e.Msg
}

var ErrNotAString = Err{KindTypeMismatch, "must be a string"}
var ErrMissingValue = Err{KindMissingValue, "cannot be nil"}
var ErrEmptyInput = Err{KindEmptyInput, "non-empty string required"}
var ErrLeadingDelimiter = Err{KindLeadingDelimiter, "leading delimiter"}
var ErrConsecutiveDelimiters = Err{KindConsecutiveDelimiters, "consecutive delimiters"}
var ErrInvalidSeparator = Err{KindInvalidOption, "separator must be a single character"}
var ErrInvalidCaseOption = Err{KindInvalidOption, "case must be lower, upper or title"}
