package fields

import "errors"

// ValidationError classifies why a field value was rejected. A nil error
// means the value is valid.
type ValidationError int

const (
	// ErrEmpty reports that no value was entered.
	ErrEmpty ValidationError = iota + 1
	// ErrIllegalChars reports that the text could not be parsed.
	ErrIllegalChars
	// ErrMinValue reports a value below the configured minimum.
	ErrMinValue
	// ErrMaxValue reports a value above the configured maximum.
	ErrMaxValue
)

func (e ValidationError) Error() string {
	switch e {
	case ErrEmpty:
		return "fields: empty value"
	case ErrIllegalChars:
		return "fields: illegal characters"
	case ErrMinValue:
		return "fields: min value violation"
	case ErrMaxValue:
		return "fields: max value violation"
	default:
		return "fields: unknown validation error"
	}
}

// ValueValidator is implemented by every field state so renderers can show a
// validation message without knowing the concrete value type.
type ValueValidator interface {
	ValidateValue() error
}

// Message returns the display message for a validation error. Empty values
// and valid values have no message.
func Message(err error) string {
	var verr ValidationError
	if !errors.As(err, &verr) {
		if err != nil {
			return "invalid value"
		}
		return ""
	}
	switch verr {
	case ErrIllegalChars:
		return "invalid value"
	case ErrMinValue:
		return "min value violation"
	case ErrMaxValue:
		return "max value violation"
	default:
		return ""
	}
}

// Highlight reports whether a control should be marked as invalid. An empty
// value is not highlighted.
func Highlight(err error) bool {
	return Message(err) != ""
}
