package fields

import (
	"cmp"
	"errors"
)

// OptionalValue is a field where the empty text means "no value".
type OptionalValue[T cmp.Ordered] struct {
	textState[T]
}

var _ ValueValidator = (*OptionalValue[int])(nil)

// NewOptionalValue formats value with codec. A nil value starts the field
// empty.
func NewOptionalValue[T cmp.Ordered](value *T, codec Codec[T]) *OptionalValue[T] {
	src := ""
	if value != nil {
		src = codec.Format(*value)
	}
	return &OptionalValue[T]{textState: newTextState(src, codec)}
}

// Get parses the current text. An empty text reports false.
func (v *OptionalValue[T]) Get() (T, bool) {
	if v.value == "" {
		var zero T
		return zero, false
	}
	return v.parse()
}

// CanBeSaved reports whether the current text may be persisted. changed is
// false when the text still equals the initial text, in which case there is
// nothing to save. Clearing a value is always saveable; any other validation
// failure is not.
func (v *OptionalValue[T]) CanBeSaved() (saveable, changed bool) {
	if v.value == v.initial {
		return false, false
	}
	err := v.Validate()
	return err == nil || errors.Is(err, ErrEmpty), true
}
