package fields

import "cmp"

// Value is a required field: an empty text is reported as ErrEmpty.
type Value[T cmp.Ordered] struct {
	textState[T]
}

var _ ValueValidator = (*Value[int])(nil)

// NewValue formats value with codec and uses the result as both the initial
// and the current text.
func NewValue[T cmp.Ordered](value T, codec Codec[T]) *Value[T] {
	return &Value[T]{textState: newTextState(codec.Format(value), codec)}
}

// ValueFromString keeps src only when it parses. Unparsable input is stored
// as the empty string, so the field starts out as "no value entered".
func ValueFromString[T cmp.Ordered](src string, codec Codec[T]) *Value[T] {
	if _, err := codec.Parse(src); err != nil {
		src = ""
	}
	return &Value[T]{textState: newTextState(src, codec)}
}

// Get parses the current text. It reports false when the text does not
// parse.
func (v *Value[T]) Get() (T, bool) {
	return v.parse()
}
