package fields

import "cmp"

// textState is the part shared by required and optional fields: the initial
// and current text plus optional bounds. The current text is authoritative.
type textState[T cmp.Ordered] struct {
	codec   Codec[T]
	initial string
	value   string

	min    T
	hasMin bool
	max    T
	hasMax bool
}

func newTextState[T cmp.Ordered](src string, codec Codec[T]) textState[T] {
	return textState[T]{codec: codec, initial: src, value: src}
}

func (s *textState[T]) parse() (T, bool) {
	if s.codec == nil {
		var zero T
		return zero, false
	}
	value, err := s.codec.Parse(s.value)
	if err != nil {
		var zero T
		return zero, false
	}
	return value, true
}

// String returns the current text.
func (s *textState[T]) String() string {
	return s.value
}

// Initial returns the text captured at construction.
func (s *textState[T]) Initial() string {
	return s.initial
}

// Changed reports whether the current text differs from the initial text.
func (s *textState[T]) Changed() bool {
	return s.value != s.initial
}

// SetString replaces the current text verbatim. Validation is deferred to
// Validate.
func (s *textState[T]) SetString(raw string) {
	s.value = raw
}

// SetMin sets the inclusive lower bound.
func (s *textState[T]) SetMin(min T) {
	s.min = min
	s.hasMin = true
}

// SetMax sets the inclusive upper bound.
func (s *textState[T]) SetMax(max T) {
	s.max = max
	s.hasMax = true
}

// Min returns the lower bound, if one was set.
func (s *textState[T]) Min() (T, bool) {
	return s.min, s.hasMin
}

// Max returns the upper bound, if one was set.
func (s *textState[T]) Max() (T, bool) {
	return s.max, s.hasMax
}

// Bounds returns the formatted bounds, "" for an unset bound.
func (s *textState[T]) Bounds() (min, max string) {
	if s.codec == nil {
		return "", ""
	}
	if s.hasMin {
		min = s.codec.Format(s.min)
	}
	if s.hasMax {
		max = s.codec.Format(s.max)
	}
	return min, max
}

// Validate checks emptiness, then parsing, then the min bound, then the max
// bound, and returns the first failure.
func (s *textState[T]) Validate() error {
	if len(s.value) == 0 {
		return ErrEmpty
	}
	value, ok := s.parse()
	if !ok {
		return ErrIllegalChars
	}
	if s.hasMin && value < s.min {
		return ErrMinValue
	}
	if s.hasMax && value > s.max {
		return ErrMaxValue
	}
	return nil
}

// ValidateValue implements ValueValidator.
func (s *textState[T]) ValidateValue() error {
	return s.Validate()
}
