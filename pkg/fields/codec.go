package fields

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"golang.org/x/exp/constraints"
)

// Codec converts between the text shown in a control and its typed value.
type Codec[T any] interface {
	Parse(src string) (T, error)
	Format(value T) string
}

// CodecFuncs adapts a pair of functions to the Codec interface.
type CodecFuncs[T any] struct {
	ParseFunc  func(string) (T, error)
	FormatFunc func(T) string
}

func (c CodecFuncs[T]) Parse(src string) (T, error) {
	if c.ParseFunc == nil {
		var zero T
		return zero, fmt.Errorf("fields: codec has no parse func")
	}
	return c.ParseFunc(src)
}

func (c CodecFuncs[T]) Format(value T) string {
	if c.FormatFunc == nil {
		return fmt.Sprint(value)
	}
	return c.FormatFunc(value)
}

type signedCodec[T constraints.Signed] struct{}

// Int returns a base-10 codec for signed integer types. Values that overflow
// T fail to parse.
func Int[T constraints.Signed]() Codec[T] {
	return signedCodec[T]{}
}

func (signedCodec[T]) Parse(src string) (T, error) {
	parsed, err := strconv.ParseInt(src, 10, 64)
	if err != nil {
		return 0, err
	}
	value := T(parsed)
	if int64(value) != parsed {
		return 0, fmt.Errorf("fields: %q overflows %T", src, value)
	}
	return value, nil
}

func (signedCodec[T]) Format(value T) string {
	return strconv.FormatInt(int64(value), 10)
}

type unsignedCodec[T constraints.Unsigned] struct{}

// Uint returns a base-10 codec for unsigned integer types.
func Uint[T constraints.Unsigned]() Codec[T] {
	return unsignedCodec[T]{}
}

func (unsignedCodec[T]) Parse(src string) (T, error) {
	parsed, err := strconv.ParseUint(src, 10, 64)
	if err != nil {
		return 0, err
	}
	value := T(parsed)
	if uint64(value) != parsed {
		return 0, fmt.Errorf("fields: %q overflows %T", src, value)
	}
	return value, nil
}

func (unsignedCodec[T]) Format(value T) string {
	return strconv.FormatUint(uint64(value), 10)
}

type floatCodec[T constraints.Float] struct{}

// Float returns a codec for floating point types using the shortest
// representation that round-trips. NaN and infinities are rejected since
// they never compare against bounds.
func Float[T constraints.Float]() Codec[T] {
	return floatCodec[T]{}
}

func (floatCodec[T]) Parse(src string) (T, error) {
	parsed, err := strconv.ParseFloat(src, floatBits[T]())
	if err != nil {
		return 0, err
	}
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, fmt.Errorf("fields: %q is not a finite number", src)
	}
	return T(parsed), nil
}

func (floatCodec[T]) Format(value T) string {
	return strconv.FormatFloat(float64(value), 'g', -1, floatBits[T]())
}

func floatBits[T constraints.Float]() int {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 32
	}
	return 64
}

type stringCodec struct{}

// String returns the identity codec. Any text parses.
func String() Codec[string] {
	return stringCodec{}
}

func (stringCodec) Parse(src string) (string, error) { return src, nil }
func (stringCodec) Format(value string) string      { return value }

type durationCodec struct{}

// Duration returns a codec using time.ParseDuration and Duration.String.
func Duration() Codec[time.Duration] {
	return durationCodec{}
}

func (durationCodec) Parse(src string) (time.Duration, error) {
	return time.ParseDuration(src)
}

func (durationCodec) Format(value time.Duration) string {
	return value.String()
}
