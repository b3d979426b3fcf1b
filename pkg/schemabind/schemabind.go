// Package schemabind derives field state from OpenAPI schemas: numeric
// bounds come from minimum/maximum and enum domains from enum.
package schemabind

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/selection"
)

var (
	// ErrNilSchema is returned when no schema is supplied.
	ErrNilSchema = errors.New("schemabind: schema is nil")
	// ErrNoEnum is returned when an enum domain is requested from a schema
	// without enum values.
	ErrNoEnum = errors.New("schemabind: schema has no enum values")
)

// IntValue builds a required integer field with the schema bounds applied.
// Fractional bounds are rounded inward.
func IntValue(schema *openapi3.Schema, value int64) (*fields.Value[int64], error) {
	if schema == nil {
		return nil, ErrNilSchema
	}
	v := fields.NewValue(value, fields.Int[int64]())
	applyIntBounds(schema, v.SetMin, v.SetMax)
	return v, nil
}

// OptionalIntValue is IntValue for optional fields. A nil value falls back to
// the schema default when it is a number.
func OptionalIntValue(schema *openapi3.Schema, value *int64) (*fields.OptionalValue[int64], error) {
	if schema == nil {
		return nil, ErrNilSchema
	}
	if value == nil {
		if def, ok := toFloat(schema.Default); ok && def == math.Trunc(def) {
			n := int64(def)
			value = &n
		}
	}
	v := fields.NewOptionalValue(value, fields.Int[int64]())
	applyIntBounds(schema, v.SetMin, v.SetMax)
	return v, nil
}

// FloatValue builds a required float field with the schema bounds applied.
// Exclusive bounds move to the next representable value inside the range.
func FloatValue(schema *openapi3.Schema, value float64) (*fields.Value[float64], error) {
	if schema == nil {
		return nil, ErrNilSchema
	}
	v := fields.NewValue(value, fields.Float[float64]())
	if schema.Min != nil {
		lo := *schema.Min
		if schema.ExclusiveMin {
			lo = math.Nextafter(lo, math.Inf(1))
		}
		v.SetMin(lo)
	}
	if schema.Max != nil {
		hi := *schema.Max
		if schema.ExclusiveMax {
			hi = math.Nextafter(hi, math.Inf(-1))
		}
		v.SetMax(hi)
	}
	return v, nil
}

// EnumDomain builds a domain from the schema's string enum values. The
// default is the schema default when it is one of the values, otherwise the
// first value.
func EnumDomain(schema *openapi3.Schema) (selection.Domain[selection.Option], error) {
	if schema == nil {
		return selection.Domain[selection.Option]{}, ErrNilSchema
	}
	if len(schema.Enum) == 0 {
		return selection.Domain[selection.Option]{}, ErrNoEnum
	}

	options := make([]selection.Option, 0, len(schema.Enum))
	for i, raw := range schema.Enum {
		if raw == nil {
			continue
		}
		value := strings.TrimSpace(fmt.Sprint(raw))
		if value == "" {
			return selection.Domain[selection.Option]{}, fmt.Errorf("schemabind: enum value %d is empty", i)
		}
		options = append(options, selection.NewOption(value, ""))
	}
	if len(options) == 0 {
		return selection.Domain[selection.Option]{}, ErrNoEnum
	}

	domain := selection.OptionsDomain(options...)
	if schema.Default != nil {
		if def, ok := domain.Lookup(fmt.Sprint(schema.Default)); ok {
			domain = selection.NewDomain(def, options...)
		}
	}
	return domain, nil
}

// OptionalEnum builds an optional enum over the schema's enum values. Null
// results are allowed only when the schema is nullable.
func OptionalEnum(schema *openapi3.Schema, selected string) (*selection.OptionalEnum[selection.Option], error) {
	domain, err := EnumDomain(schema)
	if err != nil {
		return nil, err
	}
	e := selection.NewOptionalEnum[selection.Option](nil, domain).AllowNull(schema.Nullable)
	if strings.TrimSpace(selected) != "" {
		e.SetString(selected)
	}
	return e, nil
}

// IsInteger reports whether the schema declares an integer type.
func IsInteger(schema *openapi3.Schema) bool {
	if schema == nil || schema.Type == nil {
		return false
	}
	for _, t := range schema.Type.Slice() {
		if t == openapi3.TypeInteger {
			return true
		}
	}
	return false
}

// applyIntBounds rounds bounds inward. An exclusive bound that is already
// integral moves one step inside the range.
func applyIntBounds(schema *openapi3.Schema, setMin, setMax func(int64)) {
	if schema.Min != nil {
		lo := math.Ceil(*schema.Min)
		if schema.ExclusiveMin && lo == *schema.Min {
			lo++
		}
		setMin(int64(lo))
	}
	if schema.Max != nil {
		hi := math.Floor(*schema.Max)
		if schema.ExclusiveMax && hi == *schema.Max {
			hi--
		}
		setMax(int64(hi))
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
