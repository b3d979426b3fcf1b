// Package fields holds string-backed typed form values and the validation
// vocabulary shared by every control.
//
// A field keeps the text the user typed as its source of truth. The typed
// value is parsed on demand through a Codec, so a field never caches a stale
// parse result:
//
//	port := fields.NewValue(8080, fields.Int[int]())
//	port.SetMin(1)
//	port.SetMax(65535)
//	port.SetString("70000")
//	err := port.Validate() // fields.ErrMaxValue
//
// OptionalValue treats the empty string as "no value" and reports whether an
// edit may be persisted through CanBeSaved.
package fields
