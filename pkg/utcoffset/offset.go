// Package utcoffset enumerates the UTC offsets in use worldwide, from -12:00
// to +14:00, in their canonical "±HH:MM" form.
package utcoffset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formfields/pkg/selection"
)

// Offset is one of the fixed UTC offsets. The zero value is UTCMinus1200;
// use UTC or Default for the neutral offset.
type Offset int

const (
	UTCMinus1200 Offset = iota
	UTCMinus1100
	UTCMinus1000
	UTCMinus0930
	UTCMinus0900
	UTCMinus0800
	UTCMinus0700
	UTCMinus0600
	UTCMinus0500
	UTCMinus0400
	UTCMinus0330
	UTCMinus0300
	UTCMinus0200
	UTCMinus0100
	UTC
	UTCPlus0100
	UTCPlus0200
	UTCPlus0300
	UTCPlus0330
	UTCPlus0400
	UTCPlus0430
	UTCPlus0500
	UTCPlus0530
	UTCPlus0545
	UTCPlus0600
	UTCPlus0630
	UTCPlus0645
	UTCPlus0700
	UTCPlus0800
	UTCPlus0845
	UTCPlus0900
	UTCPlus0930
	UTCPlus1000
	UTCPlus1030
	UTCPlus1100
	UTCPlus1130
	UTCPlus1200
	UTCPlus1300
	UTCPlus1400
)

// canonical is indexed by Offset and must stay minute-ascending.
var canonical = [...]string{
	"-12:00", "-11:00", "-10:00", "-09:30", "-09:00", "-08:00", "-07:00",
	"-06:00", "-05:00", "-04:00", "-03:30", "-03:00", "-02:00", "-01:00",
	"+00:00",
	"+01:00", "+02:00", "+03:00", "+03:30", "+04:00", "+04:30", "+05:00",
	"+05:30", "+05:45", "+06:00", "+06:30", "+06:45", "+07:00", "+08:00",
	"+08:45", "+09:00", "+09:30", "+10:00", "+10:30", "+11:00", "+11:30",
	"+12:00", "+13:00", "+14:00",
}

var domain = selection.NewDomain(UTC, All()...)

// All returns every offset in ascending order.
func All() []Offset {
	out := make([]Offset, len(canonical))
	for i := range canonical {
		out[i] = Offset(i)
	}
	return out
}

// Default returns UTC.
func Default() Offset {
	return UTC
}

// Domain implements selection.Enumerable.
func (Offset) Domain() selection.Domain[Offset] {
	return domain
}

// Valid reports whether o is one of the enumerated offsets.
func (o Offset) Valid() bool {
	return o >= 0 && int(o) < len(canonical)
}

// String returns the canonical "±HH:MM" form. Invalid offsets format as
// "Offset(n)".
func (o Offset) String() string {
	if !o.Valid() {
		return "Offset(" + strconv.Itoa(int(o)) + ")"
	}
	return canonical[o]
}

// TryParse matches src, after trimming, against the canonical forms.
func TryParse(src string) (Offset, bool) {
	normalized := strings.TrimSpace(src)
	for i, repr := range canonical {
		if repr == normalized {
			return Offset(i), true
		}
	}
	return UTC, false
}

// ParseOrDefault is TryParse with a fallback to UTC.
func ParseOrDefault(src string) Offset {
	o, _ := TryParse(src)
	return o
}

// Minutes returns the signed offset from UTC in minutes. It panics if the
// canonical table is malformed.
func (o Offset) Minutes() int {
	repr := o.String()
	if len(repr) != 6 || repr[3] != ':' {
		panic(fmt.Sprintf("utcoffset: malformed canonical offset %q", repr))
	}
	sign := 1
	if repr[0] == '-' {
		sign = -1
	}
	hours, err := strconv.Atoi(repr[1:3])
	if err != nil {
		panic(fmt.Sprintf("utcoffset: malformed hours in %q: %v", repr, err))
	}
	minutes, err := strconv.Atoi(repr[4:6])
	if err != nil {
		panic(fmt.Sprintf("utcoffset: malformed minutes in %q: %v", repr, err))
	}
	return sign * (hours*60 + minutes)
}

// Location returns a fixed time zone named after the canonical form.
func (o Offset) Location() *time.Location {
	return time.FixedZone("UTC"+o.String(), o.Minutes()*60)
}

// MarshalText encodes the canonical form.
func (o Offset) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("utcoffset: invalid offset %d", int(o))
	}
	return []byte(canonical[o]), nil
}

// UnmarshalText accepts only canonical forms.
func (o *Offset) UnmarshalText(text []byte) error {
	parsed, ok := TryParse(string(text))
	if !ok {
		return fmt.Errorf("utcoffset: unknown offset %q", string(text))
	}
	*o = parsed
	return nil
}
