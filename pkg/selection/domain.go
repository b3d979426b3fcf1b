// Package selection holds the state behind select controls: enum pickers
// backed by a fixed domain of values, and grouped option lists selected by
// identifier.
package selection

import (
	"fmt"
	"slices"
	"strings"
)

// NotSelected is the option value select controls report for "no
// selection".
const NotSelected = "---NULL---"

// Item is a value drawn from an enumerable domain. String returns the
// canonical form used for display and lookup.
type Item interface {
	comparable
	fmt.Stringer
}

// Enumerable is implemented by types that know their own domain. Domain is
// called on the zero value, so it must not depend on the receiver.
type Enumerable[T Item] interface {
	Domain() Domain[T]
}

// Domain is an ordered, immutable list of valid values plus the value used
// when a raw string does not match any of them.
type Domain[T Item] struct {
	items    []T
	fallback T
}

// NewDomain builds a domain from items. fallback is returned by
// ParseOrDefault on a miss and should itself be one of items.
func NewDomain[T Item](fallback T, items ...T) Domain[T] {
	return Domain[T]{items: slices.Clone(items), fallback: fallback}
}

// All returns the domain values in order.
func (d Domain[T]) All() []T {
	return slices.Clone(d.items)
}

// Len returns the number of values in the domain.
func (d Domain[T]) Len() int {
	return len(d.items)
}

// Default returns the fallback value.
func (d Domain[T]) Default() T {
	return d.fallback
}

// Contains reports whether value is part of the domain.
func (d Domain[T]) Contains(value T) bool {
	return slices.Contains(d.items, value)
}

// Lookup finds the value whose canonical form equals src after trimming.
func (d Domain[T]) Lookup(src string) (T, bool) {
	normalized := strings.TrimSpace(src)
	for _, item := range d.items {
		if item.String() == normalized {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// ParseOrDefault is Lookup with a fallback to Default.
func (d Domain[T]) ParseOrDefault(src string) T {
	if item, ok := d.Lookup(src); ok {
		return item
	}
	return d.fallback
}

// Subset returns a domain restricted to items for which keep returns true.
// The fallback is kept as is.
func (d Domain[T]) Subset(keep func(T) bool) Domain[T] {
	out := make([]T, 0, len(d.items))
	for _, item := range d.items {
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	return Domain[T]{items: out, fallback: d.fallback}
}

func domainOf[T interface {
	Item
	Enumerable[T]
}]() Domain[T] {
	var zero T
	return zero.Domain()
}
