package selection

import "github.com/goliatone/go-formfields/pkg/fields"

// Enum is a required selection: some value is always picked.
type Enum[T Item] struct {
	selected T
	domain   Domain[T]
}

var _ fields.ValueValidator = (*Enum[Option])(nil)

// NewEnum selects value within domain.
func NewEnum[T Item](value T, domain Domain[T]) *Enum[T] {
	return &Enum[T]{selected: value, domain: domain}
}

// NewEnumOf uses the domain declared by T itself.
func NewEnumOf[T interface {
	Item
	Enumerable[T]
}](value T) *Enum[T] {
	return NewEnum(value, domainOf[T]())
}

// Get returns the selected value.
func (e *Enum[T]) Get() T {
	return e.selected
}

// Set replaces the selected value.
func (e *Enum[T]) Set(value T) {
	e.selected = value
}

// SetString selects the value matching raw, or the domain default when
// nothing matches.
func (e *Enum[T]) SetString(raw string) {
	e.selected = e.domain.ParseOrDefault(raw)
}

// ValidateValue implements fields.ValueValidator. A required selection is
// always valid.
func (e *Enum[T]) ValidateValue() error {
	return nil
}

// All returns every selectable value.
func (e *Enum[T]) All() []T {
	return e.domain.All()
}

// Domain returns the backing domain.
func (e *Enum[T]) Domain() Domain[T] {
	return e.domain
}

// String returns the canonical form of the selected value.
func (e *Enum[T]) String() string {
	return e.selected.String()
}

// OptionalEnum is a selection where "nothing selected" is a valid state
// unless AllowNull(false) is set.
type OptionalEnum[T Item] struct {
	selected  T
	has       bool
	allowNull bool
	domain    Domain[T]
}

var _ fields.ValueValidator = (*OptionalEnum[Option])(nil)

// NewOptionalEnum selects *value within domain, or nothing when value is nil.
func NewOptionalEnum[T Item](value *T, domain Domain[T]) *OptionalEnum[T] {
	e := &OptionalEnum[T]{allowNull: true, domain: domain}
	if value != nil {
		e.selected = *value
		e.has = true
	}
	return e
}

// NewOptionalEnumOf uses the domain declared by T itself.
func NewOptionalEnumOf[T interface {
	Item
	Enumerable[T]
}](value *T) *OptionalEnum[T] {
	return NewOptionalEnum(value, domainOf[T]())
}

// AllowNull sets whether an empty selection passes validation.
func (e *OptionalEnum[T]) AllowNull(allow bool) *OptionalEnum[T] {
	e.allowNull = allow
	return e
}

// NullAllowed reports the current allow-null policy.
func (e *OptionalEnum[T]) NullAllowed() bool {
	return e.allowNull
}

// ValidationOK is always true when null is allowed, otherwise it requires a
// selection.
func (e *OptionalEnum[T]) ValidationOK() bool {
	if e.allowNull {
		return true
	}
	return e.has
}

// ValidateValue implements fields.ValueValidator. A rejected empty selection
// reports fields.ErrEmpty.
func (e *OptionalEnum[T]) ValidateValue() error {
	if e.ValidationOK() {
		return nil
	}
	return fields.ErrEmpty
}

// Get returns the selected value and whether there is one.
func (e *OptionalEnum[T]) Get() (T, bool) {
	return e.selected, e.has
}

// Set selects value.
func (e *OptionalEnum[T]) Set(value T) {
	e.selected = value
	e.has = true
}

// Clear removes the selection.
func (e *OptionalEnum[T]) Clear() {
	var zero T
	e.selected = zero
	e.has = false
}

// SetString selects the value matching raw. NotSelected and unknown strings
// clear the selection.
func (e *OptionalEnum[T]) SetString(raw string) {
	if raw == NotSelected {
		e.Clear()
		return
	}
	item, ok := e.domain.Lookup(raw)
	if !ok {
		e.Clear()
		return
	}
	e.Set(item)
}

// All returns every selectable value.
func (e *OptionalEnum[T]) All() []T {
	return e.domain.All()
}

// Domain returns the backing domain.
func (e *OptionalEnum[T]) Domain() Domain[T] {
	return e.domain
}

// String returns the canonical form of the selection, or NotSelected.
func (e *OptionalEnum[T]) String() string {
	if !e.has {
		return NotSelected
	}
	return e.selected.String()
}
