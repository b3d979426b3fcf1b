package selection

import (
	"reflect"

	"github.com/mohae/deepcopy"
)

// Selectable is an entry in a grouped option list. ID must be stable; Label
// is what the control displays.
type Selectable interface {
	ID() string
	Label() string
}

// Cloner lets an item control how Grouped snapshots it on selection. Items
// without it are copied with deepcopy when every field they reach is
// exported. Anything else is kept as is, since deepcopy would zero the
// unexported fields.
type Cloner[T any] interface {
	Clone() T
}

// Group is a named run of items. An empty Name renders the items without a
// group heading.
type Group[T Selectable] struct {
	Name  string
	Items []T
}

// NewGroup builds a group.
func NewGroup[T Selectable](name string, items ...T) Group[T] {
	return Group[T]{Name: name, Items: items}
}

// Grouped is an ordered list of groups with at most one selected item. The
// selected item is a copy taken at selection time, so later changes to the
// groups do not affect it.
type Grouped[T Selectable] struct {
	groups   []Group[T]
	selected T
	has      bool
}

// NewGrouped builds a selection over groups with nothing selected.
func NewGrouped[T Selectable](groups ...Group[T]) *Grouped[T] {
	return &Grouped[T]{groups: groups}
}

// NewGroupedWithSelected builds a selection and selects id when it matches.
func NewGroupedWithSelected[T Selectable](groups []Group[T], id string) *Grouped[T] {
	g := NewGrouped(groups...)
	g.Select(id)
	return g
}

// FromItems puts items into a single unnamed group.
func FromItems[T Selectable](items ...T) *Grouped[T] {
	return NewGrouped(Group[T]{Items: items})
}

// Select scans the groups in order and selects the first item whose ID
// equals id. When nothing matches the previous selection is kept and Select
// returns false.
func (g *Grouped[T]) Select(id string) bool {
	for _, group := range g.groups {
		for _, item := range group.Items {
			if item.ID() == id {
				g.selected = snapshot(item)
				g.has = true
				return true
			}
		}
	}
	return false
}

// ClearSelected removes the selection.
func (g *Grouped[T]) ClearSelected() {
	var zero T
	g.selected = zero
	g.has = false
}

// Selected returns the selected item and whether there is one.
func (g *Grouped[T]) Selected() (T, bool) {
	return g.selected, g.has
}

// SelectedID returns the ID of the selected item, or "" when nothing is
// selected.
func (g *Grouped[T]) SelectedID() string {
	if !g.has {
		return ""
	}
	return g.selected.ID()
}

// Push appends a group.
func (g *Grouped[T]) Push(group Group[T]) {
	g.groups = append(g.groups, group)
}

// PushItem appends item to the first group, creating an unnamed group when
// there is none.
func (g *Grouped[T]) PushItem(item T) {
	if len(g.groups) == 0 {
		g.groups = append(g.groups, Group[T]{Items: []T{item}})
		return
	}
	g.groups[0].Items = append(g.groups[0].Items, item)
}

// Groups returns the groups in insertion order. Callers must not modify the
// returned slice.
func (g *Grouped[T]) Groups() []Group[T] {
	return g.groups
}

// Len returns the total number of items across groups.
func (g *Grouped[T]) Len() int {
	n := 0
	for _, group := range g.groups {
		n += len(group.Items)
	}
	return n
}

func snapshot[T Selectable](item T) T {
	if c, ok := any(item).(Cloner[T]); ok {
		return c.Clone()
	}
	if hasUnexported(reflect.TypeOf(item), map[reflect.Type]bool{}) {
		return item
	}
	copied, ok := deepcopy.Copy(item).(T)
	if !ok || copied.ID() != item.ID() {
		return item
	}
	return copied
}

// hasUnexported reports whether t, or any type reachable from it, is a
// struct with an unexported field.
func hasUnexported(t reflect.Type, seen map[reflect.Type]bool) bool {
	if t == nil || seen[t] {
		return false
	}
	seen[t] = true
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return hasUnexported(t.Elem(), seen)
	case reflect.Map:
		return hasUnexported(t.Key(), seen) || hasUnexported(t.Elem(), seen)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() || hasUnexported(field.Type, seen) {
				return true
			}
		}
	}
	return false
}
