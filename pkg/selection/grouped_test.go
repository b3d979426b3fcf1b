package selection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type account struct {
	Key   string
	Name  string
	Roles []string
}

func (a account) ID() string    { return a.Key }
func (a account) Label() string { return a.Name }

type cloneCounter struct {
	id     string
	clones *int
}

func (c cloneCounter) ID() string    { return c.id }
func (c cloneCounter) Label() string { return c.id }
func (c cloneCounter) Clone() cloneCounter {
	*c.clones++
	return cloneCounter{id: c.id, clones: c.clones}
}

type region struct {
	code, name string
}

func (r region) ID() string    { return r.code }
func (r region) Label() string { return r.name }

type tenant struct {
	Key   string
	Owner *region
}

func (t *tenant) ID() string    { return t.Key }
func (t *tenant) Label() string { return t.Owner.Label() }

func sampleGroups() []Group[Option] {
	return []Group[Option]{
		NewGroup("Europe", NewOption("fr", "France"), NewOption("de", "Germany")),
		NewGroup("Americas", NewOption("us", "United States"), NewOption("fr", "French Guiana")),
	}
}

func TestGrouped_SelectFirstMatchWins(t *testing.T) {
	g := NewGrouped(sampleGroups()...)

	if !g.Select("fr") {
		t.Fatalf("expected fr to match")
	}
	got, ok := g.Selected()
	if !ok {
		t.Fatalf("expected a selection")
	}
	if diff := cmp.Diff(NewOption("fr", "France"), got); diff != "" {
		t.Fatalf("selected mismatch (-want +got):\n%s", diff)
	}
	if g.SelectedID() != "fr" {
		t.Fatalf("unexpected selected id %q", g.SelectedID())
	}
}

func TestGrouped_NonMatchKeepsSelection(t *testing.T) {
	g := NewGroupedWithSelected(sampleGroups(), "us")

	if g.Select("jp") {
		t.Fatalf("expected jp not to match")
	}
	got, ok := g.Selected()
	if !ok || got.ID() != "us" {
		t.Fatalf("expected us to stay selected, got %+v ok=%v", got, ok)
	}
}

func TestGrouped_ClearSelected(t *testing.T) {
	g := NewGroupedWithSelected(sampleGroups(), "de")
	g.ClearSelected()
	if _, ok := g.Selected(); ok {
		t.Fatalf("expected no selection")
	}
	if g.SelectedID() != "" {
		t.Fatalf("expected empty selected id, got %q", g.SelectedID())
	}
}

func TestGrouped_PushItemCreatesUnnamedGroup(t *testing.T) {
	g := NewGrouped[Option]()
	g.PushItem(NewOption("a", "A"))
	g.PushItem(NewOption("b", "B"))
	g.Push(NewGroup("More", NewOption("c", "C")))
	g.PushItem(NewOption("d", "D"))

	want := []Group[Option]{
		{Name: "", Items: []Option{{Value: "a", Caption: "A"}, {Value: "b", Caption: "B"}, {Value: "d", Caption: "D"}}},
		{Name: "More", Items: []Option{{Value: "c", Caption: "C"}}},
	}
	if diff := cmp.Diff(want, g.Groups()); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
	if g.Len() != 4 {
		t.Fatalf("expected 4 items, got %d", g.Len())
	}
}

func TestGrouped_SelectionIsSnapshot(t *testing.T) {
	g := FromItems(account{Key: "u1", Name: "Ada", Roles: []string{"admin"}})
	if !g.Select("u1") {
		t.Fatalf("expected u1 to match")
	}

	g.Groups()[0].Items[0].Name = "Grace"
	g.Groups()[0].Items[0].Roles[0] = "viewer"

	got, _ := g.Selected()
	want := account{Key: "u1", Name: "Ada", Roles: []string{"admin"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("snapshot changed (-want +got):\n%s", diff)
	}
}

func TestGrouped_SelectionKeepsUnexportedFields(t *testing.T) {
	g := FromItems(region{code: "eu", name: "Europe"}, region{code: "us", name: "United States"})
	if !g.Select("eu") {
		t.Fatalf("expected eu to match")
	}
	got, ok := g.Selected()
	if !ok {
		t.Fatalf("expected a selection")
	}
	if got.ID() != "eu" || got.Label() != "Europe" {
		t.Fatalf("selection lost its fields: id=%q label=%q", got.ID(), got.Label())
	}
	if id := g.SelectedID(); id != "eu" {
		t.Fatalf("expected SelectedID eu, got %q", id)
	}
}

func TestGrouped_SelectionKeepsNestedUnexportedFields(t *testing.T) {
	g := FromItems(&tenant{Key: "t1", Owner: &region{code: "eu", name: "Europe"}})
	g.Select("t1")
	got, _ := g.Selected()
	if got.Label() != "Europe" {
		t.Fatalf("expected nested label Europe, got %q", got.Label())
	}
}

func TestGrouped_UsesCloner(t *testing.T) {
	clones := 0
	g := FromItems(cloneCounter{id: "x", clones: &clones})
	g.Select("x")
	if clones != 1 {
		t.Fatalf("expected Clone to be called once, got %d", clones)
	}
}

func TestOption_LabelFallsBackToValue(t *testing.T) {
	if got := NewOption(" v ", "").Label(); got != "v" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := NewOption("v", "Caption").Label(); got != "Caption" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestOptionsDomain(t *testing.T) {
	d := OptionsDomain(NewOption("small", ""), NewOption("large", ""))
	if d.Default().Value != "small" {
		t.Fatalf("expected first option as default, got %+v", d.Default())
	}
	if got := d.ParseOrDefault("large"); got.Value != "large" {
		t.Fatalf("unexpected lookup %+v", got)
	}
}
