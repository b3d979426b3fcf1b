package vanilla

import "github.com/goliatone/go-formfields/pkg/selection"

const defaultNullLabel = "Not selected"

// SelectConfig configures a select control.
type SelectConfig struct {
	Control
	// NullLabel is the caption of the "no selection" option in optional
	// selects.
	NullLabel string
}

type selectView struct {
	nullOption   bool
	nullSelected bool
	invalid      bool
	groups       []map[string]any
}

// EnumSelect renders a required enum selection. Every domain value is an
// option; the selected one is marked.
func EnumSelect[T selection.Item](r *Renderer, cfg SelectConfig, state *selection.Enum[T]) (string, error) {
	selected := state.Get()
	options := make([]map[string]any, 0, len(state.All()))
	for _, item := range state.All() {
		options = append(options, optionView(item.String(), item.String(), item == selected))
	}
	return r.renderSelect(cfg, selectView{groups: []map[string]any{groupView("", options)}})
}

// OptionalEnumSelect renders an optional enum selection with a leading
// "no selection" option whose value is selection.NotSelected.
func OptionalEnumSelect[T selection.Item](r *Renderer, cfg SelectConfig, state *selection.OptionalEnum[T]) (string, error) {
	selected, has := state.Get()
	options := make([]map[string]any, 0, len(state.All()))
	for _, item := range state.All() {
		options = append(options, optionView(item.String(), item.String(), has && item == selected))
	}
	return r.renderSelect(cfg, selectView{
		nullOption:   true,
		nullSelected: !has,
		invalid:      !state.ValidationOK(),
		groups:       []map[string]any{groupView("", options)},
	})
}

// GroupedSelect renders a grouped option list. Named groups become
// optgroups; unnamed groups render their options inline. The leading "no
// selection" option is rendered when allowEmpty is set. Only the first item
// carrying the selected ID is marked, matching Grouped.Select.
func GroupedSelect[T selection.Selectable](r *Renderer, cfg SelectConfig, state *selection.Grouped[T], allowEmpty bool) (string, error) {
	selectedID := state.SelectedID()
	_, has := state.Selected()

	marked := !has
	groups := make([]map[string]any, 0, len(state.Groups()))
	for _, group := range state.Groups() {
		options := make([]map[string]any, 0, len(group.Items))
		for _, item := range group.Items {
			selected := !marked && item.ID() == selectedID
			if selected {
				marked = true
			}
			options = append(options, optionView(item.ID(), item.Label(), selected))
		}
		groups = append(groups, groupView(group.Name, options))
	}
	return r.renderSelect(cfg, selectView{
		nullOption:   allowEmpty,
		nullSelected: !has,
		groups:       groups,
	})
}

func (r *Renderer) renderSelect(cfg SelectConfig, view selectView) (string, error) {
	nullLabel := cfg.NullLabel
	if nullLabel == "" {
		nullLabel = defaultNullLabel
	}

	ctx := r.baseContext(cfg.Control)
	ctx["null_option"] = view.nullOption
	ctx["null_selected"] = view.nullSelected
	ctx["null_value"] = selection.NotSelected
	ctx["null_label"] = nullLabel
	ctx["invalid"] = view.invalid
	ctx["groups"] = view.groups
	return r.engine.render(templateSelect, ctx)
}

func optionView(value, label string, selected bool) map[string]any {
	return map[string]any{
		"value":    value,
		"label":    label,
		"selected": selected,
	}
}

func groupView(name string, options []map[string]any) map[string]any {
	return map[string]any{
		"name":    name,
		"options": options,
	}
}
