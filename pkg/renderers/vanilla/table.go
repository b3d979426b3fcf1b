package vanilla

import (
	"html"
	"reflect"
	"strings"
)

// Cell is one table cell. Text cells are escaped; HTML cells are sanitized.
type Cell struct {
	text   string
	markup string
	isHTML bool
}

// Text builds an escaped text cell.
func Text(s string) Cell {
	return Cell{text: s}
}

// HTML builds a cell from markup. The markup passes through the renderer's
// sanitizer.
func HTML(markup string) Cell {
	return Cell{markup: markup, isHTML: true}
}

// TableItem is a row type. Header fixes the number of columns and is called
// on a fresh value of the row type, so pointer rows see a pointer to a zero
// struct rather than nil. Cell is called once per column.
type TableItem interface {
	Header() []string
	Cell(index int) Cell
}

// TableConfig configures a table. LineAction, when set, adds a trailing
// column filled per row, headed by HeaderAction. Header, when set, replaces
// the row type's own header.
type TableConfig[T TableItem] struct {
	Header       []string
	Classes      []string
	WrapperClass string
	HeaderAction Cell
	LineAction   func(item T) Cell
}

// Table renders items as an HTML table.
func Table[T TableItem](r *Renderer, cfg TableConfig[T], items []T) (string, error) {
	header := cfg.Header
	if header == nil {
		header = tableHeader(items)
	}

	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		cells := make([]string, 0, len(header))
		for i := range header {
			cells = append(cells, r.cellMarkup(item.Cell(i)))
		}
		row := map[string]any{"cells": cells}
		if cfg.LineAction != nil {
			row["action"] = r.cellMarkup(cfg.LineAction(item))
		}
		rows = append(rows, row)
	}

	ctx := map[string]any{
		"classes":       strings.Join(cfg.Classes, " "),
		"wrapper":       strings.TrimSpace(cfg.WrapperClass),
		"wrapper_style": r.wrapperStyle,
		"header":        header,
		"rows":          rows,
		"has_action":    cfg.LineAction != nil,
		"header_action": r.cellMarkup(cfg.HeaderAction),
	}
	return r.engine.render(templateTable, ctx)
}

func tableHeader[T TableItem](items []T) []string {
	var zero T
	rt := reflect.TypeOf(zero)
	switch {
	case rt == nil:
		// T is an interface type; only a concrete row can answer.
		if len(items) == 0 {
			return nil
		}
		return items[0].Header()
	case rt.Kind() == reflect.Pointer:
		return reflect.New(rt.Elem()).Interface().(T).Header()
	default:
		return zero.Header()
	}
}

func (r *Renderer) cellMarkup(c Cell) string {
	if c.isHTML {
		return r.sanitizer.Sanitize(c.markup)
	}
	return html.EscapeString(c.text)
}
