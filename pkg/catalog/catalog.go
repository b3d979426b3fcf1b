// Package catalog loads grouped option lists from YAML documents.
//
// A catalog looks like:
//
//	selected: de
//	groups:
//	  - name: Europe
//	    options:
//	      - id: fr
//	        label: France
//	      - id: de
//	        label: Germany
//	  - options:
//	      - id: other
//
// Groups without a name render their options without a heading.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfields/pkg/selection"
)

var (
	// ErrEmptyID is returned when an option has no id.
	ErrEmptyID = errors.New("catalog: option id is required")
	// ErrDuplicateID is returned when two options share an id.
	ErrDuplicateID = errors.New("catalog: duplicate option id")
	// ErrUnknownSelected is returned when selected names no option.
	ErrUnknownSelected = errors.New("catalog: selected id not found")
)

type document struct {
	Selected string          `yaml:"selected"`
	Groups   []groupDocument `yaml:"groups"`
}

type groupDocument struct {
	Name    string             `yaml:"name"`
	Options []selection.Option `yaml:"options"`
}

// Load decodes a catalog from r.
func Load(r io.Reader) (*selection.Grouped[selection.Option], error) {
	if r == nil {
		return nil, fmt.Errorf("catalog: missing reader")
	}

	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return selection.NewGrouped[selection.Option](), nil
		}
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	seen := make(map[string]struct{})
	groups := make([]selection.Group[selection.Option], 0, len(doc.Groups))
	for gi, g := range doc.Groups {
		items := make([]selection.Option, 0, len(g.Options))
		for oi, opt := range g.Options {
			opt = selection.NewOption(opt.Value, opt.Caption)
			if opt.Value == "" {
				return nil, fmt.Errorf("%w (group %d, option %d)", ErrEmptyID, gi, oi)
			}
			if _, dup := seen[opt.Value]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateID, opt.Value)
			}
			seen[opt.Value] = struct{}{}
			items = append(items, opt)
		}
		groups = append(groups, selection.NewGroup(strings.TrimSpace(g.Name), items...))
	}

	grouped := selection.NewGrouped(groups...)
	if selected := strings.TrimSpace(doc.Selected); selected != "" {
		if !grouped.Select(selected) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSelected, selected)
		}
	}
	return grouped, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*selection.Grouped[selection.Option], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}
