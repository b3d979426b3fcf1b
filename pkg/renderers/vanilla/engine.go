package vanilla

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
)

const (
	templateInput    = "input.tpl"
	templateCheckbox = "checkbox.tpl"
	templateSelect   = "select.tpl"
	templateTable    = "table.tpl"
)

// engine caches compiled pongo2 templates loaded from an fs.FS.
type engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

func newEngine(files fs.FS) (*engine, error) {
	if files == nil {
		return nil, errors.New("vanilla: templates fs is nil")
	}
	return &engine{
		set:       pongo2.NewSet("formfields", pongo2.NewFSLoader(files)),
		templates: make(map[string]*pongo2.Template),
	}, nil
}

func (e *engine) render(name string, data pongo2.Context) (string, error) {
	tmpl, err := e.template(name)
	if err != nil {
		return "", err
	}
	out, err := tmpl.Execute(data)
	if err != nil {
		return "", fmt.Errorf("vanilla: execute template %q: %w", name, err)
	}
	return out, nil
}

func (e *engine) template(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[name]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("vanilla: load template %q: %w", name, err)
	}
	e.templates[name] = tmpl
	return tmpl, nil
}
