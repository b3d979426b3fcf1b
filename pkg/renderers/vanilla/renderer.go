// Package vanilla renders form controls backed by field and selection state
// as plain HTML. Captions may carry inline markup; it is sanitized before
// output. Every other value is escaped.
package vanilla

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formfields/pkg/fields"
)

const (
	styleReadOnly = "color: lightgray;font-weight: bold;"
	styleInvalid  = "color: red"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS fs.FS
	theme      *theme.RendererConfig
	sanitizer  *bluemonday.Policy
	newID      func() string
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTheme applies the CSS variables of a resolved go-theme configuration to
// every control wrapper. Tokens are exposed as "--<token>" when the theme has
// no explicit CSS variables.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithSanitizer replaces the caption sanitizer policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.sanitizer = policy
		}
	}
}

// WithIDGenerator overrides how element ids are generated for controls that
// have neither an explicit ID nor a Name.
func WithIDGenerator(fn func() string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.newID = fn
		}
	}
}

// Renderer turns field state into HTML controls. It is safe for concurrent
// use.
type Renderer struct {
	engine       *engine
	sanitizer    *bluemonday.Policy
	newID        func() string
	wrapperStyle string
}

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		sanitizer:  bluemonday.UGCPolicy(),
		newID:      uuid.NewString,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	eng, err := newEngine(cfg.templateFS)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: %w", err)
	}

	return &Renderer{
		engine:       eng,
		sanitizer:    cfg.sanitizer,
		newID:        cfg.newID,
		wrapperStyle: cssVarsStyle(themeVars(cfg.theme)),
	}, nil
}

// Control identifies a rendered control.
type Control struct {
	Caption string
	Name    string
	// ID defaults to "ff-<Name>", or a generated id when Name is empty.
	ID string
}

// TextField is the state a text input displays.
type TextField interface {
	fields.ValueValidator
	String() string
}

type boundedField interface {
	Bounds() (min, max string)
}

// InputConfig configures a text input.
type InputConfig struct {
	Control
	ReadOnly bool
}

// Input renders a text input. Validation failures other than an empty value
// highlight the control and show the matching message.
func (r *Renderer) Input(cfg InputConfig, field TextField) (string, error) {
	style := ""
	if cfg.ReadOnly {
		style = styleReadOnly
	}

	ctx := r.baseContext(cfg.Control)
	ctx["read_only"] = cfg.ReadOnly

	if field != nil {
		err := field.ValidateValue()
		if fields.Highlight(err) {
			style = styleInvalid
			ctx["invalid"] = true
			ctx["message"] = fields.Message(err)
		}
		ctx["value"] = field.String()
		if b, ok := field.(boundedField); ok {
			ctx["min"], ctx["max"] = b.Bounds()
		}
	}
	ctx["style"] = style

	return r.engine.render(templateInput, ctx)
}

// Checkbox renders a boolean toggle.
func (r *Renderer) Checkbox(cfg Control, checked bool) (string, error) {
	ctx := r.baseContext(cfg)
	ctx["checked"] = checked
	return r.engine.render(templateCheckbox, ctx)
}

func (r *Renderer) baseContext(cfg Control) pongo2.Context {
	return pongo2.Context{
		"id":            r.controlID(cfg),
		"name":          strings.TrimSpace(cfg.Name),
		"caption":       r.sanitize(cfg.Caption),
		"wrapper_style": r.wrapperStyle,
	}
}

func (r *Renderer) controlID(cfg Control) string {
	if id := strings.TrimSpace(cfg.ID); id != "" {
		return id
	}
	if name := strings.TrimSpace(cfg.Name); name != "" {
		return "ff-" + name
	}
	return "ff-" + r.newID()
}

func (r *Renderer) sanitize(markup string) string {
	trimmed := strings.TrimSpace(markup)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(r.sanitizer.Sanitize(trimmed))
}

func themeVars(cfg *theme.RendererConfig) map[string]string {
	if cfg == nil {
		return nil
	}
	if len(cfg.CSSVars) > 0 {
		return cfg.CSSVars
	}
	if len(cfg.Tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(cfg.Tokens))
	for key, value := range cfg.Tokens {
		vars["--"+key] = value
	}
	return vars
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteByte(';')
	}
	return b.String()
}
