package utcoffsets

import (
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/goliatone/go-formfields/pkg/utcoffset"
)

// ErrNilMux is returned when mounting on a nil mux.
var ErrNilMux = errors.New("utcoffsets: nil mux")

// Mux is anything a handler can be mounted on, such as *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Component owns one resolved offset catalog and the handler serving it.
// The catalog and handler are built once in New and shared by every mount.
type Component struct {
	opts    Options
	offsets []utcoffset.Offset
	handler http.Handler
}

// New resolves options and builds the component.
func New(fns ...OptionFn) *Component {
	opts := NewOptions(fns...)
	offsets := opts.Offsets
	if offsets == nil {
		offsets = utcoffset.All()
	}
	return &Component{
		opts:    opts,
		offsets: offsets,
		handler: HandlerWithOptions(opts),
	}
}

// Options returns the resolved configuration.
func (c *Component) Options() Options {
	opts := c.opts
	opts.Offsets = append([]utcoffset.Offset(nil), c.opts.Offsets...)
	return opts
}

// Handler returns the shared handler.
func (c *Component) Handler() http.Handler {
	return c.handler
}

// Search runs the handler's query against the component catalog.
func (c *Component) Search(query string, limit int) []Option {
	return SearchOptions(c.offsets, query, limit, c.opts)
}

// Route joins prefix and the configured route path into a clean absolute
// pattern.
func (c *Component) Route(prefix string) string {
	return path.Join("/", strings.TrimSpace(prefix), strings.TrimSpace(c.opts.RoutePath))
}

// Mount registers the handler on mux under prefix and returns the pattern.
func (c *Component) Mount(mux Mux, prefix string) (string, error) {
	if mux == nil {
		return "", ErrNilMux
	}
	route := c.Route(prefix)
	mux.Handle(route, c.handler)
	return route, nil
}

// Mount is New(fns...).Mount(mux, prefix).
func Mount(mux Mux, prefix string, fns ...OptionFn) (string, error) {
	return New(fns...).Mount(mux, prefix)
}
