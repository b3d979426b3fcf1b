package utcoffsets

import (
	"net/http"

	"github.com/goliatone/go-formfields/pkg/utcoffset"
)

type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchTop  EmptySearchMode = "top"
)

const (
	defaultRoutePath   = "/api/utc-offsets"
	defaultSearchParam = "q"
	defaultLimitParam  = "limit"
	defaultLimit       = 50
	defaultMaxLimit    = 100
	defaultEmptySearch = EmptySearchTop
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath       string
	SearchParam     string
	LimitParam      string
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode
	Guard           GuardFunc

	// Offsets restricts the served catalog. Nil serves every offset.
	Offsets []utcoffset.Offset
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:       defaultRoutePath,
		SearchParam:     defaultSearchParam,
		LimitParam:      defaultLimitParam,
		DefaultLimit:    defaultLimit,
		MaxLimit:        defaultMaxLimit,
		EmptySearchMode: defaultEmptySearch,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = defaultLimit
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = defaultMaxLimit
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = defaultEmptySearch
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.SearchParam == "" {
		opts.SearchParam = defaultSearchParam
	}
	if opts.LimitParam == "" {
		opts.LimitParam = defaultLimitParam
	}
	if opts.Offsets != nil {
		opts.Offsets = validOffsets(opts.Offsets)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		o.RoutePath = path
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		o.SearchParam = name
	}
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		o.LimitParam = name
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		o.MaxLimit = limit
	}
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) {
		o.EmptySearchMode = mode
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		o.Guard = guard
	}
}

// WithOffsets restricts the catalog. Invalid offsets are dropped.
func WithOffsets(offsets ...utcoffset.Offset) OptionFn {
	return func(o *Options) {
		if offsets == nil {
			o.Offsets = nil
			return
		}
		o.Offsets = append([]utcoffset.Offset{}, offsets...)
	}
}

func validOffsets(offsets []utcoffset.Offset) []utcoffset.Offset {
	out := make([]utcoffset.Offset, 0, len(offsets))
	for _, offset := range offsets {
		if offset.Valid() {
			out = append(out, offset)
		}
	}
	return out
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
