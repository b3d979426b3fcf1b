package selection

import "strings"

// Option is a plain value/caption pair usable both as an enum Item and as a
// grouped Selectable.
type Option struct {
	Value   string `json:"value" yaml:"id"`
	Caption string `json:"label,omitempty" yaml:"label,omitempty"`
}

// NewOption trims value and caption.
func NewOption(value, caption string) Option {
	return Option{Value: strings.TrimSpace(value), Caption: strings.TrimSpace(caption)}
}

func (o Option) ID() string { return o.Value }

// Label falls back to the value when no caption is set.
func (o Option) Label() string {
	if o.Caption == "" {
		return o.Value
	}
	return o.Caption
}

func (o Option) String() string { return o.Value }

// OptionsDomain builds a domain of options whose fallback is the first
// option.
func OptionsDomain(options ...Option) Domain[Option] {
	var fallback Option
	if len(options) > 0 {
		fallback = options[0]
	}
	return NewDomain(fallback, options...)
}
