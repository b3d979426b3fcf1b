package tui

import "io"

// Theme captures optional formatting hints applied to prompt and info
// messages. Keep minimal to avoid coupling prompt logic to ANSI specifics.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// Option configures the Prompter.
type Option func(*Prompter)

// WithPromptDriver overrides the prompt driver used by the prompter.
func WithPromptDriver(driver PromptDriver) Option {
	return func(p *Prompter) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithOutput sets where the default driver prints info messages. Ignored
// when WithPromptDriver is used.
func WithOutput(w io.Writer) Option {
	return func(p *Prompter) {
		p.out = w
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(p *Prompter) {
		p.theme = theme
	}
}

// WithMaxAttempts bounds how many invalid answers a single prompt accepts
// before failing with ErrTooManyAttempts. Zero re-prompts until the answer
// is valid.
func WithMaxAttempts(n int) Option {
	return func(p *Prompter) {
		if n >= 0 {
			p.maxAttempts = n
		}
	}
}

// WithNullLabel sets the caption of the "no selection" choice.
func WithNullLabel(label string) Option {
	return func(p *Prompter) {
		if label != "" {
			p.nullLabel = label
		}
	}
}

// WithPageSize sets how many options a select prompt shows at once.
func WithPageSize(n int) Option {
	return func(p *Prompter) {
		if n > 0 {
			p.pageSize = n
		}
	}
}
