// Package tui drives field and selection state through terminal prompts.
// Each prompt repeats until the answer passes the state's own validation,
// so a returned nil error always leaves the state valid.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/selection"
)

const defaultNullLabel = "(none)"

// Prompter asks for field values through a PromptDriver.
type Prompter struct {
	driver      PromptDriver
	out         io.Writer
	theme       Theme
	maxAttempts int
	nullLabel   string
	pageSize    int
}

// New constructs a prompter with defaults (survey driver, unlimited retries).
func New(options ...Option) (*Prompter, error) {
	p := &Prompter{nullLabel: defaultNullLabel}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.driver == nil {
		p.driver = newSurveyDriver(p.out)
	}
	return p, nil
}

// Prompt describes what the user is asked.
type Prompt struct {
	Label string
	Help  string
}

// TextField is the state behind a text prompt. Both fields.Value and
// fields.OptionalValue satisfy it.
type TextField interface {
	fields.ValueValidator
	String() string
	SetString(raw string)
}

// Value asks for a required value. An empty answer is rejected.
func (p *Prompter) Value(ctx context.Context, cfg Prompt, field TextField) error {
	return p.text(ctx, cfg, field, true)
}

// OptionalValue asks for a value that may be left empty.
func (p *Prompter) OptionalValue(ctx context.Context, cfg Prompt, field TextField) error {
	return p.text(ctx, cfg, field, false)
}

func (p *Prompter) text(ctx context.Context, cfg Prompt, field TextField, required bool) error {
	if field == nil {
		return errors.New("tui: field is nil")
	}
	previous := field.String()

	return p.retry(ctx, cfg, func() (string, error) {
		answer, err := p.driver.Input(ctx, InputConfig{
			Message: p.message(cfg),
			Default: previous,
			Help:    cfg.Help,
		})
		if err != nil {
			return "", err
		}

		field.SetString(strings.TrimSpace(answer))
		verr := field.ValidateValue()
		if verr == nil || (!required && errors.Is(verr, fields.ErrEmpty)) {
			return "", nil
		}
		field.SetString(previous)
		if errors.Is(verr, fields.ErrEmpty) {
			return "a value is required", nil
		}
		return fields.Message(verr), nil
	})
}

// Bool asks a yes/no question, starting from *value.
func (p *Prompter) Bool(ctx context.Context, cfg Prompt, value *bool) error {
	if value == nil {
		return errors.New("tui: bool target is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	answer, err := p.driver.Confirm(ctx, ConfirmConfig{
		Message: p.message(cfg),
		Default: *value,
		Help:    cfg.Help,
	})
	if err != nil {
		return err
	}
	*value = answer
	return nil
}

// Enum asks for one value of the state's domain.
func Enum[T selection.Item](ctx context.Context, p *Prompter, cfg Prompt, state *selection.Enum[T]) error {
	items := state.All()
	if len(items) == 0 {
		return ErrNoOptions
	}
	options := make([]string, 0, len(items))
	for _, item := range items {
		options = append(options, item.String())
	}

	return p.retry(ctx, cfg, func() (string, error) {
		idx, err := p.choose(ctx, cfg, options, indexOf(options, state.String()))
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(items) {
			return "invalid selection", nil
		}
		state.Set(items[idx])
		return "", nil
	})
}

// OptionalEnum asks for one value of the state's domain or none. Choosing
// none is rejected when the state does not allow null.
func OptionalEnum[T selection.Item](ctx context.Context, p *Prompter, cfg Prompt, state *selection.OptionalEnum[T]) error {
	items := state.All()
	options := make([]string, 0, len(items)+1)
	options = append(options, p.nullLabel)
	for _, item := range items {
		options = append(options, item.String())
	}

	current := 0
	if selected, ok := state.Get(); ok {
		current = indexOf(options[1:], selected.String()) + 1
	}

	return p.retry(ctx, cfg, func() (string, error) {
		idx, err := p.choose(ctx, cfg, options, current)
		if err != nil {
			return "", err
		}
		switch {
		case idx == 0:
			if !state.NullAllowed() {
				return "a selection is required", nil
			}
			state.Clear()
		case idx > 0 && idx < len(options):
			state.Set(items[idx-1])
		default:
			return "invalid selection", nil
		}
		return "", nil
	})
}

// Grouped asks for one item of a grouped list. Items of named groups are
// shown as "Group / Label". With allowEmpty a leading "no selection" choice
// clears the selection.
func Grouped[T selection.Selectable](ctx context.Context, p *Prompter, cfg Prompt, state *selection.Grouped[T], allowEmpty bool) error {
	var (
		options []string
		ids     []string
	)
	if allowEmpty {
		options = append(options, p.nullLabel)
		ids = append(ids, "")
	}
	for _, group := range state.Groups() {
		for _, item := range group.Items {
			label := item.Label()
			if group.Name != "" {
				label = group.Name + " / " + label
			}
			options = append(options, label)
			ids = append(ids, item.ID())
		}
	}
	if state.Len() == 0 {
		return ErrNoOptions
	}

	current := 0
	if _, ok := state.Selected(); ok {
		current = indexOf(ids, state.SelectedID())
	}

	return p.retry(ctx, cfg, func() (string, error) {
		idx, err := p.choose(ctx, cfg, options, current)
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(ids) {
			return "invalid selection", nil
		}
		if allowEmpty && idx == 0 {
			state.ClearSelected()
			return "", nil
		}
		if !state.Select(ids[idx]) {
			return "invalid selection", nil
		}
		return "", nil
	})
}

func (p *Prompter) choose(ctx context.Context, cfg Prompt, options []string, current int) (int, error) {
	return p.driver.Select(ctx, SelectConfig{
		Message:      p.message(cfg),
		Options:      options,
		DefaultIndex: current,
		Help:         cfg.Help,
		PageSize:     p.pageSize,
	})
}

// retry runs ask until it reports no problem. A non-empty problem is shown
// to the user and the question is asked again.
func (p *Prompter) retry(ctx context.Context, cfg Prompt, ask func() (problem string, err error)) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		problem, err := ask()
		if err != nil {
			return err
		}
		if problem == "" {
			return nil
		}
		_ = p.driver.Info(ctx, fmt.Sprintf("%sInvalid %s: %s", p.theme.ErrorPrefix, cfg.Label, problem))
		if p.maxAttempts > 0 && attempt >= p.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, cfg.Label)
		}
	}
}

func (p *Prompter) message(cfg Prompt) string {
	return p.theme.PromptPrefix + cfg.Label
}

// Info prints a message through the driver.
func (p *Prompter) Info(ctx context.Context, msg string) error {
	return p.driver.Info(ctx, p.theme.InfoPrefix+msg)
}
