package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formfields/pkg/catalog"
	"github.com/goliatone/go-formfields/pkg/fields"
	"github.com/goliatone/go-formfields/pkg/renderers/tui"
	"github.com/goliatone/go-formfields/pkg/renderers/vanilla"
	"github.com/goliatone/go-formfields/pkg/schemabind"
	"github.com/goliatone/go-formfields/pkg/selection"
	"github.com/goliatone/go-formfields/pkg/utcoffset"
)

//go:embed assets/settings.schema.json assets/regions.yaml
var assets embed.FS

const (
	settingsSchemaName = "Settings"
	defaultPort        = 8080
	defaultSampleRate  = 0.25
)

var errInvalidSettings = errors.New("formfields-cli: settings are invalid")

// settings is the sample form edited by the CLI.
type settings struct {
	Port       *fields.Value[int64]
	Retries    *fields.OptionalValue[int64]
	SampleRate *fields.Value[float64]
	Offset     *selection.Enum[utcoffset.Offset]
	Theme      *selection.OptionalEnum[selection.Option]
	Region     *selection.Grouped[selection.Option]
	Enabled    bool
}

type settingsResult struct {
	Port       int64            `json:"port"`
	Retries    *int64           `json:"retries"`
	SampleRate float64          `json:"sample_rate"`
	Offset     utcoffset.Offset `json:"offset"`
	Theme      *string          `json:"theme"`
	Region     string           `json:"region,omitempty"`
	Enabled    bool             `json:"enabled"`
}

func loadSettings(ctx context.Context, schemaPath, catalogPath string) (*settings, error) {
	props, err := loadSchemaProperties(ctx, schemaPath)
	if err != nil {
		return nil, err
	}

	port, err := schemabind.IntValue(props["port"], defaultPort)
	if err != nil {
		return nil, fmt.Errorf("formfields-cli: port: %w", err)
	}
	retries, err := schemabind.OptionalIntValue(props["retries"], nil)
	if err != nil {
		return nil, fmt.Errorf("formfields-cli: retries: %w", err)
	}
	sampleRate, err := schemabind.FloatValue(props["sample_rate"], defaultSampleRate)
	if err != nil {
		return nil, fmt.Errorf("formfields-cli: sample_rate: %w", err)
	}
	theme, err := schemabind.OptionalEnum(props["theme"], "")
	if err != nil {
		return nil, fmt.Errorf("formfields-cli: theme: %w", err)
	}

	region, err := loadRegions(catalogPath)
	if err != nil {
		return nil, err
	}

	return &settings{
		Port:       port,
		Retries:    retries,
		SampleRate: sampleRate,
		Offset:     selection.NewEnumOf(utcoffset.Default()),
		Theme:      theme,
		Region:     region,
		Enabled:    true,
	}, nil
}

func loadSchemaProperties(ctx context.Context, path string) (map[string]*openapi3.Schema, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	var (
		doc *openapi3.T
		err error
	)
	if path == "" {
		var data []byte
		data, err = assets.ReadFile("assets/settings.schema.json")
		if err != nil {
			return nil, fmt.Errorf("formfields-cli: read embedded schema: %w", err)
		}
		doc, err = loader.LoadFromData(data)
	} else {
		doc, err = loader.LoadFromFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("formfields-cli: load schema: %w", err)
	}

	ref, ok := doc.Components.Schemas[settingsSchemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("formfields-cli: schema %q not found", settingsSchemaName)
	}

	props := make(map[string]*openapi3.Schema, len(ref.Value.Properties))
	for name, prop := range ref.Value.Properties {
		if prop != nil && prop.Value != nil {
			props[name] = prop.Value
		}
	}
	return props, nil
}

func loadRegions(path string) (*selection.Grouped[selection.Option], error) {
	if path != "" {
		return catalog.LoadFile(path)
	}
	f, err := assets.Open("assets/regions.yaml")
	if err != nil {
		return nil, fmt.Errorf("formfields-cli: open embedded catalog: %w", err)
	}
	defer func() { _ = f.Close() }()
	return catalog.Load(f)
}

// prompt walks every field through the terminal.
func (s *settings) prompt(ctx context.Context, p *tui.Prompter) error {
	if err := p.Value(ctx, tui.Prompt{Label: "Port", Help: boundsHelp(s.Port)}, s.Port); err != nil {
		return err
	}
	if err := p.OptionalValue(ctx, tui.Prompt{Label: "Retries", Help: "leave empty for the server default"}, s.Retries); err != nil {
		return err
	}
	if err := p.Value(ctx, tui.Prompt{Label: "Sample rate", Help: boundsHelp(s.SampleRate)}, s.SampleRate); err != nil {
		return err
	}
	if err := tui.Enum(ctx, p, tui.Prompt{Label: "UTC offset"}, s.Offset); err != nil {
		return err
	}
	if err := tui.OptionalEnum(ctx, p, tui.Prompt{Label: "Theme"}, s.Theme); err != nil {
		return err
	}
	if err := tui.Grouped(ctx, p, tui.Prompt{Label: "Region"}, s.Region, true); err != nil {
		return err
	}
	return p.Bool(ctx, tui.Prompt{Label: "Enabled"}, &s.Enabled)
}

func boundsHelp(field interface{ Bounds() (string, string) }) string {
	min, max := field.Bounds()
	switch {
	case min != "" && max != "":
		return fmt.Sprintf("between %s and %s", min, max)
	case min != "":
		return "at least " + min
	case max != "":
		return "at most " + max
	default:
		return ""
	}
}

// apply copies submitted form values into the fields. Validation happens when
// the form is rendered or collected.
func (s *settings) apply(values url.Values) {
	s.Port.SetString(strings.TrimSpace(values.Get("port")))
	s.Retries.SetString(strings.TrimSpace(values.Get("retries")))
	s.SampleRate.SetString(strings.TrimSpace(values.Get("sample_rate")))
	s.Offset.SetString(values.Get("offset"))
	s.Theme.SetString(values.Get("theme"))

	switch id := values.Get("region"); id {
	case "", selection.NotSelected:
		s.Region.ClearSelected()
	default:
		s.Region.Select(id)
	}
	s.Enabled = values.Get("enabled") != ""
}

// result collects the current values. It fails when any field is invalid.
func (s *settings) result() (settingsResult, error) {
	for _, v := range []fields.ValueValidator{s.Port, s.SampleRate, s.Theme} {
		if err := v.ValidateValue(); err != nil {
			return settingsResult{}, fmt.Errorf("%w: %w", errInvalidSettings, err)
		}
	}
	if err := s.Retries.ValidateValue(); err != nil && !errors.Is(err, fields.ErrEmpty) {
		return settingsResult{}, fmt.Errorf("%w: retries: %w", errInvalidSettings, err)
	}

	port, _ := s.Port.Get()
	sampleRate, _ := s.SampleRate.Get()
	out := settingsResult{
		Port:       port,
		SampleRate: sampleRate,
		Offset:     s.Offset.Get(),
		Region:     s.Region.SelectedID(),
		Enabled:    s.Enabled,
	}
	if retries, ok := s.Retries.Get(); ok {
		out.Retries = &retries
	}
	if theme, ok := s.Theme.Get(); ok {
		id := theme.ID()
		out.Theme = &id
	}
	return out, nil
}

type summaryRow struct {
	name   string
	value  string
	status string
}

func (summaryRow) Header() []string { return []string{"Setting", "Value", "Status"} }

func (r summaryRow) Cell(index int) vanilla.Cell {
	switch index {
	case 0:
		return vanilla.Text(r.name)
	case 1:
		return vanilla.Text(r.value)
	default:
		if r.status == "" {
			return vanilla.HTML("<em>ok</em>")
		}
		return vanilla.HTML("<strong>" + r.status + "</strong>")
	}
}

func (s *settings) summary() []summaryRow {
	row := func(name string, required bool, field interface {
		fields.ValueValidator
		String() string
	}) summaryRow {
		err := field.ValidateValue()
		status := fields.Message(err)
		if required && errors.Is(err, fields.ErrEmpty) {
			status = "required"
		}
		return summaryRow{name: name, value: field.String(), status: status}
	}

	return []summaryRow{
		row("Port", true, s.Port),
		row("Retries", false, s.Retries),
		row("Sample rate", true, s.SampleRate),
		row("UTC offset", true, s.Offset),
		row("Theme", true, s.Theme),
		{name: "Region", value: s.Region.SelectedID()},
		{name: "Enabled", value: fmt.Sprint(s.Enabled)},
	}
}

// renderHTML renders the whole form followed by a summary table.
func (s *settings) renderHTML(r *vanilla.Renderer) (string, error) {
	var b strings.Builder
	write := func(fragment string, err error) error {
		if err != nil {
			return err
		}
		b.WriteString(fragment)
		b.WriteByte('\n')
		return nil
	}

	steps := []func() (string, error){
		func() (string, error) {
			return r.Input(vanilla.InputConfig{Control: vanilla.Control{Caption: "Port", Name: "port"}}, s.Port)
		},
		func() (string, error) {
			return r.Input(vanilla.InputConfig{Control: vanilla.Control{Caption: "Retries", Name: "retries"}}, s.Retries)
		},
		func() (string, error) {
			return r.Input(vanilla.InputConfig{Control: vanilla.Control{Caption: "Sample rate", Name: "sample_rate"}}, s.SampleRate)
		},
		func() (string, error) {
			return vanilla.EnumSelect(r, vanilla.SelectConfig{Control: vanilla.Control{Caption: "UTC offset", Name: "offset"}}, s.Offset)
		},
		func() (string, error) {
			return vanilla.OptionalEnumSelect(r, vanilla.SelectConfig{Control: vanilla.Control{Caption: "Theme", Name: "theme"}}, s.Theme)
		},
		func() (string, error) {
			return vanilla.GroupedSelect(r, vanilla.SelectConfig{Control: vanilla.Control{Caption: "Region", Name: "region"}}, s.Region, true)
		},
		func() (string, error) {
			return r.Checkbox(vanilla.Control{Caption: "Enabled", Name: "enabled"}, s.Enabled)
		},
		func() (string, error) {
			return vanilla.Table(r, vanilla.TableConfig[summaryRow]{
				Classes:      []string{"table", "table-sm"},
				WrapperClass: "table-responsive",
			}, s.summary())
		},
	}
	for _, step := range steps {
		if err := write(step()); err != nil {
			return "", fmt.Errorf("formfields-cli: render: %w", err)
		}
	}
	return b.String(), nil
}
