// Package config holds the handbook template (which labels to look for and
// how to place value regions) and the runtime settings of the tool.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lernziele/modextract/model"
)

// ErrInvalidTemplate is wrapped by every template validation error.
var ErrInvalidTemplate = errors.New("invalid template")

// Template is the ordered set of field specs for one handbook layout. The
// field named by Primary decides whether a page is a module description.
type Template struct {
	Name    string            `yaml:"name"`
	Primary string            `yaml:"primary"`
	Fields  []model.FieldSpec `yaml:"fields"`
}

// standardDeviation is the calibrated offset for the BHT handbook layout:
// the value column starts 120pt right of the label and is 370pt wide, and
// the region reaches 1pt above the label's top edge.
var standardDeviation = model.DeviationPair{
	Start: model.Point{X: 120, Y: 0},
	End:   model.Point{X: 490, Y: 1},
}

// DefaultTemplate returns the template for the BHT module handbooks.
func DefaultTemplate() Template {
	return Template{
		Name:    "bht-modulhandbuch",
		Primary: model.FieldID,
		Fields: []model.FieldSpec{
			{
				Name:        model.FieldID,
				Labels:      []string{"Modulnummer"},
				Terminators: []string{"Titel"},
				Deviation:   standardDeviation,
			},
			{
				Name:        model.FieldName,
				Labels:      []string{"Titel"},
				Terminators: []string{"Leistungspunkte", "Credits"},
				Deviation:   standardDeviation,
			},
			{
				Name:        model.FieldCompetencies,
				Labels:      []string{"Lernziele / Kompetenzen", "Lernziele/Kompetenzen"},
				Terminators: []string{"Voraussetzungen"},
				Deviation:   standardDeviation,
			},
			{
				Name:        model.FieldRequirements,
				Labels:      []string{"Voraussetzungen"},
				Terminators: []string{"Niveaustufe"},
				Deviation:   standardDeviation,
			},
		},
	}
}

// Field returns the field with the given name
func (t Template) Field(name string) (model.FieldSpec, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return model.FieldSpec{}, false
}

// PrimaryField returns the field that identifies module pages
func (t Template) PrimaryField() model.FieldSpec {
	f, _ := t.Field(t.primaryName())
	return f
}

// SecondaryFields returns every field except the primary one, in template
// order
func (t Template) SecondaryFields() []model.FieldSpec {
	primary := t.primaryName()
	out := make([]model.FieldSpec, 0, len(t.Fields))
	for _, f := range t.Fields {
		if f.Name != primary {
			out = append(out, f)
		}
	}
	return out
}

func (t Template) primaryName() string {
	if t.Primary == "" {
		return model.FieldID
	}
	return t.Primary
}

// Validate checks that the primary field exists, field names are unique
// and every field has at least one label and one terminator candidate.
func (t Template) Validate() error {
	if len(t.Fields) == 0 {
		return fmt.Errorf("%w: no fields", ErrInvalidTemplate)
	}
	if _, ok := t.Field(t.primaryName()); !ok {
		return fmt.Errorf("%w: primary field %q missing", ErrInvalidTemplate, t.primaryName())
	}

	seen := make(map[string]bool)
	for i, f := range t.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: field %d has no name", ErrInvalidTemplate, i)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidTemplate, f.Name)
		}
		seen[f.Name] = true
		if f.Name != t.primaryName() && !isRecordField(f.Name) {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidTemplate, f.Name)
		}
		if len(f.Labels) == 0 {
			return fmt.Errorf("%w: field %q has no labels", ErrInvalidTemplate, f.Name)
		}
		if len(f.Terminators) == 0 {
			return fmt.Errorf("%w: field %q has no terminators", ErrInvalidTemplate, f.Name)
		}
	}
	return nil
}

// isRecordField reports whether a secondary field maps onto a
// model.ModuleRecord member
func isRecordField(name string) bool {
	switch name {
	case model.FieldName, model.FieldCompetencies, model.FieldRequirements:
		return true
	}
	return false
}

// ParseTemplate decodes and validates a YAML template
func ParseTemplate(r io.Reader) (Template, error) {
	var t Template
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return Template{}, fmt.Errorf("failed to parse template: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Template{}, err
	}
	return t, nil
}

// LoadTemplate reads a YAML template from path
func LoadTemplate(path string) (Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return Template{}, fmt.Errorf("failed to open template: %w", err)
	}
	defer f.Close()

	t, err := ParseTemplate(f)
	if err != nil {
		return Template{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Encode writes the template as YAML
func (t Template) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("failed to encode template: %w", err)
	}
	return enc.Close()
}
