package modextract

import (
	"strings"

	"github.com/lernziele/modextract/anchor"
	"github.com/lernziele/modextract/config"
	"github.com/lernziele/modextract/model"
	"github.com/lernziele/modextract/region"
	"github.com/lernziele/modextract/sentence"
)

// BuildPage builds the record for one page (0-based index). It returns
// false when the template's primary label does not occur on the page; the
// page is then not a module description and the single warning says so.
// Any other missing anchor is reported as a warning: a missing primary
// terminator narrows the id region to the label's row, and secondary
// fields that cannot be located are left empty.
func BuildPage(idx model.PageIndex, page int, tmpl config.Template) (model.ModuleRecord, bool, []Warning) {
	res := anchor.NewResolver(idx)
	var warnings []Warning

	primary := tmpl.PrimaryField()
	label, err := res.Resolve(page, primary.Labels)
	if err != nil {
		return model.ModuleRecord{}, false, []Warning{{Page: page + 1, Field: primary.Name, Err: err}}
	}

	var box model.BBox
	terminator, err := res.Resolve(page, primary.Terminators)
	if err != nil {
		warnings = append(warnings, Warning{Page: page + 1, Field: primary.Name, Err: err})
		box = region.ComputeRow(label, primary.Deviation)
	} else {
		box = region.Compute(label, terminator, primary.Deviation)
	}

	record := model.ModuleRecord{
		ID:   strings.TrimSpace(region.Extract(idx, page, box)),
		Page: page + 1,
	}

	for _, field := range tmpl.SecondaryFields() {
		text, err := locate(res, idx, page, field)
		if err != nil {
			warnings = append(warnings, Warning{Page: page + 1, Field: field.Name, Err: err})
			continue
		}

		switch field.Name {
		case model.FieldName:
			record.Name = strings.TrimSpace(text)
		case model.FieldCompetencies:
			record.Competencies = sentence.Segment(text)
		case model.FieldRequirements:
			record.Requirements = sentence.Segment(text)
		}
	}

	return record, true, warnings
}

// locate resolves a field's anchors and returns the text of its region
func locate(res *anchor.Resolver, idx model.PageIndex, page int, field model.FieldSpec) (string, error) {
	label, terminator, err := res.Pair(page, field.Labels, field.Terminators)
	if err != nil {
		return "", err
	}
	box := region.Compute(label, terminator, field.Deviation)
	return region.Extract(idx, page, box), nil
}
