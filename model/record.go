package model

// Field names used by the default handbook template
const (
	FieldID           = "id"
	FieldName         = "name"
	FieldCompetencies = "competencies"
	FieldRequirements = "requirements"
)

// FieldSpec declares how to locate one field on a page. Labels and
// Terminators are tried in order; the first candidate that matches wins.
type FieldSpec struct {
	Name        string        `yaml:"name" json:"name"`
	Labels      []string      `yaml:"labels" json:"labels"`
	Terminators []string      `yaml:"terminators" json:"terminators"`
	Deviation   DeviationPair `yaml:"deviation" json:"deviation"`
}

// ModuleRecord is the structured result for one module description page.
// Only ID is guaranteed; the other fields are left empty when their
// anchors could not be found.
type ModuleRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"name,omitempty"`
	Competencies []string `json:"competencies,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	Page         int      `json:"page"` // 1-based page number
}

// HasName reports whether a title was extracted
func (r ModuleRecord) HasName() bool {
	return r.Name != ""
}
