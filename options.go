package modextract

import (
	"github.com/sirupsen/logrus"

	"github.com/lernziele/modextract/config"
	"github.com/lernziele/modextract/layout"
)

// ExtractOptions holds configuration for record extraction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Field layout
	template config.Template

	// Loading
	lineConfig layout.LineConfig
	cacheDir   string // empty disables the parse cache

	// Processing
	workers int
	logger  logrus.FieldLogger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:      nil, // nil means all pages
		template:   config.DefaultTemplate(),
		lineConfig: layout.DefaultLineConfig(),
		cacheDir:   "",
		workers:    1,
		logger:     logrus.StandardLogger(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		template:   cloneTemplate(o.template),
		lineConfig: o.lineConfig,
		cacheDir:   o.cacheDir,
		workers:    o.workers,
		logger:     o.logger,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}

func cloneTemplate(t config.Template) config.Template {
	out := t
	out.Fields = nil
	for _, f := range t.Fields {
		f.Labels = append([]string(nil), f.Labels...)
		f.Terminators = append([]string(nil), f.Terminators...)
		out.Fields = append(out.Fields, f)
	}
	return out
}
