// Package modextract extracts structured module records from PDF module
// handbooks.
//
// Basic usage:
//
//	records, warnings, err := modextract.Open("handbook.pdf").Records()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", modextract.FormatWarnings(warnings))
//	}
//
// With options:
//
//	records, _, err := modextract.Open("handbook.pdf").
//	    PageRange(10, 80).
//	    Template(tmpl).
//	    Workers(4).
//	    Records()
//
// A page becomes a record when the template's primary label (by default
// "Modulnummer") is found on it. Every other field is best-effort: when its
// label or terminator is missing a Warning is reported and the field is
// left empty.
//
// The lower-level packages anchor, region and sentence implement the
// individual steps and can be used on their own.
package modextract

import (
	"github.com/lernziele/modextract/model"
)

// Open returns an Extractor for the PDF file at path. The file is parsed
// lazily by the first terminal operation.
//
// Example:
//
//	records, warnings, err := modextract.Open("handbook.pdf").Records()
func Open(path string) *Extractor {
	return &Extractor{
		filename: path,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor over an already loaded document. Any
// model.PageIndex works, which makes in-memory documents convenient in
// tests.
//
// Example:
//
//	doc, err := reader.Load("handbook.pdf")
//	if err != nil {
//	    // handle error
//	}
//	records, _, err := modextract.FromDocument(doc).Records()
func FromDocument(idx model.PageIndex) *Extractor {
	return &Extractor{
		index:   idx,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil.
//
// Example:
//
//	count := modextract.Must(modextract.Open("handbook.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRecords wraps a call to Records() and panics if the error is non-nil.
// Warnings are discarded.
//
// Example:
//
//	records := modextract.MustRecords(modextract.Open("handbook.pdf").Records())
func MustRecords[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
