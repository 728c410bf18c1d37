package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lernziele/modextract/model"
)

// WriteText writes a human-readable listing of records:
//
//	INF-101  Grundlagen  (page 2)
//	  Competencies:
//	    - Verstehen der Grundlagen.
//	  Requirements:
//	    - Keine.
//
// Empty sentences are left out.
func WriteText(w io.Writer, records []model.ModuleRecord) error {
	bw := bufio.NewWriter(w)
	for i, r := range records {
		if i > 0 {
			bw.WriteString("\n")
		}
		name := r.Name
		if !r.HasName() {
			name = "(no title)"
		}
		fmt.Fprintf(bw, "%s  %s  (page %d)\n", r.ID, name, r.Page)
		writeSection(bw, "Competencies", r.Competencies)
		writeSection(bw, "Requirements", r.Requirements)
	}
	return bw.Flush()
}

func writeSection(w *bufio.Writer, title string, sentences []string) {
	sentences = nonEmpty(sentences)
	if len(sentences) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s:\n", title)
	for _, s := range sentences {
		fmt.Fprintf(w, "    - %s\n", s)
	}
}

func nonEmpty(sentences []string) []string {
	var out []string
	for _, s := range sentences {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// WriteJSON writes records as an indented JSON array
func WriteJSON(w io.Writer, records []model.ModuleRecord) error {
	if records == nil {
		records = []model.ModuleRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return nil
}
