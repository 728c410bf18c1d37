package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lernziele/modextract/model"
)

// unknownName replaces a name that cannot be escaped
const unknownName = "unknown"

// ModuleDir returns the directory name of a record, <id>-<name>. A missing
// name becomes "unknown"; a missing id becomes "page<N>".
func ModuleDir(r model.ModuleRecord) string {
	return escapedID(r) + "-" + escapedName(r)
}

func escapedID(r model.ModuleRecord) string {
	id, err := EscapeFilename(r.ID)
	if errors.Is(err, ErrFilenameEscape) {
		return fmt.Sprintf("page%d", r.Page)
	}
	return id
}

func escapedName(r model.ModuleRecord) string {
	name, err := EscapeFilename(r.Name)
	if errors.Is(err, ErrFilenameEscape) {
		return unknownName
	}
	return name
}

// WriteTree writes one directory per record below dir:
//
//	<dir>/<id>-<name>/<id>-competencies.txt
//	<dir>/<id>-<name>/<id>-requirements.txt
//
// Both components go through EscapeFilename. A record without a name is
// written below <id>-unknown; one without an id uses page<N> (the 1-based
// page number) in place of <id>, in the directory and file names alike.
// Each file holds one sentence per line. Existing files are overwritten.
func WriteTree(records []model.ModuleRecord, dir string) error {
	for _, r := range records {
		moduleDir := filepath.Join(dir, ModuleDir(r))
		if err := os.MkdirAll(moduleDir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", moduleDir, err)
		}

		id := escapedID(r)
		files := []struct {
			name      string
			sentences []string
		}{
			{id + "-competencies.txt", r.Competencies},
			{id + "-requirements.txt", r.Requirements},
		}
		for _, f := range files {
			path := filepath.Join(moduleDir, f.name)
			if err := writeSentences(path, f.sentences); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSentences(path string, sentences []string) error {
	var sb strings.Builder
	for _, s := range sentences {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
