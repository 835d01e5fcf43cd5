package guru

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/deckhand/internal/doctree"
)

// recordSuffix is the extension of exported record files.
const recordSuffix = ".yaml"

// WarnFunc reports a non-fatal export problem.
type WarnFunc func(format string, args ...any)

// Writer persists records under an output directory. A record that fails
// to write is reported through the warn function and skipped; the export
// continues.
type Writer struct {
	outDir string
	warn   WarnFunc
}

// NewWriter creates a Writer rooted at outDir. A nil warn function
// silences warnings.
func NewWriter(outDir string, warn WarnFunc) *Writer {
	if warn == nil {
		warn = func(string, ...any) {}
	}
	return &Writer{outDir: outDir, warn: warn}
}

// OutDir returns the output root the writer persists under.
func (w *Writer) OutDir() string {
	return w.outDir
}

// WriteCard writes one card record under cards/.
func (w *Writer) WriteCard(card *Card) {
	w.writeEntity("cards", doctree.EntityID(card.ExternalID), card)
}

// WriteBoard writes one board record under boards/, keyed by the board's
// directory entity id.
func (w *Writer) WriteBoard(board *Board) {
	w.writeEntity("boards", BoardKey(board), board)
}

// WriteBoardGroup writes one board-group record under board-groups/.
func (w *Writer) WriteBoardGroup(group *BoardGroup) {
	w.writeEntity("board-groups", doctree.EntityID(group.ExternalID), group)
}

// WriteCollection writes the single collection root record.
func (w *Writer) WriteCollection() {
	w.writeEntity("collection", "", &Collection{Tags: []string{}})
}

// writeEntity marshals a record and writes it to
// <outDir>/<entityType>/<entityName>.yaml, overwriting any previous file.
// Failures are warnings, not errors.
func (w *Writer) writeEntity(entityType, entityName string, record any) {
	dir := filepath.Join(w.outDir, entityType)
	filename := filepath.Join(dir, entityName+recordSuffix)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		w.warn("error writing file %s: %v", filename, err)
		return
	}

	data, err := yaml.Marshal(record)
	if err != nil {
		w.warn("error writing file %s: %v", filename, fmt.Errorf("marshaling record: %w", err))
		return
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		w.warn("error writing file %s: %v", filename, err)
	}
}
