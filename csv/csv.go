// Package csv implements the record reader/writer collaborators on top of
// comma-separated files.
//
// One Handler provides all three boundary interfaces: RecordReader (header
// skip), RecordWriter (append, header written once on file creation, callers
// serialized), and TeamWriter (full overwrite per save).
package csv

import (
	"bufio"
	stdcsv "encoding/csv"
	"fmt"
	"os"
	"sync"

	"github.com/InzamanCareem/TeamMate-System/types"
)

// Header is the participant file header row.
var Header = []string{
	"ID", "Name", "Email", "PreferredGame", "SkillLevel",
	"PreferredRole", "PersonalityScore", "PersonalityType",
}

// Handler reads and writes TeamMate CSV files.
//
// Append holds an internal mutex across the existence check and the write,
// so concurrent intake workers persisting through one Handler cannot
// interleave partial rows or race on header creation.
type Handler struct {
	mu sync.Mutex
}

var (
	_ types.RecordReader = (*Handler)(nil)
	_ types.RecordWriter = (*Handler)(nil)
	_ types.TeamWriter   = (*Handler)(nil)
)

// NewHandler creates a CSV file handler.
func NewHandler() *Handler {
	return &Handler{}
}

// ReadAll reads every participant row from the file at path, skipping the
// header row.
//
// Returns:
//   - [][]string: One field slice per data row
//   - error: Open or parse failure
func (h *Handler) ReadAll(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := stdcsv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(rows) <= 1 {
		return nil, nil
	}

	return rows[1:], nil
}

// Append writes one participant row to the file at path, creating the file
// with a header first if it does not exist. Safe for concurrent callers.
func (h *Handler) Append(path string, p *types.Participant) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, statErr := os.Stat(path)
	exists := statErr == nil

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", path, err)
	}
	defer f.Close()

	w := stdcsv.NewWriter(f)
	if !exists {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("write header to %s: %w", path, err)
		}
	}
	if err := w.Write(p.Record()); err != nil {
		return fmt.Errorf("write record to %s: %w", path, err)
	}
	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	return nil
}

// WriteAll replaces the file at path with the formed teams: one header line
// per team (name + id), one detail line per member, and a blank line
// between teams.
func (h *Handler) WriteAll(path string, teams []*types.Team) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, team := range teams {
		if _, err := fmt.Fprintln(w, team.String()); err != nil {
			return fmt.Errorf("write team header to %s: %w", path, err)
		}
		for _, p := range team.Members() {
			if _, err := fmt.Fprintln(w, p.Details()); err != nil {
				return fmt.Errorf("write member to %s: %w", path, err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("write separator to %s: %w", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	return nil
}
