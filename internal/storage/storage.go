package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/gas-prices/internal/price"
)

const (
	nationalDir = "national"
	statesDir   = "states"
)

// Store writes snapshot CSV files under a base directory
type Store struct {
	baseDir string
}

// New creates a new Store instance
func New(baseDir string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(baseDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		baseDir = filepath.Join(home, baseDir[2:])
	}

	return &Store{
		baseDir: baseDir,
	}, nil
}

// Paths returns the two file paths a snapshot with the given timestamp
// writes to, without touching the filesystem.
//
// Timestamps are used verbatim; RFC 3339 colons are valid on the
// filesystems this targets but not on all (notably Windows).
func (s *Store) Paths(timestamp string) (national, states string) {
	name := timestamp + ".csv"
	return filepath.Join(s.baseDir, nationalDir, name),
		filepath.Join(s.baseDir, statesDir, name)
}

// WriteSnapshot writes the snapshot's national and county rows to their
// respective files, creating parent directories as needed. Both files share
// the snapshot's timestamp. Returns the two paths written.
func (s *Store) WriteSnapshot(snap *price.Snapshot) (national, states string, err error) {
	national, states = s.Paths(snap.Timestamp)

	nationalRows := make([][]string, 0, len(snap.National))
	for _, row := range snap.National {
		nationalRows = append(nationalRows, row)
	}
	if err := writeCSV(national, nationalRows); err != nil {
		return "", "", err
	}

	countyRows := make([][]string, 0, len(snap.Counties))
	for _, row := range snap.Counties {
		countyRows = append(countyRows, row.Fields())
	}
	if err := writeCSV(states, countyRows); err != nil {
		return "", "", err
	}

	return national, states, nil
}

// writeCSV writes rows to path as comma-separated records, no header.
func writeCSV(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
