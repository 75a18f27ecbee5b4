package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// SummaryFormat specifies the summary output format
type SummaryFormat string

const (
	FormatText SummaryFormat = "text"
	FormatJSON SummaryFormat = "json"
)

// Summary describes one completed run
type Summary struct {
	Timestamp    string `json:"timestamp"`
	States       int    `json:"states"`
	Counties     int    `json:"counties"`
	NationalFile string `json:"national_file"`
	StatesFile   string `json:"states_file"`
	DryRun       bool   `json:"dry_run,omitempty"`
}

// WriteSummary writes the run summary in the specified format
func WriteSummary(w io.Writer, s *Summary, format SummaryFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, s)
	case FormatText:
		return writeText(w, s)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the summary as JSON
func writeJSON(w io.Writer, s *Summary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s)
}

// writeText outputs the summary as human-readable text
func writeText(w io.Writer, s *Summary) error {
	verb := "Wrote"
	if s.DryRun {
		verb = "Would write"
	}

	fmt.Fprintf(w, "Collected %d national rows and %d county rows at %s\n",
		s.States, s.Counties, s.Timestamp)
	fmt.Fprintf(w, "%s %s\n", verb, s.NationalFile)
	fmt.Fprintf(w, "%s %s\n", verb, s.StatesFile)
	return nil
}
