package price

import "time"

// NationalRow is one state's summary record as extracted from the root page
// payload. Layout is positional: abbreviation, state name, price, and on
// complete rows the state page URL as the final field. Rows shorter than
// four fields can occur when the source payload is truncated and are kept
// as-is; consumers must check Complete before using PageURL.
type NationalRow []string

// Complete reports whether the row carries enough fields to resolve
// county data (abbreviation, name, price, page URL).
func (r NationalRow) Complete() bool {
	return len(r) >= 4
}

// Abbr returns the state abbreviation, or "" for an empty row.
func (r NationalRow) Abbr() string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

// Name returns the state name, or "" if absent.
func (r NationalRow) Name() string {
	if len(r) < 2 {
		return ""
	}
	return r[1]
}

// PageURL returns the state page URL, the trailing field of a complete row.
func (r NationalRow) PageURL() string {
	if !r.Complete() {
		return ""
	}
	return r[len(r)-1]
}

// CountyRow is one county-level record flattened from a state's map data.
type CountyRow struct {
	StateAbbr string
	StateName string
	County    string
	Comment   string
}

// Fields returns the row's four-column CSV projection.
func (c CountyRow) Fields() []string {
	return []string{c.StateAbbr, c.StateName, c.County, c.Comment}
}

// Snapshot is the complete output of a single run: the national rows and
// the aggregated county rows, stamped with one shared collection time.
type Snapshot struct {
	Timestamp string
	National  []NationalRow
	Counties  []CountyRow
}

// NewSnapshot builds a snapshot stamped with the current UTC time in
// RFC 3339 format. Both output files derive their names from this stamp.
func NewSnapshot(national []NationalRow, counties []CountyRow) *Snapshot {
	return &Snapshot{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		National:  national,
		Counties:  counties,
	}
}
