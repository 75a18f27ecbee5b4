package price

import (
	"reflect"
	"testing"
	"time"
)

func TestNationalRow(t *testing.T) {
	tests := []struct {
		name     string
		row      NationalRow
		complete bool
		abbr     string
		state    string
		pageURL  string
	}{
		{
			name:     "complete row",
			row:      NationalRow{"IL", "Illinois", "3.46", "https://x/il"},
			complete: true,
			abbr:     "IL",
			state:    "Illinois",
			pageURL:  "https://x/il",
		},
		{
			name:     "short row",
			row:      NationalRow{"AL", "Alabama", "3.10"},
			complete: false,
			abbr:     "AL",
			state:    "Alabama",
		},
		{
			name: "empty row",
			row:  NationalRow{},
		},
		{
			name:     "extra fields keep URL last",
			row:      NationalRow{"NV", "Nevada", "3.90", "extra", "https://x/nv"},
			complete: true,
			abbr:     "NV",
			state:    "Nevada",
			pageURL:  "https://x/nv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.Complete(); got != tt.complete {
				t.Errorf("Complete() = %v, want %v", got, tt.complete)
			}
			if got := tt.row.Abbr(); got != tt.abbr {
				t.Errorf("Abbr() = %q, want %q", got, tt.abbr)
			}
			if got := tt.row.Name(); got != tt.state {
				t.Errorf("Name() = %q, want %q", got, tt.state)
			}
			if got := tt.row.PageURL(); got != tt.pageURL {
				t.Errorf("PageURL() = %q, want %q", got, tt.pageURL)
			}
		})
	}
}

func TestCountyRowFields(t *testing.T) {
	row := CountyRow{StateAbbr: "IL", StateName: "Illinois", County: "Cook", Comment: "high"}

	want := []string{"IL", "Illinois", "Cook", "high"}
	if got := row.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}

	empty := CountyRow{StateAbbr: "IL", StateName: "Illinois"}
	if got := empty.Fields(); got[2] != "" || got[3] != "" {
		t.Errorf("missing name/comment should project as empty strings, got %v", got)
	}
}

func TestNewSnapshot(t *testing.T) {
	national := []NationalRow{{"IL", "Illinois", "3.46", "https://x/il"}}
	counties := []CountyRow{{StateAbbr: "IL", StateName: "Illinois", County: "Cook"}}

	snap := NewSnapshot(national, counties)

	ts, err := time.Parse(time.RFC3339, snap.Timestamp)
	if err != nil {
		t.Fatalf("timestamp %q is not RFC 3339: %v", snap.Timestamp, err)
	}
	if ts.Location() != time.UTC {
		t.Errorf("timestamp should be UTC, got %v", ts.Location())
	}
	if len(snap.National) != 1 || len(snap.Counties) != 1 {
		t.Errorf("snapshot rows not preserved: %+v", snap)
	}
}
