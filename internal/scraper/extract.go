package scraper

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/gas-prices/internal/price"
)

const (
	// nationalMarker locates the line of inline script text carrying the
	// national payload string.
	nationalMarker = "iwmparam[0].placestxt"
	// countyMarker locates the line of the map-data script carrying the
	// embedded county JSON object.
	countyMarker = "map_data"
)

var (
	nationalPattern  = regexp.MustCompile(`iwmparam\[0\].placestxt\s*=\s*"(.*)"`)
	mapScriptPattern = regexp.MustCompile(`premiumhtml5map_js_data`)
	countyPattern    = regexp.MustCompile(`map_data\s*:\s*({.*?),\s*groups`)
)

// ExtractNational pulls the national price rows out of the root page's
// script markup. Scripts are scanned in reverse document order; the payload
// sits near the end of the page. Each payload entry is comma-delimited with
// a trailing metadata field that is dropped, leaving the state page URL as
// the final field of a complete row. Returns an empty slice when no script
// carries the marker.
func ExtractNational(doc *goquery.Document) []price.NationalRow {
	scripts := doc.Find("script")

	for i := scripts.Length() - 1; i >= 0; i-- {
		text := scripts.Eq(i).Text()
		if !strings.Contains(text, nationalMarker) {
			continue
		}

		for _, line := range strings.Split(text, "\n") {
			if !strings.Contains(line, nationalMarker) {
				continue
			}
			match := nationalPattern.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			return splitNationalPayload(match[1])
		}
	}

	return []price.NationalRow{}
}

// splitNationalPayload splits the captured payload string into rows. The
// payload ends with a separator, so the final (empty) segment is discarded,
// and each entry's final field is metadata outside the output schema.
func splitNationalPayload(payload string) []price.NationalRow {
	entries := strings.Split(strings.TrimSpace(payload), ";")
	entries = entries[:len(entries)-1]

	rows := make([]price.NationalRow, 0, len(entries))
	for _, entry := range entries {
		fields := strings.Split(strings.TrimSpace(entry), ",")
		rows = append(rows, price.NationalRow(fields[:len(fields)-1]))
	}
	return rows
}

// findMapDataScript locates the state page's generated map-data script and
// returns its src URL.
func findMapDataScript(doc *goquery.Document) (string, bool) {
	var src string
	var found bool

	doc.Find("script[src]").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		s, _ := sel.Attr("src")
		if mapScriptPattern.MatchString(s) {
			src = s
			found = true
			return false
		}
		return true
	})

	return src, found
}

// County is one county record as it appears in a state's map-data blob.
// Missing fields unmarshal to the empty string.
type County struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
}

// ExtractCountyMap scans a map-data script body line by line for the county
// JSON object and parses it. The object is captured up to its sibling
// "groups" key. Keys of the returned map are the map plugin's internal
// region identifiers and carry no meaning for the output.
func ExtractCountyMap(text string) (map[string]County, error) {
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if !strings.Contains(line, countyMarker) {
			continue
		}
		match := countyPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		mapData := make(map[string]County)
		if err := json.Unmarshal([]byte(strings.TrimSpace(match[1])), &mapData); err != nil {
			return nil, fmt.Errorf("parsing map data: %w", err)
		}
		return mapData, nil
	}

	return nil, fmt.Errorf("map data marker not found")
}
