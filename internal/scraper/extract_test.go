package scraper

import (
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/gas-prices/internal/price"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing HTML: %v", err)
	}
	return doc
}

func TestExtractNational(t *testing.T) {
	html := `<html><body><script>
		iwmparam[0].placestxt = "AL,Alabama,3.10,http://x/al;AK,Alaska,3.50,http://x/ak;";
	</script></body></html>`

	rows := ExtractNational(docFromHTML(t, html))

	want := []price.NationalRow{
		{"AL", "Alabama", "3.10"},
		{"AK", "Alaska", "3.50"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("ExtractNational() = %v, want %v", rows, want)
	}
}

func TestExtractNational_Fixture(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/national_page.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	rows := ExtractNational(docFromHTML(t, string(data)))

	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	// Fixture entries carry a trailing metadata field, so the sliced rows
	// keep the state page URL as their final field.
	first := rows[0]
	if !first.Complete() {
		t.Fatalf("expected complete row, got %v", first)
	}
	if first.Abbr() != "AL" {
		t.Errorf("Abbr() = %q, want AL", first.Abbr())
	}
	if first.Name() != "Alabama" {
		t.Errorf("Name() = %q, want Alabama", first.Name())
	}
	if first.PageURL() != "https://gasprices.aaa.com/?state=AL" {
		t.Errorf("PageURL() = %q, want state page URL", first.PageURL())
	}
}

func TestExtractNational_NoMarker(t *testing.T) {
	html := `<html><body>
		<script>var unrelated = "data";</script>
		<script>console.log("nothing here");</script>
	</body></html>`

	rows := ExtractNational(docFromHTML(t, html))

	if len(rows) != 0 {
		t.Errorf("expected no rows, got %v", rows)
	}
}

func TestExtractNational_NoScripts(t *testing.T) {
	rows := ExtractNational(docFromHTML(t, `<html><body><p>hello</p></body></html>`))
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %v", rows)
	}
}

func TestExtractNational_LastScriptWins(t *testing.T) {
	// The payload sits in the later script; reverse scan must find it
	// before the decoy.
	html := `<html><body>
		<script>iwmparam[0].placestxt = "ZZ,Decoy,0.00,http://x/zz;";</script>
		<script>iwmparam[0].placestxt = "NV,Nevada,3.90,http://x/nv;";</script>
	</body></html>`

	rows := ExtractNational(docFromHTML(t, html))

	if len(rows) != 1 || rows[0].Abbr() != "NV" {
		t.Errorf("expected the later script's payload, got %v", rows)
	}
}

func TestFindMapDataScript(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		wantSrc string
		wantOK  bool
	}{
		{
			name: "map data script present",
			html: `<html><head>
				<script src="/js/jquery.min.js"></script>
				<script src="/maps/premiumhtml5map_js_data_12.js"></script>
			</head></html>`,
			wantSrc: "/maps/premiumhtml5map_js_data_12.js",
			wantOK:  true,
		},
		{
			name:   "no matching script",
			html:   `<html><head><script src="/js/jquery.min.js"></script></head></html>`,
			wantOK: false,
		},
		{
			name:   "inline scripts only",
			html:   `<html><body><script>var x = 1;</script></body></html>`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, ok := findMapDataScript(docFromHTML(t, tt.html))
			if ok != tt.wantOK {
				t.Fatalf("findMapDataScript() ok = %v, want %v", ok, tt.wantOK)
			}
			if src != tt.wantSrc {
				t.Errorf("findMapDataScript() src = %q, want %q", src, tt.wantSrc)
			}
		})
	}
}

func TestExtractCountyMap(t *testing.T) {
	text := `var map_cfg = {
		map_data : {"1": {"name": "Cook", "comment": "high"}, "2": {"name": "Lake"}}, groups : {},
	};`

	mapData, err := ExtractCountyMap(text)
	if err != nil {
		t.Fatalf("ExtractCountyMap() error: %v", err)
	}

	want := map[string]County{
		"1": {Name: "Cook", Comment: "high"},
		"2": {Name: "Lake"},
	}
	if !reflect.DeepEqual(mapData, want) {
		t.Errorf("ExtractCountyMap() = %v, want %v", mapData, want)
	}
}

func TestExtractCountyMap_NoMarker(t *testing.T) {
	_, err := ExtractCountyMap("var other = 1;\nvar more = 2;")
	if err == nil {
		t.Error("expected error when marker is absent")
	}
}

func TestExtractCountyMap_MalformedJSON(t *testing.T) {
	_, err := ExtractCountyMap(`map_data : {"1": {"name": Cook}}, groups : {}`)
	if err == nil {
		t.Error("expected error for malformed JSON")
	}
}
