package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/gas-prices/internal/logger"
	"github.com/pfrederiksen/gas-prices/internal/price"
)

const (
	BaseURL   = "https://gasprices.aaa.com"
	UserAgent = "insomnia/2022.4.2"
	Timeout   = 30 * time.Second
)

// Scraper fetches the AAA fuel price pages. The underlying client is reused
// across the root-page fetch and every per-state request.
type Scraper struct {
	client  *http.Client
	baseURL string
}

// New creates a new Scraper instance
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: BaseURL,
	}
}

// NewWithBaseURL creates a Scraper pointed at an alternate root URL.
// Used by tests to target a local server.
func NewWithBaseURL(url string) *Scraper {
	s := New()
	s.baseURL = url
	return s
}

// fetch performs a GET with the fixed User-Agent and returns the body.
// Any transport error or non-2xx status is returned to the caller.
func (s *Scraper) fetch(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status code: %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return body, nil
}

// FetchNational fetches the root page and extracts the national price rows.
// An empty slice (payload marker absent) is not an error; downstream simply
// has nothing to resolve.
func (s *Scraper) FetchNational() ([]price.NationalRow, error) {
	body, err := s.fetch(s.baseURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	rows := ExtractNational(doc)
	if len(rows) == 0 {
		logger.Warn("national payload marker not found on root page", logger.Fields{
			"url": s.baseURL,
		})
	}
	return rows, nil
}

// FetchCounties resolves county rows for each complete national row. DC is
// skipped outright: its page has no per-county map. A state whose page lacks
// the map-data script, or whose data fails to fetch or parse, is logged and
// skipped; one bad state does not abort the run.
func (s *Scraper) FetchCounties(national []price.NationalRow) []price.CountyRow {
	counties := make([]price.CountyRow, 0)

	for _, row := range national {
		if !row.Complete() {
			logger.Debug("skipping short national row", logger.Fields{
				"fields": len(row),
			})
			continue
		}
		if row.Abbr() == "DC" {
			continue
		}

		stateCounties, err := s.fetchStateCounties(row)
		if err != nil {
			logger.Warn("skipping state", logger.Fields{
				"state": row.Name(),
				"error": err.Error(),
			})
			logger.IncrCounter("states.skipped")
			continue
		}

		counties = append(counties, stateCounties...)
		logger.IncrCounter("states.fetched")
	}

	return counties
}

// fetchStateCounties fetches one state's page, locates its map-data script
// and returns the flattened county rows.
func (s *Scraper) fetchStateCounties(row price.NationalRow) ([]price.CountyRow, error) {
	body, err := s.fetch(row.PageURL())
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parsing state page: %w", err)
	}

	dataURL, ok := findMapDataScript(doc)
	if !ok {
		return nil, fmt.Errorf("no map script found")
	}

	data, err := s.fetch(dataURL)
	if err != nil {
		return nil, err
	}

	mapData, err := ExtractCountyMap(string(data))
	if err != nil {
		return nil, err
	}

	rows := make([]price.CountyRow, 0, len(mapData))
	for _, county := range mapData {
		rows = append(rows, price.CountyRow{
			StateAbbr: row.Abbr(),
			StateName: row.Name(),
			County:    county.Name,
			Comment:   county.Comment,
		})
		logger.IncrCounter("counties.collected")
	}
	return rows, nil
}
