// Package scraper provides HTTP fetching and embedded-payload extraction for
// the AAA fuel price pages.
//
// The national prices live inside an inline <script> on the root page as a
// semicolon-delimited string assigned to an interactive-map variable. Each
// state page in turn references a generated map-data script whose body embeds
// a JSON object of county records. Both extractions are regex matches over
// script text and are kept separate from network I/O (ExtractNational,
// ExtractCountyMap) so they can be tested against fixtures.
package scraper
