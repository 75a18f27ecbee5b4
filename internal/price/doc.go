// Package price provides the row and snapshot types for fuel price data.
//
// National rows come from the root page's embedded map payload and keep their
// positional layout: state abbreviation, state name, price, with the state
// page URL as the trailing field on complete rows. County rows are the
// flattened per-state records fetched from each state's map-data script.
// A Snapshot pairs both row sets under a single collection timestamp.
package price
