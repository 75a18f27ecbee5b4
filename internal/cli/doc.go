// Package cli implements the gas-prices command-line interface.
//
// The single root command runs the whole pipeline: fetch the root page,
// extract national rows, resolve county rows per state, and write both CSV
// snapshots. Flags select the output directory, debug logging, the summary
// format and dry-run mode.
package cli
