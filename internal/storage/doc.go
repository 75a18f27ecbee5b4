// Package storage persists price snapshots as date-stamped CSV files.
//
// Each run writes two files under the base directory: national/<timestamp>.csv
// with the national rows and states/<timestamp>.csv with the county rows.
// Both names share the snapshot's RFC 3339 UTC timestamp, files carry no
// header row, and parent directories are created on demand.
package storage
