// Package domain contains the core value types and errors of fastaslice.
//
// It has no dependencies on the file system, logging or the CLI.
//
// # Types
//
//   - [PredictionSet]: identifiers accepted by the filter pipeline
//   - [SplitPlan]: record counts for each output piece of the split pipeline
//   - [LedgerEntry]: what the inbox watcher remembers about a processed file
//
// Records themselves live in pkg/fasta; they are transient and never stored here.
package domain
