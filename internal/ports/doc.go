// Package ports defines the interfaces that connect the application layer to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [PieceSink]: creates the numbered output files of a split
//   - [PieceVerifier]: checks a written piece against its planned record count
//   - [LedgerRepository]: persists what the inbox watcher has processed
//   - [Logger]: structured logging abstraction
//
// The application layer (internal/app) depends only on these interfaces.
// Adapters in internal/adapters implement them on top of the file system,
// biogo and zerolog.
package ports
