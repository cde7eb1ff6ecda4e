// Package app holds the fastaslice pipelines.
//
// Filter copies the records whose identifiers are in a prediction set.
// Splitter partitions a file into balanced pieces of whole records.
// Watcher runs the splitter over every FASTA file dropped into an inbox.
//
// Every pipeline reads its input strictly in order through fasta.Scanner and
// talks to the outside world only through internal/ports.
package app
