// Package cli implements the nodegrad command line.
//
// Commands are built by factory functions so that cmd/nodegrad only wires
// them into the root command:
//   - train: fit an MLP described by a YAML config, optionally serving
//     Prometheus metrics and writing a checkpoint
//   - graph: build a small example expression, run backward and print it
//     as Graphviz DOT or as a table
//
// Data goes to stdout, logs go to stderr, so output can be piped:
//
//	nodegrad graph | dot -Tsvg > graph.svg
package cli
