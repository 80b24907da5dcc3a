// Package telemetry provides logging and metrics for training runs.
//
// It includes:
//   - logging.go: structured logging through slog
//   - metrics.go: Prometheus metrics
//
// The autodiff engine itself neither logs nor records metrics; only the
// training loop and the CLI do.
package telemetry
