// Package trace provides structured attribute-access tracing.
//
// This package defines the Logger interface and Event type for capturing
// every raw get/set a host resource performs. It is separate from
// operational logging (slog) - access capture provides a complete
// machine-readable record for debugging instrument configuration.
//
// # Basic Usage
//
// Hosts that support tracing accept a Logger implementation:
//
//	// For development: log to console via slog
//	res.SetTraceLogger(trace.NewSlogAdapter(slog.Default()))
//
//	// For analysis: write to binary file
//	fl, _ := trace.NewFileLogger("session.vtrace")
//	res.SetTraceLogger(fl)
//
//	// Both: use MultiLogger
//	res.SetTraceLogger(trace.NewMultiLogger(
//	    trace.NewSlogAdapter(slog.Default()),
//	    fl,
//	))
//
// # File Format
//
// Trace files use CBOR encoding with integer-keyed events. Reader streams
// them back, optionally filtered by session, operation, attribute id, time
// window, or failure status.
package trace
