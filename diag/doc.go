// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package diag provides the diagnostic reporter consumed by the GLSL
// emitter (§6/§7): a Kind-tagged Diagnostic, a Reporter interface, and a
// default Collector implementation that records diagnostics for the
// caller and optionally mirrors them through structured logging.
//
// diag deliberately never writes to the GLSL output stream; it is the
// only channel through which the pipeline talks to whatever is watching
// the compile (a CLI, a test, an IDE integration).
package diag
