// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package diag

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/gogpu/glslgen/ast"
)

// Kind categorizes a diagnostic, matching §7's error-kind table. Adapted
// from the teacher's hlsl.ErrorKind, generalized to also carry Warning and
// Report severities rather than modeling those as separate types.
type Kind uint8

const (
	// MappingFailure: an intrinsic/data-type/semantic has no GLSL counterpart.
	MappingFailure Kind = iota
	// InvalidInput: wrong argument count, mismatched register prefix, etc.
	InvalidInput
	// MissingSemantic: an entry point returns a value with no output semantic.
	MissingSemantic
	// MissingEntryPoint: the program has no resolved entry-point reference.
	MissingEntryPoint
	// ExtensionDisallowed: a feature needs an extension, but they're forbidden.
	ExtensionDisallowed
	// Warning: a non-fatal observation, e.g. an unreachable function missing
	// a return on some path.
	Warning
	// Internal: an uncaught failure from a sub-pass.
	Internal
	// Note: an informational report with no error/warning severity.
	Note
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case MappingFailure:
		return "MappingFailure"
	case InvalidInput:
		return "InvalidInput"
	case MissingSemantic:
		return "MissingSemantic"
	case MissingEntryPoint:
		return "MissingEntryPoint"
	case ExtensionDisallowed:
		return "ExtensionDisallowed"
	case Warning:
		return "Warning"
	case Internal:
		return "Internal"
	case Note:
		return "Note"
	default:
		return "Unknown"
	}
}

// Severity distinguishes fatal errors, warnings, and informational reports.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityReport
)

// Diagnostic is one reported problem or observation, optionally attributed
// to an AST node for source-position resolution (§7).
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Message  string
	Node     ast.Node // nil if not attributable to a specific node
}

// Error implements the error interface so a Diagnostic can be wrapped
// directly into a returned error where useful.
func (d Diagnostic) Error() string {
	if d.Node != nil {
		pos := d.Node.Position()
		return fmt.Sprintf("%s at [%d:%d]: %s", d.Kind, pos.Row, pos.Col, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// Reporter is the consumed diagnostic interface (§6): errors, warnings,
// and reports, each optionally tied to an AST node.
type Reporter interface {
	Error(kind Kind, node ast.Node, format string, args ...any)
	Warning(kind Kind, node ast.Node, format string, args ...any)
	Report(node ast.Node, format string, args ...any)
	// HasErrors reports whether any Error call has been recorded.
	HasErrors() bool
	// Diagnostics returns every diagnostic recorded so far, in order.
	Diagnostics() []Diagnostic
	// Err returns a single combined error built from every recorded error
	// diagnostic (via multierr), or nil if there were none.
	Err() error
}

// Collector is the default Reporter implementation: it records every
// diagnostic in memory and, when built with WithLogger, additionally
// mirrors each one through a structured logger.
type Collector struct {
	diags  []Diagnostic
	errs   error
	logger Logger
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger attaches a structured logger; every recorded diagnostic is
// also logged at a severity-appropriate level.
func WithLogger(l Logger) Option {
	return func(c *Collector) { c.logger = l }
}

// NewCollector returns a ready-to-use Collector.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collector) record(sev Severity, kind Kind, node ast.Node, format string, args ...any) {
	d := Diagnostic{Kind: kind, Severity: sev, Message: fmt.Sprintf(format, args...), Node: node}
	c.diags = append(c.diags, d)
	if sev == SeverityError {
		c.errs = multierr.Append(c.errs, d)
	}
	if c.logger != nil {
		switch sev {
		case SeverityError:
			c.logger.Errorw(d.Message, "kind", kind.String())
		case SeverityWarning:
			c.logger.Warnw(d.Message, "kind", kind.String())
		default:
			c.logger.Infow(d.Message, "kind", kind.String())
		}
	}
}

// Error records a fatal diagnostic against node (may be nil).
func (c *Collector) Error(kind Kind, node ast.Node, format string, args ...any) {
	c.record(SeverityError, kind, node, format, args...)
}

// Warning records a non-fatal diagnostic against node (may be nil).
func (c *Collector) Warning(kind Kind, node ast.Node, format string, args ...any) {
	c.record(SeverityWarning, kind, node, format, args...)
}

// Report records an informational diagnostic against node (may be nil).
func (c *Collector) Report(node ast.Node, format string, args ...any) {
	c.record(SeverityReport, Note, node, format, args...)
}

// HasErrors reports whether any Error call has been recorded.
func (c *Collector) HasErrors() bool { return c.errs != nil }

// Diagnostics returns every diagnostic recorded so far, in order.
func (c *Collector) Diagnostics() []Diagnostic { return c.diags }

// Err returns the combined error diagnostics, or nil if there were none.
func (c *Collector) Err() error { return c.errs }
