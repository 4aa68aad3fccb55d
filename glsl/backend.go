// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/glslgen/ast"
	"github.com/gogpu/glslgen/diag"
)

// InputDesc describes the source-side facts the emitter needs but cannot
// recover from the AST alone (§6).
type InputDesc struct {
	// ShaderTarget selects the shader stage being emitted.
	ShaderTarget ast.ShaderStage
	// EntryPoint is the source entry function's identifier, used only for
	// diagnostics and header comments — the AST's own Program.EntryPoint
	// handle drives actual emission.
	EntryPoint string
}

// OutputDesc describes the requested GLSL output shape (§6).
type OutputDesc struct {
	ShaderVersion   Version
	AllowExtensions bool

	Formatting struct {
		LineMarks bool
		Prefix    string
	}

	// Statistics, if non-nil, is populated with emitted texture bindings
	// in declaration order.
	Statistics *Statistics
}

// TextureBinding is one entry of the Statistics accumulator (§6).
type TextureBinding struct {
	Name    string
	Binding int
}

// Statistics accumulates (textureName, bindingIndex) pairs during emission.
type Statistics struct {
	Textures []TextureBinding
}

func (s *Statistics) record(name string, binding int) {
	if s == nil {
		return
	}
	s.Textures = append(s.Textures, TextureBinding{Name: name, Binding: binding})
}

// Result carries everything Generate produces besides the GLSL text
// itself: the diagnostics recorded during the run and the extensions
// selected by the Extension Agent.
type Result struct {
	Diagnostics []diag.Diagnostic
	Extensions  []string
}

// Generate is the pipeline's top-level entry point (§6): it runs the
// Control-Path Analyzer, the Target Converter, the Reference Analyzer,
// the Extension Agent, and finally the Emitter, in that dependency order
// (§2). The call is single-threaded and non-reentrant (§5): concurrent
// calls with distinct Programs are safe, but a single Program must not be
// passed to two concurrent calls.
func Generate(program *ast.Program, in InputDesc, out OutputDesc) (string, Result, error) {
	return GenerateWithReporter(program, in, out, diag.NewCollector())
}

// GenerateWithReporter is Generate with an explicit diag.Reporter, letting
// a caller attach structured logging (diag.WithLogger) or its own
// diagnostic Reporter. The output Sink is not configurable here.
func GenerateWithReporter(program *ast.Program, in InputDesc, out OutputDesc, reporter diag.Reporter) (string, Result, error) {
	if program == nil {
		return "", Result{}, fmt.Errorf("glsl: generate called with a nil program")
	}
	if out.Formatting.Prefix == "" {
		out.Formatting.Prefix = "_"
	}

	entry := program.EntryFunc()
	if entry == nil {
		reporter.Error(diag.MissingEntryPoint, nil, "program has no resolved entry-point reference")
		return "", resultFrom(reporter, nil), reporter.Err()
	}

	// 1. Control-Path Analyzer (§4.1)
	ast.AnalyzeControlPaths(program)

	// 2. Target Converter (§4.2)
	conv := newConverter(program, in, out, reporter)
	conv.Run()

	// 3. Reference Analyzer (§4.3)
	if ok := ast.AnalyzeReferences(program); !ok {
		reporter.Error(diag.MissingEntryPoint, nil, "program has no resolved entry-point reference")
		return "", resultFrom(reporter, nil), reporter.Err()
	}

	// 4. Extension Agent (§4.4)
	exts, extErr := computeExtensions(program, in, out, reporter)
	if extErr {
		return "", resultFrom(reporter, exts), reporter.Err()
	}

	// 5. Emitter (§4.5)
	e := newEmitter(program, in, out, reporter, exts, conv)
	src := e.generate()

	return src, resultFrom(reporter, exts), reporter.Err()
}

func resultFrom(reporter diag.Reporter, exts []string) Result {
	return Result{Diagnostics: reporter.Diagnostics(), Extensions: exts}
}
