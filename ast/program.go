// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

// ProgramFlags is a bitset of program-level facts discovered during
// parsing/semantic analysis and consulted by the emitter (§3, §4.5).
type ProgramFlags uint32

const (
	// ProgramUsesSM3ScreenSpace marks a program that reads or writes
	// SV_Position with Shader-Model-3 upper-left, pixel-centered
	// conventions, forcing the emitter to declare a matching
	// `layout(origin_upper_left, pixel_center_integer) in vec4 gl_FragCoord;`.
	ProgramUsesSM3ScreenSpace ProgramFlags = 1 << iota
)

// Has reports whether all bits in want are set in f.
func (f ProgramFlags) Has(want ProgramFlags) bool { return f&want == want }

// Program is the AST root (§3). It owns every top-level declaration via
// Arena and keeps a weak reference to the entry point.
type Program struct {
	Arena Arena

	// Statements are the top-level declarations, in source order, each
	// wrapped as a DeclStmt so Program can hold a single ordered list
	// alongside any top-level statements a future grammar extension might
	// add (there are none today; every top-level item is a declaration).
	Statements []Stmt

	EntryPoint DeclHandle

	// UsedIntrinsics is populated by the converter/extension agent as they
	// walk the tree, naming every intrinsic actually invoked so the
	// Extension Agent (§4.4) and the clip() helper emission (§4.5) can
	// consult it without a second traversal.
	UsedIntrinsics map[string]bool

	Flags ProgramFlags
}

// NewProgram returns an empty Program ready to be populated by a builder
// or a test fixture.
func NewProgram() *Program {
	return &Program{
		EntryPoint:     InvalidDecl,
		UsedIntrinsics: make(map[string]bool),
	}
}

// EntryFunc resolves the entry-point declaration, or nil if none was set.
func (p *Program) EntryFunc() *FuncDecl {
	d := p.Arena.Get(p.EntryPoint)
	if d == nil {
		return nil
	}
	fn, _ := d.(*FuncDecl)
	return fn
}

// MarkIntrinsicUsed records that name was invoked somewhere in the program.
func (p *Program) MarkIntrinsicUsed(name string) {
	if p.UsedIntrinsics == nil {
		p.UsedIntrinsics = make(map[string]bool)
	}
	p.UsedIntrinsics[name] = true
}
