// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/glslgen/ast"
	"github.com/gogpu/glslgen/diag"
)

// Emitter walks the converted AST and writes GLSL source text (§4.5).
// Grounded on the teacher's Writer, split from a single monolithic type
// into this file (program/declaration structure) plus statements.go and
// expressions.go (statement and expression emission).
type Emitter struct {
	program  *ast.Program
	in       InputDesc
	out      OutputDesc
	reporter diag.Reporter
	exts     []string

	renames     map[ast.Decl]string
	structNames map[*ast.StructDecl]string

	globalInputs    []*ast.VarDecl
	globalOutputs   []*ast.VarDecl
	localInputInits []*ast.VarDecl
	outputPlan      []outputAssign

	sink Sink
}

func newEmitter(program *ast.Program, in InputDesc, out OutputDesc, reporter diag.Reporter, exts []string, conv *converter) *Emitter {
	return &Emitter{
		program:  program,
		in:       in,
		out:      out,
		reporter: reporter,
		exts:     exts,

		renames:     conv.renames,
		structNames: conv.structNames,

		globalInputs:    conv.globalInputs,
		globalOutputs:   conv.globalOutputs,
		localInputInits: conv.localInputInits,
		outputPlan:      conv.outputPlan,

		sink: NewBufferSink(),
	}
}

// name resolves d's final emitted identifier via the converter's rename
// table, falling back to d's own Name field.
func (e *Emitter) name(d ast.Decl) string { return declName(e.renames, d) }

// generate runs the Program-level emission order (§4.5): version
// directive, extensions, the SM3 screen-space layout line when needed,
// the clip() helper definitions when clip is used, global in/out
// declarations, then every reachable top-level declaration in source
// order. Entry-point attribute lines (e.g. compute local_size) are written
// by emitFunc immediately before `void main()`.
func (e *Emitter) generate() string {
	e.sink.WriteLine(fmt.Sprintf("#version %s", e.out.ShaderVersion.String()))
	e.sink.Blank()

	for _, ext := range e.exts {
		e.sink.WriteLine(fmt.Sprintf("#extension %s : enable", ext))
	}
	if len(e.exts) > 0 {
		e.sink.Blank()
	}

	if e.in.ShaderTarget == ast.StageFragment && e.program.Flags.Has(ast.ProgramUsesSM3ScreenSpace) {
		e.sink.WriteLine("layout(origin_upper_left, pixel_center_integer) in vec4 gl_FragCoord;")
		e.sink.Blank()
	}

	if e.program.UsedIntrinsics["clip"] {
		e.emitClipHelpers()
	}

	// §4.5's Program contract gates global semantic declarations by stage:
	// vertex emits its global inputs (vertex attributes), fragment emits its
	// global outputs (color outputs); the other direction in each stage goes
	// through interface blocks/varyings, not this path.
	switch e.in.ShaderTarget {
	case ast.StageVertex:
		e.emitGlobalDecls(e.globalInputs, "in")
	case ast.StageFragment:
		e.emitGlobalDecls(e.globalOutputs, "out")
	}

	for _, d := range e.program.Arena.All() {
		if fn, ok := d.(*ast.FuncDecl); ok && fn.Body != nil {
			if !e.checkReturnCoverage(fn) {
				continue
			}
		}
		if !d.Flags().Has(ast.FlagReachable) || d.Flags().Has(ast.FlagSuppressed) {
			continue
		}
		e.emitDecl(d, emitCtx{})
	}

	return e.sink.String()
}

// checkReturnCoverage implements §4.5's Function-declaration return checks
// against the Control-Path Analyzer's FlagAllPathsReturn: an unreachable
// function missing the property is only a warning (it is never emitted
// regardless), a reachable one is a fatal MappingFailure and its body must
// not be emitted. Reports true when emission should proceed as normal.
func (e *Emitter) checkReturnCoverage(fn *ast.FuncDecl) bool {
	if fn.Flags().Has(ast.FlagAllPathsReturn) {
		return true
	}
	if !fn.Flags().Has(ast.FlagReachable) {
		e.reporter.Warning(diag.Warning, fn, "function %q does not return on every path", fn.Name)
		return true
	}
	e.reporter.Error(diag.MappingFailure, fn, "function %q is reachable but does not return on every path", fn.Name)
	return false
}

func (e *Emitter) emitGlobalDecls(decls []*ast.VarDecl, qualifier string) {
	if len(decls) == 0 {
		return
	}
	for _, d := range decls {
		e.sink.WriteLine(fmt.Sprintf("%s %s %s;", qualifier, e.typeName(d.Type), e.name(d)))
	}
	e.sink.Blank()
}

// emitClipHelpers writes the scalar and vector overloads of the `clip()`
// intrinsic (§4.5): GLSL has no direct equivalent, so callText routes
// every `clip(x)` call through one of these free functions instead. The
// vector overloads loop over vec2/vec3/vec4, matching the original's
// WriteClipIntrinsics.
func (e *Emitter) emitClipHelpers() {
	name := e.clipHelperName()
	e.sink.WriteLine("void " + name + "(float x) { if (x < 0.0) discard; }")
	for _, vecType := range []string{"vec2", "vec3", "vec4"} {
		e.sink.WriteLine(fmt.Sprintf("void %s(%s x) { if (any(lessThan(x, %s(0.0)))) discard; }", name, vecType, vecType))
	}
	e.sink.Blank()
}

func (e *Emitter) clipHelperName() string { return e.out.Formatting.Prefix + "clip" }

func (e *Emitter) emitDecl(d ast.Decl, ctx emitCtx) {
	e.lineMark(d.Position())
	switch v := d.(type) {
	case *ast.FuncDecl:
		e.emitFunc(v)
	case *ast.StructDecl:
		e.emitStruct(v, ctx)
	case *ast.BufferDecl:
		e.emitBuffer(v)
	case *ast.TextureDecl:
		e.emitTexture(v)
	case *ast.VarDecl:
		e.sink.WriteLine(e.varDeclText(v) + ";")
	case *ast.AliasDecl:
		// GLSL has no typedef; aliases are resolved transparently by
		// typeName wherever the alias would have been written.
	}
}

// lineMark writes a `#line N` directive ahead of a declaration when line
// marks are enabled and the node carries a known source row (§4.5's "Line
// marks"), mirroring the original's Line(ast) calls preceding each
// declaration kind's Write function.
func (e *Emitter) lineMark(pos ast.Pos) {
	if !e.out.Formatting.LineMarks || pos.Row == 0 {
		return
	}
	e.sink.WriteLine(fmt.Sprintf("#line %d", pos.Row))
}

// attributeLayoutLines implements §4.5's Attributes rule: `[numthreads(x,y,z)]`
// becomes a `layout(local_size_x = x, ...) in;` line (compute stage only,
// §8 scenario S5) and `[earlydepthstencil]` becomes `layout(early_fragment_tests)
// in;`, per the original's WriteAttributeEarlyDepthStencil; any other
// attribute is silently dropped.
func (e *Emitter) attributeLayoutLines(fn *ast.FuncDecl) []string {
	if !fn.EntryPoint {
		return nil
	}
	var lines []string
	for _, attr := range fn.Attrs {
		switch attr.Name {
		case "numthreads":
			if e.in.ShaderTarget != ast.StageCompute || len(attr.Args) != 3 {
				continue
			}
			x := e.exprText(attr.Args[0], emitCtx{})
			y := e.exprText(attr.Args[1], emitCtx{})
			z := e.exprText(attr.Args[2], emitCtx{})
			lines = append(lines, fmt.Sprintf("layout(local_size_x = %s, local_size_y = %s, local_size_z = %s) in;", x, y, z))
		case "earlydepthstencil":
			if e.in.ShaderTarget != ast.StageFragment {
				continue
			}
			lines = append(lines, "layout(early_fragment_tests) in;")
		}
	}
	return lines
}

func (e *Emitter) emitFunc(fn *ast.FuncDecl) {
	if fn.Body == nil {
		return
	}
	for _, line := range e.attributeLayoutLines(fn) {
		e.sink.WriteLine(line)
	}
	params := ""
	if !fn.EntryPoint {
		for i, p := range fn.Params {
			if i > 0 {
				params += ", "
			}
			params += e.typeName(p.Type) + " " + e.name(p)
		}
	}
	resultType := "void"
	if fn.EntryPoint {
		resultType = "void"
	} else {
		resultType = e.typeName(fn.ResultType)
	}
	e.sink.WriteLine(fmt.Sprintf("%s %s(%s) {", resultType, e.name(fn), params))
	e.sink.Indent()

	if fn.EntryPoint {
		for _, local := range e.localInputInits {
			e.sink.WriteLine(e.varDeclText(local) + ";")
		}
	}

	e.emitStmt(fn.Body, emitCtx{}.withEntryPoint(fn))

	e.sink.Dedent()
	e.sink.WriteLine("}")
	e.sink.Blank()
}

// bufferLayoutClause builds a buffer interface block's `layout(...)`
// prefix (§4.5): `std140` is unconditional, matching the original's
// VisitBufferDeclStmnt, with `, binding = N` appended only when the
// target has a resolved register and the output version can express it.
func (e *Emitter) bufferLayoutClause(b *ast.BufferDecl) string {
	clause := "std140"
	if assign, hasReg := b.Registers.Lookup(e.in.ShaderTarget); hasReg && e.out.ShaderVersion.SupportsExplicitBinding() {
		clause += fmt.Sprintf(", binding = %d", assign.SlotIndex)
	}
	return "layout(" + clause + ") "
}

func (e *Emitter) emitBuffer(b *ast.BufferDecl) {
	layout := e.bufferLayoutClause(b)
	e.sink.WriteLine(fmt.Sprintf("%suniform %s {", layout, e.name(b)))
	e.sink.Indent()
	for _, m := range b.Members {
		e.sink.WriteLine(e.varDeclText(m) + ";")
	}
	e.sink.Dedent()
	e.sink.WriteLine("};")
	e.sink.Blank()
}

func (e *Emitter) emitTexture(t *ast.TextureDecl) {
	assign, hasReg := t.Registers.Lookup(e.in.ShaderTarget)
	layout := ""
	if hasReg && e.out.ShaderVersion.SupportsExplicitBinding() {
		layout = fmt.Sprintf("layout(binding = %d) ", assign.SlotIndex)
		e.out.Statistics.record(e.name(t), int(assign.SlotIndex))
	}
	e.sink.WriteLine(fmt.Sprintf("%suniform %s %s;", layout, e.typeName(t.Type), e.name(t)))
}

// emitStruct writes s, first hoisting any structs collected inline inside
// its member list (§4.2/§4.5 nested-struct hoisting), then the struct
// itself as an ordinary aggregate or, when the converter promoted it, as
// an interface block.
func (e *Emitter) emitStruct(s *ast.StructDecl, ctx emitCtx) {
	for _, nested := range s.NestedStructs {
		e.emitStruct(nested, ctx)
	}

	keyword := "struct"
	memberCtx := ctx
	if s.InterfaceBlock {
		keyword = "in"
		if s.InterfaceIsOutput {
			keyword = "out"
		}
		memberCtx = ctx.withInterfaceBlock()
	}

	e.sink.WriteLine(fmt.Sprintf("%s %s {", keyword, e.name(s)))
	e.sink.Indent()
	for _, m := range s.Members {
		_ = memberCtx
		e.sink.WriteLine(e.varDeclText(m) + ";")
	}
	e.sink.Dedent()
	if s.InterfaceBlock {
		alias := s.InterfaceAlias
		if alias == "" {
			alias = e.name(s)
		}
		e.sink.WriteLine(fmt.Sprintf("} %s;", alias))
	} else {
		e.sink.WriteLine("};")
	}
	e.sink.Blank()
}

// varDeclText renders a variable declarator without its trailing
// semicolon, shared by struct members, buffer members, and standalone
// variable-declaration statements.
func (e *Emitter) varDeclText(v *ast.VarDecl) string {
	text := e.typeName(v.Type) + " " + e.name(v)
	for _, dim := range v.ArrayDims {
		text += "[" + e.exprText(dim, emitCtx{}) + "]"
	}
	if v.Init != nil {
		text += " = " + e.exprText(v.Init, emitCtx{})
	}
	return text
}
