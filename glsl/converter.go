// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strings"

	"github.com/gogpu/glslgen/ast"
	"github.com/gogpu/glslgen/denoter"
	"github.com/gogpu/glslgen/diag"
)

// outputAssign is one terminal output-semantics assignment: either
// `gl_Builtin = expr` (system value) or `globalName = expr` (an ordinary
// global out variable), built once per entry-point return so every
// `return` statement rewrite in the emitter reuses the same plan (§4.5).
type outputAssign struct {
	target     string // GLSL built-in name or global out variable name
	memberPath []string
}

// converter implements the Target Converter (§4.2): it rewrites the tree
// so the emitter needs no HLSL-specific knowledge beyond keyword and
// intrinsic lookup tables. Register-prefix validation happens here; atomic
// calls are only tagged here, and the emitter writes their relocated
// result argument (emitExprStmt).
type converter struct {
	program  *ast.Program
	in       InputDesc
	out      OutputDesc
	reporter diag.Reporter
	names    *namer

	// renames records the final, keyword-escaped, unique identifier for a
	// declaration, keyed by pointer identity. The emitter consults this
	// before falling back to a Decl's own Name field, so renaming never
	// requires mutating the (read-mostly) AST in place.
	renames map[ast.Decl]string

	structNames map[*ast.StructDecl]string

	// globalInputs/globalOutputs are synthesized top-level `in`/`out`
	// declarations for the entry point's non-system-value parameters and
	// return-struct members (§4.5's "Global input/output semantics").
	globalInputs  []*ast.VarDecl
	globalOutputs []*ast.VarDecl

	// localInputInits are synthesized local declarations written at the
	// top of `main()`'s body (§4.5's "Local input/output semantics").
	// Local output declarators are unnecessary here: outputPlan's
	// member-path projection assigns straight into the global output
	// variables at each return site instead of staging through a local.
	localInputInits []*ast.VarDecl

	// outputPlan lists every terminal output-semantics assignment for the
	// entry point's return value, consulted by the emitter's return
	// statement rewrite (§4.5).
	outputPlan []outputAssign
}

func newConverter(program *ast.Program, in InputDesc, out OutputDesc, reporter diag.Reporter) *converter {
	return &converter{
		program:     program,
		in:          in,
		out:         out,
		reporter:    reporter,
		names:       newNamer(out.Formatting.Prefix),
		renames:     make(map[ast.Decl]string),
		structNames: make(map[*ast.StructDecl]string),
	}
}

// Run performs every Target Converter rewrite in dependency order.
func (c *converter) Run() {
	c.names.reserve("main")
	c.renameDecls()
	c.normalizeRegisters()
	c.relocateAtomicResults()
	c.markUsedIntrinsics()
	c.collectNestedStructs()
	c.markSuppressed()
	c.convertEntryPoint()
}

// markUsedIntrinsics records every call expression's callee into
// Program.UsedIntrinsics, so the Extension Agent (§4.4) and the clip()
// helper emission (§4.5) can consult it without a second tree walk of
// their own.
func (c *converter) markUsedIntrinsics() {
	for _, d := range c.program.Arena.All() {
		fn, ok := d.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}
		walkExprStmts(fn.Body, c.markUsedIntrinsicsInExpr)
	}
}

// markUsedIntrinsicsInExpr recurses into every expression kind that can
// carry a nested call, unlike relocateAtomicResults's walk (which only
// needs to find calls reachable through other calls' arguments).
func (c *converter) markUsedIntrinsicsInExpr(e ast.Expr) {
	if e == nil {
		return
	}
	switch v := e.(type) {
	case *ast.CallExpr:
		c.program.MarkIntrinsicUsed(strings.ToLower(v.Callee))
		for _, arg := range v.Args {
			c.markUsedIntrinsicsInExpr(arg)
		}
	case *ast.UnaryExpr:
		c.markUsedIntrinsicsInExpr(v.Expr)
	case *ast.BinaryExpr:
		c.markUsedIntrinsicsInExpr(v.Left)
		c.markUsedIntrinsicsInExpr(v.Right)
	case *ast.TernaryExpr:
		c.markUsedIntrinsicsInExpr(v.Cond)
		c.markUsedIntrinsicsInExpr(v.Accept)
		c.markUsedIntrinsicsInExpr(v.Reject)
	case *ast.ListExpr:
		for _, item := range v.Items {
			c.markUsedIntrinsicsInExpr(item)
		}
	case *ast.BracketExpr:
		c.markUsedIntrinsicsInExpr(v.Inner)
	case *ast.CastExpr:
		c.markUsedIntrinsicsInExpr(v.Expr)
	case *ast.SuffixExpr:
		c.markUsedIntrinsicsInExpr(v.Base)
	case *ast.ArrayAccessExpr:
		c.markUsedIntrinsicsInExpr(v.Base)
		c.markUsedIntrinsicsInExpr(v.Index)
	case *ast.InitializerExpr:
		for _, el := range v.Elems {
			c.markUsedIntrinsicsInExpr(el)
		}
	}
}

// declName returns d's final emitted identifier: the renamed/escaped name
// if the converter assigned one, otherwise d's own Name field.
func declName(c map[ast.Decl]string, d ast.Decl) string {
	if d == nil {
		return ""
	}
	if name, ok := c[d]; ok {
		return name
	}
	switch v := d.(type) {
	case *ast.FuncDecl:
		return v.Name
	case *ast.VarDecl:
		return v.Name
	case *ast.StructDecl:
		return v.Name
	case *ast.BufferDecl:
		return v.Name
	case *ast.TextureDecl:
		return v.Name
	case *ast.AliasDecl:
		return v.Name
	case *ast.Param:
		return v.Name
	default:
		return ""
	}
}

// renameDecls runs the "Keyword collisions" rewrite (§4.2) over every
// declaration in the program, renaming any identifier that equals a GLSL
// reserved word or built-in by prefixing the configured mangling prefix.
func (c *converter) renameDecls() {
	for _, d := range c.program.Arena.All() {
		switch v := d.(type) {
		case *ast.FuncDecl:
			if v.EntryPoint {
				c.renames[v] = "main"
				continue
			}
			c.renames[v] = c.names.call(v.Name)
			for _, p := range v.Params {
				c.renames[p] = c.names.call(p.Name)
			}
		case *ast.StructDecl:
			name := c.names.call(v.Name)
			c.renames[v] = name
			c.structNames[v] = name
			for _, m := range v.Members {
				c.renames[m] = escapeKeyword(m.Name, c.out.Formatting.Prefix)
			}
		case *ast.VarDecl:
			c.renames[v] = c.names.call(v.Name)
		case *ast.BufferDecl:
			c.renames[v] = c.names.call(v.Name)
			for _, m := range v.Members {
				c.renames[m] = escapeKeyword(m.Name, c.out.Formatting.Prefix)
			}
		case *ast.TextureDecl:
			c.renames[v] = c.names.call(v.Name)
		case *ast.AliasDecl:
			c.renames[v] = c.names.call(v.Name)
		}
	}
}

// normalizeRegisters validates that each register-annotated declaration's
// slot letter matches its declaration kind (a buffer must use `b`, a
// texture `t`; no other declaration kind is checked), reporting an *Invalid input*
// diagnostic (§7) for a mismatch and leaving the assignment in place
// otherwise so the emitter can map it straight to `binding = N`.
func (c *converter) normalizeRegisters() {
	check := func(node ast.Node, regs ast.RegisterSet, want ast.SlotLetter) {
		for _, e := range regs.Entries {
			if e.Slot != want {
				c.reporter.Error(diag.InvalidInput, node,
					"register slot %q does not match expected slot %q", e.Slot, want)
			}
		}
	}
	for _, d := range c.program.Arena.All() {
		switch v := d.(type) {
		case *ast.BufferDecl:
			check(v, v.Registers, ast.SlotConstantBuffer)
		case *ast.TextureDecl:
			check(v, v.Registers, ast.SlotTexture)
		}
	}
}

// relocateAtomicResults tags every Interlocked* call found in a function
// body by setting its Intrinsic field. The tree is not rewritten: the
// emitter's emitExprStmt writes a tagged 3-argument call statement in the
// `out = NAME(dst, val);` form (§4.5), and callText maps the name.
func (c *converter) relocateAtomicResults() {
	var walk func(e ast.Expr)
	walk = func(e ast.Expr) {
		call, ok := e.(*ast.CallExpr)
		if !ok {
			return
		}
		for _, arg := range call.Args {
			walk(arg)
		}
		if _, ok := isAtomicIntrinsic(call.Callee); ok {
			call.Intrinsic = call.Callee
		}
	}
	for _, d := range c.program.Arena.All() {
		fn, ok := d.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}
		walkExprStmts(fn.Body, walk)
	}
}

// walkExprStmts calls fn on every expression reachable from a statement
// tree, used by lightweight converter passes that don't need the full
// reference-walk machinery.
func walkExprStmts(s ast.Stmt, fn func(ast.Expr)) {
	switch st := s.(type) {
	case *ast.CodeBlockStmt:
		for _, inner := range st.Stmts {
			walkExprStmts(inner, fn)
		}
	case *ast.IfElseStmt:
		fn(st.Cond)
		walkExprStmts(st.Then, fn)
		if st.Else != nil {
			walkExprStmts(st.Else, fn)
		}
	case *ast.ForStmt:
		fn(st.Cond)
		fn(st.Iter)
		walkExprStmts(st.Body, fn)
	case *ast.WhileStmt:
		fn(st.Cond)
		walkExprStmts(st.Body, fn)
	case *ast.DoWhileStmt:
		walkExprStmts(st.Body, fn)
		fn(st.Cond)
	case *ast.SwitchStmt:
		fn(st.Selector)
		for _, cs := range st.Cases {
			for _, inner := range cs.Body {
				walkExprStmts(inner, fn)
			}
		}
	case *ast.ReturnStmt:
		if st.Value != nil {
			fn(st.Value)
		}
	case *ast.ExprStmt:
		fn(st.Expr)
	}
}

// collectNestedStructs gathers struct declarations that were declared
// inline inside another struct's member list into that struct's
// NestedStructs slice, in child-to-parent order, so the emitter can hoist
// them before the enclosing struct (§4.2, §4.5). A member's inline struct
// is discovered through VarDecl.InlineDecl.
func (c *converter) collectNestedStructs() {
	for _, d := range c.program.Arena.All() {
		sd, ok := d.(*ast.StructDecl)
		if !ok {
			continue
		}
		for _, m := range sd.Members {
			if inline, ok := m.InlineDecl.(*ast.StructDecl); ok {
				sd.NestedStructs = append(sd.NestedStructs, inline.NestedStructs...)
				sd.NestedStructs = append(sd.NestedStructs, inline)
			}
		}
	}
}

// markSuppressed flags variable declarations whose source role has no
// GLSL equivalent (§4.2): here, a texture's implicit sampler-state
// companion, identified by a VarDecl whose type denoter is a Texture but
// which is not itself the canonical TextureDecl for that resource.
func (c *converter) markSuppressed() {
	for _, d := range c.program.Arena.All() {
		vd, ok := d.(*ast.VarDecl)
		if !ok {
			continue
		}
		if _, isTex := vd.Type.(denoter.Texture); isTex {
			vd.AddFlags(ast.FlagSuppressed)
		}
	}
}
