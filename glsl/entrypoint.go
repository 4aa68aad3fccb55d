// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"github.com/gogpu/glslgen/ast"
	"github.com/gogpu/glslgen/denoter"
	"github.com/gogpu/glslgen/diag"
)

// convertEntryPoint performs §4.2's "Entry-point signature" rewrite:
// ordinary parameters become global `in` declarations or locally
// re-declared copies of system values; the return type becomes output
// declarations and a terminal-assignment plan. Grounded on the teacher's
// hlsl/functions.go entry-point I/O helpers, generalized to run in the
// opposite direction (HLSL-shaped source AST -> GLSL globals) and reduced
// to what GLSL's flatter `in`/`out` model needs.
func (c *converter) convertEntryPoint() {
	fn := c.program.EntryFunc()
	if fn == nil {
		return
	}

	for _, p := range fn.Params {
		c.convertEntryParam(p)
	}

	c.buildOutputPlan(fn)

	// The body's final top-level return needs no `return;` after its
	// terminal assignments; mark it Last for the emitter.
	if fn.Body != nil {
		if n := len(fn.Body.Stmts); n > 0 {
			if ret, ok := fn.Body.Stmts[n-1].(*ast.ReturnStmt); ok {
				ret.Last = true
			}
		}
	}
}

func (c *converter) convertEntryParam(p *ast.Param) {
	// The parameter itself was never renamed by renameDecls (entry-point
	// params are skipped there since GLSL's entry point takes none); route
	// it through the namer now so it can't collide with another global or
	// local, and record the result so every reference in the body resolves
	// to the same identifier as the synthesized declaration below.
	name := c.names.call(p.Name)
	c.renames[p] = name

	if p.Semantic != nil && p.Semantic.IsSystemValue {
		if b, ok := lookupSystemValue(p.Semantic.Name); ok {
			local := &ast.VarDecl{Name: name, Type: p.Type, Init: builtinRefExpr(p.Type, b.GLSLName)}
			c.localInputInits = append(c.localInputInits, local)
			return
		}
		c.reporter.Error(diag.MappingFailure, p, "semantic %q has no GLSL system-value counterpart", p.Semantic.Name)
		return
	}

	// Ordinary (non-system-value) input: becomes a file-scope `in` declaration
	// under the same identifier the body already refers to.
	global := &ast.VarDecl{Name: name, Type: p.Type, Semantic: p.Semantic}
	c.globalInputs = append(c.globalInputs, global)
}

// builtinRefExpr wraps a GLSL built-in identifier as an Expr so it can be
// used as a synthesized VarDecl's Init, without depending on a full
// expression-parsing path for what is always a bare identifier reference.
func builtinRefExpr(ty denoter.Type, glslName string) ast.Expr {
	return &ast.VarAccessExpr{Ident: &ast.VarIdent{Name: glslName, Decl: ast.InvalidDecl}}
}

// buildOutputPlan computes c.outputPlan and the global output
// declarations for fn's return value (§4.5's Semantics rules).
func (c *converter) buildOutputPlan(fn *ast.FuncDecl) {
	switch rt := fn.ResultType.(type) {
	case denoter.Void:
		return
	case denoter.Struct:
		sd, _ := rt.Decl.(*ast.StructDecl)
		if sd == nil {
			return
		}
		for _, m := range sd.Members {
			c.planOutputMember(m, []string{declName(c.renames, m)})
		}
	default:
		if fn.ResultSem == nil {
			if c.in.ShaderTarget != ast.StageCompute {
				c.reporter.Error(diag.MissingSemantic, fn, "entry point %q returns a value but declares no output semantic", fn.Name)
			}
			return
		}
		if b, ok := lookupSystemValue(fn.ResultSem.Name); ok && fn.ResultSem.IsSystemValue {
			c.outputPlan = append(c.outputPlan, outputAssign{target: b.GLSLName})
			return
		}
		if c.in.ShaderTarget == ast.StageCompute {
			return
		}
		if fn.ResultSem.IsSystemValue {
			c.reporter.Error(diag.MappingFailure, fn, "semantic %q has no GLSL system-value counterpart", fn.ResultSem.Name)
			return
		}
		name := c.names.call(fn.Name + "_out")
		global := &ast.VarDecl{Name: name, Type: fn.ResultType, Semantic: fn.ResultSem}
		c.globalOutputs = append(c.globalOutputs, global)
		c.outputPlan = append(c.outputPlan, outputAssign{target: name})
	}
}

func (c *converter) planOutputMember(m *ast.VarDecl, path []string) {
	if m.Semantic == nil {
		return
	}
	if m.Semantic.IsSystemValue {
		b, ok := lookupSystemValue(m.Semantic.Name)
		if !ok {
			c.reporter.Error(diag.MappingFailure, m, "semantic %q has no GLSL system-value counterpart", m.Semantic.Name)
			return
		}
		c.outputPlan = append(c.outputPlan, outputAssign{target: b.GLSLName, memberPath: path})
		return
	}
	name := c.names.call(m.Name)
	global := &ast.VarDecl{Name: name, Type: m.Type, Semantic: m.Semantic}
	c.globalOutputs = append(c.globalOutputs, global)
	c.outputPlan = append(c.outputPlan, outputAssign{target: name, memberPath: path})
}
