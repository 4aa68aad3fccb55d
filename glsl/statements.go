// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/glslgen/ast"
)

// emitStmt writes s, dispatching on its concrete kind. Grounded on the
// teacher's statement-emission switch, generalized for GLSL's brace
// discipline (every branch of `if`/loops is always wrapped in braces here,
// even a single statement, to avoid the dangling-else class of bugs the
// teacher's own writer sidesteps the same way).
func (e *Emitter) emitStmt(s ast.Stmt, ctx emitCtx) {
	switch st := s.(type) {
	case *ast.CodeBlockStmt:
		for _, inner := range st.Stmts {
			e.emitStmt(inner, ctx)
		}
	case *ast.IfElseStmt:
		e.emitIfElse(st, ctx)
	case *ast.ForStmt:
		e.emitFor(st, ctx)
	case *ast.WhileStmt:
		e.sink.WriteLine(fmt.Sprintf("while (%s) {", e.exprText(st.Cond, ctx)))
		e.sink.Indent()
		e.emitStmt(st.Body, ctx)
		e.sink.Dedent()
		e.sink.WriteLine("}")
	case *ast.DoWhileStmt:
		e.sink.WriteLine("do {")
		e.sink.Indent()
		e.emitStmt(st.Body, ctx)
		e.sink.Dedent()
		e.sink.WriteLine(fmt.Sprintf("} while (%s);", e.exprText(st.Cond, ctx)))
	case *ast.SwitchStmt:
		e.emitSwitch(st, ctx)
	case *ast.ReturnStmt:
		e.emitReturn(st, ctx)
	case *ast.CtrlTransferStmt:
		e.emitCtrlTransfer(st)
	case *ast.NullStmt:
		// nothing to write
	case *ast.ExprStmt:
		e.emitExprStmt(st, ctx)
	case *ast.DeclStmt:
		if vd, ok := st.Decl.(*ast.VarDecl); ok {
			e.lineMark(vd.Position())
			e.sink.WriteLine(e.varDeclText(vd) + ";")
		}
	}
}

// emitExprStmt writes an expression statement, special-casing the
// 3-argument Interlocked* form: `InterlockedAdd(dst, val, orig)` has no
// direct GLSL call shape since atomicAdd returns its previous value
// instead of writing an out parameter, so it is rewritten here to
// `orig = atomicAdd(dst, val);` (§4.5).
func (e *Emitter) emitExprStmt(st *ast.ExprStmt, ctx emitCtx) {
	if call, ok := st.Expr.(*ast.CallExpr); ok {
		if glslName, ok := isAtomicIntrinsic(call.Intrinsic); ok && len(call.Args) == 3 {
			dst := e.exprText(call.Args[0], ctx)
			val := e.exprText(call.Args[1], ctx)
			orig := e.exprText(call.Args[2], ctx)
			e.sink.WriteLine(fmt.Sprintf("%s = %s(%s, %s);", orig, glslName, dst, val))
			return
		}
	}
	e.sink.WriteLine(e.exprText(st.Expr, ctx) + ";")
}

func (e *Emitter) emitIfElse(st *ast.IfElseStmt, ctx emitCtx) {
	e.sink.WriteLine(fmt.Sprintf("if (%s) {", e.exprText(st.Cond, ctx)))
	e.sink.Indent()
	e.emitStmt(st.Then, ctx)
	e.sink.Dedent()
	if st.Else == nil {
		e.sink.WriteLine("}")
		return
	}
	e.sink.WriteLine("} else {")
	e.sink.Indent()
	e.emitStmt(st.Else, ctx)
	e.sink.Dedent()
	e.sink.WriteLine("}")
}

func (e *Emitter) emitFor(st *ast.ForStmt, ctx emitCtx) {
	init, cond, iter := "", "", ""
	if st.Init != nil {
		init = e.forClauseText(st.Init, ctx)
	}
	if st.Cond != nil {
		cond = e.exprText(st.Cond, ctx)
	}
	if st.Iter != nil {
		iter = e.exprText(st.Iter, ctx)
	}
	e.sink.WriteLine(fmt.Sprintf("for (%s; %s; %s) {", init, cond, iter))
	e.sink.Indent()
	e.emitStmt(st.Body, ctx)
	e.sink.Dedent()
	e.sink.WriteLine("}")
}

// forClauseText renders a for-loop's init clause without a trailing
// semicolon: either a variable declarator or a bare expression statement.
func (e *Emitter) forClauseText(s ast.Stmt, ctx emitCtx) string {
	switch st := s.(type) {
	case *ast.DeclStmt:
		if vd, ok := st.Decl.(*ast.VarDecl); ok {
			return e.varDeclText(vd)
		}
	case *ast.ExprStmt:
		return e.exprText(st.Expr, ctx)
	}
	return ""
}

func (e *Emitter) emitSwitch(st *ast.SwitchStmt, ctx emitCtx) {
	e.sink.WriteLine(fmt.Sprintf("switch (%s) {", e.exprText(st.Selector, ctx)))
	e.sink.Indent()
	for _, c := range st.Cases {
		if c.IsDefault {
			e.sink.WriteLine("default:")
		} else {
			e.sink.WriteLine(fmt.Sprintf("case %s:", e.exprText(c.Value, ctx)))
		}
		e.sink.Indent()
		for _, inner := range c.Body {
			e.emitStmt(inner, ctx)
		}
		e.sink.Dedent()
	}
	e.sink.Dedent()
	e.sink.WriteLine("}")
}

func (e *Emitter) emitCtrlTransfer(st *ast.CtrlTransferStmt) {
	switch st.Transfer {
	case ast.CtrlBreak:
		e.sink.WriteLine("break;")
	case ast.CtrlContinue:
		e.sink.WriteLine("continue;")
	case ast.CtrlDiscard:
		e.sink.WriteLine("discard;")
	}
}

// emitReturn implements §4.5's return-statement rewrite: inside the entry
// point, a `return expr;` becomes one assignment per entry in the
// converter's output plan (built by convertEntryPoint), with the trailing
// `return;` suppressed when this is the function's final statement.
func (e *Emitter) emitReturn(st *ast.ReturnStmt, ctx emitCtx) {
	if !ctx.insideEntryPoint {
		if st.Value == nil {
			e.sink.WriteLine("return;")
			return
		}
		e.sink.WriteLine(fmt.Sprintf("return %s;", e.exprText(st.Value, ctx)))
		return
	}

	if st.Value != nil {
		valText := e.exprText(st.Value, ctx)
		for _, oa := range e.outputPlan {
			rhs := valText
			if len(oa.memberPath) > 0 {
				rhs = "(" + valText + ")"
				for _, m := range oa.memberPath {
					rhs += "." + m
				}
			}
			e.sink.WriteLine(fmt.Sprintf("%s = %s;", oa.target, rhs))
		}
	}
	if !st.Last {
		e.sink.WriteLine("return;")
	}
}
