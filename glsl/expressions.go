// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/glslgen/ast"
	"github.com/gogpu/glslgen/denoter"
	"github.com/gogpu/glslgen/diag"
)

// exprText renders e as GLSL source text (§4.5), applying the special
// rules table for mul/rcp/atomic/clip/other intrinsics and the
// scalar-swizzle vector-constructor wrap, before falling back to ordinary
// operator/call emission. Grounded on the teacher's writeExpr switch.
func (e *Emitter) exprText(expr ast.Expr, ctx emitCtx) string {
	switch v := expr.(type) {
	case *ast.LiteralExpr:
		return e.literalText(v)
	case *ast.UnaryExpr:
		return e.unaryText(v, ctx)
	case *ast.BinaryExpr:
		return fmt.Sprintf("%s %s %s", e.exprText(v.Left, ctx), v.Op.Symbol(), e.exprText(v.Right, ctx))
	case *ast.TernaryExpr:
		return fmt.Sprintf("%s ? %s : %s", e.exprText(v.Cond, ctx), e.exprText(v.Accept, ctx), e.exprText(v.Reject, ctx))
	case *ast.ListExpr:
		items := make([]string, len(v.Items))
		for i, item := range v.Items {
			items[i] = e.exprText(item, ctx)
		}
		return strings.Join(items, ", ")
	case *ast.BracketExpr:
		return "(" + e.exprText(v.Inner, ctx) + ")"
	case *ast.CastExpr:
		return fmt.Sprintf("%s(%s)", e.typeName(v.Type()), e.exprText(v.Expr, ctx))
	case *ast.CallExpr:
		return e.callText(v, ctx)
	case *ast.VarAccessExpr:
		return e.varIdentText(v.Ident)
	case *ast.SuffixExpr:
		return e.suffixText(v, ctx)
	case *ast.ArrayAccessExpr:
		return fmt.Sprintf("%s[%s]", e.exprText(v.Base, ctx), e.exprText(v.Index, ctx))
	case *ast.InitializerExpr:
		elems := make([]string, len(v.Elems))
		for i, el := range v.Elems {
			elems[i] = e.exprText(el, ctx)
		}
		return fmt.Sprintf("%s(%s)", e.typeName(v.Type()), strings.Join(elems, ", "))
	case *ast.TypeNameExpr:
		return e.typeName(v.Type())
	default:
		return ""
	}
}

func (e *Emitter) literalText(l *ast.LiteralExpr) string {
	switch l.LitKind {
	case ast.LitFloat, ast.LitDouble:
		if !strings.ContainsAny(l.Text, ".eEfF") {
			return l.Text + ".0"
		}
		return l.Text
	default:
		return l.Text
	}
}

func (e *Emitter) unaryText(u *ast.UnaryExpr, ctx emitCtx) string {
	operand := e.exprText(u.Expr, ctx)
	switch u.Op {
	case ast.UnaryPostInc:
		return operand + "++"
	case ast.UnaryPostDec:
		return operand + "--"
	case ast.UnaryPreInc:
		return "++" + operand
	case ast.UnaryPreDec:
		return "--" + operand
	case ast.UnaryNot:
		return "!" + operand
	case ast.UnaryBitNot:
		return "~" + operand
	default:
		return "-" + operand
	}
}

// varIdentText renders a VarIdent chain, consulting the converter's rename
// table for each segment that resolved to a declaration; free-standing
// segments (Decl == InvalidDecl, e.g. a synthesized gl_* reference) are
// written verbatim.
func (e *Emitter) varIdentText(v *ast.VarIdent) string {
	name := v.Name
	if v.Decl != ast.InvalidDecl {
		if d := e.program.Arena.Get(v.Decl); d != nil {
			name = e.name(d)
		}
	}
	for _, idx := range v.Indices {
		name += "[" + e.exprText(idx, emitCtx{}) + "]"
	}
	if v.Next != nil {
		return name + "." + e.varIdentText(v.Next)
	}
	return name
}

// suffixText implements SuffixExpr emission including §4.5's
// scalar-swizzle-to-vector-constructor wrap: swizzling a scalar (an
// HLSL-legal replicate like `x.xxxx`) has no GLSL equivalent because
// scalars carry no swizzle mask, so the base is first promoted to a
// same-length vector constructor.
func (e *Emitter) suffixText(s *ast.SuffixExpr, ctx emitCtx) string {
	baseText := e.exprText(s.Base, ctx)
	if s.IsSwizzle {
		if b, ok := s.Base.Type().(denoter.Base); ok && b.DataType.IsScalar() {
			// A scalar has exactly one channel, so every swizzle mask on it
			// is a pure replicate (`.xxxx`, `.rr`); the constructor alone
			// already carries that meaning and needs no trailing selector.
			vecType := scalarToVector(b.DataType, len(s.Suffix))
			return fmt.Sprintf("%s(%s)", dataTypeNames[vecType], baseText)
		}
	}
	return baseText + "." + s.Suffix
}

// scalarToVector returns the same-length vector DataType for a scalar
// base, used only by the swizzle-wrap rule above.
func scalarToVector(base denoter.DataType, n int) denoter.DataType {
	switch base {
	case denoter.Int:
		return []denoter.DataType{denoter.Int, denoter.Int, denoter.Int2, denoter.Int3, denoter.Int4}[n]
	case denoter.UInt:
		return []denoter.DataType{denoter.UInt, denoter.UInt, denoter.UInt2, denoter.UInt3, denoter.UInt4}[n]
	case denoter.Bool:
		return []denoter.DataType{denoter.Bool, denoter.Bool, denoter.Bool2, denoter.Bool3, denoter.Bool4}[n]
	default:
		return []denoter.DataType{denoter.Float, denoter.Float, denoter.Float2, denoter.Float3, denoter.Float4}[n]
	}
}

// callText implements §4.5's call-expression special rules, in order:
// mul, rcp, clip, atomics, the ordinary-intrinsic table, type
// constructors, then a plain user function call.
func (e *Emitter) callText(call *ast.CallExpr, ctx emitCtx) string {
	callee := strings.ToLower(call.Callee)

	switch callee {
	case "mul":
		if len(call.Args) == 2 {
			return fmt.Sprintf("(%s * %s)", e.mulOperandText(call.Args[0], ctx), e.mulOperandText(call.Args[1], ctx))
		}
	case "rcp":
		if len(call.Args) == 1 {
			base, ok := call.Args[0].Type().(denoter.Base)
			if !ok || base.DataType.IsMatrix() {
				e.reporter.Error(diag.MappingFailure, call, "rcp() requires a scalar or vector base-type argument")
				return fmt.Sprintf("(1.0 / (%s))", e.exprText(call.Args[0], ctx))
			}
			return fmt.Sprintf("(%s(1) / (%s))", e.typeName(base), e.exprText(call.Args[0], ctx))
		}
	case "clip":
		if len(call.Args) == 1 {
			return fmt.Sprintf("%s(%s)", e.clipHelperName(), e.exprText(call.Args[0], ctx))
		}
	}

	if glslName, ok := isAtomicIntrinsic(call.Intrinsic); ok {
		return e.atomicCallText(glslName, call, ctx)
	}

	if glslName, ok := lookupIntrinsic(callee); ok {
		args := make([]string, len(call.Args))
		for i, a := range call.Args {
			args[i] = e.exprText(a, ctx)
		}
		return fmt.Sprintf("%s(%s)", glslName, strings.Join(args, ", "))
	}

	// A call whose callee spells a source-language scalar/vector/matrix type
	// name (`float4(p, 1)`) is a constructor, not a user function; its GLSL
	// name comes from the call's own resolved type, not its source spelling
	// (`float4` -> `vec4`), matching the type denoter's own emission rules.
	if isTypeConstructorName(callee) {
		args := make([]string, len(call.Args))
		for i, a := range call.Args {
			args[i] = e.exprText(a, ctx)
		}
		return fmt.Sprintf("%s(%s)", e.typeName(call.Type()), strings.Join(args, ", "))
	}

	name := call.Callee
	if call.Func != ast.InvalidDecl {
		if d := e.program.Arena.Get(call.Func); d != nil {
			name = e.name(d)
		}
	}
	args := make([]string, len(call.Args))
	for i, a := range call.Args {
		args[i] = e.exprText(a, ctx)
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

// mulOperandText renders one of mul()'s two operands, wrapping it in
// parentheses when its own precedence is lower than or ambiguous next to
// the `*` this call rewrites to: a binary or ternary operand, or a unary
// (prefix or postfix) one, per the original's WriteFunctionCallIntrinsicMul.
// Without this, `mul(M, v + float4(0,0,0,1))` would render as
// `(M * v + vec4(...))`, silently changing associativity.
func (e *Emitter) mulOperandText(arg ast.Expr, ctx emitCtx) string {
	text := e.exprText(arg, ctx)
	switch arg.(type) {
	case *ast.BinaryExpr, *ast.TernaryExpr, *ast.UnaryExpr:
		return "(" + text + ")"
	}
	return text
}

// atomicCallText emits an Interlocked* call as its 2-argument GLSL atomic
// form (§4.5); the 3-argument "capture the previous value" form is
// rewritten to an assignment at the statement level (see emitStmt's
// ExprStmt case), so only the first two arguments are ever used here.
func (e *Emitter) atomicCallText(glslName string, call *ast.CallExpr, ctx emitCtx) string {
	dst := e.exprText(call.Args[0], ctx)
	val := "1"
	if len(call.Args) >= 2 {
		val = e.exprText(call.Args[1], ctx)
	}
	return fmt.Sprintf("%s(%s, %s)", glslName, dst, val)
}
