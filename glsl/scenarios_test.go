// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glslgen/ast"
	"github.com/gogpu/glslgen/denoter"
)

func vecType(n int) denoter.Base {
	switch n {
	case 2:
		return denoter.Base{DataType: denoter.Float2}
	case 3:
		return denoter.Base{DataType: denoter.Float3}
	default:
		return denoter.Base{DataType: denoter.Float4}
	}
}

func floatLit(text string) *ast.LiteralExpr {
	l := &ast.LiteralExpr{LitKind: ast.LitFloat, Text: text}
	l.Ty = denoter.Base{DataType: denoter.Float}
	return l
}

func varRef(name string, h ast.DeclHandle, ty denoter.Type) *ast.VarAccessExpr {
	e := &ast.VarAccessExpr{Ident: &ast.VarIdent{Name: name, Decl: h}}
	e.Ty = ty
	return e
}

// TestScenarioS1VertexPositionOut covers spec scenario S1: a vertex entry
// point taking a position input and returning SV_Position becomes a global
// `in` declaration, a `gl_Position` assignment, and the return-expression's
// `float4(p, 1)` call becomes a `vec4(...)` constructor.
func TestScenarioS1VertexPositionOut(t *testing.T) {
	program := ast.NewProgram()

	p := &ast.Param{Name: "p", Type: vecType(3), Semantic: &ast.Semantic{Name: "POSITION"}}

	ctorArg := floatLit("1")
	callExpr := &ast.CallExpr{Callee: "float4", Args: []ast.Expr{
		varRef("p", ast.InvalidDecl, vecType(3)),
		ctorArg,
	}}
	callExpr.Ty = vecType(4)

	fn := &ast.FuncDecl{
		Name:       "VS",
		EntryPoint: true,
		Params:     []*ast.Param{p},
		ResultType: vecType(4),
		ResultSem:  &ast.Semantic{Name: "SV_Position", IsSystemValue: true},
		Body: &ast.CodeBlockStmt{Stmts: []ast.Stmt{
			&ast.ReturnStmt{Value: callExpr, Last: true},
		}},
	}
	program.Arena.Add(fn)
	program.EntryPoint = 0

	src, res, err := Generate(program, InputDesc{ShaderTarget: ast.StageVertex}, OutputDesc{ShaderVersion: Version330, AllowExtensions: true})
	require.NoError(t, err)
	require.Empty(t, res.Diagnostics)

	assert.Contains(t, src, "#version 330")
	assert.Contains(t, src, "in vec3")
	assert.Contains(t, src, "gl_Position = vec4(")
	assert.NotContains(t, src, "float4(")
}

// TestScenarioS3Reciprocal covers spec scenario S3: rcp(x) on a float
// argument emits `(float(1) / (x))`.
func TestScenarioS3Reciprocal(t *testing.T) {
	program := ast.NewProgram()

	x := &ast.VarDecl{Name: "x", Type: denoter.Base{DataType: denoter.Float}}
	xHandle := program.Arena.Add(x)

	call := &ast.CallExpr{Callee: "rcp", Args: []ast.Expr{
		varRef("x", xHandle, denoter.Base{DataType: denoter.Float}),
	}}
	call.Ty = denoter.Base{DataType: denoter.Float}

	fn := &ast.FuncDecl{
		Name:       "PS",
		EntryPoint: true,
		ResultType: denoter.Base{DataType: denoter.Float},
		ResultSem:  &ast.Semantic{Name: "SV_Target", IsSystemValue: false},
		Body: &ast.CodeBlockStmt{Stmts: []ast.Stmt{
			&ast.ReturnStmt{Value: call, Last: true},
		}},
	}
	program.Arena.Add(fn)
	program.EntryPoint = 1

	src, res, err := Generate(program, InputDesc{ShaderTarget: ast.StageFragment}, OutputDesc{ShaderVersion: Version330, AllowExtensions: true})
	require.NoError(t, err)
	require.Empty(t, res.Diagnostics)
	assert.Contains(t, src, "(float(1) / (x))")
}

// TestScenarioS2MulRewrite covers spec scenario S2: `mul(M, v +
// float4(0,0,0,1))` emits `(M * (v + vec4(0, 0, 0, 1)))`.
func TestScenarioS2MulRewrite(t *testing.T) {
	program := ast.NewProgram()

	m := &ast.VarDecl{Name: "M", Type: denoter.Base{DataType: denoter.Float4x4}}
	mHandle := program.Arena.Add(m)
	v := &ast.VarDecl{Name: "v", Type: vecType(4)}
	vHandle := program.Arena.Add(v)

	zero := func() *ast.LiteralExpr {
		l := &ast.LiteralExpr{LitKind: ast.LitFloat, Text: "0"}
		l.Ty = denoter.Base{DataType: denoter.Float}
		return l
	}
	one := floatLit("1")
	ctor := &ast.CallExpr{Callee: "float4", Args: []ast.Expr{zero(), zero(), zero(), one}}
	ctor.Ty = vecType(4)

	sum := &ast.BinaryExpr{Op: ast.BinAdd, Left: varRef("v", vHandle, vecType(4)), Right: ctor}
	sum.Ty = vecType(4)

	call := &ast.CallExpr{Callee: "mul", Args: []ast.Expr{
		varRef("M", mHandle, denoter.Base{DataType: denoter.Float4x4}),
		sum,
	}}
	call.Ty = vecType(4)

	fn := &ast.FuncDecl{
		Name:       "VS",
		EntryPoint: true,
		ResultType: vecType(4),
		ResultSem:  &ast.Semantic{Name: "SV_Position", IsSystemValue: true},
		Body: &ast.CodeBlockStmt{Stmts: []ast.Stmt{
			&ast.ReturnStmt{Value: call, Last: true},
		}},
	}
	program.EntryPoint = program.Arena.Add(fn)

	src, res, err := Generate(program, InputDesc{ShaderTarget: ast.StageVertex}, OutputDesc{ShaderVersion: Version330, AllowExtensions: true})
	require.NoError(t, err)
	require.Empty(t, res.Diagnostics)
	assert.Contains(t, src, "(M * (v + vec4(0.0, 0.0, 0.0, 1.0)))")
}

// TestScenarioS4ScalarSwizzle covers spec scenario S4: a `float`-typed
// expression suffixed `.xxxx` emits `vec4(<expr>)` with no trailing
// selector, since a scalar's only channel makes every swizzle on it a pure
// replicate that the constructor already expresses.
func TestScenarioS4ScalarSwizzle(t *testing.T) {
	program := ast.NewProgram()

	x := &ast.VarDecl{Name: "x", Type: denoter.Base{DataType: denoter.Float}}
	xHandle := program.Arena.Add(x)

	swz := &ast.SuffixExpr{
		Base:      varRef("x", xHandle, denoter.Base{DataType: denoter.Float}),
		Suffix:    "xxxx",
		IsSwizzle: true,
	}
	swz.Ty = vecType(4)

	fn := &ast.FuncDecl{
		Name:       "PS",
		EntryPoint: true,
		ResultType: vecType(4),
		ResultSem:  &ast.Semantic{Name: "SV_Target", IsSystemValue: false},
		Body: &ast.CodeBlockStmt{Stmts: []ast.Stmt{
			&ast.ReturnStmt{Value: swz, Last: true},
		}},
	}
	program.EntryPoint = program.Arena.Add(fn)

	src, res, err := Generate(program, InputDesc{ShaderTarget: ast.StageFragment}, OutputDesc{ShaderVersion: Version330, AllowExtensions: true})
	require.NoError(t, err)
	require.Empty(t, res.Diagnostics)
	assert.Contains(t, src, "vec4(x)")
	assert.NotContains(t, src, "vec4(x).xxxx")
}

// TestInvariantSM3ScreenSpaceLayout covers §8's universal invariant 6: a
// fragment-stage program flagged as using SM3 screen space emits the
// `gl_FragCoord` layout line exactly once.
func TestInvariantSM3ScreenSpaceLayout(t *testing.T) {
	program := ast.NewProgram()
	program.Flags |= ast.ProgramUsesSM3ScreenSpace

	fn := &ast.FuncDecl{
		Name:       "PS",
		EntryPoint: true,
		ResultType: denoter.Void{},
		Body:       &ast.CodeBlockStmt{Stmts: []ast.Stmt{&ast.ReturnStmt{Last: true}}},
	}
	program.Arena.Add(fn)
	program.EntryPoint = 0

	src, res, err := Generate(program, InputDesc{ShaderTarget: ast.StageFragment}, OutputDesc{ShaderVersion: Version330, AllowExtensions: true})
	require.NoError(t, err)
	require.Empty(t, res.Diagnostics)

	line := "layout(origin_upper_left, pixel_center_integer) in vec4 gl_FragCoord;"
	assert.Equal(t, 1, strings.Count(src, line))
}

// TestInvariantReturnEmittedWhenNotLast covers §8's universal invariant
// 8's second half: a `return` inside the entry point that is not the
// function's final statement still emits a bare `return;` after its
// terminal assignments, since control flow must actually stop there.
func TestInvariantReturnEmittedWhenNotLast(t *testing.T) {
	program := ast.NewProgram()

	cond := &ast.LiteralExpr{LitKind: ast.LitBool, Text: "true"}
	cond.Ty = denoter.Base{DataType: denoter.Bool}

	earlyReturn := &ast.ReturnStmt{Value: floatLit("1"), Last: false}
	finalReturn := &ast.ReturnStmt{Value: floatLit("2"), Last: true}

	fn := &ast.FuncDecl{
		Name:       "PS",
		EntryPoint: true,
		ResultType: denoter.Base{DataType: denoter.Float},
		ResultSem:  &ast.Semantic{Name: "SV_Target", IsSystemValue: false},
		Body: &ast.CodeBlockStmt{Stmts: []ast.Stmt{
			&ast.IfElseStmt{Cond: cond, Then: &ast.CodeBlockStmt{Stmts: []ast.Stmt{earlyReturn}}},
			finalReturn,
		}},
	}
	program.Arena.Add(fn)
	program.EntryPoint = 0

	src, res, err := Generate(program, InputDesc{ShaderTarget: ast.StageFragment}, OutputDesc{ShaderVersion: Version330, AllowExtensions: true})
	require.NoError(t, err)
	require.Empty(t, res.Diagnostics)

	assert.Equal(t, 1, strings.Count(src, "return;"))
	assert.Contains(t, src, "= 1.0;\n")
}

// TestScenarioS6AtomicCaptureResult covers spec scenario S6: the 3-argument
// InterlockedAdd form is rewritten to a statement-level assignment, `orig =
// atomicAdd(dst, val);`, rather than emitted as a bare 3-argument call.
func TestScenarioS6AtomicCaptureResult(t *testing.T) {
	program := ast.NewProgram()

	counter := &ast.VarDecl{Name: "counter", Type: denoter.Base{DataType: denoter.Int}}
	counterHandle := program.Arena.Add(counter)

	orig := &ast.VarDecl{Name: "orig", Type: denoter.Base{DataType: denoter.Int}}
	origHandle := program.Arena.Add(orig)

	one := &ast.LiteralExpr{LitKind: ast.LitInt, Text: "1"}
	one.Ty = denoter.Base{DataType: denoter.Int}

	call := &ast.CallExpr{Callee: "InterlockedAdd", Args: []ast.Expr{
		varRef("counter", counterHandle, denoter.Base{DataType: denoter.Int}),
		one,
		varRef("orig", origHandle, denoter.Base{DataType: denoter.Int}),
	}}

	fn := &ast.FuncDecl{
		Name:       "CS",
		EntryPoint: true,
		ResultType: denoter.Void{},
		Body: &ast.CodeBlockStmt{Stmts: []ast.Stmt{
			&ast.ExprStmt{Expr: call},
			&ast.ReturnStmt{Last: true},
		}},
	}
	program.Arena.Add(fn)
	program.EntryPoint = 2

	src, res, err := Generate(program, InputDesc{ShaderTarget: ast.StageCompute}, OutputDesc{ShaderVersion: Version430, AllowExtensions: true})
	require.NoError(t, err)
	require.Empty(t, res.Diagnostics)
	assert.Contains(t, src, "orig = atomicAdd(counter, 1);")
}

// TestScenarioS5ComputeWorkgroupSize covers spec scenario S5: a compute
// entry point's `[numthreads(8,8,1)]` attribute becomes a
// `layout(local_size_x = 8, local_size_y = 8, local_size_z = 1) in;` line
// preceding `void main()`.
func TestScenarioS5ComputeWorkgroupSize(t *testing.T) {
	program := ast.NewProgram()

	dim := func(n string) *ast.LiteralExpr {
		l := &ast.LiteralExpr{LitKind: ast.LitInt, Text: n}
		l.Ty = denoter.Base{DataType: denoter.Int}
		return l
	}

	fn := &ast.FuncDecl{
		Name:       "CS",
		EntryPoint: true,
		ResultType: denoter.Void{},
		Attrs: []ast.Attribute{
			{Name: "numthreads", Args: []ast.Expr{dim("8"), dim("8"), dim("1")}},
		},
		Body: &ast.CodeBlockStmt{Stmts: []ast.Stmt{&ast.ReturnStmt{Last: true}}},
	}
	program.Arena.Add(fn)
	program.EntryPoint = 0

	src, res, err := Generate(program, InputDesc{ShaderTarget: ast.StageCompute}, OutputDesc{ShaderVersion: Version430, AllowExtensions: true})
	require.NoError(t, err)
	require.Empty(t, res.Diagnostics)
	assert.Contains(t, src, "layout(local_size_x = 8, local_size_y = 8, local_size_z = 1) in;\nvoid main()")
}

// TestScenarioExtensionEnableLine covers spec scenario S7: a feature needing
// an extension below its core-promotion version, with extensions allowed,
// emits an `#extension NAME : enable` line and no error.
func TestScenarioExtensionEnableLine(t *testing.T) {
	program := ast.NewProgram()
	program.MarkIntrinsicUsed("ddx_coarse")

	fn := &ast.FuncDecl{
		Name:       "PS",
		EntryPoint: true,
		ResultType: denoter.Void{},
		Body:       &ast.CodeBlockStmt{Stmts: []ast.Stmt{&ast.ReturnStmt{Last: true}}},
	}
	program.Arena.Add(fn)
	program.EntryPoint = 0

	src, res, err := Generate(program, InputDesc{ShaderTarget: ast.StageFragment}, OutputDesc{ShaderVersion: Version410, AllowExtensions: true})
	require.NoError(t, err)
	assert.Contains(t, src, "#extension GL_ARB_derivative_control : enable")
	assert.Equal(t, []string{"GL_ARB_derivative_control"}, res.Extensions)
}

// TestScenarioExtensionDisallowedIsFatal covers the negative half of S7:
// the same program with extensions disallowed produces no GLSL text and a
// fatal ExtensionDisallowed diagnostic.
func TestScenarioExtensionDisallowedIsFatal(t *testing.T) {
	program := ast.NewProgram()
	program.MarkIntrinsicUsed("ddx_coarse")

	fn := &ast.FuncDecl{
		Name:       "PS",
		EntryPoint: true,
		ResultType: denoter.Void{},
		Body:       &ast.CodeBlockStmt{Stmts: []ast.Stmt{&ast.ReturnStmt{Last: true}}},
	}
	program.Arena.Add(fn)
	program.EntryPoint = 0

	src, _, err := Generate(program, InputDesc{ShaderTarget: ast.StageFragment}, OutputDesc{ShaderVersion: Version410, AllowExtensions: false})
	require.Error(t, err)
	assert.Empty(t, src)
}
