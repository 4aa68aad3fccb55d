// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gogpu/glslgen/ast"
	"github.com/gogpu/glslgen/denoter"
)

// This file implements the --ast fixture loader (§4.9): since the
// upstream HLSL-family parser is out of this module's scope, `glslc
// generate --ast` accepts a small JSON encoding of a Program instead, for
// demonstration and scenario-testing purposes. It is not a substitute for
// a real parser front end.

type fixtureDoc struct {
	EntryPoint string           `json:"entryPoint"`
	Decls      []fixtureDecl    `json:"decls"`
	Entry      fixtureEntryFunc `json:"entry"`
}

type fixtureDecl struct {
	Kind      string             `json:"kind"` // "var", "struct", "buffer", "texture"
	Name      string             `json:"name"`
	Type      string             `json:"type"`
	Buffer    string             `json:"buffer"` // texture resource shape
	Semantic  *fixtureSemantic   `json:"semantic"`
	Members   []fixtureField     `json:"members"`
	Registers []fixtureRegister  `json:"registers"`
}

type fixtureField struct {
	Name     string           `json:"name"`
	Type     string           `json:"type"`
	Semantic *fixtureSemantic `json:"semantic"`
}

type fixtureSemantic struct {
	Name        string `json:"name"`
	Index       int    `json:"index"`
	SystemValue bool   `json:"systemValue"`
}

type fixtureRegister struct {
	Target string `json:"target"` // shader stage name, or "" for any
	Slot   string `json:"slot"`   // "b", "t", "s", "u"
	Index  uint32 `json:"index"`
	Space  uint32 `json:"space"`
}

type fixtureEntryFunc struct {
	Name           string           `json:"name"`
	Params         []fixtureField   `json:"params"`
	ResultType     string           `json:"resultType"`
	ResultSemantic *fixtureSemantic `json:"resultSemantic"`
	Attrs          []fixtureAttr    `json:"attrs"`
	Body           []fixtureStmt    `json:"body"`
}

// fixtureAttr is a `[name(args...)]`-style declaration attribute, e.g.
// `{"name": "numthreads", "args": ["8", "8", "1"]}` for a compute entry
// point's workgroup size.
type fixtureAttr struct {
	Name string   `json:"name"`
	Args []string `json:"args"`
}

type fixtureStmt struct {
	Kind  string        `json:"kind"` // "return", "expr", "block", "if"
	Value *fixtureExpr  `json:"value"`
	Expr  *fixtureExpr  `json:"expr"`
	Cond  *fixtureExpr  `json:"cond"`
	Then  []fixtureStmt `json:"then"`
	Else  []fixtureStmt `json:"else"`
}

type fixtureExpr struct {
	Kind    string         `json:"kind"` // "lit", "var", "bin", "call", "suffix"
	LitKind string         `json:"litKind"`
	Text    string         `json:"text"`
	Name    string         `json:"name"`
	Op      string         `json:"op"`
	Left    *fixtureExpr   `json:"left"`
	Right   *fixtureExpr   `json:"right"`
	Callee  string         `json:"callee"`
	Args    []*fixtureExpr `json:"args"`
	Base    *fixtureExpr   `json:"base"`
	Suffix  string         `json:"suffix"`
	Swizzle bool           `json:"swizzle"`
	Type    string         `json:"type"`
}

// loadFixture reads path as a JSON Program fixture and builds an
// *ast.Program from it.
func loadFixture(path string) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glslc: reading ast fixture: %w", err)
	}
	var doc fixtureDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("glslc: parsing ast fixture: %w", err)
	}
	return buildFixture(doc)
}

type fixtureBuilder struct {
	program *ast.Program
	structs map[string]*ast.StructDecl
	scope   map[string]ast.DeclHandle
}

func buildFixture(doc fixtureDoc) (*ast.Program, error) {
	b := &fixtureBuilder{
		program: ast.NewProgram(),
		structs: map[string]*ast.StructDecl{},
		scope:   map[string]ast.DeclHandle{},
	}

	// Pass 1: declare struct shells so field types can forward-reference them.
	for _, d := range doc.Decls {
		if d.Kind == "struct" {
			sd := &ast.StructDecl{Name: d.Name}
			h := b.program.Arena.Add(sd)
			b.structs[d.Name] = sd
			b.scope[d.Name] = h
		}
	}

	// Pass 2: fill struct members and declare every other top-level decl.
	for _, d := range doc.Decls {
		if err := b.addDecl(d); err != nil {
			return nil, err
		}
	}

	entryHandle, err := b.addEntry(doc.Entry)
	if err != nil {
		return nil, err
	}
	b.program.EntryPoint = entryHandle

	return b.program, nil
}

func (b *fixtureBuilder) addDecl(d fixtureDecl) error {
	switch d.Kind {
	case "struct":
		sd := b.structs[d.Name]
		for _, m := range d.Members {
			ty, err := b.resolveType(m.Type)
			if err != nil {
				return err
			}
			sd.Members = append(sd.Members, &ast.VarDecl{Name: m.Name, Type: ty, Semantic: fixtureSem(m.Semantic)})
		}
	case "var":
		ty, err := b.resolveType(d.Type)
		if err != nil {
			return err
		}
		vd := &ast.VarDecl{Name: d.Name, Type: ty, Semantic: fixtureSem(d.Semantic), Registers: fixtureRegSet(d.Registers)}
		h := b.program.Arena.Add(vd)
		b.scope[d.Name] = h
	case "buffer":
		bd := &ast.BufferDecl{Name: d.Name, Registers: fixtureRegSet(d.Registers)}
		for _, m := range d.Members {
			ty, err := b.resolveType(m.Type)
			if err != nil {
				return err
			}
			bd.Members = append(bd.Members, &ast.VarDecl{Name: m.Name, Type: ty})
		}
		h := b.program.Arena.Add(bd)
		b.scope[d.Name] = h
	case "texture":
		buf, err := resolveBufferType(d.Buffer)
		if err != nil {
			return err
		}
		td := &ast.TextureDecl{Name: d.Name, Type: denoter.Texture{Buffer: buf}, Registers: fixtureRegSet(d.Registers)}
		h := b.program.Arena.Add(td)
		b.scope[d.Name] = h
	default:
		return fmt.Errorf("glslc: unknown fixture decl kind %q", d.Kind)
	}
	return nil
}

func (b *fixtureBuilder) addEntry(f fixtureEntryFunc) (ast.DeclHandle, error) {
	fn := &ast.FuncDecl{Name: f.Name, EntryPoint: true}
	h := b.program.Arena.Add(fn)
	b.scope[f.Name] = h

	for _, p := range f.Params {
		ty, err := b.resolveType(p.Type)
		if err != nil {
			return ast.InvalidDecl, err
		}
		param := &ast.Param{Name: p.Name, Type: ty, Semantic: fixtureSem(p.Semantic)}
		ph := b.program.Arena.Add(param)
		b.scope[p.Name] = ph
		fn.Params = append(fn.Params, param)
	}

	resultType, err := b.resolveType(f.ResultType)
	if err != nil {
		return ast.InvalidDecl, err
	}
	fn.ResultType = resultType
	fn.ResultSem = fixtureSem(f.ResultSemantic)
	fn.Attrs = fixtureAttrs(f.Attrs)

	body := &ast.CodeBlockStmt{}
	stmts, err := b.buildStmts(f.Body)
	if err != nil {
		return ast.InvalidDecl, err
	}
	body.Stmts = stmts
	if n := len(body.Stmts); n > 0 {
		if ret, ok := body.Stmts[n-1].(*ast.ReturnStmt); ok {
			ret.Last = true
		}
	}
	fn.Body = body

	return h, nil
}

func (b *fixtureBuilder) buildStmts(in []fixtureStmt) ([]ast.Stmt, error) {
	out := make([]ast.Stmt, 0, len(in))
	for _, s := range in {
		st, err := b.buildStmt(s)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func (b *fixtureBuilder) buildStmt(s fixtureStmt) (ast.Stmt, error) {
	switch s.Kind {
	case "return":
		var value ast.Expr
		if s.Value != nil {
			v, err := b.buildExpr(s.Value)
			if err != nil {
				return nil, err
			}
			value = v
		}
		return &ast.ReturnStmt{Value: value}, nil
	case "expr":
		e, err := b.buildExpr(s.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Expr: e}, nil
	case "block":
		stmts, err := b.buildStmts(s.Then)
		if err != nil {
			return nil, err
		}
		return &ast.CodeBlockStmt{Stmts: stmts}, nil
	case "if":
		cond, err := b.buildExpr(s.Cond)
		if err != nil {
			return nil, err
		}
		thenStmts, err := b.buildStmts(s.Then)
		if err != nil {
			return nil, err
		}
		ifStmt := &ast.IfElseStmt{Cond: cond, Then: &ast.CodeBlockStmt{Stmts: thenStmts}}
		if len(s.Else) > 0 {
			elseStmts, err := b.buildStmts(s.Else)
			if err != nil {
				return nil, err
			}
			ifStmt.Else = &ast.CodeBlockStmt{Stmts: elseStmts}
		}
		return ifStmt, nil
	default:
		return nil, fmt.Errorf("glslc: unknown fixture statement kind %q", s.Kind)
	}
}

func (b *fixtureBuilder) buildExpr(e *fixtureExpr) (ast.Expr, error) {
	if e == nil {
		return nil, fmt.Errorf("glslc: nil expression in fixture")
	}
	switch e.Kind {
	case "lit":
		return &ast.LiteralExpr{LitKind: fixtureLitKind(e.LitKind), Text: e.Text}, nil
	case "var":
		handle := ast.InvalidDecl
		if h, ok := b.scope[e.Name]; ok {
			handle = h
		}
		return &ast.VarAccessExpr{Ident: &ast.VarIdent{Name: e.Name, Decl: handle}}, nil
	case "bin":
		left, err := b.buildExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.buildExpr(e.Right)
		if err != nil {
			return nil, err
		}
		op, err := fixtureBinOp(e.Op)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Op: op, Left: left, Right: right}, nil
	case "call":
		args := make([]ast.Expr, len(e.Args))
		for i, a := range e.Args {
			arg, err := b.buildExpr(a)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		call := &ast.CallExpr{Callee: e.Callee, Args: args, Func: ast.InvalidDecl}
		if h, ok := b.scope[e.Callee]; ok {
			call.Func = h
		}
		b.program.MarkIntrinsicUsed(e.Callee)
		return call, nil
	case "suffix":
		base, err := b.buildExpr(e.Base)
		if err != nil {
			return nil, err
		}
		return &ast.SuffixExpr{Base: base, Suffix: e.Suffix, IsSwizzle: e.Swizzle}, nil
	default:
		return nil, fmt.Errorf("glslc: unknown fixture expression kind %q", e.Kind)
	}
}

// fixtureAttrs builds Attribute.Args as integer literal expressions, the
// only shape numthreads' args ever take.
func fixtureAttrs(in []fixtureAttr) []ast.Attribute {
	out := make([]ast.Attribute, 0, len(in))
	for _, a := range in {
		args := make([]ast.Expr, len(a.Args))
		for i, text := range a.Args {
			args[i] = &ast.LiteralExpr{LitKind: ast.LitInt, Text: text}
		}
		out = append(out, ast.Attribute{Name: a.Name, Args: args})
	}
	return out
}

func fixtureSem(s *fixtureSemantic) *ast.Semantic {
	if s == nil {
		return nil
	}
	return &ast.Semantic{Name: s.Name, Index: s.Index, IsSystemValue: s.SystemValue}
}

func fixtureRegSet(regs []fixtureRegister) ast.RegisterSet {
	rs := ast.RegisterSet{}
	for _, r := range regs {
		entry := ast.RegisterAssignment{SlotIndex: r.Index, Space: r.Space}
		if r.Target == "" {
			entry.AnyTarget = true
		} else if stage, err := parseFixtureStage(r.Target); err == nil {
			entry.Target = stage
		}
		switch r.Slot {
		case "b":
			entry.Slot = ast.SlotConstantBuffer
		case "t":
			entry.Slot = ast.SlotTexture
		case "s":
			entry.Slot = ast.SlotSampler
		case "u":
			entry.Slot = ast.SlotUnorderedAccess
		}
		rs.Entries = append(rs.Entries, entry)
	}
	return rs
}

func parseFixtureStage(s string) (ast.ShaderStage, error) {
	switch s {
	case "vertex":
		return ast.StageVertex, nil
	case "tess-control":
		return ast.StageTessControl, nil
	case "tess-evaluation":
		return ast.StageTessEvaluation, nil
	case "geometry":
		return ast.StageGeometry, nil
	case "fragment":
		return ast.StageFragment, nil
	case "compute":
		return ast.StageCompute, nil
	default:
		return 0, fmt.Errorf("glslc: unknown shader stage %q", s)
	}
}

func fixtureLitKind(s string) ast.LiteralKind {
	switch s {
	case "int":
		return ast.LitInt
	case "uint":
		return ast.LitUInt
	case "double":
		return ast.LitDouble
	case "bool":
		return ast.LitBool
	case "string":
		return ast.LitString
	default:
		return ast.LitFloat
	}
}

func fixtureBinOp(s string) (ast.BinaryOp, error) {
	switch s {
	case "+":
		return ast.BinAdd, nil
	case "-":
		return ast.BinSub, nil
	case "*":
		return ast.BinMul, nil
	case "/":
		return ast.BinDiv, nil
	case "%":
		return ast.BinMod, nil
	case "<":
		return ast.BinLess, nil
	case ">":
		return ast.BinGreater, nil
	case "<=":
		return ast.BinLessEq, nil
	case ">=":
		return ast.BinGreaterEq, nil
	case "==":
		return ast.BinEqual, nil
	case "!=":
		return ast.BinNotEqual, nil
	case "&&":
		return ast.BinLogicalAnd, nil
	case "||":
		return ast.BinLogicalOr, nil
	case "=":
		return ast.BinAssign, nil
	default:
		return 0, fmt.Errorf("glslc: unknown binary operator %q", s)
	}
}

var fixtureDataTypes = map[string]denoter.DataType{
	"bool": denoter.Bool, "int": denoter.Int, "uint": denoter.UInt,
	"float": denoter.Float, "double": denoter.Double,
	"bool2": denoter.Bool2, "bool3": denoter.Bool3, "bool4": denoter.Bool4,
	"int2": denoter.Int2, "int3": denoter.Int3, "int4": denoter.Int4,
	"uint2": denoter.UInt2, "uint3": denoter.UInt3, "uint4": denoter.UInt4,
	"float2": denoter.Float2, "float3": denoter.Float3, "float4": denoter.Float4,
	"double2": denoter.Double2, "double3": denoter.Double3, "double4": denoter.Double4,
	"float2x2": denoter.Float2x2, "float3x3": denoter.Float3x3, "float4x4": denoter.Float4x4,
}

func (b *fixtureBuilder) resolveType(s string) (denoter.Type, error) {
	if s == "" || s == "void" {
		return denoter.Void{}, nil
	}
	if dt, ok := fixtureDataTypes[s]; ok {
		return denoter.Base{DataType: dt}, nil
	}
	if len(s) > 7 && s[:7] == "struct:" {
		name := s[7:]
		sd, ok := b.structs[name]
		if !ok {
			return nil, fmt.Errorf("glslc: unknown struct type %q", name)
		}
		return denoter.Struct{Name: name, Decl: sd}, nil
	}
	if len(s) > 8 && s[:8] == "texture:" {
		buf, err := resolveBufferType(s[8:])
		if err != nil {
			return nil, err
		}
		return denoter.Texture{Buffer: buf}, nil
	}
	return nil, fmt.Errorf("glslc: unknown type %q", s)
}

func resolveBufferType(s string) (denoter.BufferType, error) {
	switch s {
	case "", "2d":
		return denoter.Buffer2D, nil
	case "1d":
		return denoter.Buffer1D, nil
	case "3d":
		return denoter.Buffer3D, nil
	case "cube":
		return denoter.BufferCube, nil
	case "2darray":
		return denoter.Buffer2DArray, nil
	default:
		return 0, fmt.Errorf("glslc: unknown texture buffer shape %q", s)
	}
}
