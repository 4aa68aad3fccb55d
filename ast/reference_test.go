// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

import (
	"testing"

	"github.com/gogpu/glslgen/denoter"
)

func TestAnalyzeReferencesNoEntryPoint(t *testing.T) {
	p := NewProgram()
	if AnalyzeReferences(p) {
		t.Error("a program with no resolved entry point should report false")
	}
}

func TestAnalyzeReferencesMarksReachable(t *testing.T) {
	p := NewProgram()

	unused := &VarDecl{Name: "unused", Type: denoter.Base{}}
	unusedHandle := p.Arena.Add(unused)

	used := &VarDecl{Name: "used", Type: denoter.Base{}}
	usedHandle := p.Arena.Add(used)

	entry := &FuncDecl{
		Name:       "main",
		EntryPoint: true,
		Body: &CodeBlockStmt{Stmts: []Stmt{
			&ExprStmt{Expr: &VarAccessExpr{Ident: &VarIdent{Name: "used", Decl: usedHandle}}},
		}},
	}
	entryHandle := p.Arena.Add(entry)
	p.EntryPoint = entryHandle

	if !AnalyzeReferences(p) {
		t.Fatal("expected AnalyzeReferences to succeed with a resolved entry point")
	}

	if !entry.Flags().Has(FlagReachable) {
		t.Error("the entry point itself should be marked reachable")
	}
	if !used.Flags().Has(FlagReachable) {
		t.Error("a variable referenced from the entry point should be marked reachable")
	}
	if unused.Flags().Has(FlagReachable) {
		t.Error("a variable never referenced from the entry point should not be marked reachable")
	}
	_ = unusedHandle
}
