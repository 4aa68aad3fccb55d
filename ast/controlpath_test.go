// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

import "testing"

func TestAnalyzeControlPathsAllPathsReturn(t *testing.T) {
	fn := &FuncDecl{
		Name: "f",
		Body: &CodeBlockStmt{Stmts: []Stmt{
			&IfElseStmt{
				Cond: &LiteralExpr{LitKind: LitBool, Text: "true"},
				Then: &ReturnStmt{},
				Else: &ReturnStmt{},
			},
		}},
	}
	p := NewProgram()
	p.Arena.Add(fn)

	AnalyzeControlPaths(p)

	if !fn.Flags().Has(FlagAllPathsReturn) {
		t.Error("an if/else where both branches return should be flagged FlagAllPathsReturn")
	}
}

func TestAnalyzeControlPathsMissingElse(t *testing.T) {
	fn := &FuncDecl{
		Name: "f",
		Body: &CodeBlockStmt{Stmts: []Stmt{
			&IfElseStmt{
				Cond: &LiteralExpr{LitKind: LitBool, Text: "true"},
				Then: &ReturnStmt{},
			},
		}},
	}
	p := NewProgram()
	p.Arena.Add(fn)

	AnalyzeControlPaths(p)

	if fn.Flags().Has(FlagAllPathsReturn) {
		t.Error("an if with no else should not be flagged FlagAllPathsReturn")
	}
}

func TestAnalyzeControlPathsLoopNeverCounts(t *testing.T) {
	fn := &FuncDecl{
		Name: "f",
		Body: &CodeBlockStmt{Stmts: []Stmt{
			&ForStmt{Body: &ReturnStmt{}},
		}},
	}
	p := NewProgram()
	p.Arena.Add(fn)

	AnalyzeControlPaths(p)

	if fn.Flags().Has(FlagAllPathsReturn) {
		t.Error("a for-loop body may never execute, so it should never satisfy all-paths-return")
	}
}
