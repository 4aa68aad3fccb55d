// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

import "github.com/gogpu/glslgen/denoter"

// AnalyzeReferences runs the Reference Analyzer (§4.3): a reachability
// walk rooted at the program's entry point that flags every transitively
// referenced declaration with FlagReachable. Declarations never flagged
// are suppressed from emission.
type referenceWalker struct {
	program *Program
	visited map[DeclHandle]bool
}

// AnalyzeReferences marks every declaration reachable from p's entry
// point. It reports false if the program has no resolved entry point,
// matching §7's "Missing entry point" error condition (the caller decides
// whether that is fatal).
func AnalyzeReferences(p *Program) bool {
	entry := p.EntryFunc()
	if entry == nil {
		return false
	}
	w := &referenceWalker{program: p, visited: make(map[DeclHandle]bool)}
	w.walkDecl(p.EntryPoint, entry)
	return true
}

func (w *referenceWalker) walkDecl(h DeclHandle, d Decl) {
	if h != InvalidDecl {
		if w.visited[h] {
			return
		}
		w.visited[h] = true
	}
	d.SetFlags(d.Flags().Set(FlagReachable))

	switch decl := d.(type) {
	case *FuncDecl:
		for _, param := range decl.Params {
			w.walkType(param.Type)
		}
		w.walkType(decl.ResultType)
		if decl.Body != nil {
			w.walkStmt(decl.Body)
		}
	case *VarDecl:
		w.walkType(decl.Type)
		if decl.Init != nil {
			w.walkExpr(decl.Init)
		}
		for _, dim := range decl.ArrayDims {
			w.walkExpr(dim)
		}
		if decl.InlineDecl != nil {
			w.walkDecl(InvalidDecl, decl.InlineDecl)
		}
	case *StructDecl:
		if decl.BaseStruct != nil {
			w.walkDecl(InvalidDecl, decl.BaseStruct)
		}
		for _, m := range decl.Members {
			w.walkDecl(InvalidDecl, m)
		}
	case *BufferDecl:
		for _, m := range decl.Members {
			w.walkDecl(InvalidDecl, m)
		}
	case *TextureDecl:
		w.walkType(decl.Type)
	case *AliasDecl:
		w.walkType(decl.Aliased)
	}
}

func (w *referenceWalker) walkType(t denoter.Type) {
	switch dt := t.(type) {
	case denoter.Struct:
		if sd, ok := dt.Decl.(*StructDecl); ok {
			w.walkDecl(InvalidDecl, sd)
		}
	case denoter.Texture:
		if td, ok := dt.Decl.(*TextureDecl); ok {
			w.walkDecl(InvalidDecl, td)
		}
	case denoter.Alias:
		w.walkType(dt.Aliased)
	case denoter.Array:
		w.walkType(dt.Base)
	}
}

func (w *referenceWalker) walkStmt(s Stmt) {
	if s == nil {
		return
	}
	switch st := s.(type) {
	case *CodeBlockStmt:
		for _, inner := range st.Stmts {
			w.walkStmt(inner)
		}
	case *IfElseStmt:
		w.walkExpr(st.Cond)
		w.walkStmt(st.Then)
		w.walkStmt(st.Else)
	case *ForStmt:
		w.walkStmt(st.Init)
		w.walkExpr(st.Cond)
		w.walkExpr(st.Iter)
		w.walkStmt(st.Body)
	case *WhileStmt:
		w.walkExpr(st.Cond)
		w.walkStmt(st.Body)
	case *DoWhileStmt:
		w.walkStmt(st.Body)
		w.walkExpr(st.Cond)
	case *SwitchStmt:
		w.walkExpr(st.Selector)
		for _, c := range st.Cases {
			w.walkExpr(c.Value)
			for _, inner := range c.Body {
				w.walkStmt(inner)
			}
		}
	case *ReturnStmt:
		w.walkExpr(st.Value)
	case *ExprStmt:
		w.walkExpr(st.Expr)
	case *DeclStmt:
		w.walkDecl(InvalidDecl, st.Decl)
	}
}

func (w *referenceWalker) walkExpr(e Expr) {
	if e == nil {
		return
	}
	w.walkType(e.Type())
	switch ex := e.(type) {
	case *UnaryExpr:
		w.walkExpr(ex.Expr)
	case *BinaryExpr:
		w.walkExpr(ex.Left)
		w.walkExpr(ex.Right)
	case *TernaryExpr:
		w.walkExpr(ex.Cond)
		w.walkExpr(ex.Accept)
		w.walkExpr(ex.Reject)
	case *ListExpr:
		for _, item := range ex.Items {
			w.walkExpr(item)
		}
	case *BracketExpr:
		w.walkExpr(ex.Inner)
	case *CastExpr:
		w.walkExpr(ex.Expr)
	case *CallExpr:
		if ex.Func != InvalidDecl {
			if fn := w.program.Arena.Get(ex.Func); fn != nil {
				w.walkDecl(ex.Func, fn)
			}
		}
		for _, arg := range ex.Args {
			w.walkExpr(arg)
		}
	case *VarAccessExpr:
		w.walkVarIdent(ex.Ident)
	case *SuffixExpr:
		w.walkExpr(ex.Base)
	case *ArrayAccessExpr:
		w.walkExpr(ex.Base)
		w.walkExpr(ex.Index)
	case *InitializerExpr:
		for _, elem := range ex.Elems {
			w.walkExpr(elem)
		}
	}
}

func (w *referenceWalker) walkVarIdent(v *VarIdent) {
	for cur := v; cur != nil; cur = cur.Next {
		if cur.Decl != InvalidDecl {
			if d := w.program.Arena.Get(cur.Decl); d != nil {
				w.walkDecl(cur.Decl, d)
			}
		}
		for _, idx := range cur.Indices {
			w.walkExpr(idx)
		}
	}
}
