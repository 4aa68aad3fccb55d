// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

// VarIdent is one segment of a `a.b[i].c`-style variable identifier chain
// (§3). Each segment carries an optional array index expression list and
// an optional weak back-reference to the declaration it resolved to; if
// Decl is InvalidDecl the segment is a free-standing name that the
// emitter writes verbatim (a struct member name, a swizzle mask letter
// sequence, or similar).
type VarIdent struct {
	Name    string
	Indices []Expr // one Expr per `[idx]` suffix, may be empty
	Decl    DeclHandle
	Next    *VarIdent // nil if this is the last segment
}

// Last returns the final segment of the chain.
func (v *VarIdent) Last() *VarIdent {
	cur := v
	for cur.Next != nil {
		cur = cur.Next
	}
	return cur
}

// Join renders the chain as a dotted name, ignoring array indices; used
// for diagnostics, not for emission (emission walks the chain directly so
// it can special-case renamed segments).
func (v *VarIdent) Join() string {
	if v == nil {
		return ""
	}
	s := v.Name
	if v.Next != nil {
		s += "." + v.Next.Join()
	}
	return s
}
