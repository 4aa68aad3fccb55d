// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

// DeclHandle is a weak, non-owning reference to a Decl stored in a
// Program's arena. Storing indices rather than pointers keeps
// back-references (VarIdent.Decl, a struct's base-struct link, a
// texture's declaration link) from forming ownership cycles, per the
// arena-of-nodes design recommended for back-references: allocate nodes
// once, refer to them by index everywhere else.
type DeclHandle int32

// InvalidDecl is the DeclHandle meaning "unresolved". It is -1 rather than
// the zero value: a zero DeclHandle refers to the arena's first declaration.
const InvalidDecl DeclHandle = -1

// Arena owns every top-level declaration reachable from the Program and
// hands out stable DeclHandle values for it. Nested declarations (struct
// members, function parameters) are owned directly by their parent node;
// only nodes that need to be referenced from elsewhere in the tree are
// arena-allocated.
type Arena struct {
	decls []Decl
}

// Add appends decl to the arena and returns its handle.
func (a *Arena) Add(decl Decl) DeclHandle {
	a.decls = append(a.decls, decl)
	return DeclHandle(len(a.decls) - 1)
}

// Get resolves a handle to its Decl. It returns nil for InvalidDecl or an
// out-of-range handle.
func (a *Arena) Get(h DeclHandle) Decl {
	if h == InvalidDecl || int(h) < 0 || int(h) >= len(a.decls) {
		return nil
	}
	return a.decls[h]
}

// Len returns the number of declarations owned by the arena.
func (a *Arena) Len() int { return len(a.decls) }

// All returns the arena's declarations in allocation order.
func (a *Arena) All() []Decl { return a.decls }
