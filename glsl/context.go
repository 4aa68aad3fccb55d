// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "github.com/gogpu/glslgen/ast"

// emitCtx carries the traversal-position state that varies as the emitter
// descends the tree. Per §9's design note ("mutable global-ish state on
// the emitter... should live in an explicit emission context passed down
// the traversal, not in process-wide storage"), this is threaded as a
// plain value parameter rather than stored as mutable fields on Emitter.
type emitCtx struct {
	insideEntryPoint     bool
	insideInterfaceBlock bool
	fn                   *ast.FuncDecl
}

// withEntryPoint returns a copy of c scoped to fn's body.
func (c emitCtx) withEntryPoint(fn *ast.FuncDecl) emitCtx {
	c.insideEntryPoint = fn.EntryPoint
	c.fn = fn
	return c
}

// withInterfaceBlock returns a copy of c marked as inside an interface block.
func (c emitCtx) withInterfaceBlock() emitCtx {
	c.insideInterfaceBlock = true
	return c
}
