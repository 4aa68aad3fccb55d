// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

// Attribute is a `[name(args...)]`-style declaration attribute, e.g.
// `[numthreads(8,8,1)]` or `[earlydepthstencil]`. Args are kept as raw
// literal expressions; the converter/emitter interpret known attribute
// names and silently drop unknown ones (§4.5).
type Attribute struct {
	Name string
	Args []Expr
}
