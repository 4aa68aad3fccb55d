// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package ast defines the shared abstract syntax tree consumed by the GLSL
// code-emission back end. The tree is produced upstream by a lexer/parser
// and semantic analyzer that are outside this module's scope; ast only
// models the node shapes, the two source-independent analysis passes
// (control-path, reference) that annotate them, and the small amount of
// bookkeeping (arenas, weak references) needed to keep node identity
// well-defined without ownership cycles.
package ast
