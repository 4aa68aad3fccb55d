// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strconv"

	"github.com/gogpu/glslgen/ast"
	"github.com/gogpu/glslgen/denoter"
)

func itoa(n int) string { return strconv.Itoa(n) }

// structEmittedName resolves the emitted identifier for a struct denoter,
// falling back to its source name if the converter has not yet assigned
// one through the namer (e.g. when called before converter.Run finishes
// visiting every struct).
func (e *Emitter) structEmittedName(s denoter.Struct) string {
	if sd, ok := s.Decl.(*ast.StructDecl); ok {
		if name, ok := e.structNames[sd]; ok {
			return name
		}
		return sd.Name
	}
	return s.Name
}
