// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl is the GLSL code-emission back end of the shader
// cross-compiler: it consumes a fully parsed, semantically checked
// program (package ast) and produces GLSL source text for a chosen
// version and shader stage.
//
// The pipeline is a sequence of passes over one shared AST:
//
//  1. ast.AnalyzeControlPaths  — flags functions whose body returns on
//     every path.
//  2. converter.Run           — rewrites the tree for GLSL: keyword
//     collisions, entry-point signature, suppressed declarations, nested
//     structs, register normalization.
//  3. ast.AnalyzeReferences    — reachability walk from the entry point.
//  4. computeExtensions        — minimum required `#extension` set.
//  5. Emitter.generate         — depth-first traversal producing text.
//
// Generate ties the five stages together and is the only exported entry
// point most callers need.
//
// # Basic usage
//
//	source, result, err := glsl.Generate(program, glsl.InputDesc{
//	    ShaderTarget: ast.StageVertex,
//	    EntryPoint:   "VS",
//	}, glsl.OutputDesc{
//	    ShaderVersion:   glsl.Version330,
//	    AllowExtensions: true,
//	})
package glsl
