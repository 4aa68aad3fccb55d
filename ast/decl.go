// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

import "github.com/gogpu/glslgen/denoter"

// Decl is the tagged union of declaration node kinds (§3's Declarations
// family): function, variable, struct, buffer, texture, type alias.
type Decl interface {
	Node
	declKind()
}

// Param is a function parameter: a name, its type, and an optional
// semantic.
type Param struct {
	Base
	Name     string
	Type     denoter.Type
	Semantic *Semantic
}

func (p *Param) Kind() Kind { return KindVarDecl }
func (p *Param) declKind()  {}

// FuncDecl is a function declaration, possibly the entry point.
type FuncDecl struct {
	Base
	Name       string
	Params     []*Param
	ResultType denoter.Type
	ResultSem  *Semantic
	Attrs      []Attribute
	Body       *CodeBlockStmt // nil for a forward declaration

	// EntryPoint is true for the function designated as the shader's
	// top-level function; the emitter renames it `main` and applies
	// entry-point signature rewriting (§4.2/§4.5).
	EntryPoint bool
}

func (f *FuncDecl) Kind() Kind { return KindFuncDecl }
func (f *FuncDecl) declKind()  {}

// VarDecl is a single variable declarator: one name with its type,
// optional array dimensions and optional initializer.
type VarDecl struct {
	Base
	Name        string
	Type        denoter.Type
	Semantic    *Semantic
	Registers   RegisterSet
	Init        Expr // nil if uninitialized
	ArrayDims   []Expr
	IsConst     bool
	InlineDecl  Decl // non-nil if Type was declared inline (an anonymous StructDecl)
}

func (v *VarDecl) Kind() Kind { return KindVarDecl }
func (v *VarDecl) declKind()  {}

// StructDecl is a struct declaration. Base is the (optional) base-struct
// this struct derives from; NestedStructs holds struct declarations that
// were defined inline inside this struct's member list, collected in
// child-to-parent order so the emitter can hoist them before this
// struct's own definition (§4.2, §4.5).
type StructDecl struct {
	Base
	Name          string
	Members       []*VarDecl
	BaseStruct    *StructDecl
	NestedStructs []*StructDecl

	// InterfaceBlock is true when the Target Converter promoted this
	// struct to a GLSL `in`/`out` interface block.
	InterfaceBlock bool
	InterfaceIsOutput bool
	InterfaceAlias    string
}

func (s *StructDecl) Kind() Kind { return KindStructDecl }
func (s *StructDecl) declKind()  {}

// BufferDecl is a uniform-block (constant buffer) declaration.
type BufferDecl struct {
	Base
	Name      string
	Members   []*VarDecl
	Registers RegisterSet
}

func (b *BufferDecl) Kind() Kind { return KindBufferDecl }
func (b *BufferDecl) declKind()  {}

// TextureDecl is a texture/sampler declaration.
type TextureDecl struct {
	Base
	Name      string
	Type      denoter.Type
	Registers RegisterSet
}

func (t *TextureDecl) Kind() Kind { return KindTextureDecl }
func (t *TextureDecl) declKind()  {}

// AliasDecl is a `typedef`-style type alias.
type AliasDecl struct {
	Base
	Name    string
	Aliased denoter.Type
}

func (a *AliasDecl) Kind() Kind { return KindAliasDecl }
func (a *AliasDecl) declKind()  {}
