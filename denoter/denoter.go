// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package denoter

// DataType enumerates the scalar/vector/matrix base types a Base denoter
// can carry. Named distinctly from any AST vocabulary since denoters are
// shared and constructed independently of source syntax.
type DataType uint8

const (
	Bool DataType = iota
	Int
	UInt
	Float
	Double

	Bool2
	Bool3
	Bool4
	Int2
	Int3
	Int4
	UInt2
	UInt3
	UInt4
	Float2
	Float3
	Float4
	Double2
	Double3
	Double4

	Float2x2
	Float3x3
	Float4x4
	Float2x3
	Float2x4
	Float3x2
	Float3x4
	Float4x2
	Float4x3
)

// IsMatrix reports whether d denotes a matrix type.
func (d DataType) IsMatrix() bool {
	return d >= Float2x2 && d <= Float4x3
}

// IsVector reports whether d denotes a vector type (2, 3, or 4 components).
func (d DataType) IsVector() bool {
	return d >= Bool2 && d <= Double4
}

// IsScalar reports whether d denotes a scalar type.
func (d DataType) IsScalar() bool {
	return d <= Double
}

// VectorSize returns the component count of a vector type, or 1 for scalars.
func (d DataType) VectorSize() int {
	if d.IsScalar() {
		return 1
	}
	if !d.IsVector() {
		return 0
	}
	switch (d - Bool2) % 3 {
	case 0:
		return 2
	case 1:
		return 3
	default:
		return 4
	}
}

// BufferType enumerates texture/buffer resource shapes, mirroring the
// resource kinds a Texture denoter can carry.
type BufferType uint8

const (
	Buffer1D BufferType = iota
	Buffer2D
	Buffer3D
	BufferCube
	Buffer1DArray
	Buffer2DArray
	BufferCubeArray
	Buffer2DMS
	Buffer2DMSArray
	RWBuffer2D
	StructuredBuffer
	RWStructuredBuffer
)

// typeKind is the tagged-interface marker used for exhaustive type
// switches over Type, in place of virtual dispatch.
type typeKind interface{ typeKind() }

// Type is the tagged union of denoter variants: Void, Base, Struct,
// Texture, Alias, Array.
type Type interface {
	typeKind
	// String returns a debug-oriented rendering; GLSL emission has its own
	// mapping tables and does not use this method.
	String() string
}

// Void is the denoter for a function with no return value.
type Void struct{}

func (Void) typeKind()      {}
func (Void) String() string { return "void" }

// Base is a scalar/vector/matrix denoter.
type Base struct {
	DataType DataType
}

func (Base) typeKind() {}
func (b Base) String() string { return "base" }

// StructRef is a weak, non-owning reference to a struct declaration,
// avoided as a hard dependency on package ast to keep denoter free of
// import cycles; the concrete type is `*ast.StructDecl` in practice, held
// here as an opaque value resolved by callers that already know the
// concrete declaration type.
type StructRef interface{}

// Struct is a denoter that names a struct declaration.
type Struct struct {
	Name string
	Decl StructRef
}

func (Struct) typeKind()      {}
func (s Struct) String() string { return s.Name }

// TextureRef is a weak, non-owning reference to a texture declaration,
// held opaque for the same reason as StructRef.
type TextureRef interface{}

// Texture is a denoter for a sampler/texture resource.
type Texture struct {
	Buffer BufferType
	Decl   TextureRef
}

func (Texture) typeKind()      {}
func (t Texture) String() string { return "texture" }

// Alias is a denoter for a `typedef`-style alias, carrying the resolved
// aliased type so consumers never need to chase the alias chain twice.
type Alias struct {
	Name    string
	Aliased Type
}

func (Alias) typeKind()      {}
func (a Alias) String() string { return a.Name }

// Array is a denoter for a fixed- or expression-sized array. Dims holds
// one entry per array dimension; a nil entry means the dimension size is
// an unevaluated expression carried elsewhere (the AST array-declarator),
// which denoter deliberately does not model to avoid the import cycle.
type Array struct {
	Base Type
	Dims []*int
}

func (Array) typeKind()      {}
func (a Array) String() string { return "array" }
