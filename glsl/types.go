// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "github.com/gogpu/glslgen/denoter"

// dataTypeNames maps a denoter.DataType to its GLSL 4.x/ES type name.
// Grounded on the teacher's scalarToGLSL/vectorToGLSL/matrixToGLSL tables,
// collapsed into one lookup since denoter.DataType already enumerates
// every scalar/vector/matrix shape as distinct values.
var dataTypeNames = map[denoter.DataType]string{
	denoter.Bool: "bool", denoter.Int: "int", denoter.UInt: "uint",
	denoter.Float: "float", denoter.Double: "double",

	denoter.Bool2: "bvec2", denoter.Bool3: "bvec3", denoter.Bool4: "bvec4",
	denoter.Int2: "ivec2", denoter.Int3: "ivec3", denoter.Int4: "ivec4",
	denoter.UInt2: "uvec2", denoter.UInt3: "uvec3", denoter.UInt4: "uvec4",
	denoter.Float2: "vec2", denoter.Float3: "vec3", denoter.Float4: "vec4",
	denoter.Double2: "dvec2", denoter.Double3: "dvec3", denoter.Double4: "dvec4",

	denoter.Float2x2: "mat2", denoter.Float3x3: "mat3", denoter.Float4x4: "mat4",
	denoter.Float2x3: "mat2x3", denoter.Float2x4: "mat2x4",
	denoter.Float3x2: "mat3x2", denoter.Float3x4: "mat3x4",
	denoter.Float4x2: "mat4x2", denoter.Float4x3: "mat4x3",
}

// downgradeDouble maps a double-precision DataType to its float
// counterpart, used when the target GLSL version is below 4.00 (§4.5:
// "doubles downgraded to floats when the target GLSL version is below
// 4.00").
var downgradeDouble = map[denoter.DataType]denoter.DataType{
	denoter.Double: denoter.Float,
	denoter.Double2: denoter.Float2, denoter.Double3: denoter.Float3, denoter.Double4: denoter.Float4,
}

// bufferTypeNames maps a denoter.BufferType to its GLSL sampler keyword.
var bufferTypeNames = map[denoter.BufferType]string{
	denoter.Buffer1D: "sampler1D", denoter.Buffer2D: "sampler2D", denoter.Buffer3D: "sampler3D",
	denoter.BufferCube: "samplerCube",
	denoter.Buffer1DArray: "sampler1DArray", denoter.Buffer2DArray: "sampler2DArray",
	denoter.BufferCubeArray: "samplerCubeArray",
	denoter.Buffer2DMS: "sampler2DMS", denoter.Buffer2DMSArray: "sampler2DMSArray",
	denoter.RWBuffer2D: "image2D",
	denoter.StructuredBuffer: "buffer", denoter.RWStructuredBuffer: "buffer",
}

// typeName renders a denoter.Type as GLSL source text (§4.5's "Type
// denoter emission"). Struct types are named through
// e.structEmittedName, since denoter deliberately holds no hard
// dependency on package ast.
func (e *Emitter) typeName(t denoter.Type) string {
	switch dt := t.(type) {
	case denoter.Void:
		return "void"
	case denoter.Base:
		dataType := dt.DataType
		if !e.out.ShaderVersion.SupportsDoublePrecision() {
			if downgraded, ok := downgradeDouble[dataType]; ok {
				dataType = downgraded
			}
		}
		if name, ok := dataTypeNames[dataType]; ok {
			return name
		}
		return "float"
	case denoter.Struct:
		return e.structEmittedName(dt)
	case denoter.Alias:
		return e.typeName(dt.Aliased)
	case denoter.Array:
		base := e.typeName(dt.Base)
		suffix := ""
		for _, dim := range dt.Dims {
			if dim != nil {
				suffix += bracket(*dim)
			} else {
				suffix += "[]"
			}
		}
		return base + suffix
	case denoter.Texture:
		if name, ok := bufferTypeNames[dt.Buffer]; ok {
			return name
		}
		return "sampler2D"
	default:
		return "void"
	}
}

func bracket(n int) string {
	return "[" + itoa(n) + "]"
}

// typeConstructorNames are the source language's scalar/vector/matrix
// type-name spellings, recognized as constructor calls (`float4(...)`)
// rather than user function calls.
var typeConstructorNames = map[string]bool{
	"bool": true, "int": true, "uint": true, "float": true, "double": true,
	"bool2": true, "bool3": true, "bool4": true,
	"int2": true, "int3": true, "int4": true,
	"uint2": true, "uint3": true, "uint4": true,
	"float2": true, "float3": true, "float4": true,
	"double2": true, "double3": true, "double4": true,
	"float2x2": true, "float3x3": true, "float4x4": true,
	"float2x3": true, "float2x4": true, "float3x2": true, "float3x4": true,
	"float4x2": true, "float4x3": true,
}

func isTypeConstructorName(callee string) bool { return typeConstructorNames[callee] }
