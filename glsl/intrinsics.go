// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "strings"

// builtinInfo describes a system-value semantic's GLSL built-in
// counterpart, grounded on the teacher's glslBuiltIn mapping table in
// writer.go (there keyed by naga's Builtin enum; here keyed by the
// source language's semantic name).
type builtinInfo struct {
	GLSLName   string
	InputOnly  bool // true if the built-in only exists as a shader input
	OutputOnly bool // true if the built-in only exists as a shader output
	MinVersion Version
}

// systemValueBuiltins maps a semantic name (case-insensitive) to its GLSL
// built-in. A semantic flagged as a system value but absent from this
// table has no GLSL counterpart and is reported as a mapping failure.
var systemValueBuiltins = map[string]builtinInfo{
	"sv_position":       {GLSLName: "gl_Position", OutputOnly: true},
	"sv_depth":          {GLSLName: "gl_FragDepth", OutputOnly: true},
	"sv_vertexid":       {GLSLName: "gl_VertexID", InputOnly: true},
	"sv_instanceid":     {GLSLName: "gl_InstanceID", InputOnly: true},
	"sv_isfrontface":    {GLSLName: "gl_FrontFacing", InputOnly: true},
	"sv_primitiveid":    {GLSLName: "gl_PrimitiveID", InputOnly: true},
	"sv_dispatchthreadid": {GLSLName: "gl_GlobalInvocationID", InputOnly: true},
	"sv_groupid":          {GLSLName: "gl_WorkGroupID", InputOnly: true},
	"sv_groupthreadid":    {GLSLName: "gl_LocalInvocationID", InputOnly: true},
	"sv_groupindex":       {GLSLName: "gl_LocalInvocationIndex", InputOnly: true},
	"sv_clipdistance":     {GLSLName: "gl_ClipDistance", OutputOnly: true},
	"sv_culldistance":     {GLSLName: "gl_CullDistance", OutputOnly: true},
	"sv_sampleindex":      {GLSLName: "gl_SampleID", InputOnly: true},
	"sv_coverage":         {GLSLName: "gl_SampleMask", OutputOnly: true},
	"sv_pointsize":        {GLSLName: "gl_PointSize", OutputOnly: true},
}

// lookupSystemValue resolves a semantic name to its GLSL built-in.
func lookupSystemValue(name string) (builtinInfo, bool) {
	b, ok := systemValueBuiltins[strings.ToLower(name)]
	return b, ok
}

// atomicIntrinsics maps the source language's Interlocked* intrinsic
// family to the matching GLSL atomic function name. Operands are passed
// through unchanged; GLSL has no atomicSub and this table has no entry
// mapping to one.
var atomicIntrinsics = map[string]string{
	"interlockedadd":      "atomicAdd",
	"interlockedand":      "atomicAnd",
	"interlockedor":       "atomicOr",
	"interlockedxor":      "atomicXor",
	"interlockedmin":      "atomicMin",
	"interlockedmax":      "atomicMax",
	"interlockedexchange": "atomicExchange",
	"interlockedcompareexchange": "atomicCompSwap",
}

// isAtomicIntrinsic reports whether name (case-insensitive) is one of the
// atomic intrinsics and returns its GLSL name.
func isAtomicIntrinsic(name string) (string, bool) {
	g, ok := atomicIntrinsics[strings.ToLower(name)]
	return g, ok
}

// otherIntrinsics maps ordinary (non mul/rcp/atomic/clip) intrinsic names
// to their GLSL equivalents (§4.5 "Other intrinsics"), grounded on the
// teacher's writeMath switch in expressions.go, restricted to the
// functions actually nameable 1:1 between the two languages.
var otherIntrinsics = map[string]string{
	"abs": "abs", "sign": "sign", "floor": "floor", "ceil": "ceil",
	"frac": "fract", "trunc": "trunc", "round": "round",
	"sqrt": "sqrt", "rsqrt": "inversesqrt",
	"pow": "pow", "exp": "exp", "exp2": "exp2", "log": "log", "log2": "log2",
	"sin": "sin", "cos": "cos", "tan": "tan",
	"asin": "asin", "acos": "acos", "atan": "atan", "atan2": "atan",
	"sinh": "sinh", "cosh": "cosh", "tanh": "tanh",
	"min": "min", "max": "max", "clamp": "clamp", "lerp": "mix", "step": "step",
	"smoothstep": "smoothstep", "saturate": "clamp",
	"dot": "dot", "cross": "cross", "length": "length", "distance": "distance",
	"normalize": "normalize", "reflect": "reflect", "refract": "refract",
	"faceforward": "faceforward",
	"transpose": "transpose", "determinant": "determinant",
	"ddx": "dFdx", "ddy": "dFdy", "ddx_coarse": "dFdxCoarse", "ddy_coarse": "dFdyCoarse",
	"ddx_fine": "dFdxFine", "ddy_fine": "dFdyFine", "fwidth": "fwidth",
	"isnan": "isnan", "isinf": "isinf",
	"asfloat": "intBitsToFloat", "asint": "floatBitsToInt", "asuint": "floatBitsToUint",
	"any": "any", "all": "all",
}

// lookupIntrinsic resolves an ordinary intrinsic call name (case
// insensitive) to its GLSL equivalent.
func lookupIntrinsic(name string) (string, bool) {
	g, ok := otherIntrinsics[strings.ToLower(name)]
	return g, ok
}
