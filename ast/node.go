// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ast

// Pos is a source position, row and column both one-based. A zero Pos
// means the node was synthesized by a later pass and has no source text.
type Pos struct {
	Row int
	Col int
}

// Flags is a bitset of analysis annotations attached to a Node by the
// pipeline's pre-passes. It is the only mutable state the pipeline adds
// to an otherwise read-mostly tree.
type Flags uint32

const (
	// FlagReachable marks a declaration reached by the Reference Analyzer
	// (§4.3) starting from the entry point. Declarations without this flag
	// are suppressed from emission.
	FlagReachable Flags = 1 << iota

	// FlagAllPathsReturn marks a function declaration whose body was proven
	// by the Control-Path Analyzer (§4.1) to return on every path.
	FlagAllPathsReturn

	// FlagSuppressed marks a declaration the Target Converter determined has
	// no GLSL equivalent (§4.2) and that must be skipped by the emitter.
	FlagSuppressed

	// FlagEntryPoint marks the function declaration designated as the
	// shader's entry point.
	FlagEntryPoint

	// FlagInterfaceBlock marks a struct declaration promoted to a GLSL
	// interface block (`in`/`out` NAME { ... } alias;).
	FlagInterfaceBlock
)

// Has reports whether all bits of want are set in f.
func (f Flags) Has(want Flags) bool { return f&want == want }

// Set returns f with want set.
func (f Flags) Set(want Flags) Flags { return f | want }

// Clear returns f with want cleared.
func (f Flags) Clear(want Flags) Flags { return f &^ want }

// Kind discriminates the concrete type behind a Node, Decl, Stmt, or Expr
// interface value. The analyzers and the emitter dispatch with type
// switches; Kind gives every node a comparable tag alongside them.
type Kind uint16

//go:generate stringer -type=Kind
const (
	KindInvalid Kind = iota

	// Declarations
	KindFuncDecl
	KindVarDecl
	KindStructDecl
	KindBufferDecl
	KindTextureDecl
	KindAliasDecl

	// Statements
	KindCodeBlockStmt
	KindIfElseStmt
	KindForStmt
	KindWhileStmt
	KindDoWhileStmt
	KindSwitchStmt
	KindSwitchCaseStmt
	KindReturnStmt
	KindCtrlTransferStmt
	KindNullStmt
	KindExprStmt

	// Expressions
	KindLiteralExpr
	KindUnaryExpr
	KindBinaryExpr
	KindTernaryExpr
	KindListExpr
	KindBracketExpr
	KindCastExpr
	KindCallExpr
	KindVarAccessExpr
	KindSuffixExpr
	KindArrayAccessExpr
	KindInitializerExpr
	KindTypeNameExpr
)

// Node is implemented by every AST node. Position and Flags are carried by
// every concrete node via the embedded Base.
type Node interface {
	Kind() Kind
	Position() Pos
	Flags() Flags
	SetFlags(Flags)
}

// Base implements the Node bookkeeping shared by every concrete node type.
// Concrete node structs embed Base and override Kind().
type Base struct {
	Pos   Pos
	flags Flags
}

// Position returns the node's source position.
func (b *Base) Position() Pos { return b.Pos }

// Flags returns the node's current analysis flags.
func (b *Base) Flags() Flags { return b.flags }

// SetFlags overwrites the node's analysis flags.
func (b *Base) SetFlags(f Flags) { b.flags = f }

// AddFlags ORs additional flags onto the node.
func (b *Base) AddFlags(f Flags) { b.flags |= f }
