// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "testing"

func TestLookupSystemValue(t *testing.T) {
	b, ok := lookupSystemValue("SV_Position")
	if !ok {
		t.Fatal("SV_Position should resolve to a system value")
	}
	if b.GLSLName != "gl_Position" {
		t.Errorf("GLSLName = %q, want %q", b.GLSLName, "gl_Position")
	}

	if _, ok := lookupSystemValue("texcoord0"); ok {
		t.Error("an ordinary semantic should not resolve as a system value")
	}
}

func TestIsAtomicIntrinsic(t *testing.T) {
	name, ok := isAtomicIntrinsic("InterlockedAdd")
	if !ok || name != "atomicAdd" {
		t.Errorf("isAtomicIntrinsic(InterlockedAdd) = (%q, %v), want (atomicAdd, true)", name, ok)
	}
	if _, ok := isAtomicIntrinsic("mul"); ok {
		t.Error("mul should not be classified as an atomic intrinsic")
	}
}

func TestLookupIntrinsic(t *testing.T) {
	name, ok := lookupIntrinsic("lerp")
	if !ok || name != "mix" {
		t.Errorf("lookupIntrinsic(lerp) = (%q, %v), want (mix, true)", name, ok)
	}
	name, ok = lookupIntrinsic("saturate")
	if !ok || name != "clamp" {
		t.Errorf("lookupIntrinsic(saturate) = (%q, %v), want (clamp, true)", name, ok)
	}
}
