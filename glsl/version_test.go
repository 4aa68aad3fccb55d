// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "testing"

func TestVersionString(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{Version330, "330"},
		{Version450, "450"},
		{VersionES300, "300 es"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestVersionAtLeast(t *testing.T) {
	if !Version450.AtLeast(Version330) {
		t.Error("450 should be at least 330")
	}
	if Version330.AtLeast(Version450) {
		t.Error("330 should not be at least 450")
	}
	if Version330.AtLeast(VersionES300) {
		t.Error("comparing across the ES/desktop line should always report false")
	}
}

func TestVersionSupportsDoublePrecision(t *testing.T) {
	if Version330.SupportsDoublePrecision() {
		t.Error("330 should not support double precision")
	}
	if !Version400.SupportsDoublePrecision() {
		t.Error("400 should support double precision")
	}
	if VersionES320.SupportsDoublePrecision() {
		t.Error("ES should never support double precision")
	}
}

func TestVersionSupportsExplicitBinding(t *testing.T) {
	if Version410.SupportsExplicitBinding() {
		t.Error("410 should not support explicit binding without an extension")
	}
	if !Version420.SupportsExplicitBinding() {
		t.Error("420 should support explicit binding")
	}
}
