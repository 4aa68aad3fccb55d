// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "fmt"

// Version identifies a target GLSL version, matching OutputDesc's
// ShaderVersion field (§6). Adapted from the teacher's Version type; ES
// remains a distinguishing bit since `#version 300 es` differs textually
// from `#version 300`.
type Version struct {
	Major int
	Minor int
	ES    bool
}

// String renders the `#version` directive argument, e.g. "330" or "300 es".
func (v Version) String() string {
	n := v.Number()
	if v.ES {
		return fmt.Sprintf("%d es", n)
	}
	return fmt.Sprintf("%d", n)
}

// Number returns the version as the integer GLSL uses in `#version N`.
func (v Version) Number() int {
	return v.Major*100 + v.Minor*10
}

// Less reports whether v is an earlier version than other (ES and
// desktop lines compare independently; comparing across lines is a
// caller error and always reports false).
func (v Version) Less(other Version) bool {
	if v.ES != other.ES {
		return false
	}
	return v.Number() < other.Number()
}

// AtLeast reports whether v is other or later. Like Less, it reports false
// for versions on different lines (ES vs. desktop).
func (v Version) AtLeast(other Version) bool {
	if v.ES != other.ES {
		return false
	}
	return !v.Less(other)
}

// Predefined versions covering the desktop and ES lines actually emitted
// by this backend (§6's ShaderVersion enum).
var (
	Version330 = Version{Major: 3, Minor: 3}
	Version400 = Version{Major: 4, Minor: 0}
	Version410 = Version{Major: 4, Minor: 1}
	Version420 = Version{Major: 4, Minor: 2}
	Version430 = Version{Major: 4, Minor: 3}
	Version440 = Version{Major: 4, Minor: 4}
	Version450 = Version{Major: 4, Minor: 5}
	Version460 = Version{Major: 4, Minor: 6}

	VersionES300 = Version{Major: 3, Minor: 0, ES: true}
	VersionES310 = Version{Major: 3, Minor: 1, ES: true}
	VersionES320 = Version{Major: 3, Minor: 2, ES: true}
)

// SupportsCompute reports whether v's core spec includes compute shaders.
func (v Version) SupportsCompute() bool {
	if v.ES {
		return v.AtLeast(VersionES310)
	}
	return v.AtLeast(Version430)
}

// SupportsDoublePrecision reports whether v's core spec includes `double`.
// ES never does; desktop GLSL gained it in 4.00.
func (v Version) SupportsDoublePrecision() bool {
	if v.ES {
		return false
	}
	return v.AtLeast(Version400)
}

// SupportsExplicitBinding reports whether v's core spec allows a
// `layout(binding = N)` qualifier on plain uniforms without an extension.
func (v Version) SupportsExplicitBinding() bool {
	if v.ES {
		return v.AtLeast(VersionES310)
	}
	return v.AtLeast(Version420)
}
