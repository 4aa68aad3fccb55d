// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"sort"

	"github.com/gogpu/glslgen/ast"
	"github.com/gogpu/glslgen/diag"
)

// featureRequirement names the GLSL extension a feature needs below its
// core-promotion version, and the version it was promoted into core at.
type featureRequirement struct {
	extension   string
	coreVersion Version
}

// featureRequirements maps an intrinsic/feature name (as recorded in
// Program.UsedIntrinsics) to the extension it needs pre-core-promotion.
// Grounded on the teacher's extension-selection table, trimmed to the
// features this backend's intrinsic/atomic tables can actually produce.
var featureRequirements = map[string]featureRequirement{
	"interlockedadd":             {"GL_ARB_shader_atomic_counters", Version420},
	"interlockedand":             {"GL_ARB_shader_atomic_counters", Version420},
	"interlockedor":              {"GL_ARB_shader_atomic_counters", Version420},
	"interlockedxor":             {"GL_ARB_shader_atomic_counters", Version420},
	"interlockedmin":             {"GL_ARB_shader_atomic_counters", Version420},
	"interlockedmax":             {"GL_ARB_shader_atomic_counters", Version420},
	"interlockedexchange":        {"GL_ARB_shader_atomic_counters", Version420},
	"interlockedcompareexchange": {"GL_ARB_shader_atomic_counters", Version420},
	"ddx_coarse":                 {"GL_ARB_derivative_control", Version450},
	"ddy_coarse":                 {"GL_ARB_derivative_control", Version450},
	"ddx_fine":                   {"GL_ARB_derivative_control", Version450},
	"ddy_fine":                   {"GL_ARB_derivative_control", Version450},
}

// explicitBindingExtension is required below the version at which
// `layout(binding = N)` on plain uniforms became core, when the program
// declares any register-bound buffer or texture.
const explicitBindingExtension = "GL_ARB_shading_language_420pack"

// computeExtensions implements the Extension Agent (§4.4): for every
// feature the program actually used, decide whether the target version
// already covers it natively, needs an extension directive, or — when
// extensions are disallowed — is unsatisfiable and must be reported as a
// fatal diagnostic. Returns the extensions in a deterministic (sorted)
// order and a bool reporting whether a fatal error was recorded.
func computeExtensions(program *ast.Program, in InputDesc, out OutputDesc, reporter diag.Reporter) ([]string, bool) {
	needed := map[string]struct{}{}
	fatal := false

	for name := range program.UsedIntrinsics {
		req, ok := featureRequirements[name]
		if !ok {
			continue
		}
		if out.ShaderVersion.AtLeast(req.coreVersion) {
			continue
		}
		if !out.AllowExtensions {
			reporter.Error(diag.ExtensionDisallowed, nil,
				"feature %q needs %s (core in GLSL %s) but extensions are disallowed", name, req.extension, req.coreVersion)
			fatal = true
			continue
		}
		needed[req.extension] = struct{}{}
	}

	if usesRegisterBinding(program) && !out.ShaderVersion.SupportsExplicitBinding() {
		if !out.AllowExtensions {
			reporter.Error(diag.ExtensionDisallowed, nil,
				"explicit binding layout needs %s but extensions are disallowed", explicitBindingExtension)
			fatal = true
		} else {
			needed[explicitBindingExtension] = struct{}{}
		}
	}

	exts := make([]string, 0, len(needed))
	for ext := range needed {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts, fatal
}

func usesRegisterBinding(program *ast.Program) bool {
	for _, d := range program.Arena.All() {
		switch v := d.(type) {
		case *ast.BufferDecl:
			if len(v.Registers.Entries) > 0 {
				return true
			}
		case *ast.TextureDecl:
			if len(v.Registers.Entries) > 0 {
				return true
			}
		}
	}
	return false
}
