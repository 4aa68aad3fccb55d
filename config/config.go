// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/glslgen/ast"
	"github.com/gogpu/glslgen/glsl"
)

// Document is the YAML shape accepted by --config: a flattened
// InputDesc/OutputDesc pair using plain strings for the enum-like fields
// so a hand-written YAML file stays readable.
type Document struct {
	Stage           string `yaml:"stage"`
	EntryPoint      string `yaml:"entryPoint"`
	Version         string `yaml:"version"`
	AllowExtensions bool   `yaml:"allowExtensions"`
	LineMarks       bool   `yaml:"lineMarks"`
	Prefix          string `yaml:"prefix"`
}

// Load reads and parses a Document from path.
func Load(path string) (Document, error) {
	var doc Document
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return doc, nil
}

// InputDesc converts the document to a glsl.InputDesc.
func (d Document) InputDesc() (glsl.InputDesc, error) {
	stage, err := parseStage(d.Stage)
	if err != nil {
		return glsl.InputDesc{}, err
	}
	return glsl.InputDesc{ShaderTarget: stage, EntryPoint: d.EntryPoint}, nil
}

// OutputDesc converts the document to a glsl.OutputDesc.
func (d Document) OutputDesc() (glsl.OutputDesc, error) {
	version, err := parseVersion(d.Version)
	if err != nil {
		return glsl.OutputDesc{}, err
	}
	out := glsl.OutputDesc{
		ShaderVersion:   version,
		AllowExtensions: d.AllowExtensions,
	}
	out.Formatting.LineMarks = d.LineMarks
	out.Formatting.Prefix = d.Prefix
	return out, nil
}

func parseStage(s string) (ast.ShaderStage, error) {
	switch s {
	case "", "vertex":
		return ast.StageVertex, nil
	case "tess-control":
		return ast.StageTessControl, nil
	case "tess-evaluation":
		return ast.StageTessEvaluation, nil
	case "geometry":
		return ast.StageGeometry, nil
	case "fragment":
		return ast.StageFragment, nil
	case "compute":
		return ast.StageCompute, nil
	default:
		return 0, fmt.Errorf("config: unknown shader stage %q", s)
	}
}

var namedVersions = map[string]glsl.Version{
	"330":    glsl.Version330,
	"400":    glsl.Version400,
	"410":    glsl.Version410,
	"420":    glsl.Version420,
	"430":    glsl.Version430,
	"440":    glsl.Version440,
	"450":    glsl.Version450,
	"460":    glsl.Version460,
	"300 es": glsl.VersionES300,
	"310 es": glsl.VersionES310,
	"320 es": glsl.VersionES320,
}

func parseVersion(s string) (glsl.Version, error) {
	if s == "" {
		return glsl.Version330, nil
	}
	if v, ok := namedVersions[s]; ok {
		return v, nil
	}
	return glsl.Version{}, fmt.Errorf("config: unknown GLSL version %q", s)
}
