// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package config loads glsl.InputDesc/glsl.OutputDesc pairs from a YAML
// document, decoupling the cmd/glslc CLI and any other embedder from the
// core glsl.Generate call (§4.8). Grounded on the YAML-struct-tag style
// used throughout hyperledger-fabric's configuration loaders.
package config
