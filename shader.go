// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tri

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// Shader entry points.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// ShaderSource is the WGSL program the pipeline is built from.
//
//go:embed shader.wgsl
var ShaderSource string

// ValidateShader parses, lowers and validates WGSL source and checks that it
// declares the vertex and fragment entry points the pipeline expects.
func ValidateShader(src string) error {
	ast, err := naga.Parse(src)
	if err != nil {
		return fmt.Errorf("tri: shader: %w", err)
	}
	module, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return fmt.Errorf("tri: shader: lowering: %w", err)
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return fmt.Errorf("tri: shader: validation: %w", err)
	}
	if len(verrs) > 0 {
		return fmt.Errorf("tri: shader: validation failed: %w", verrs[0])
	}

	want := map[string]ir.ShaderStage{
		VertexEntryPoint:   ir.StageVertex,
		FragmentEntryPoint: ir.StageFragment,
	}
	for _, ep := range module.EntryPoints {
		if stage, ok := want[ep.Name]; ok && stage == ep.Stage {
			delete(want, ep.Name)
		}
	}
	for _, name := range []string{VertexEntryPoint, FragmentEntryPoint} {
		if _, missing := want[name]; missing {
			return fmt.Errorf("%w: %s", ErrShaderEntryPoint, name)
		}
	}
	return nil
}
