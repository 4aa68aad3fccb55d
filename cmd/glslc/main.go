// Command glslc drives the GLSL emission backend from the command line
// (§4.9): it loads a Program (today, only from a --ast JSON fixture,
// since the upstream parser is out of scope) plus an InputDesc/OutputDesc
// pair (from --config and/or individual flags), and writes the emitted
// GLSL to stdout or a file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/glslgen/config"
	"github.com/gogpu/glslgen/glsl"
)

const glslcVersion = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "glslc",
		Short:   "glslc emits GLSL source from an HLSL-family shader AST",
		Version: glslcVersion,
	}
	root.AddCommand(newGenerateCmd())
	return root
}

type generateFlags struct {
	astPath         string
	configPath      string
	stage           string
	entry           string
	version         string
	allowExtensions bool
	lineMarks       bool
	prefix          string
	output          string
}

func newGenerateCmd() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate GLSL source from an AST fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.astPath, "ast", "", "path to a JSON AST fixture (demo/test convenience; not a real parser)")
	f.StringVar(&flags.configPath, "config", "", "path to a YAML InputDesc/OutputDesc document")
	f.StringVar(&flags.stage, "stage", "", "shader stage: vertex, fragment, compute, geometry, tess-control, tess-evaluation")
	f.StringVar(&flags.entry, "entry", "main", "source entry-point identifier (diagnostics only)")
	f.StringVar(&flags.version, "version", "330", "target GLSL version, e.g. 330, 450, \"300 es\"")
	f.BoolVar(&flags.allowExtensions, "allow-extensions", true, "allow #extension directives when a feature needs one")
	f.BoolVar(&flags.lineMarks, "line-marks", false, "emit source line markers")
	f.StringVar(&flags.prefix, "prefix", "_", "mangling prefix for keyword-colliding identifiers")
	f.StringVarP(&flags.output, "output", "o", "", "output file (default: stdout)")
	cmd.MarkFlagRequired("ast")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	program, err := loadFixture(flags.astPath)
	if err != nil {
		return err
	}

	in, out, err := resolveDescs(flags)
	if err != nil {
		return err
	}

	src, result, err := glsl.Generate(program, in, out)
	for _, d := range result.Diagnostics {
		fmt.Fprintln(cmd.ErrOrStderr(), d.Error())
	}
	if err != nil {
		return err
	}

	if flags.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), src)
		return nil
	}
	return os.WriteFile(flags.output, []byte(src), 0o644)
}

func resolveDescs(flags *generateFlags) (glsl.InputDesc, glsl.OutputDesc, error) {
	if flags.configPath != "" {
		doc, err := config.Load(flags.configPath)
		if err != nil {
			return glsl.InputDesc{}, glsl.OutputDesc{}, err
		}
		in, err := doc.InputDesc()
		if err != nil {
			return glsl.InputDesc{}, glsl.OutputDesc{}, err
		}
		out, err := doc.OutputDesc()
		if err != nil {
			return glsl.InputDesc{}, glsl.OutputDesc{}, err
		}
		return in, out, nil
	}

	doc := config.Document{
		Stage:           flags.stage,
		EntryPoint:      flags.entry,
		Version:         flags.version,
		AllowExtensions: flags.allowExtensions,
		LineMarks:       flags.lineMarks,
		Prefix:          flags.prefix,
	}
	in, err := doc.InputDesc()
	if err != nil {
		return glsl.InputDesc{}, glsl.OutputDesc{}, err
	}
	out, err := doc.OutputDesc()
	if err != nil {
		return glsl.InputDesc{}, glsl.OutputDesc{}, err
	}
	return in, out, nil
}
