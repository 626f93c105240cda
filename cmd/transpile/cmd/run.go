package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/session"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/sourceast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/pkg/transpiler"
)

var (
	optionsPath string
	outputPath  string
	showWarn    bool
)

var runCmd = &cobra.Command{
	Use:   "run [source-ast.json]",
	Short: "Transpile a Source-AST JSON document to target source text",
	Long: `Read a Source-AST document (the output of an external lexer/parser,
see spec.md §6.1) and write the transpiled target text.

Examples:
  # Transpile to stdout using the default options (Python)
  transpile run program.json

  # Transpile using an explicit options document, writing to a file
  transpile run program.json --options opts.yaml --out out.py

  # Print every diagnostic collected while transpiling
  transpile run program.json --warnings`,
	Args: cobra.ExactArgs(1),
	RunE: runTranspile,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&optionsPath, "options", "", "path to a TargetOptions YAML document (defaults to session.DefaultOptions)")
	runCmd.Flags().StringVar(&outputPath, "out", "", "write target text here instead of stdout")
	runCmd.Flags().BoolVar(&showWarn, "warnings", false, "print collected diagnostics to stderr")
}

func runTranspile(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("run: read %s: %w", args[0], err)
	}

	program, err := sourceast.Decode(data)
	if err != nil {
		return fmt.Errorf("run: decode %s: %w", args[0], err)
	}

	opts := session.DefaultOptions()
	if optionsPath != "" {
		opts, err = loadOptions(optionsPath)
		if err != nil {
			return err
		}
	}

	text, warnings, err := transpiler.Transpile(program, opts)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
			return fmt.Errorf("run: write %s: %w", outputPath, err)
		}
	} else {
		fmt.Print(text)
	}

	if showWarn {
		for _, d := range warnings {
			fmt.Fprintf(os.Stderr, "%s: %s\n", d.Severity, d.Message)
		}
	}
	return nil
}
