// Command transpile is the CLI glue around pkg/transpiler: it reads a
// Source-AST JSON document and an options document, runs the core
// pipeline, and writes the resulting target text. The core itself never
// touches a filesystem or a flag; this package is the out-of-scope "CLI
// driver" collaborator spec.md §1 names.
package main

import (
	"os"

	"github.com/Hawkynt/Hawkynt.github.io-sub005/cmd/transpile/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
