// Package transpiler is the public embedding API over the pipeline
// internal/normalizer, internal/transform, and internal/emit implement:
// one call takes a Source AST and a set of options and returns rendered
// target-language text plus any diagnostics collected along the way.
// It generalizes the teacher's own pkg/dwscript (an engine exposing
// Compile/Run over its own internal pipeline) from "compile and
// execute" to "normalize, transform, and print".
package transpiler

import (
	"fmt"

	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/emit"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/normalizer"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/session"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/sourceast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/transform"
)

// UsageError is returned for a malformed call to Transpile itself (nil
// program, unrecognized dialect) as opposed to anything found in the
// Source AST, which always surfaces as a warning rather than an error
// (spec's error-handling design: Note/Warning/Placeholder, no
// throw-style failures inside the core).
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// Transpile runs the full pipeline: IL Normalizer, Target Transformer,
// Target Emitter. It is a pure function of (program, opts): repeated
// calls with the same arguments produce byte-identical output, since
// each call constructs its own session.TranspileSession and never
// shares state across invocations.
func Transpile(program *sourceast.Program, opts session.Options) (string, []session.Diagnostic, error) {
	if program == nil {
		return "", nil, &UsageError{Message: "transpiler: program is nil"}
	}
	if !opts.Dialect.Valid() {
		return "", nil, &UsageError{Message: fmt.Sprintf("transpiler: unrecognized dialect %q", opts.Dialect)}
	}

	sess := session.New(opts)
	ilMod := normalizer.Normalize(program, sess)
	targetMod := transform.Transform(ilMod, sess)
	text := emit.Emit(targetMod, sess)
	return text, sess.Diagnostics(), nil
}
