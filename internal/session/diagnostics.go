package session

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Severity is one of the three non-fatal levels of spec §7.
type Severity int

const (
	Note Severity = iota
	WarningSeverity
	Placeholder
)

func (s Severity) String() string {
	switch s {
	case Note:
		return "note"
	case WarningSeverity:
		return "warning"
	case Placeholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Position mirrors sourceast.Position without importing it, so session
// stays a leaf package the way the teacher's own error types avoid
// depending back on the AST package that constructs them.
type Position struct {
	Line   int
	Column int
}

// Diagnostic is one accumulated Note/Warning/Placeholder entry.
type Diagnostic struct {
	Severity Severity
	Message  string
	Pos      Position
	NodeKind string // set for Placeholder diagnostics
	Snapshot string // truncated JSON, set for Placeholder diagnostics
}

// snapshotCap bounds the JSON snapshot attached to a Placeholder
// diagnostic (spec §7 "truncated JSON snapshot").
const snapshotCap = 512

// BuildSnapshot renders a best-effort JSON snapshot of an arbitrary,
// possibly-cyclic-looking Source subtree for a Placeholder diagnostic.
// It marshals v with the standard encoder, then uses sjson/gjson/pretty
// (the pack's JSON-patch toolchain, already an indirect dependency of the
// teacher) to stamp the node kind and compact it, then cuts it to
// snapshotCap bytes.
func BuildSnapshot(kind string, v interface{}) string {
	raw, err := json.Marshal(v)
	if err != nil {
		raw = []byte(`{}`)
	}
	// Stamp the node kind onto the snapshot so a diagnostic viewer does
	// not need the separate NodeKind field to make sense of the blob.
	withKind, err := sjson.SetBytes(raw, "__kind", kind)
	if err != nil {
		withKind = raw
	}
	compact := pretty.Ugly(withKind)
	if len(compact) <= snapshotCap {
		return string(compact)
	}
	// The cut is a plain byte cut and may fall inside a field or a
	// string literal; when gjson no longer parses the result, `...` is
	// appended to mark it as truncated.
	truncated := compact[:snapshotCap]
	if !gjson.ValidBytes(truncated) {
		truncated = append(truncated, []byte(`...`)...)
	}
	return string(truncated)
}
