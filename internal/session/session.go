// Package session implements the per-invocation owned state of spec §5:
// options, the diagnostic buffer, the import/prelude-need set, the
// defined-class-name registry, and the pre/post statement queues used
// while bifurcating expressions (§4.2.3). A TranspileSession is
// constructed once per transpile call and never shared across
// invocations or goroutines (spec §5's concurrency model).
package session

// PendingStatement is one pre- or post-statement queued while lowering
// an expression (spec §4.2.3). It carries an opaque payload because the
// IL statement type it wraps (ilast.Statement) would create an import
// cycle between session and ilast; internal/transform type-asserts it
// back to *ilast.Assign/etc. This mirrors the teacher's own
// `internal/interp/astutil` pattern of carrying `any`-typed payloads
// through a shared collector and asserting at the point of use.
type PendingStatement struct {
	Stmt interface{}
}

// Collector is the scoped, by-reference pending-statement queue pair
// spec §9 calls for instead of ambient global mutable state: it is
// created fresh at each statement boundary and threaded explicitly
// through expression-lowering calls.
type Collector struct {
	Pre  []PendingStatement
	Post []PendingStatement
}

// PushPre appends a pre-statement (spec §4.2.3 rules 1–4).
func (c *Collector) PushPre(stmt interface{}) {
	c.Pre = append(c.Pre, PendingStatement{Stmt: stmt})
}

// PushPost appends a post-statement (spec §4.2.3 rule 1).
func (c *Collector) PushPost(stmt interface{}) {
	c.Post = append(c.Post, PendingStatement{Stmt: stmt})
}

// Reset clears both queues; called at each statement boundary so a
// Collector can be reused across sibling statements within one function
// body instead of being reallocated for each.
func (c *Collector) Reset() {
	c.Pre = c.Pre[:0]
	c.Post = c.Post[:0]
}

// Empty reports whether both queues are empty.
func (c *Collector) Empty() bool {
	return len(c.Pre) == 0 && len(c.Post) == 0
}

// TranspileSession owns every piece of mutable state a single transpile
// invocation needs (spec §5). It is not safe for concurrent use and must
// not outlive one call to pkg/transpiler.Transpile.
type TranspileSession struct {
	Options Options

	diagnostics []Diagnostic

	// Imports is the set of prelude/import names the emitter must ensure
	// appear at the top of the output (spec §3.4's "needed
	// imports/preludes").
	Imports map[string]bool

	// DefinedClassNames tracks every class name seen in the module so the
	// Python transformer can preserve PascalCase for a later reference
	// even after general identifiers are snake_cased (spec §4.2.1).
	DefinedClassNames map[string]bool

	// StubRefs accumulates every framework base class/enum/helper name
	// referenced during transformation (spec §6.3); internal/stubs
	// resolves this set to stub declarations at emit time.
	StubRefs map[string]bool
}

// New constructs a fresh session for one transpile invocation.
func New(opts Options) *TranspileSession {
	return &TranspileSession{
		Options:           opts,
		Imports:           make(map[string]bool),
		DefinedClassNames: make(map[string]bool),
		StubRefs:          make(map[string]bool),
	}
}

// Note records a Note-severity diagnostic (spec §7) — recognized but
// unusual; not surfaced to the user by default, still retained so a
// caller who wants verbose output can ask for it.
func (s *TranspileSession) Note(msg string, pos Position) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Severity: Note, Message: msg, Pos: pos})
}

// Warn records a Warning-severity diagnostic: an unsupported or lossy
// lowering (spec §7).
func (s *TranspileSession) Warn(msg string, pos Position) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Severity: WarningSeverity, Message: msg, Pos: pos})
}

// WarnUnknown records a Placeholder diagnostic for an unrecognized node,
// attaching a truncated JSON snapshot built from v (spec §7).
func (s *TranspileSession) WarnUnknown(kind string, pos Position, v interface{}) {
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Severity: Placeholder,
		Message:  "unrecognized node: " + kind,
		Pos:      pos,
		NodeKind: kind,
		Snapshot: BuildSnapshot(kind, v),
	})
}

// Diagnostics returns every diagnostic recorded so far, in recording
// order (spec §5 ordering guarantees extend to diagnostics too — a
// caller diffing two runs over identical input sees byte-identical
// order, spec §8.1 property 1).
func (s *TranspileSession) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// NeedImport marks name as required in the emitted prelude/import list.
func (s *TranspileSession) NeedImport(name string) {
	s.Imports[name] = true
}

// NeedStub marks name as a framework type referenced during
// transformation (spec §6.3).
func (s *TranspileSession) NeedStub(name string) {
	s.StubRefs[name] = true
}
