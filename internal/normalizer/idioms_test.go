package normalizer

import (
	"testing"

	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/ilast"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/session"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/sourceast"
)

// S6: `new Uint32Array(IV)` vs. `new Uint32Array(16)` exercises the
// §4.2.5 array-vs-size heuristic directly, since both branches of
// normalizeNew render the same helper-call shape and can't be told
// apart by inspecting transpiled output alone.
func TestLooksLikeSizeHeuristicCascade(t *testing.T) {
	n := New(session.New(session.Options{Dialect: session.Python}))

	cases := []struct {
		name string
		arg  sourceast.Expression
		want bool
	}{
		{"int literal is a size", intLit(16), true},
		{"array-suggesting name IV is a source", ident("IV"), false},
		{"array-suggesting name roundKeys is a source", ident("roundKeys"), false},
		{"array-suggesting suffix fooData is a source", ident("fooData"), false},
		{"size-suggesting bare n is a size", ident("n"), true},
		{"size-suggesting length is a size", ident("length"), true},
		{"ambiguous name defaults to size", ident("foo"), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := n.looksLikeSize(c.arg); got != c.want {
				t.Errorf("looksLikeSize(%v) = %v, want %v", c.arg, got, c.want)
			}
		})
	}
}

// IL-annotation types take precedence over the substring cascade: a name
// that reads as array-suggesting ("keyBuffer") but is known numeric from
// scope, or vice versa, resolves by its inferred type first.
func TestLooksLikeSizeTypeAnnotationPrecedence(t *testing.T) {
	n := New(session.New(session.Options{Dialect: session.Python}))
	n.scope.Define("keyBuffer", ilast.TInt(ilast.W32))
	n.scope.Define("count", ilast.TArray(ilast.TInt(ilast.W32)))

	if got := n.looksLikeSize(ident("keyBuffer")); got != true {
		t.Errorf("numeric-typed keyBuffer should be a size despite its name, got %v", got)
	}
	if got := n.looksLikeSize(ident("count")); got != false {
		t.Errorf("array-typed count should be a source despite its name, got %v", got)
	}
}

func ident(name string) *sourceast.Identifier { return &sourceast.Identifier{Name: name} }

func intLit(v int64) *sourceast.Literal {
	return &sourceast.Literal{LitKind: sourceast.LitInt, Int: v}
}
