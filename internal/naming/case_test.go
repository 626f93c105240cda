package naming

import "testing"

func TestToSnakeCaseIdempotent(t *testing.T) {
	cases := []string{"OutputSize", "blockSize", "HTTPServer", "already_snake", "n"}
	for _, c := range cases {
		once := ToSnakeCase(c)
		twice := ToSnakeCase(once)
		if once != twice {
			t.Errorf("ToSnakeCase not idempotent for %q: once=%q twice=%q", c, once, twice)
		}
	}
}

func TestToPascalCaseIdempotent(t *testing.T) {
	cases := []string{"outputSize", "block_size", "Already", "n"}
	for _, c := range cases {
		once := ToPascalCase(c)
		twice := ToPascalCase(once)
		if once != twice {
			t.Errorf("ToPascalCase not idempotent for %q: once=%q twice=%q", c, once, twice)
		}
	}
}

func TestToSnakeCaseExamples(t *testing.T) {
	tests := map[string]string{
		"OutputSize": "output_size",
		"blockSize":  "block_size",
		"BlockSize":  "block_size",
	}
	for in, want := range tests {
		if got := ToSnakeCase(in); got != want {
			t.Errorf("ToSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapePython(t *testing.T) {
	if EscapePython("len") != "len_" {
		t.Errorf("expected len to be escaped")
	}
	if EscapePython("count") != "count" {
		t.Errorf("expected count to pass through unescaped")
	}
}
