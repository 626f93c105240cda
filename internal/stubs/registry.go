// Package stubs implements the framework stub registry of spec §6.3: a
// pure accumulator of every base class, helper class, and enum the
// IL Normalizer referenced while normalizing a module, resolved at
// emit time to minimal stub declarations so the emitted file loads
// independently of the real "AlgorithmFramework" the Source assumes.
package stubs

import (
	"sort"

	"github.com/maruel/natural"
	"github.com/tidwall/match"
)

// Stub is one resolved stub declaration, already rendered in the
// target dialect's own syntax by the per-dialect table below.
type Stub struct {
	Name string
	Text string
}

// pythonStubTable maps a referenced framework name (or a glob pattern
// ending in `*`, matched with tidwall/match the way §6.3 calls for) to
// its Python stub text. The table is fixed, per spec §6.3 ("The stub set
// is fixed and enumerated in a target-specific table").
var pythonStubTable = map[string]string{
	"BlockCipherAlgorithm": "class BlockCipherAlgorithm:\n    pass\n",
	"HashFunctionAlgorithm": "class HashFunctionAlgorithm:\n    pass\n",
	"StreamCipherAlgorithm": "class StreamCipherAlgorithm:\n    pass\n",
	"Algorithm":            "class Algorithm:\n    pass\n",
	"KeySize":               "class KeySize:\n    def __init__(self, min_size=0, max_size=0, step_size=1):\n        self.min_size = min_size\n        self.max_size = max_size\n        self.step_size = step_size\n",
	"LinkItem":              "class LinkItem:\n    def __init__(self, text=\"\", uri=\"\"):\n        self.text = text\n        self.uri = uri\n",
	"TestCase":              "class TestCase:\n    pass\n",
	"CategoryType*":         "class CategoryType:\n    BLOCK = \"BLOCK\"\n    STREAM = \"STREAM\"\n    HASH = \"HASH\"\n    MAC = \"MAC\"\n    KDF = \"KDF\"\n    ASYMMETRIC = \"ASYMMETRIC\"\n    COMPRESSION = \"COMPRESSION\"\n    ENCODING = \"ENCODING\"\n    CHECKSUM = \"CHECKSUM\"\n",
	"SecurityStatus*":       "class SecurityStatus:\n    SECURE = \"SECURE\"\n    INSECURE = \"INSECURE\"\n    DEPRECATED = \"DEPRECATED\"\n    EXPERIMENTAL = \"EXPERIMENTAL\"\n",
	"ComplexityType*":       "class ComplexityType:\n    LOW = \"LOW\"\n    MEDIUM = \"MEDIUM\"\n    HIGH = \"HIGH\"\n",
}

// basicStubTable is the analogous BASIC-family stub table; BASIC stubs
// render as `Type ... End Type` plus module-level constants rather than
// a class, since the BASIC transformer may run with `useClasses=false`.
var basicStubTable = map[string]string{
	"BlockCipherAlgorithm": "Type BlockCipherAlgorithm\nEnd Type\n",
	"HashFunctionAlgorithm": "Type HashFunctionAlgorithm\nEnd Type\n",
	"StreamCipherAlgorithm": "Type StreamCipherAlgorithm\nEnd Type\n",
	"Algorithm":            "Type Algorithm\nEnd Type\n",
	"KeySize":               "Type KeySize\n  MinSize As Long\n  MaxSize As Long\n  StepSize As Long\nEnd Type\n",
	"LinkItem":              "Type LinkItem\n  Text As String\n  Uri As String\nEnd Type\n",
	"TestCase":              "Type TestCase\nEnd Type\n",
	"CategoryType*":         "Const CATEGORY_BLOCK = \"BLOCK\"\nConst CATEGORY_STREAM = \"STREAM\"\nConst CATEGORY_HASH = \"HASH\"\nConst CATEGORY_MAC = \"MAC\"\nConst CATEGORY_KDF = \"KDF\"\nConst CATEGORY_ASYMMETRIC = \"ASYMMETRIC\"\nConst CATEGORY_COMPRESSION = \"COMPRESSION\"\nConst CATEGORY_ENCODING = \"ENCODING\"\nConst CATEGORY_CHECKSUM = \"CHECKSUM\"\n",
	"SecurityStatus*":       "Const SECURITY_SECURE = \"SECURE\"\nConst SECURITY_INSECURE = \"INSECURE\"\nConst SECURITY_DEPRECATED = \"DEPRECATED\"\nConst SECURITY_EXPERIMENTAL = \"EXPERIMENTAL\"\n",
	"ComplexityType*":       "Const COMPLEXITY_LOW = \"LOW\"\nConst COMPLEXITY_MEDIUM = \"MEDIUM\"\nConst COMPLEXITY_HIGH = \"HIGH\"\n",
}

// Resolve takes the accumulated StubRefs set from a TranspileSession and
// returns the matching stub declarations for dialect, natural-sorted by
// name for deterministic, human-readable order (spec §6.3, §8.1
// property 1 determinism). An unmatched name (no framework type by that
// spelling in the fixed table) is silently skipped — the emitted module
// references a type the prelude/caller is expected to supply some other
// way, which is consistent with spec §6.3's "minimal" stub set.
func Resolve(refs map[string]bool, isBasic bool) []Stub {
	table := pythonStubTable
	if isBasic {
		table = basicStubTable
	}

	names := make([]string, 0, len(refs))
	for name := range refs {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))

	seen := make(map[string]bool)
	var out []Stub
	for _, name := range names {
		if text, ok := table[name]; ok {
			out = append(out, Stub{Name: name, Text: text})
			continue
		}
		for pattern, text := range table {
			if !match.IsPattern(pattern) {
				continue
			}
			if match.Match(name, pattern) && !seen[pattern] {
				seen[pattern] = true
				out = append(out, Stub{Name: pattern, Text: text})
			}
		}
	}
	return out
}
