package naming

// pythonKeywords are the reserved words that can never be used as a
// Python identifier.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true,
	"class": true, "continue": true, "def": true, "del": true,
	"elif": true, "else": true, "except": true, "finally": true,
	"for": true, "from": true, "global": true, "if": true,
	"import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true,
	"raise": true, "return": true, "try": true, "while": true,
	"with": true, "yield": true,
}

// pythonBuiltinShadows are builtins whose shadowing is a deliberate,
// well-known footgun in Python code review; the transformer escapes
// identifiers that would otherwise shadow them (spec §4.2.1).
var pythonBuiltinShadows = map[string]bool{
	"len": true, "list": true, "type": true, "dict": true, "set": true,
	"str": true, "int": true, "float": true, "bool": true, "bytes": true,
	"id": true, "input": true, "object": true, "property": true,
	"staticmethod": true, "classmethod": true, "super": true,
	"range": true, "map": true, "filter": true, "sum": true, "min": true,
	"max": true, "abs": true, "round": true, "format": true, "hash": true,
	"next": true, "iter": true, "print": true, "vars": true, "dir": true,
}

// IsPythonReservedOrShadow reports whether name needs trailing-underscore
// escaping when used as a Python identifier (spec §4.2.1 / §8.3).
func IsPythonReservedOrShadow(name string) bool {
	return pythonKeywords[name] || pythonBuiltinShadows[name]
}

// EscapePython appends a trailing underscore if name collides with a
// Python keyword or common builtin shadow-risk.
func EscapePython(name string) string {
	if IsPythonReservedOrShadow(name) {
		return name + "_"
	}
	return name
}

// basicKeywords are reserved across the BASIC dialect family. No
// dialect-specific extras are added anywhere, and the transformer applies
// no BASIC reserved-word escaping (see IsBasicKeyword).
var basicKeywords = map[string]bool{
	"Dim": true, "As": true, "If": true, "Then": true, "Else": true,
	"ElseIf": true, "End": true, "For": true, "To": true, "Step": true,
	"Next": true, "While": true, "Wend": true, "Do": true, "Loop": true,
	"Until": true, "Select": true, "Case": true, "Sub": true,
	"Function": true, "Class": true, "Type": true, "Public": true,
	"Private": true, "Property": true, "Get": true, "Set": true,
	"New": true, "Nothing": true, "True": true, "False": true,
	"Mod": true, "And": true, "Or": true, "Xor": true, "Not": true,
	"Shl": true, "Shr": true, "Return": true, "Exit": true, "Try": true,
	"Catch": true, "Finally": true, "Throw": true, "Inherits": true,
	"Extends": true, "Module": true, "Declare": true, "On": true,
	"Error": true, "GoTo": true,
}

// IsBasicKeyword reports whether name is a BASIC keyword. Unlike Python,
// the spec notes BASIC needs no reserved-word escaping beyond the case
// rules §4.2.1 already applies (PascalCase for types/functions avoids
// virtually all of these; this table exists so callers/tests can still
// ask the question without re-deriving it, and so a future dialect that
// *does* need escaping has somewhere to plug in).
func IsBasicKeyword(name string) bool {
	return basicKeywords[name]
}
