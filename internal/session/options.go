package session

// Dialect selects the output target language/variant (spec §4.2).
type Dialect string

const (
	Python    Dialect = "python"
	FreeBasic Dialect = "freebasic"
	VBNet     Dialect = "vbnet"
	VB6       Dialect = "vb6"
	VBA       Dialect = "vba"
	VBScript  Dialect = "vbscript"
	Gambas    Dialect = "gambas"
	Xojo      Dialect = "xojo"
)

// IsBasicFamily reports whether d is one of the BASIC dialects rather
// than Python.
func (d Dialect) IsBasicFamily() bool {
	return d != Python
}

// Valid reports whether d is one of the recognized dialect tags.
func (d Dialect) Valid() bool {
	switch d {
	case Python, FreeBasic, VBNet, VB6, VBA, VBScript, Gambas, Xojo:
		return true
	default:
		return false
	}
}

// Options is the single structure TargetOptions are passed as (spec
// §6.4). Fields use `yaml` tags so a caller can load them with
// goccy/go-yaml (see cmd/transpile/cmd/config.go); unknown keys in a
// loaded document are silently ignored (forward compatibility), which
// goccy/go-yaml's default strict-off decode already gives us.
type Options struct {
	Dialect        Dialect `yaml:"dialect"`
	AddTypeHints   bool    `yaml:"addTypeHints"`
	AddDocstrings  bool    `yaml:"addDocstrings"`
	StrictTypes    bool    `yaml:"strictTypes"`
	UseClasses     bool    `yaml:"useClasses"`
	UseProperties  bool    `yaml:"useProperties"`
	UseExceptions  bool    `yaml:"useExceptions"`
	Indent         int     `yaml:"indent"`
	LineEnding     string  `yaml:"lineEnding"`
}

// DefaultOptions returns the baseline configuration: Python target, four-
// space indent, Unix line endings, no type hints, classes/properties/
// exceptions enabled (the same for every BASIC dialect).
func DefaultOptions() Options {
	return Options{
		Dialect:       Python,
		Indent:        4,
		LineEnding:    "\n",
		UseClasses:    true,
		UseProperties: true,
		UseExceptions: true,
	}
}

// IndentUnit returns the configured indent string, defaulting to four
// spaces for Python and two for BASIC dialects when unset.
func (o Options) IndentUnit() string {
	n := o.Indent
	if n <= 0 {
		if o.Dialect == Python {
			n = 4
		} else {
			n = 2
		}
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}

// EOL returns the configured line ending, defaulting to "\n".
func (o Options) EOL() string {
	if o.LineEnding == "" {
		return "\n"
	}
	return o.LineEnding
}
