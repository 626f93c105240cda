// This file implements spec §4.3.2's literal rendering: string escaping,
// f-string quote selection, hex/bool/null spelling, and the BigInt
// precision-loss warning.
package emit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/session"
	"github.com/Hawkynt/Hawkynt.github.io-sub005/internal/targetast"
)

// escapeString escapes backslash, the active quote character, and the
// control characters spec §4.3.2 names, leaving everything else as-is
// (the emitted source text is expected to be valid UTF-8 already).
func escapeString(s string, quote byte) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case quote:
			b.WriteByte('\\')
			b.WriteByte(quote)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\x00`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func (e *Emitter) emitLiteral(l *targetast.Literal) string {
	switch l.LitKind {
	case targetast.LInt:
		if l.Raw != "" {
			return l.Raw
		}
		return strconv.FormatInt(l.Int, 10)
	case targetast.LFloat:
		return strconv.FormatFloat(l.Float, 'g', -1, 64)
	case targetast.LBool:
		if l.Bool {
			return "True"
		}
		return "False"
	case targetast.LString:
		return `"` + escapeString(l.Str, '"') + `"`
	case targetast.LBytes:
		return e.emitBytesLiteral(l.Bytes)
	case targetast.LNull:
		if e.isBasic() {
			return "Nothing"
		}
		return "None"
	case targetast.LRegex:
		return `"` + escapeString(l.Str, '"') + `"`
	case targetast.LBigInt:
		// BASIC has no arbitrary-precision integer type; LongLong loses
		// precision beyond 64 bits, so the emitter warns once per literal
		// rather than silently truncating (§4.3.2).
		if e.isBasic() {
			e.sess.Warn("BigInt literal "+l.Str+" narrowed to LongLong, precision may be lost", session.Position{})
		}
		return l.Str
	default:
		return "None"
	}
}

func (e *Emitter) emitBytesLiteral(b []byte) string {
	if e.isBasic() {
		parts := make([]string, len(b))
		for i, c := range b {
			parts[i] = fmt.Sprintf("&H%02X", c)
		}
		return "Array(" + strings.Join(parts, ", ") + ")"
	}
	var sb strings.Builder
	sb.WriteString(`b"`)
	for _, c := range b {
		switch c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c >= 0x20 && c < 0x7f {
				sb.WriteByte(c)
			} else {
				fmt.Fprintf(&sb, `\x%02x`, c)
			}
		}
	}
	sb.WriteString(`"`)
	return sb.String()
}

// fstringQuote implements §4.3.2's quote-selection rule: pick `"`
// unless some embedded expression's rendered text contains a `"` and no
// `'`, in which case fall back to `'`.
func fstringQuote(parts []targetast.FStringPart, rendered []string) byte {
	for i, p := range parts {
		if p.Expr == nil {
			continue
		}
		text := rendered[i]
		if strings.Contains(text, `"`) && !strings.Contains(text, `'`) {
			return '\''
		}
	}
	return '"'
}
