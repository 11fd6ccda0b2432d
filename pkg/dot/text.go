package dot

import "strings"

// Text is label text for a graph, node, edge, or cluster, together with the
// quoting strategy used when it is written into an attribute. The zero value
// is an empty plain label.
type Text struct {
	kind textKind
	text string
}

type textKind int

const (
	textPlain textKind = iota
	textEsc
	textHTML
)

// Label returns plain text. Every backslash in s is escaped, so the rendered
// label shows s exactly as given.
func Label(s string) Text { return Text{kind: textPlain, text: s} }

// Esc returns escString text (https://www.graphviz.org/docs/attr-types/escString).
// Backslashes in s are preserved so that sequences like \l and \r reach
// Graphviz and control line justification.
func Esc(s string) Text { return Text{kind: textEsc, text: s} }

// HTML returns an HTML-like label. The text is emitted between angle
// brackets exactly as given, with no escaping; the caller is responsible for
// well-formedness. See EscapeHTML for escaping fragments of it.
func HTML(s string) Text { return Text{kind: textHTML, text: s} }

// String returns the raw text without quoting.
func (t Text) String() string { return t.text }

// Quoted renders the text as a DOT attribute value, including delimiters.
func (t Text) Quoted() string {
	switch t.kind {
	case textHTML:
		return "<" + t.text + ">"
	case textEsc:
		return `"` + escapeText(t.text, false) + `"`
	default:
		return `"` + escapeText(t.text, true) + `"`
	}
}

// isZero reports whether t carries no text; optional color and shape hooks
// use this to mean "no attribute".
func (t Text) isZero() bool { return t.text == "" }

// IsID reports whether s can appear in DOT output without quoting: a
// non-empty run of letters, digits, and underscores that either does not
// start with a digit or is entirely numeric.
func IsID(s string) bool {
	if s == "" {
		return false
	}
	digits := true
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			digits = false
		default:
			return false
		}
	}
	if digits {
		return true
	}
	c := s[0]
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// EscapeID returns s in a form valid as a DOT identifier. Safe identifiers
// (see [IsID]) pass through unchanged; anything else is wrapped in double
// quotes with embedded backslashes, quotes, and newlines escaped. The empty
// string escapes to "". Escaping is idempotent for safe identifiers, and the
// quoted form decodes back to the original text.
func EscapeID(s string) string {
	if IsID(s) {
		return s
	}
	return `"` + escapeText(s, true) + `"`
}

// escapeText escapes text for inclusion between double quotes. When
// escBackslash is false, backslashes pass through untouched so that
// escString sequences stay intact.
func escapeText(s string, escBackslash bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch c {
		case '\\':
			if escBackslash {
				b.WriteString(`\\`)
			} else {
				b.WriteByte('\\')
			}
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// EscapeHTML escapes s for inclusion in an HTML-like label built with
// [HTML]. Newlines become left-aligned breaks.
func EscapeHTML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		`"`, "&quot;",
		"<", "&lt;",
		">", "&gt;",
		"\n", `<br align="left"/>`,
	)
	return r.Replace(s)
}
