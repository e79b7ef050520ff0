// render.go — localized human rendering for xgx-status core.
//
// The renderer is a pure transformation: no I/O here. Template storage and
// any blocking it needs live entirely behind the Resolver, which the caller
// passes explicitly so rendering stays deterministic and testable without
// process-wide catalog state.
//
// Degradation ladder (rendering NEVER fails and never returns ""):
//  1. literal message override → returned verbatim
//  2. resolver template for the requested locale
//  3. resolver template for the resolver's default locale
//  4. built-in generic template: kind identifier + enumerated context keys
//
// Placeholders use {key} syntax. Resolution is last-write-wins; a
// placeholder for an absent key renders the explicit marker <unknown:key>.
// Literal braces are written as {{ and }}.
package xgxstatus

import (
	"strings"

	"golang.org/x/text/language"
)

// Resolver supplies localized message templates, keyed by kind and locale.
// The catalog subpackage provides a TOML-backed implementation; applications
// may plug in any store.
type Resolver interface {
	// Lookup returns the template for (kind, locale), if one exists.
	Lookup(kind Kind, locale language.Tag) (string, bool)

	// DefaultLocale is the locale Render falls back to when the requested
	// one has no template for a kind.
	DefaultLocale() language.Tag
}

// unknownMarkerPrefix renders placeholders whose key has no context entry.
const unknownMarkerPrefix = "<unknown:"

// Render produces the human string for a status. A nil resolver degrades
// directly to the generic structural form. See the package degradation
// ladder above.
func Render(s *Status, locale language.Tag, r Resolver) string {
	if s == nil {
		return "<nil>"
	}
	if msg, ok := s.Message(); ok {
		return msg
	}
	if r != nil {
		if tmpl, ok := r.Lookup(s.Kind(), locale); ok {
			return expand(tmpl, s.Context())
		}
		if def := r.DefaultLocale(); def != locale {
			if tmpl, ok := r.Lookup(s.Kind(), def); ok {
				return expand(tmpl, s.Context())
			}
		}
	}
	return renderGeneric(s)
}

// RenderChain renders every level of the causal chain, outermost first, one
// string per status. Useful for diagnostic display of the full failure path.
func RenderChain(s *Status, locale language.Tag, r Resolver) []string {
	if s == nil {
		return nil
	}
	var out []string
	for cur := range s.Chain() {
		out = append(out, Render(cur, locale, r))
	}
	return out
}

// renderGeneric is the built-in fallback: the stable kind identifier plus
// the enumerated context keys. It guarantees rendering degrades to a
// structural dump instead of erroring.
func renderGeneric(s *Status) string {
	keys := s.Context().Keys()
	if len(keys) == 0 {
		return s.WireKind()
	}
	return s.WireKind() + " (" + strings.Join(keys, ", ") + ")"
}

// expand substitutes {key} placeholders in tmpl from ctx, last-write-wins.
func expand(tmpl string, ctx Context) string {
	var sb strings.Builder
	sb.Grow(len(tmpl))
	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				sb.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				// Unterminated placeholder: emit the rest literally.
				sb.WriteString(tmpl[i:])
				return sb.String()
			}
			key := tmpl[i+1 : i+1+end]
			if v, ok := ctx.Value(key); ok {
				sb.WriteString(v.String())
			} else {
				sb.WriteString(unknownMarkerPrefix)
				sb.WriteString(key)
				sb.WriteByte('>')
			}
			i += end + 2
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				sb.WriteByte('}')
				i += 2
				continue
			}
			sb.WriteByte('}')
			i++
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}
