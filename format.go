// format.go — fmt.Formatter implementation for xgx-status core.
//
// Behavior:
//
//   %s, %v   → concise string (Error()).
//   %+v      → verbose, structured multi-line format:
//                kind=<kind> msg="<message>"
//                ctx: key1=val1 key2=val2 ...
//                source: <foreign error>
//                cause: <recursively formatted with %+v>
//                stack:
//                  funcA file.go:123
//   %q       → quoted Error().
//
// Rationale:
//   - Only fmt formatting in core; structured export belongs to adapters.
//   - Context prints in insertion order including duplicates, so %+v never
//     hides refinement history.
package xgxstatus

import (
	"fmt"
	"io"
)

var _ fmt.Formatter = (*Status)(nil)

// Format implements fmt.Formatter.
func (s *Status) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v':
		if st.Flag('+') {
			s.formatVerbose(st)
			return
		}
		_, _ = io.WriteString(st, s.Error())
	case 'q':
		_, _ = fmt.Fprintf(st, "%q", s.Error())
	default:
		_, _ = io.WriteString(st, s.Error())
	}
}

func (s *Status) formatVerbose(w io.Writer) {
	if s == nil {
		_, _ = io.WriteString(w, "<nil>")
		return
	}

	_, _ = fmt.Fprintf(w, "kind=%s", s.WireKind())
	if s.msgSet {
		_, _ = fmt.Fprintf(w, " msg=%q", s.msg)
	}

	if len(s.entries) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, e := range s.entries {
			if e.Key != "" {
				_, _ = fmt.Fprintf(w, " %s=%s", e.Key, e.Value.String())
			}
		}
	}

	if s.source != nil {
		_, _ = fmt.Fprintf(w, "\nsource: %v", s.source)
	}

	if s.cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		s.cause.formatVerbose(w)
	}

	if len(s.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range s.stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}
