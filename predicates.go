// predicates.go — minimal, stdlib-aligned predicates for xgx-status core.
//
// Scope:
//   • Zero-policy helpers that answer common classification questions over
//     ARBITRARY error values, not just *Status.
//   • Interop-first: use errors.As / errors.Unwrap so traversal works through
//     foreign wrappers (fmt.Errorf %w and friends) as well as Status chains.
//
// Out of scope (by design):
//   • HTTP/status mapping, retry policy, logging.
package xgxstatus

import "errors"

// KindOf returns the kind of the first Status found along err's unwrap
// chain, or "" if none.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var s *Status
	if errors.As(err, &s) {
		return s.Kind()
	}
	return ""
}

// HasKind reports whether any Status in err's unwrap chain carries the
// given kind.
func HasKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		if s, ok := cur.(*Status); ok && s.Kind() == kind {
			return true
		}
	}
	return false
}

// IsUnrecognized reports whether err's outermost Status carries the
// decoder's unrecognized-kind sentinel.
func IsUnrecognized(err error) bool {
	return KindOf(err) == KindUnrecognized
}

// RootCause returns the deepest error in err's unwrap chain (the original
// failure), or nil for a nil input. For a pure Status chain this is the
// innermost status's source if it has one, else the innermost status itself.
func RootCause(err error) error {
	if err == nil {
		return nil
	}
	cur := err
	for {
		next := errors.Unwrap(cur)
		if next == nil {
			return cur
		}
		cur = next
	}
}
