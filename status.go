// status.go — the Status container for xgx-status core.
//
// Scope (tiny core):
//   - One concrete type carrying kind + context + optional literal message +
//     optional cause chain + optional foreign source error.
//   - Fluent builders MUTATE the receiver and return it: a Status has exactly
//     one owner while it unwinds the call stack, and append stays O(1)
//     amortized. Once published (rendered, encoded, logged, or attached as a
//     cause) the value is read-only by contract; the package provides no
//     synchronized mutation.
//   - All constructors and builders are total; nothing here fails.
//
// Interop:
//   - Status implements error; Unwrap exposes the cause (or, failing that,
//     the foreign source) so errors.Is/As traverse the full chain.
package xgxstatus

import "iter"

// Status is the aggregate unit of failure reporting, used in place of a raw
// error value in ordinary result channels.
type Status struct {
	kind     Kind
	wireKind string // raw wire identifier, set only when kind is KindUnrecognized
	entries  []Entry
	msg      string
	msgSet   bool
	cause    *Status
	source   error
	stk      Stack
}

var _ error = (*Status)(nil)

// New creates a Status for the given kind with empty context, no cause, and
// no message override. It never fails.
func New(kind Kind) *Status {
	return &Status{kind: kind, entries: emptyEntries}
}

// Wrap re-classifies a prior status: it constructs a new Status with its own
// independent (empty) context whose cause is exactly cause. Ownership of
// cause moves into the new status; callers must not append to it afterwards.
// A nil cause yields a plain New(kind).
func Wrap(kind Kind, cause *Status) *Status {
	return &Status{kind: kind, entries: emptyEntries, cause: cause}
}

// FromError adapts a foreign error into a Status. The error's text becomes
// the literal message override (rendering skips localization for it) and the
// error itself is retained as the source so errors.Is/As keep traversing
// into it. A nil err yields a plain New(kind).
func FromError(kind Kind, err error) *Status {
	s := New(kind)
	if err != nil {
		s.msg = err.Error()
		s.msgSet = true
		s.source = err
	}
	return s
}

// With appends one context entry. All previous entries are preserved;
// duplicate keys are allowed and represent refinements (see Context.Value
// for last-write-wins resolution). Returns the receiver for chaining.
func (s *Status) With(key string, v Value) *Status {
	if s == nil {
		return nil
	}
	if len(s.entries) == 0 {
		s.entries = make([]Entry, 0, 4)
	}
	s.entries = append(s.entries, Entry{Key: key, Value: v})
	return s
}

// WithString appends a string entry.
func (s *Status) WithString(key, v string) *Status { return s.With(key, StringValue(v)) }

// WithInt appends a signed integer entry.
func (s *Status) WithInt(key string, v int64) *Status { return s.With(key, IntValue(v)) }

// WithUint appends an unsigned integer entry.
func (s *Status) WithUint(key string, v uint64) *Status { return s.With(key, UintValue(v)) }

// WithFloat appends a float entry.
func (s *Status) WithFloat(key string, v float64) *Status { return s.With(key, FloatValue(v)) }

// WithBool appends a bool entry.
func (s *Status) WithBool(key string, v bool) *Status { return s.With(key, BoolValue(v)) }

// WithMessage sets (or overrides) the literal message. Rendering returns it
// verbatim, bypassing localization and substitution. Context is NOT cleared:
// entries stay available for programmatic inspection and still travel on the
// wire.
func (s *Status) WithMessage(text string) *Status {
	if s == nil {
		return nil
	}
	s.msg = text
	s.msgSet = true
	return s
}

// WithSource attaches a foreign error as the status's source. The source is
// exposed via Unwrap when no Status cause is present; it is diagnostic only
// and is not transported by the wire codec.
func (s *Status) WithSource(err error) *Status {
	if s == nil {
		return nil
	}
	s.source = err
	return s
}

// Kind returns the classification. For a status decoded with an identifier
// outside the decoder's KindSet this is KindUnrecognized; see WireKind.
func (s *Status) Kind() Kind { return s.kind }

// WireKind returns the stable identifier the wire codec transports for this
// status. It differs from Kind() only for decoded-unrecognized statuses,
// where it preserves the producer's original identifier.
func (s *Status) WireKind() string {
	if s.wireKind != "" {
		return s.wireKind
	}
	return string(s.kind)
}

// Context returns the ordered, read-only context view.
func (s *Status) Context() Context {
	if s == nil {
		return Context{}
	}
	return Context{entries: s.entries}
}

// Message returns the literal message override, if one is set.
func (s *Status) Message() (string, bool) { return s.msg, s.msgSet }

// Cause returns the wrapped prior status, or nil.
func (s *Status) Cause() *Status { return s.cause }

// Source returns the attached foreign error, or nil.
func (s *Status) Source() error { return s.source }

// Chain returns a lazy, restartable sequence over the causal chain from this
// status (outermost) to the innermost cause. The chain is finite and acyclic
// by construction: a cause must exist before the wrapping status is built.
func (s *Status) Chain() iter.Seq[*Status] {
	return func(yield func(*Status) bool) {
		for cur := s; cur != nil; cur = cur.cause {
			if !yield(cur) {
				return
			}
		}
	}
}

// Root returns the innermost status of the causal chain (the original
// failure site). A status with no cause is its own root.
func (s *Status) Root() *Status {
	if s == nil {
		return nil
	}
	cur := s
	for cur.cause != nil {
		cur = cur.cause
	}
	return cur
}

// Error implements the error interface with a concise, dev-facing string.
// User-facing text goes through Render; machine branching goes through Kind.
func (s *Status) Error() string {
	if s == nil {
		return "<nil>"
	}
	if s.msgSet && s.msg != "" {
		return string(s.kind) + ": " + s.msg
	}
	if s.kind != "" {
		return string(s.kind)
	}
	return "status"
}

// Unwrap exposes the cause for errors.Is/As traversal. When there is no
// Status cause, it falls through to the foreign source (if any).
func (s *Status) Unwrap() error {
	if s == nil {
		return nil
	}
	if s.cause != nil {
		return s.cause
	}
	return s.source
}

// WithStack captures the calling stack for %+v diagnostics. Capture is
// opt-in; constructors stay cheap.
func (s *Status) WithStack() *Status {
	return s.WithStackSkip(1) // skip this method
}

// WithStackSkip is WithStack with additional frames skipped, for helper
// wrappers.
func (s *Status) WithStackSkip(skip int) *Status {
	if s == nil {
		return nil
	}
	s.stk = captureStack(skip + 1)
	return s
}
