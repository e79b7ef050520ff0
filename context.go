// context.go — ordered, append-only context for xgx-status core.
//
// Design:
//   • Internal representation: append-only []Entry (deterministic order).
//   • Append only; entries are never deleted or mutated in place once added.
//     Duplicate keys are successive refinements from different frames, not
//     replacements.
//   • "One value per key" is an EXPLICIT operation (Context.Value) with
//     last-write-wins semantics, never the implicit iteration default, so
//     diagnostic history is never silently hidden.
//   • Public views (Entries, Map, Keys) are copy-on-read.
//
// Rationale:
//   • Go map iteration order is unspecified; a slice preserves insertion
//     order, which is significant for rendering and for the wire form.
package xgxstatus

// Entry is a single contextual key-value pair attached to a status.
// Keys SHOULD be short stable snake_case tokens; the core does not enforce it.
type Entry struct {
	Key   string
	Value Value
}

// emptyEntries is the canonical empty context.
var emptyEntries = make([]Entry, 0)

// Context is a read-only ordered view over a status's context entries.
// It is valid for as long as the owning Status is treated as read-only.
type Context struct {
	entries []Entry
}

// Len returns the number of entries, counting duplicates.
func (c Context) Len() int { return len(c.entries) }

// Entries returns a defensive copy of all entries in insertion order,
// including every duplicate key.
func (c Context) Entries() []Entry {
	if len(c.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Value resolves a single value for key with last-write-wins semantics:
// the most recently appended entry for the key wins. The full history stays
// reachable via Entries and Values.
func (c Context) Value(key string) (Value, bool) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].Key == key {
			return c.entries[i].Value, true
		}
	}
	return Value{}, false
}

// Values returns every value recorded for key, oldest first.
func (c Context) Values(key string) []Value {
	var out []Value
	for _, e := range c.entries {
		if e.Key == key {
			out = append(out, e.Value)
		}
	}
	return out
}

// Keys returns the distinct keys in first-appearance order.
func (c Context) Keys() []string {
	if len(c.entries) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(c.entries))
	out := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		if _, dup := seen[e.Key]; dup {
			continue
		}
		seen[e.Key] = struct{}{}
		out = append(out, e.Key)
	}
	return out
}

// Map returns a NEW map built from the entries (copy-on-read). Later
// duplicate keys overwrite earlier ones (last-write-wins). Use Entries when
// order or history matters.
func (c Context) Map() map[string]Value {
	if len(c.entries) == 0 {
		return nil
	}
	m := make(map[string]Value, len(c.entries))
	for _, e := range c.entries {
		m[e.Key] = e.Value
	}
	return m
}
