// kind.go — classification kinds for xgx-status core.
//
// Intent:
//   - Kinds are defined by the consuming application, not by this package.
//   - The string itself is the stable cross-process identifier; two binaries
//     built from the same kind set agree on equality without sharing enum
//     discriminants.
//   - Core reserves exactly one identifier: "unrecognized", produced by the
//     wire decoder for well-formed identifiers outside the local KindSet.
//
// Conventions (documented, not enforced here):
//   - Identifiers are lowercase snake_case ASCII.
//   - Avoid the empty string; it is never a valid kind.
//   - Identifiers must stay stable across versions to preserve wire
//     compatibility.
package xgxstatus

// Kind programmatically identifies which category of failure occurred.
// It carries no per-instance data; everything runtime-specific belongs in
// the status Context.
type Kind string

// KindUnrecognized is the reserved sentinel a decoder substitutes for a
// well-formed kind identifier it does not know. It is never enrolled in a
// KindSet and should never be used as a producer-side kind.
const KindUnrecognized Kind = "unrecognized"

// KindSet is the closed enumeration of kinds one side of a wire boundary
// understands. It is immutable after construction.
type KindSet struct {
	ordered []Kind
	members map[Kind]struct{}
}

// NewKindSet builds a set from the given kinds. Duplicates collapse to the
// first occurrence; the empty kind and the KindUnrecognized sentinel are
// silently skipped (the sentinel is reserved for decoder output).
func NewKindSet(kinds ...Kind) *KindSet {
	s := &KindSet{
		ordered: make([]Kind, 0, len(kinds)),
		members: make(map[Kind]struct{}, len(kinds)),
	}
	for _, k := range kinds {
		if k == "" || k == KindUnrecognized {
			continue
		}
		if _, dup := s.members[k]; dup {
			continue
		}
		s.members[k] = struct{}{}
		s.ordered = append(s.ordered, k)
	}
	return s
}

// Contains reports whether k is enrolled in the set. A nil set contains
// nothing.
func (s *KindSet) Contains(k Kind) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[k]
	return ok
}

// Len returns the number of enrolled kinds.
func (s *KindSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ordered)
}

// Kinds returns a defensive copy of the enrolled kinds in enrollment order.
func (s *KindSet) Kinds() []Kind {
	if s == nil {
		return nil
	}
	out := make([]Kind, len(s.ordered))
	copy(out, s.ordered)
	return out
}
