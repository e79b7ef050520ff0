// value.go — the closed context value union for xgx-status core.
//
// Design:
//   • Values are a small tagged union rather than `any`: the wire form must
//     round-trip every value without lowering fidelity (an int64 never comes
//     back as a string), so the set of representable types is closed and each
//     carries a self-describing tag.
//   • List and Group cover nested structured values. A Group is an ordered
//     sequence of entries, NOT a map, so nested structure keeps deterministic
//     order too.
//   • Value is an immutable value type; accessors on List/Group return
//     defensive copies.
package xgxstatus

import (
	"strconv"
	"strings"
)

// ValueKind tags the dynamic type of a Value. The numeric values double as
// the wire type tags, so their order is part of the interop contract and
// must never change.
type ValueKind uint8

const (
	ValueNil ValueKind = iota
	ValueString
	ValueInt
	ValueUint
	ValueFloat
	ValueBool
	ValueList
	ValueGroup
)

// String returns the tag's stable lowercase name.
func (k ValueKind) String() string {
	switch k {
	case ValueNil:
		return "nil"
	case ValueString:
		return "string"
	case ValueInt:
		return "int"
	case ValueUint:
		return "uint"
	case ValueFloat:
		return "float"
	case ValueBool:
		return "bool"
	case ValueList:
		return "list"
	case ValueGroup:
		return "group"
	default:
		return "invalid"
	}
}

// Value is one context value. The zero Value is the nil value.
type Value struct {
	kind  ValueKind
	str   string
	i     int64
	u     uint64
	f     float64
	b     bool
	list  []Value
	group []Entry
}

// NilValue returns the explicit nil value.
func NilValue() Value { return Value{} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: ValueString, str: s} }

// IntValue wraps a signed integer.
func IntValue(i int64) Value { return Value{kind: ValueInt, i: i} }

// UintValue wraps an unsigned integer.
func UintValue(u uint64) Value { return Value{kind: ValueUint, u: u} }

// FloatValue wraps a float.
func FloatValue(f float64) Value { return Value{kind: ValueFloat, f: f} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{kind: ValueBool, b: b} }

// ListValue wraps an ordered sequence of values. The input is copied.
func ListValue(vs ...Value) Value {
	copied := make([]Value, len(vs))
	copy(copied, vs)
	return Value{kind: ValueList, list: copied}
}

// GroupValue wraps an ordered sequence of entries (nested structure).
// The input is copied.
func GroupValue(entries ...Entry) Value {
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return Value{kind: ValueGroup, group: copied}
}

// Kind returns the value's type tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsNil reports whether v is the nil value.
func (v Value) IsNil() bool { return v.kind == ValueNil }

// AsString returns the string payload if v is a string.
func (v Value) AsString() (string, bool) { return v.str, v.kind == ValueString }

// AsInt returns the signed integer payload if v is an int.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == ValueInt }

// AsUint returns the unsigned integer payload if v is a uint.
func (v Value) AsUint() (uint64, bool) { return v.u, v.kind == ValueUint }

// AsFloat returns the float payload if v is a float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == ValueFloat }

// AsBool returns the bool payload if v is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == ValueBool }

// AsList returns a copy of the element values if v is a list.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != ValueList {
		return nil, false
	}
	out := make([]Value, len(v.list))
	copy(out, v.list)
	return out, true
}

// AsGroup returns a copy of the nested entries if v is a group.
func (v Value) AsGroup() ([]Entry, bool) {
	if v.kind != ValueGroup {
		return nil, false
	}
	out := make([]Entry, len(v.group))
	copy(out, v.group)
	return out, true
}

// Equal reports structural equality, recursing into lists and groups.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueNil:
		return true
	case ValueString:
		return v.str == o.str
	case ValueInt:
		return v.i == o.i
	case ValueUint:
		return v.u == o.u
	case ValueFloat:
		return v.f == o.f
	case ValueBool:
		return v.b == o.b
	case ValueList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case ValueGroup:
		if len(v.group) != len(o.group) {
			return false
		}
		for i := range v.group {
			if v.group[i].Key != o.group[i].Key || !v.group[i].Value.Equal(o.group[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the value for display and template substitution.
// Scalars print their natural form; nil prints "<nil>"; lists and groups
// print bracketed, space-separated forms.
func (v Value) String() string {
	switch v.kind {
	case ValueNil:
		return "<nil>"
	case ValueString:
		return v.str
	case ValueInt:
		return strconv.FormatInt(v.i, 10)
	case ValueUint:
		return strconv.FormatUint(v.u, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case ValueBool:
		return strconv.FormatBool(v.b)
	case ValueList:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, el := range v.list {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(el.String())
		}
		sb.WriteByte(']')
		return sb.String()
	case ValueGroup:
		var sb strings.Builder
		sb.WriteByte('{')
		for i, e := range v.group {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(e.Key)
			sb.WriteByte('=')
			sb.WriteString(e.Value.String())
		}
		sb.WriteByte('}')
		return sb.String()
	default:
		return "<invalid>"
	}
}
