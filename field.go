// field.go — optional, type-safe context field helpers.
//
// Overview
//   TypedField is a convenience layer for attaching and reading
//   strongly-typed context entries. It does not replace the plain
//   With/Context API — it complements it for must-keep fields (request ids,
//   tenants) that several layers read back.
//
// Usage
//   var (
//       FPath    = xgxstatus.NewField[string]("path")
//       FAttempt = xgxstatus.NewField[int64]("attempt")
//   )
//
//   st := FPath.Set(xgxstatus.New(KindNotFound), "/etc/x")
//   p, ok := FPath.Get(st) // "/etc/x", true
//
// Caveats
//   • Get requires the stored value's wire type to match T exactly; no
//     implicit conversions (an int entry is never read back as a uint).
//   • Reads resolve last-write-wins, like Context.Value.
package xgxstatus

// FieldType is the set of scalar Go types a TypedField can carry. It mirrors
// the scalar half of the wire value union.
type FieldType interface {
	string | int64 | uint64 | float64 | bool
}

// TypedField is a zero-policy helper binding a context key to a scalar type.
type TypedField[T FieldType] struct {
	key string
}

// NewField constructs a TypedField[T] for a given key. Keys SHOULD be
// snake_case for consistency across catalogs and logs.
func NewField[T FieldType](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

// Key returns the underlying context key.
func (f TypedField[T]) Key() string { return f.key }

// Set appends the typed value to the status context.
func (f TypedField[T]) Set(s *Status, v T) *Status {
	return s.With(f.key, scalarValue(v))
}

// Get resolves the field with last-write-wins semantics. It reports false
// when the key is absent or the stored value's type does not match T.
func (f TypedField[T]) Get(s *Status) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	v, ok := s.Context().Value(f.key)
	if !ok {
		return zero, false
	}
	switch any(zero).(type) {
	case string:
		if sv, ok := v.AsString(); ok {
			return any(sv).(T), true
		}
	case int64:
		if iv, ok := v.AsInt(); ok {
			return any(iv).(T), true
		}
	case uint64:
		if uv, ok := v.AsUint(); ok {
			return any(uv).(T), true
		}
	case float64:
		if fv, ok := v.AsFloat(); ok {
			return any(fv).(T), true
		}
	case bool:
		if bv, ok := v.AsBool(); ok {
			return any(bv).(T), true
		}
	}
	return zero, false
}

func scalarValue(v any) Value {
	switch x := v.(type) {
	case string:
		return StringValue(x)
	case int64:
		return IntValue(x)
	case uint64:
		return UintValue(x)
	case float64:
		return FloatValue(x)
	case bool:
		return BoolValue(x)
	default:
		return NilValue()
	}
}
