// wire.go — the transport envelope for xgx-status core.
//
// Layout (stable interop contract; field order and tag values must never
// change):
//
//	envelope := version(1 byte)
//	            kind(string)
//	            msgFlag(1 byte) [msg(string) if 1]
//	            entryCount(uvarint) entry*
//	            causeFlag(1 byte) [envelope if 1]
//	entry    := key(string) tag(1 byte) payload
//	string   := length(uvarint) bytes
//
// Value payloads by tag (ValueKind numeric values): nil none; string string;
// int zig-zag varint; uint uvarint; float 8 bytes little-endian IEEE 754;
// bool 1 byte; list count(uvarint) (tag payload)*; group count(uvarint)
// (key tag payload)*.
//
// Invariants:
//   - Kinds travel as their stable string identifier, never a process-local
//     discriminant.
//   - Absence of a cause is the explicit 0 flag, never inferred from
//     truncation.
//   - encode→decode→encode is byte-for-byte idempotent, including for kind
//     identifiers the decoding side does not recognize (the raw identifier
//     is retained alongside the KindUnrecognized sentinel).
//   - The foreign source error is NOT transported; only its contribution to
//     the message override survives the boundary.
package xgxstatus

import (
	"encoding/binary"
	"fmt"
	"math"
)

// wireVersion tags the envelope layout described above.
const wireVersion = 1

// wireMaxDepth bounds cause-chain and value nesting on decode. Chains are
// bounded by call-stack depth in practice; this cap only guards hostile
// input.
const wireMaxDepth = 1 << 10

// DecodeError reports structurally malformed wire input. It is the only
// failure mode in this package; unknown-but-well-formed kind identifiers
// are NOT errors (see Decode).
type DecodeError struct {
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("wire: %s (offset %d)", e.Reason, e.Offset)
}

// Encode serializes the status and its full causal chain. Encoding is total;
// a nil status encodes to nil.
func Encode(s *Status) []byte {
	if s == nil {
		return nil
	}
	return appendEnvelope(make([]byte, 0, 64), s)
}

func appendEnvelope(b []byte, s *Status) []byte {
	b = append(b, wireVersion)
	b = appendWireString(b, s.WireKind())
	if s.msgSet {
		b = append(b, 1)
		b = appendWireString(b, s.msg)
	} else {
		b = append(b, 0)
	}
	b = binary.AppendUvarint(b, uint64(len(s.entries)))
	for _, e := range s.entries {
		b = appendWireString(b, e.Key)
		b = appendWireValue(b, e.Value)
	}
	if s.cause != nil {
		b = append(b, 1)
		b = appendEnvelope(b, s.cause)
	} else {
		b = append(b, 0)
	}
	return b
}

func appendWireString(b []byte, s string) []byte {
	b = binary.AppendUvarint(b, uint64(len(s)))
	return append(b, s...)
}

func appendWireValue(b []byte, v Value) []byte {
	b = append(b, byte(v.kind))
	switch v.kind {
	case ValueNil:
	case ValueString:
		b = appendWireString(b, v.str)
	case ValueInt:
		b = binary.AppendVarint(b, v.i)
	case ValueUint:
		b = binary.AppendUvarint(b, v.u)
	case ValueFloat:
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(v.f))
	case ValueBool:
		if v.b {
			b = append(b, 1)
		} else {
			b = append(b, 0)
		}
	case ValueList:
		b = binary.AppendUvarint(b, uint64(len(v.list)))
		for _, el := range v.list {
			b = appendWireValue(b, el)
		}
	case ValueGroup:
		b = binary.AppendUvarint(b, uint64(len(v.group)))
		for _, e := range v.group {
			b = appendWireString(b, e.Key)
			b = appendWireValue(b, e.Value)
		}
	}
	return b
}

// Decode parses a wire envelope back into a Status. set is the decoder
// side's closed kind enumeration: a well-formed identifier outside the set
// decodes to KindUnrecognized with the raw identifier preserved (see
// Status.WireKind). A nil set accepts every identifier as-is.
//
// Structural problems (bad version, truncation, unknown value tag, trailing
// bytes) yield a *DecodeError and no partial Status.
func Decode(data []byte, set *KindSet) (*Status, error) {
	d := &wireDecoder{data: data}
	s, err := d.envelope(set, 0)
	if err != nil {
		return nil, err
	}
	if d.pos != len(d.data) {
		return nil, d.errorf("trailing bytes after envelope")
	}
	return s, nil
}

type wireDecoder struct {
	data []byte
	pos  int
}

func (d *wireDecoder) errorf(format string, args ...any) *DecodeError {
	return &DecodeError{Offset: d.pos, Reason: fmt.Sprintf(format, args...)}
}

func (d *wireDecoder) remaining() int { return len(d.data) - d.pos }

func (d *wireDecoder) byte() (byte, error) {
	if d.remaining() < 1 {
		return 0, d.errorf("truncated input")
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

func (d *wireDecoder) flag(what string) (bool, error) {
	b, err := d.byte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, d.errorf("invalid %s flag %#x", what, b)
	}
}

func (d *wireDecoder) uvarint() (uint64, error) {
	v, n := binary.Uvarint(d.data[d.pos:])
	if n <= 0 {
		return 0, d.errorf("malformed varint")
	}
	d.pos += n
	return v, nil
}

func (d *wireDecoder) varint() (int64, error) {
	v, n := binary.Varint(d.data[d.pos:])
	if n <= 0 {
		return 0, d.errorf("malformed varint")
	}
	d.pos += n
	return v, nil
}

func (d *wireDecoder) string() (string, error) {
	n, err := d.uvarint()
	if err != nil {
		return "", err
	}
	if n > uint64(d.remaining()) {
		return "", d.errorf("string length %d exceeds remaining %d bytes", n, d.remaining())
	}
	s := string(d.data[d.pos : d.pos+int(n)])
	d.pos += int(n)
	return s, nil
}

// count reads a sequence length and sanity-checks it against the remaining
// bytes (each element needs at least minBytes), so hostile lengths cannot
// force huge allocations.
func (d *wireDecoder) count(minBytes int) (int, error) {
	n, err := d.uvarint()
	if err != nil {
		return 0, err
	}
	if n > uint64(d.remaining()/minBytes) {
		return 0, d.errorf("sequence count %d exceeds remaining input", n)
	}
	return int(n), nil
}

func (d *wireDecoder) envelope(set *KindSet, depth int) (*Status, error) {
	if depth > wireMaxDepth {
		return nil, d.errorf("cause chain deeper than %d", wireMaxDepth)
	}
	ver, err := d.byte()
	if err != nil {
		return nil, err
	}
	if ver != wireVersion {
		return nil, d.errorf("unsupported wire version %d", ver)
	}

	id, err := d.string()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, d.errorf("empty kind identifier")
	}
	s := &Status{kind: Kind(id), entries: emptyEntries}
	if set != nil && !set.Contains(s.kind) {
		s.wireKind = id
		s.kind = KindUnrecognized
	}

	hasMsg, err := d.flag("message")
	if err != nil {
		return nil, err
	}
	if hasMsg {
		msg, err := d.string()
		if err != nil {
			return nil, err
		}
		s.msg = msg
		s.msgSet = true
	}

	n, err := d.count(2) // key length byte + value tag, minimum
	if err != nil {
		return nil, err
	}
	if n > 0 {
		s.entries = make([]Entry, 0, n)
		for range n {
			key, err := d.string()
			if err != nil {
				return nil, err
			}
			v, err := d.value(depth)
			if err != nil {
				return nil, err
			}
			s.entries = append(s.entries, Entry{Key: key, Value: v})
		}
	}

	hasCause, err := d.flag("cause")
	if err != nil {
		return nil, err
	}
	if hasCause {
		cause, err := d.envelope(set, depth+1)
		if err != nil {
			return nil, err
		}
		s.cause = cause
	}
	return s, nil
}

func (d *wireDecoder) value(depth int) (Value, error) {
	if depth > wireMaxDepth {
		return Value{}, d.errorf("value nesting deeper than %d", wireMaxDepth)
	}
	tag, err := d.byte()
	if err != nil {
		return Value{}, err
	}
	switch ValueKind(tag) {
	case ValueNil:
		return NilValue(), nil
	case ValueString:
		s, err := d.string()
		if err != nil {
			return Value{}, err
		}
		return StringValue(s), nil
	case ValueInt:
		i, err := d.varint()
		if err != nil {
			return Value{}, err
		}
		return IntValue(i), nil
	case ValueUint:
		u, err := d.uvarint()
		if err != nil {
			return Value{}, err
		}
		return UintValue(u), nil
	case ValueFloat:
		if d.remaining() < 8 {
			return Value{}, d.errorf("truncated float payload")
		}
		bits := binary.LittleEndian.Uint64(d.data[d.pos:])
		d.pos += 8
		return FloatValue(math.Float64frombits(bits)), nil
	case ValueBool:
		b, err := d.flag("bool")
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	case ValueList:
		n, err := d.count(1) // value tag, minimum
		if err != nil {
			return Value{}, err
		}
		vs := make([]Value, 0, n)
		for range n {
			el, err := d.value(depth + 1)
			if err != nil {
				return Value{}, err
			}
			vs = append(vs, el)
		}
		return Value{kind: ValueList, list: vs}, nil
	case ValueGroup:
		n, err := d.count(2)
		if err != nil {
			return Value{}, err
		}
		entries := make([]Entry, 0, n)
		for range n {
			key, err := d.string()
			if err != nil {
				return Value{}, err
			}
			v, err := d.value(depth + 1)
			if err != nil {
				return Value{}, err
			}
			entries = append(entries, Entry{Key: key, Value: v})
		}
		return Value{kind: ValueGroup, group: entries}, nil
	default:
		return Value{}, d.errorf("unknown value tag %#x", tag)
	}
}
