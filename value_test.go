// value_test.go — the closed value union: constructors, accessors, equality.
package xgxstatus

import "testing"

func TestValue_TagAndAccessorAgreement(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    Value
		kind ValueKind
	}{
		{"nil", NilValue(), ValueNil},
		{"string", StringValue("x"), ValueString},
		{"int", IntValue(-7), ValueInt},
		{"uint", UintValue(7), ValueUint},
		{"float", FloatValue(2.5), ValueFloat},
		{"bool", BoolValue(true), ValueBool},
		{"list", ListValue(IntValue(1)), ValueList},
		{"group", GroupValue(Entry{Key: "k", Value: IntValue(1)}), ValueGroup},
	}
	for _, tc := range cases {
		if tc.v.Kind() != tc.kind {
			t.Fatalf("%s: kind=%v want %v", tc.name, tc.v.Kind(), tc.kind)
		}
	}

	if s, ok := StringValue("x").AsString(); !ok || s != "x" {
		t.Fatal("AsString broken")
	}
	if i, ok := IntValue(-7).AsInt(); !ok || i != -7 {
		t.Fatal("AsInt broken")
	}
	if u, ok := UintValue(7).AsUint(); !ok || u != 7 {
		t.Fatal("AsUint broken")
	}
	if f, ok := FloatValue(2.5).AsFloat(); !ok || f != 2.5 {
		t.Fatal("AsFloat broken")
	}
	if b, ok := BoolValue(true).AsBool(); !ok || !b {
		t.Fatal("AsBool broken")
	}

	// Cross-type access must fail, never convert.
	if _, ok := IntValue(3).AsUint(); ok {
		t.Fatal("an int must not read back as a uint")
	}
	if _, ok := StringValue("3").AsInt(); ok {
		t.Fatal("a string must not read back as an int")
	}
}

func TestValue_ZeroValueIsNil(t *testing.T) {
	t.Parallel()

	var v Value
	if !v.IsNil() || v.Kind() != ValueNil {
		t.Fatalf("zero Value should be nil, got %v", v.Kind())
	}
}

func TestValue_EqualIsStructuralAndRecursive(t *testing.T) {
	t.Parallel()

	nested := GroupValue(
		Entry{Key: "issues", Value: ListValue(StringValue("a"), StringValue("b"))},
		Entry{Key: "count", Value: IntValue(2)},
	)
	same := GroupValue(
		Entry{Key: "issues", Value: ListValue(StringValue("a"), StringValue("b"))},
		Entry{Key: "count", Value: IntValue(2)},
	)
	different := GroupValue(
		Entry{Key: "issues", Value: ListValue(StringValue("a"), StringValue("X"))},
		Entry{Key: "count", Value: IntValue(2)},
	)

	if !nested.Equal(same) {
		t.Fatal("structurally identical groups must be equal")
	}
	if nested.Equal(different) {
		t.Fatal("differing nested element must break equality")
	}
	if IntValue(1).Equal(UintValue(1)) {
		t.Fatal("equality must not cross the type union")
	}
}

func TestValue_ListAndGroupAccessorsCopy(t *testing.T) {
	t.Parallel()

	v := ListValue(IntValue(1), IntValue(2))
	els, ok := v.AsList()
	if !ok || len(els) != 2 {
		t.Fatalf("AsList broken: ok=%v len=%d", ok, len(els))
	}
	els[0] = IntValue(99)
	again, _ := v.AsList()
	if !again[0].Equal(IntValue(1)) {
		t.Fatal("AsList must return a defensive copy")
	}
}

func TestValue_StringRendering(t *testing.T) {
	t.Parallel()

	cases := []struct {
		v    Value
		want string
	}{
		{NilValue(), "<nil>"},
		{StringValue("/etc/x"), "/etc/x"},
		{IntValue(-3), "-3"},
		{UintValue(3), "3"},
		{FloatValue(1.5), "1.5"},
		{BoolValue(false), "false"},
		{ListValue(IntValue(1), StringValue("a")), "[1 a]"},
		{GroupValue(Entry{Key: "n", Value: IntValue(1)}), "{n=1}"},
	}
	for _, tc := range cases {
		if got := tc.v.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}
}
