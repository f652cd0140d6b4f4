package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testDoc() *Node {
	return FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("cube")},
		{Key: "count", Val: FromInt(3)},
		{Key: "scale", Val: FromFloat(1.5)},
		{Key: "visible", Val: FromBool(true)},
		{Key: "none", Val: Null()},
		{Key: "name", Val: FromString("shadowed")},
		{Key: "items", Val: FromSlice([]*Node{
			FromInt(10),
			FromKeyVals([]KeyVal{{Key: "k", Val: FromString("v")}}),
		})},
	})
}

func TestScalarAccessors(t *testing.T) {
	doc := testDoc()
	if got := doc.Member("name").AsString(); got != "cube" {
		t.Errorf("AsString = %q, want first match cube", got)
	}
	if got := doc.Member("count").AsInt(); got != 3 {
		t.Errorf("AsInt = %d", got)
	}
	if got := doc.Member("scale").AsFloat(); got != 1.5 {
		t.Errorf("AsFloat = %v", got)
	}
	if got := doc.Member("visible").AsBool(); !got {
		t.Errorf("AsBool = false")
	}
	if got := doc.Member("count").AsNumber(); got != 3 {
		t.Errorf("AsNumber(Integer) = %v", got)
	}
	if got := doc.Member("scale").AsNumber(); got != 1.5 {
		t.Errorf("AsNumber(Floating) = %v", got)
	}
}

func TestScalarAccessorsZeroOnMismatch(t *testing.T) {
	nodes := []*Node{nil, Null(), FromBool(true), FromString("x"), FromInt(7), FromFloat(2.5), FromSlice(nil), accessErr(TypeMismatch)}
	for _, n := range nodes {
		if n != nil && n.Type == StringType {
			continue
		}
		if n.AsString() != "" {
			t.Errorf("AsString on %v not empty", n)
		}
	}
	if FromInt(7).AsFloat() != 0 {
		t.Errorf("AsFloat on Integer should be 0")
	}
	if FromFloat(2.5).AsInt() != 0 {
		t.Errorf("AsInt on Floating should be 0")
	}
	if FromString("true").AsBool() {
		t.Errorf("AsBool on String should be false")
	}
	if FromString("1").AsNumber() != 0 {
		t.Errorf("AsNumber on String should be 0")
	}
	var nilNode *Node
	if nilNode.AsInt() != 0 || nilNode.AsBool() || nilNode.AsNumber() != 0 || nilNode.Len() != 0 {
		t.Errorf("nil node accessors should yield zero values")
	}
}

func TestMember(t *testing.T) {
	doc := testDoc()
	for _, n := range []*Node{FromInt(1), FromString("a"), FromSlice(nil), Null(), FromBool(false), accessErr(PropertyNotFound), nil} {
		got := n.Member("a")
		if !errors.Is(got.Err(), ErrTypeMismatch) {
			t.Errorf("Member on %v: %v, want type mismatch", n, got.Err())
		}
	}
	got := doc.Member("missing")
	if !errors.Is(got.Err(), ErrPropertyNotFound) {
		t.Errorf("missing member: %v", got.Err())
	}
	if got.Error.Line != 0 || got.Error.Column != 0 {
		t.Errorf("accessor errors carry no position: %+v", got.Error)
	}
	if got := doc.Member("none"); got.Type != NullType {
		t.Errorf("none is %s", got.Type)
	}
}

func TestElement(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(0), FromInt(1), FromInt(2)})
	for i := range 3 {
		if got := arr.Element(i).AsInt(); got != int32(i) {
			t.Errorf("Element(%d) = %d", i, got)
		}
	}
	for _, i := range []int{3, 4, 100, -1} {
		if got := arr.Element(i); !errors.Is(got.Err(), ErrArrayOutOfBounds) {
			t.Errorf("Element(%d): %v", i, got.Err())
		}
	}
	for _, n := range []*Node{FromInt(1), testDoc(), Null(), accessErr(ArrayOutOfBounds)} {
		if got := n.Element(0); !errors.Is(got.Err(), ErrTypeMismatch) {
			t.Errorf("Element on %s: %v", n.Type, got.Err())
		}
	}
}

func TestChainShortCircuits(t *testing.T) {
	doc := testDoc()
	got := doc.Member("missing").Member("a").Element(0)
	if !errors.Is(got.Err(), ErrTypeMismatch) {
		t.Errorf("chain result: %v", got.Err())
	}
	if got := doc.Member("items").Element(1).Member("k").AsString(); got != "v" {
		t.Errorf("chain value %q", got)
	}
}

func TestResolve(t *testing.T) {
	doc := testDoc()
	tests := []struct {
		path string
		want *Node
		err  error
	}{
		{path: "", want: doc},
		{path: "count", want: FromInt(3)},
		{path: "/items[0]", want: FromInt(10)},
		{path: "items[1]/k", want: FromString("v")},
		{path: "items[2]", err: ErrArrayOutOfBounds},
		{path: "nope", err: ErrPropertyNotFound},
		{path: "nope/deeper[0]", err: ErrTypeMismatch},
		{path: "count[0]", err: ErrTypeMismatch},
		{path: "items[x]", err: ErrInvalidPath},
		{path: "items[0", err: ErrInvalidPath},
	}
	for _, tt := range tests {
		got := doc.Resolve(tt.path)
		if tt.err != nil {
			if !errors.Is(got.Err(), tt.err) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.path, got.Err(), tt.err)
			}
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Resolve(%q) mismatch (-want +got):\n%s", tt.path, diff)
		}
	}
}

func TestKeysAndLen(t *testing.T) {
	doc := testDoc()
	want := []string{"name", "count", "scale", "visible", "none", "name", "items"}
	if diff := cmp.Diff(want, doc.Keys()); diff != "" {
		t.Errorf("Keys mismatch:\n%s", diff)
	}
	if doc.Len() != 7 {
		t.Errorf("Len = %d", doc.Len())
	}
	if FromString("abc").Len() != 0 {
		t.Errorf("Len of string should be 0")
	}
	if FromInt(1).Keys() != nil {
		t.Errorf("Keys of integer should be nil")
	}
}

func TestClone(t *testing.T) {
	doc := testDoc()
	c := doc.Clone()
	if diff := cmp.Diff(doc, c); diff != "" {
		t.Fatalf("clone differs:\n%s", diff)
	}
	c.Values[0].String = "changed"
	if doc.Values[0].String != "cube" {
		t.Errorf("clone shares storage with original")
	}
}

func TestToAny(t *testing.T) {
	got := testDoc().ToAny()
	want := map[string]any{
		"name":    "cube",
		"count":   int64(3),
		"scale":   float64(1.5),
		"visible": true,
		"none":    nil,
		"items":   []any{int64(10), map[string]any{"k": "v"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
}

func TestFirstError(t *testing.T) {
	doc := FromSlice([]*Node{
		FromInt(1),
		FromKeyVals([]KeyVal{{Key: "a", Val: FromError(MissingColon, 2, 5)}}),
		FromError(InvalidValue, 3, 1),
	})
	err := FirstError(doc)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("FirstError = %v", err)
	}
	if e.Kind != MissingColon || e.Line != 2 || e.Column != 5 {
		t.Errorf("FirstError = %+v", e)
	}
	if err.Error() != "missing colon at 2:5" {
		t.Errorf("message %q", err.Error())
	}
	if FirstError(testDoc()) != nil {
		t.Errorf("clean document reported an error")
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s round tripped to %s", typ, back)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("Number")); err == nil {
		t.Errorf("expected error for unknown type name")
	}
}

func TestErrorKindStrings(t *testing.T) {
	if ErrorKind(99).String() != "unknown error" {
		t.Errorf("unknown kind %q", ErrorKind(99).String())
	}
	if !errors.Is(FromError(NestingTooDeep, 1, 2).Err(), ErrNestingTooDeep) {
		t.Errorf("sentinel not matched")
	}
}
