package parse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/go-jdoc/ir"
	"github.com/signadot/tony-format/go-jdoc/token"
)

type parseTest struct {
	in   string
	want any
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `{}`, want: map[string]any{}},
		{in: `[]`, want: []any{}},
		{in: "{ \n }", want: map[string]any{}},
		{in: "[\t]", want: []any{}},
		{
			in:   `{"a":1,"b":2}`,
			want: map[string]any{"a": int64(1), "b": int64(2)},
		},
		{
			in:   `{"a":1,"b":2,}`,
			want: map[string]any{"a": int64(1), "b": int64(2)},
		},
		{
			in:   `{"a":1 }`,
			want: map[string]any{"a": int64(1)},
		},
		{in: `[1,2,]`, want: []any{int64(1), int64(2)}},
		{in: `[1 2]`, want: []any{int64(1), int64(2)}},
		{
			in:   `[true, false, null, "s"]`,
			want: []any{true, false, nil, "s"},
		},
		{
			in:   `[0, -7, 3.25, -0.5]`,
			want: []any{int64(0), int64(-7), float64(3.25), float64(-0.5)},
		},
		{
			in: `{
  "name": "cube",
  "children": [{"k": []}, [[]]],
  "empty": {}
}`,
			want: map[string]any{
				"name":     "cube",
				"children": []any{map[string]any{"k": []any{}}, []any{[]any{}}},
				"empty":    map[string]any{},
			},
		},
		{
			in:   `{"a":1,"a":2}`,
			want: map[string]any{"a": int64(1)},
		},
		{
			in:   `{"a":"}]{["}`,
			want: map[string]any{"a": "}]{["},
		},
	}
	for i := range pts {
		pt := &pts[i]
		node := Parse([]byte(pt.in))
		if err := ir.FirstError(node); err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		if diff := cmp.Diff(pt.want, node.ToAny()); diff != "" {
			t.Errorf("# doc\n%s\n(-want +got):\n%s", pt.in, diff)
		}
	}
}

func TestParseOrder(t *testing.T) {
	obj := Parse([]byte(`{"a":1,"b":2}`))
	if obj.Type != ir.ObjectType || obj.Len() != 2 {
		t.Fatalf("got %s with %d members", obj.Type, obj.Len())
	}
	if diff := cmp.Diff([]string{"a", "b"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if a, b := obj.Values[0].AsInt(), obj.Values[1].AsInt(); a != 1 || b != 2 {
		t.Errorf("values %d %d, want 1 2", a, b)
	}

	dup := Parse([]byte(`{"z":0,"a":1,"z":2}`))
	if diff := cmp.Diff([]string{"z", "a", "z"}, dup.Keys()); diff != "" {
		t.Errorf("duplicate keys (-want +got):\n%s", diff)
	}
	if got := dup.Member("z").AsInt(); got != 0 {
		t.Errorf("duplicate key lookup got %d, want first match 0", got)
	}

	arr := Parse([]byte(`[3, "x", 1.5, [2], true]`))
	if arr.Len() != 5 {
		t.Fatalf("got %d elements", arr.Len())
	}
	types := make([]ir.Type, arr.Len())
	for i := range types {
		types[i] = arr.Element(i).Type
	}
	want := []ir.Type{ir.IntegerType, ir.StringType, ir.FloatingType, ir.ArrayType, ir.BoolType}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Errorf("element types (-want +got):\n%s", diff)
	}
	if arr.Element(0).AsInt() != 3 || arr.Element(1).AsString() != "x" || arr.Element(3).Element(0).AsInt() != 2 {
		t.Errorf("elements out of order: %v", arr.ToAny())
	}
}

type badParseTest struct {
	in   string
	kind ir.ErrorKind
	line int
	col  int
}

func TestBadParse(t *testing.T) {
	bts := []badParseTest{
		{in: ``, kind: ir.InvalidValue, line: 1, col: 1},
		{in: `42`, kind: ir.InvalidValue, line: 1, col: 1},
		{in: `  "a"`, kind: ir.InvalidValue, line: 1, col: 3},
		{in: "\n\n  true", kind: ir.InvalidValue, line: 3, col: 3},
		{in: `{"a" 1}`, kind: ir.MissingColon, line: 1, col: 6},
		{in: "{\n  \"a\"\n  1}", kind: ir.MissingColon, line: 3, col: 3},
		{in: `{"a":1 "b":2}`, kind: ir.MissingComma, line: 1, col: 8},
		{in: `{a:1}`, kind: ir.InvalidValue, line: 1, col: 2},
		{in: `{"a":}`, kind: ir.InvalidValue, line: 1, col: 6},
		{in: `[1,@]`, kind: ir.InvalidValue, line: 1, col: 4},
		{in: "[\"x\ny\", @]", kind: ir.InvalidValue, line: 2, col: 5},
		{in: `{"a":`, kind: ir.UnexpectedEnd, line: 1, col: 6},
		{in: `{"a`, kind: ir.UnexpectedEnd, line: 1, col: 4},
		{in: `[1,`, kind: ir.UnexpectedEnd, line: 1, col: 4},
		{in: `{`, kind: ir.UnexpectedEnd, line: 1, col: 2},
	}
	for i := range bts {
		bt := &bts[i]
		node := Parse([]byte(bt.in))
		if node.Type != ir.ErrorType {
			t.Errorf("# doc\n%s\n# expected error, got %s", bt.in, node.Type)
			continue
		}
		want := &ir.Error{Kind: bt.kind, Line: bt.line, Column: bt.col}
		if diff := cmp.Diff(want, node.Error); diff != "" {
			t.Errorf("# doc\n%s\n(-want +got):\n%s", bt.in, diff)
		}
		if !errors.Is(node.Err(), bt.kind.Sentinel()) {
			t.Errorf("# doc\n%s\nerror %v does not match %v", bt.in, node.Err(), bt.kind)
		}
	}
}

func TestNestedErrorKeepsSiblings(t *testing.T) {
	node := Parse([]byte(`{"a":{"b" 1},"c":2}`))
	if node.Type != ir.ObjectType {
		t.Fatalf("got %s, want object", node.Type)
	}
	a := node.Member("a")
	if !a.IsError() || a.Error.Kind != ir.MissingColon {
		t.Errorf("a: got %v", a.ToAny())
	}
	if a.Error.Line != 1 || a.Error.Column != 11 {
		t.Errorf("a: got position %d:%d, want 1:11", a.Error.Line, a.Error.Column)
	}
	if got := node.Member("c").AsInt(); got != 2 {
		t.Errorf("c: got %d, want 2", got)
	}

	node = Parse([]byte(`{"a":{"b" "}"},"c":true}`))
	if !node.Member("c").AsBool() {
		t.Errorf("brackets in strings broke resync: %v", node.ToAny())
	}

	node = Parse([]byte(`[{"a" 1},2]`))
	if node.Len() != 2 {
		t.Fatalf("got %d elements, want 2", node.Len())
	}
	if e := node.Element(0); !e.IsError() || e.Error.Column != 7 {
		t.Errorf("element 0: got %v", e.ToAny())
	}
	if got := node.Element(1).AsInt(); got != 2 {
		t.Errorf("element 1: got %d", got)
	}
}

func TestNumbers(t *testing.T) {
	node := Parse([]byte(`[2147483648, -, 12.5]`))
	if err := ir.FirstError(node); err != nil {
		t.Fatal(err)
	}
	if n := node.Element(0); n.Type != ir.IntegerType || n.Int != -2147483648 {
		t.Errorf("out of range integer: got %s %d", n.Type, n.Int)
	}
	if n := node.Element(1); n.Type != ir.IntegerType || n.Int != 0 {
		t.Errorf("bare minus: got %s %d", n.Type, n.Int)
	}
	if n := node.Element(2); n.Type != ir.FloatingType || n.Float != 12.5 {
		t.Errorf("float: got %s %v", n.Type, n.Float)
	}
}

func TestMaxDepth(t *testing.T) {
	ok := strings.Repeat("[", MaxDepth) + strings.Repeat("]", MaxDepth)
	if err := ir.FirstError(Parse([]byte(ok))); err != nil {
		t.Errorf("depth %d: %v", MaxDepth, err)
	}
	deep := strings.Repeat("[", MaxDepth+1) + strings.Repeat("]", MaxDepth+1)
	err := ir.FirstError(Parse([]byte(deep)))
	if !errors.Is(err, ir.ErrNestingTooDeep) {
		t.Fatalf("depth %d: got %v", MaxDepth+1, err)
	}
	var perr *ir.Error
	if !errors.As(err, &perr) || perr.Column != MaxDepth+1 {
		t.Errorf("got %v, want column %d", err, MaxDepth+1)
	}

	node := Parse([]byte(`[[[1]],2]`), ParseMaxDepth(2))
	if !node.Element(0).Element(0).IsError() {
		t.Errorf("got %v", node.ToAny())
	}
	if got := node.Element(1).AsInt(); got != 2 {
		t.Errorf("sibling after too deep: got %d", got)
	}

	hostile := []byte(strings.Repeat(`{"a":`, 100000))
	if err := ir.FirstError(Parse(hostile)); err == nil {
		t.Errorf("expected error for unterminated deep input")
	}
}

func TestTrailing(t *testing.T) {
	if err := ir.FirstError(Parse([]byte(`{} x`))); err != nil {
		t.Errorf("trailing data should be ignored by default: %v", err)
	}
	node := Parse([]byte("{} \n x"), ParseTrailing(true))
	want := &ir.Error{Kind: ir.TrailingData, Line: 2, Column: 2}
	if diff := cmp.Diff(want, node.Error); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := ir.FirstError(Parse([]byte("[1]\n\n"), ParseTrailing(true))); err != nil {
		t.Errorf("trailing whitespace: %v", err)
	}
}

func TestPositions(t *testing.T) {
	pos := map[*ir.Node]token.Pos{}
	node := Parse([]byte("{\"a\": [1, \"b\"],\n \"c\": null}"), ParsePositions(pos))
	tests := []struct {
		path string
		want token.Pos
	}{
		{"a", token.Pos{I: 6, Line: 1, Col: 7}},
		{"a[0]", token.Pos{I: 7, Line: 1, Col: 8}},
		{"a[1]", token.Pos{I: 10, Line: 1, Col: 11}},
		{"c", token.Pos{I: 22, Line: 2, Col: 7}},
	}
	if got := pos[node]; got != (token.Pos{I: 0, Line: 1, Col: 1}) {
		t.Errorf("root at %v", got)
	}
	for _, tt := range tests {
		if got := pos[node.Resolve(tt.path)]; got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.path, got, tt.want)
		}
	}
	if GetPositions(ParsePositions(pos)) == nil {
		t.Errorf("GetPositions lost the map")
	}
}

func TestStringsAreCopies(t *testing.T) {
	d := []byte(`{"key":"value"}`)
	node := Parse(d)
	for i := range d {
		d[i] = 'x'
	}
	if got := node.Keys(); !cmp.Equal(got, []string{"key"}) {
		t.Errorf("keys: %v", got)
	}
	if got := node.Member("key").AsString(); got != "value" {
		t.Errorf("value: %q", got)
	}
}

func TestResolveParsed(t *testing.T) {
	node := Parse([]byte(`{"meshes":[{"name":"tri","primitives":[{"mode":4}]}]}`))
	if got := node.Resolve("meshes[0]/primitives[0]/mode").AsInt(); got != 4 {
		t.Errorf("mode: got %d", got)
	}
	if got := node.Resolve("meshes[0]/name").AsString(); got != "tri" {
		t.Errorf("name: got %q", got)
	}
	miss := node.Resolve("meshes[3]/name")
	if !miss.IsError() || miss.Error.Kind != ir.TypeMismatch {
		t.Errorf("short circuit: got %v", miss.ToAny())
	}
	if e := node.Resolve("meshes[3]"); !errors.Is(e.Err(), ir.ErrArrayOutOfBounds) {
		t.Errorf("out of bounds: got %v", e.Err())
	}
	ir.Release(node)
	if node.Type != ir.NullType {
		t.Errorf("release left %s", node.Type)
	}
}

func TestParseFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(p, []byte(`{"a":[1]}`), 0644); err != nil {
		t.Fatal(err)
	}
	node, err := ParseFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Resolve("a[0]").AsInt(); got != 1 {
		t.Errorf("got %d", got)
	}
	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
