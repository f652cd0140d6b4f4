package encode_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/go-jdoc/encode"
	"github.com/signadot/tony-format/go-jdoc/format"
	"github.com/signadot/tony-format/go-jdoc/ir"
	"github.com/signadot/tony-format/go-jdoc/parse"
)

const doc = `{"name":"cube","n":3,"scale":2.0,"tags":["a",true,null],"empty":{},"none":[]}`

func TestEncodeWire(t *testing.T) {
	node := parse.Parse([]byte(doc))
	got := encode.MustString(node, encode.EncodeWire(true))
	if got != doc {
		t.Errorf("got\n%s\nwant\n%s", got, doc)
	}
}

func TestEncodeIndent(t *testing.T) {
	node := parse.Parse([]byte(`{"a":[1,{"b":-0.25}],"c":{}}`))
	want := `{
  "a": [
    1,
    {
      "b": -0.25
    }
  ],
  "c": {}
}
`
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	buf.Reset()
	if err := encode.Encode(node, buf, encode.EncodeIndent(0), encode.EncodeWire(false)); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "{\n\"a\": [\n1,") {
		t.Errorf("indent 0: got\n%s", buf.String())
	}
}

func TestRoundTrip(t *testing.T) {
	in := []string{
		doc,
		`[1.5,-2,0.0,[[[]]],{"k":{"k":"v"}}]`,
		`{"line":"a b c","x":100000.0}`,
		`["a\b"]`,
		"{\"k\\t\":\"x\ny\ttab\"}",
	}
	for _, d := range in {
		node := parse.Parse([]byte(d))
		for _, wire := range []bool{true, false} {
			out := encode.MustString(node, encode.EncodeWire(wire))
			again := parse.Parse([]byte(out))
			if err := ir.FirstError(again); err != nil {
				t.Fatalf("%s: %v", out, err)
			}
			if diff := cmp.Diff(node.ToAny(), again.ToAny()); diff != "" {
				t.Errorf("%s (-want +got):\n%s", d, diff)
			}
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{-3, "-3.0"},
		{0.5, "0.5"},
		{1.1, "1.1"},
		{1e6, "1000000.0"},
	}
	for _, tt := range tests {
		got, err := encode.FormatFloat(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeEscapes(t *testing.T) {
	node := parse.Parse([]byte("[\"a\\b\",\"x\ny\"]"))
	if got, want := node.Element(0).AsString(), `a\b`; got != want {
		t.Fatalf("parsed %q, want %q", got, want)
	}
	raw := encode.MustString(node, encode.EncodeWire(true))
	if want := "[\"a\\b\",\"x\ny\"]"; raw != want {
		t.Errorf("raw: got %q, want %q", raw, want)
	}
	for i := 0; i < 3; i++ {
		node = parse.Parse([]byte(encode.MustString(node, encode.EncodeWire(true))))
	}
	if got := node.Element(0).AsString(); got != `a\b` {
		t.Errorf("after repeated round trips got %q", got)
	}
	if got := node.Element(1).AsString(); got != "x\ny" {
		t.Errorf("after repeated round trips got %q", got)
	}

	escaped := encode.MustString(node, encode.EncodeWire(true), encode.EncodeEscapes(true))
	if want := `["a\\b","x\ny"]`; escaped != want {
		t.Errorf("escaped: got %s, want %s", escaped, want)
	}

	quoted := ir.FromSlice([]*ir.Node{ir.FromString(`say "hi"`)})
	if got, want := encode.MustString(quoted, encode.EncodeWire(true)), `["say \"hi\""]`; got != want {
		t.Errorf("embedded quote: got %s, want %s", got, want)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{`a"b`, `"a\"b"`},
		{`back\`, `"back\\"`},
		{"nl\ntab\t", `"nl\ntab\t"`},
		{"\x01", `"\u0001"`},
		{"héllo", `"héllo"`},
	}
	for _, tt := range tests {
		if got := encode.Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestEncodeError(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "ok", Val: ir.FromInt(1)},
		{Key: "bad", Val: ir.FromError(ir.MissingColon, 1, 2)},
	})
	for _, f := range format.AllFormats() {
		err := encode.Encode(node, bytes.NewBuffer(nil), encode.EncodeFormat(f))
		if !errors.Is(err, encode.ErrEncoding) {
			t.Errorf("%s: got %v", f, err)
		}
	}
}

func TestEncodeYAML(t *testing.T) {
	node := parse.Parse([]byte(`{"b":1,"a":[true,"x"],"c":null}`))
	got := encode.MustString(node, encode.EncodeFormat(format.YAMLFormat))
	lines := strings.Split(got, "\n")
	if len(lines) < 3 || !strings.HasPrefix(lines[0], "b: 1") || !strings.HasPrefix(lines[1], "a:") {
		t.Errorf("keys out of document order:\n%s", got)
	}
	if !strings.Contains(got, "c: null") {
		t.Errorf("missing null:\n%s", got)
	}
	if encode.FormatFromOpts(encode.EncodeFormat(format.YAMLFormat)) != format.YAMLFormat {
		t.Errorf("FormatFromOpts lost the format")
	}
}

func TestEncodeColors(t *testing.T) {
	node := parse.Parse([]byte(`{"a":1}`))
	colors := encode.NewColors()
	colors.Map[encode.Colorable{Type: ir.IntegerType, Attr: encode.ValueColor}] = func(s string, _ ...any) string {
		return "<" + s + ">"
	}
	got := encode.MustString(node, encode.EncodeWire(true), encode.EncodeColors(colors))
	if !strings.Contains(got, "<1>") {
		t.Errorf("got %q", got)
	}
}
