package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s round tripped to %s", f, g)
		}
	}
	if f, err := ParseFormat("y"); err != nil || !f.IsYAML() {
		t.Errorf("y: %v %v", f, err)
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("tony: got %v", err)
	}
	if JSONFormat.Suffix() != ".json" {
		t.Errorf("suffix %q", JSONFormat.Suffix())
	}
}
