package debug

import (
	"fmt"
	"testing"

	"github.com/signadot/tony-format/go-jdoc/ir"
)

func TestDoc(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("x")})},
	})
	tests := []struct {
		doc  Doc
		want string
	}{
		{Doc{Node: node}, `{"a":[1,"x"]}`},
		{Doc{}, "<nil>"},
		{Doc{Node: ir.FromError(ir.MissingComma, 2, 3)}, "<missing comma at 2:3>"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf("%s", tt.doc); got != tt.want {
			t.Errorf("got %s, want %s", got, tt.want)
		}
	}
}
