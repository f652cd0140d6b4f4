package encode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/tony-format/go-jdoc/ir"

	"github.com/goccy/go-yaml"
)

// ToYAMLValue converts node to values go-yaml marshals in document order:
// objects become yaml.MapSlice.
func ToYAMLValue(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(node.Fields))
		for i, f := range node.Fields {
			v, err := ToYAMLValue(node.Values[i])
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: f.String, Value: v})
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := ToYAMLValue(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.StringType:
		return node.String, nil
	case ir.IntegerType:
		return int64(node.Int), nil
	case ir.FloatingType:
		s, err := FormatFloat(node.Float)
		if err != nil {
			return nil, err
		}
		f, _ := strconv.ParseFloat(s, 64)
		return f, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NullType:
		return nil, nil
	case ir.ErrorType:
		return nil, fmt.Errorf("%w: document contains %v", ErrEncoding, node.Err())
	default:
		return nil, fmt.Errorf("%w: unknown type %d", ErrEncoding, node.Type)
	}
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := ToYAMLValue(node)
	if err != nil {
		return err
	}
	yOpts := []yaml.EncodeOption{yaml.Indent(max(es.indent, 1))}
	if es.wire {
		yOpts = append(yOpts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(v, yOpts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(d))
}
