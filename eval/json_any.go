package eval

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/signadot/tony-format/go-jdoc/encode"
	"github.com/signadot/tony-format/go-jdoc/ir"

	"github.com/goccy/go-yaml"
	"github.com/valyala/bytebufferpool"
)

var ErrConvert = errors.New("conversion error")

// MarshalJSON encodes node as compact standard JSON, escaping strings.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := encode.Encode(node, buf, encode.EncodeWire(true), encode.EncodeEscapes(true)); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.B...), nil
}

// UnmarshalJSON decodes standard JSON, including string escapes, into a
// tree. Member order is preserved. Integers outside the int32 range are an
// error.
func UnmarshalJSON(d []byte) (*ir.Node, error) {
	var v any
	dec := yaml.NewDecoder(bytes.NewReader(d), yaml.UseOrderedMap())
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConvert, err)
	}
	return FromAny(v)
}

// FromAny converts a plain Go value to a tree. yaml.MapSlice and
// map[string]any become objects; map keys are visited in sorted order.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x.Clone(), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return fromInt64(int64(x))
	case int32:
		return ir.FromInt(x), nil
	case int64:
		return fromInt64(x)
	case uint64:
		if x > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d out of range", ErrConvert, x)
		}
		return ir.FromInt(int32(x)), nil
	case float32:
		return ir.FromFloat(x), nil
	case float64:
		return ir.FromFloat(float32(x)), nil
	case []string:
		vals := make([]*ir.Node, len(x))
		for i, s := range x {
			vals[i] = ir.FromString(s)
		}
		return ir.FromSlice(vals), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, len(x))
		for i, item := range x {
			k, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non string key %v", ErrConvert, item.Key)
			}
			n, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: k, Val: n}
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		return FromAny(sortedMapSlice(x))
	default:
		return nil, fmt.Errorf("%w: cannot convert %T", ErrConvert, v)
	}
}

func fromInt64(v int64) (*ir.Node, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d out of range", ErrConvert, v)
	}
	return ir.FromInt(int32(v)), nil
}

func sortedMapSlice(m map[string]any) yaml.MapSlice {
	res := make(yaml.MapSlice, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res = append(res, yaml.MapItem{Key: k, Value: m[k]})
	}
	return res
}
