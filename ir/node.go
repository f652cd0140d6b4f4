package ir

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String string
	Int    int32
	Float  float32
	Bool   bool
	Error  *Error
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int32) *Node {
	return &Node{Type: IntegerType, Int: v}
}

func FromFloat(f float32) *Node {
	return &Node{Type: FloatingType, Float: f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromError returns an error node positioned at line, col.
func FromError(k ErrorKind, line, col int) *Node {
	return &Node{
		Type:  ErrorType,
		Error: &Error{Kind: k, Line: line, Column: col},
	}
}

func accessErr(k ErrorKind) *Node {
	return FromError(k, 0, 0)
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		res.Fields[i] = FromString(kvs[i].Key)
		res.Values[i] = kvs[i].Val
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType, Values: make([]*Node, len(vs))}
	copy(res.Values, vs)
	return res
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{
		Type:   n.Type,
		String: n.String,
		Int:    n.Int,
		Float:  n.Float,
		Bool:   n.Bool,
	}
	if n.Error != nil {
		e := *n.Error
		res.Error = &e
	}
	if n.Fields != nil {
		res.Fields = make([]*Node, len(n.Fields))
		for i, f := range n.Fields {
			res.Fields[i] = f.Clone()
		}
	}
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit calls f before and after visiting the values of y. Children are
// only visited if the pre-order call returns true.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	if y == nil {
		return nil
	}
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// ToAny converts y to plain Go values: map[string]any, []any, string,
// int64, float64, bool and nil. Error nodes convert to their *Error.
func (y *Node) ToAny() any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case StringType:
		return y.String
	case IntegerType:
		return int64(y.Int)
	case FloatingType:
		return float64(y.Float)
	case BoolType:
		return y.Bool
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i := len(y.Fields) - 1; i >= 0; i-- {
			res[y.Fields[i].String] = y.Values[i].ToAny()
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.ToAny()
		}
		return res
	case ErrorType:
		return y.Error
	default:
		return nil
	}
}

func Truth(node *Node) bool {
	switch node.Type {
	case ObjectType:
		return len(node.Fields) != 0
	case ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case IntegerType:
		return node.Int != 0
	case FloatingType:
		return node.Float != 0
	case BoolType:
		return node.Bool
	default:
		return false
	}
}
