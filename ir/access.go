package ir

// AsString returns the payload of a String node and "" for anything else.
func (n *Node) AsString() string {
	if n == nil || n.Type != StringType {
		return ""
	}
	return n.String
}

// AsFloat returns the payload of a Floating node and 0 for anything else,
// including Integer nodes. See AsNumber.
func (n *Node) AsFloat() float32 {
	if n == nil || n.Type != FloatingType {
		return 0
	}
	return n.Float
}

func (n *Node) AsInt() int32 {
	if n == nil || n.Type != IntegerType {
		return 0
	}
	return n.Int
}

// AsNumber returns Integer and Floating payloads as a float32.
func (n *Node) AsNumber() float32 {
	if n == nil {
		return 0
	}
	switch n.Type {
	case IntegerType:
		return float32(n.Int)
	case FloatingType:
		return n.Float
	default:
		return 0
	}
}

func (n *Node) AsBool() bool {
	if n == nil || n.Type != BoolType {
		return false
	}
	return n.Bool
}

// Member returns the value of the first member of n named key. It returns a
// TypeMismatch error node if n is not an object and PropertyNotFound if no
// member matches.
func (n *Node) Member(key string) *Node {
	if n == nil || n.Type != ObjectType {
		return accessErr(TypeMismatch)
	}
	// first match wins
	for i, f := range n.Fields {
		if f.String == key {
			return n.Values[i]
		}
	}
	return accessErr(PropertyNotFound)
}

// Element returns the i'th element of n. It returns a TypeMismatch error node
// if n is not an array and ArrayOutOfBounds if i is not a valid index.
func (n *Node) Element(i int) *Node {
	if n == nil || n.Type != ArrayType {
		return accessErr(TypeMismatch)
	}
	if i < 0 || i >= len(n.Values) {
		return accessErr(ArrayOutOfBounds)
	}
	return n.Values[i]
}

// Len returns the number of members or elements of a container and 0
// otherwise.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Type {
	case ObjectType, ArrayType:
		return len(n.Values)
	default:
		return 0
	}
}

func (n *Node) Keys() []string {
	if n == nil || n.Type != ObjectType {
		return nil
	}
	res := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		res[i] = f.String
	}
	return res
}

func (n *Node) IsError() bool {
	return n != nil && n.Type == ErrorType
}

// Err returns the payload of an Error node as an error, and nil for any
// other node.
func (n *Node) Err() error {
	if !n.IsError() || n.Error == nil {
		return nil
	}
	return n.Error
}
