package ir

// Release empties the tree rooted at root and resets root to Null. String
// payloads and container storage are dropped post-order, each exactly once.
// Releasing a released root is a no-op.
func Release(root *Node) {
	if root == nil {
		return
	}
	release(root)
	*root = Node{Type: NullType}
}

// release returns the number of payloads dropped.
func release(n *Node) int {
	if n == nil {
		return 0
	}
	switch n.Type {
	case StringType:
		n.String = ""
		return 1
	case ObjectType, ArrayType:
		count := 0
		for _, f := range n.Fields {
			count += release(f)
		}
		for _, v := range n.Values {
			count += release(v)
		}
		clear(n.Fields)
		clear(n.Values)
		n.Fields = nil
		n.Values = nil
		return count + 1
	default:
		return 0
	}
}
