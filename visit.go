package bbcode

// Visitor is called for each node visited. Call next to descend into the
// node's children; skip the call to prune the subtree.
type Visitor func(n Node, next func() error) error

// Visit a node and, via next, its children in depth-first order.
func Visit(n Node, visitor Visitor) error {
	return visitor(n, func() error {
		tag, ok := n.(*Tag)
		if !ok {
			return nil
		}
		for _, child := range tag.Children {
			if err := Visit(child, visitor); err != nil {
				return err
			}
		}
		return nil
	})
}

// Visit each top-level node of the document.
func (d *Document) Visit(visitor Visitor) error {
	for _, n := range d.Nodes {
		if err := Visit(n, visitor); err != nil {
			return err
		}
	}
	return nil
}
