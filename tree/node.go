package tree

/*
Node is a node of a classification tree. It has exactly two variants:
Leaf, holding the label predicted for samples that reach it, and
Decision, branching on the observed values of one attribute.

The interface is sealed: no type outside this package can implement it,
so a traversal that handles both variants handles every node.
*/
type Node interface {
	node()
}

/*
Leaf is a terminal node holding a fixed predicted label.
*/
type Leaf struct {
	Label string
}

/*
Decision is an internal node that tests one attribute. Children maps
each attribute value observed during growing to the subtree for the
exemplars that had that value. It has at least one entry, and the
tested attribute does not appear again anywhere below this node.
*/
type Decision struct {
	Attribute string
	Children  map[string]Node
}

func (*Leaf) node()     {}
func (*Decision) node() {}
