package tree

import "github.com/sapling-ml/sapling/exemplar"

/*
InputsFor takes a tree and a label and returns the attribute
assignments that drive the tree to a leaf with that label. Only
attributes tested on the path to the leaf appear in each assignment;
any values for the remaining attributes reach the same leaf.

If the root of the tree is a leaf no assignment constrains the output,
and an empty slice is returned.
*/
func InputsFor(t *Tree, label string) []exemplar.Values {
	if t == nil || t.Root == nil {
		return nil
	}
	d, ok := t.Root.(*Decision)
	if !ok {
		return nil
	}
	var inputs []exemplar.Values
	collectInputs(d, label, exemplar.Values{}, &inputs)
	return inputs
}

func collectInputs(d *Decision, label string, partial exemplar.Values, inputs *[]exemplar.Values) {
	for _, v := range childValues(d) {
		partial[d.Attribute] = v
		switch child := d.Children[v].(type) {
		case *Decision:
			collectInputs(child, label, partial, inputs)
		case *Leaf:
			if child.Label == label {
				assignment := make(exemplar.Values, len(partial))
				for name, value := range partial {
					assignment[name] = value
				}
				*inputs = append(*inputs, assignment)
			}
		}
	}
	delete(partial, d.Attribute)
}
