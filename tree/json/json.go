/*
Package json provides methods to serialize trees as JSON documents and
parse them back.

A tree is serialized as a JSON object with the following fields:
  - "attributes": an array with the names of the attributes that were
    available when the tree was grown
  - "root": the root node of the tree

A node is serialized as an object with either a "leaf" field holding
the predicted label, or an "attribute" field with the tested attribute
name and a "children" object mapping each observed attribute value to
its subtree. The encoding round-trips the node variant structure
exactly.
*/
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sapling-ml/sapling/tree"
)

type jsonTree struct {
	Attributes []string  `json:"attributes"`
	Root       *jsonNode `json:"root"`
}

type jsonNode struct {
	Leaf      *string              `json:"leaf,omitempty"`
	Attribute string               `json:"attribute,omitempty"`
	Children  map[string]*jsonNode `json:"children,omitempty"`
}

/*
WriteTree takes a pointer to a tree.Tree and an io.Writer and
serializes the given tree as JSON onto the io.Writer. An error is
returned if the tree cannot be serialized or written onto the
io.Writer.
*/
func WriteTree(w io.Writer, t *tree.Tree) error {
	if t == nil || t.Root == nil {
		return fmt.Errorf("cannot serialize a tree without a root node")
	}
	jt := &jsonTree{Attributes: t.Attributes, Root: encodeNode(t.Root)}
	enc := json.NewEncoder(w)
	return enc.Encode(jt)
}

/*
ReadTree takes an io.Reader and parses its contents as a JSON tree,
returning the tree or an error if the JSON cannot be read or does not
describe a valid tree.
*/
func ReadTree(r io.Reader) (*tree.Tree, error) {
	jt := &jsonTree{}
	dec := json.NewDecoder(r)
	err := dec.Decode(jt)
	if err != nil {
		return nil, err
	}
	if jt.Root == nil {
		return nil, fmt.Errorf("parsing tree: no root node available")
	}
	root, err := decodeNode(jt.Root)
	if err != nil {
		return nil, fmt.Errorf("parsing tree: %v", err)
	}
	return tree.New(root, jt.Attributes), nil
}

/*
MarshalTree takes a pointer to a tree.Tree and returns a slice of bytes
with the tree encoded as JSON or an error.
*/
func MarshalTree(t *tree.Tree) ([]byte, error) {
	var buf bytes.Buffer
	err := WriteTree(&buf, t)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/*
UnmarshalTree takes a slice of bytes with a JSON-encoded tree and
returns the decoded tree or an error.
*/
func UnmarshalTree(data []byte) (*tree.Tree, error) {
	return ReadTree(bytes.NewReader(data))
}

func encodeNode(n tree.Node) *jsonNode {
	switch n := n.(type) {
	case *tree.Leaf:
		label := n.Label
		return &jsonNode{Leaf: &label}
	case *tree.Decision:
		children := make(map[string]*jsonNode, len(n.Children))
		for v, child := range n.Children {
			children[v] = encodeNode(child)
		}
		return &jsonNode{Attribute: n.Attribute, Children: children}
	}
	return nil
}

func decodeNode(jn *jsonNode) (tree.Node, error) {
	if jn.Leaf != nil {
		return &tree.Leaf{Label: *jn.Leaf}, nil
	}
	if jn.Attribute == "" {
		return nil, fmt.Errorf("node is neither a leaf nor a decision")
	}
	if len(jn.Children) == 0 {
		return nil, fmt.Errorf("decision node on %s has no children", jn.Attribute)
	}
	children := make(map[string]tree.Node, len(jn.Children))
	for v, jchild := range jn.Children {
		child, err := decodeNode(jchild)
		if err != nil {
			return nil, err
		}
		children[v] = child
	}
	return &tree.Decision{Attribute: jn.Attribute, Children: children}, nil
}
