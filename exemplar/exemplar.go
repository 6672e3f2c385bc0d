package exemplar

import (
	"fmt"
	"sort"
	"strings"
)

/*
Sample is an interface for something a tree can be asked to classify.

Its ValueFor method returns the value the sample defines for the
attribute with the given name, and a boolean indicating whether the
sample defines a value for it at all.
*/
type Sample interface {
	ValueFor(name string) (string, bool)
}

/*
Exemplar represents a labeled instance: a mapping from attribute names
to discrete values plus the label to learn or check against.

Exemplars are immutable once created: New copies the attribute mapping
it receives and accessors never expose it for writing.
*/
type Exemplar struct {
	attributes map[string]string
	label      string
}

/*
Values is a bare attribute-name to value mapping that satisfies Sample.
It is the simplest way to hand a tree an instance to classify.
*/
type Values map[string]string

/*
New takes a map of attribute names to values and a label and returns an
exemplar with them.
*/
func New(attributes map[string]string, label string) Exemplar {
	attrs := make(map[string]string, len(attributes))
	for name, value := range attributes {
		attrs[name] = value
	}
	return Exemplar{attributes: attrs, label: label}
}

/*
ValueFor returns the value the exemplar defines for the attribute with
the given name and a boolean indicating whether the attribute is
defined on the exemplar. The label is not reachable through ValueFor.
*/
func (e Exemplar) ValueFor(name string) (string, bool) {
	value, ok := e.attributes[name]
	return value, ok
}

/*
Label returns the label of the exemplar.
*/
func (e Exemplar) Label() string {
	return e.label
}

/*
AttributeNames returns the names of the attributes the exemplar defines,
sorted in ascending order.
*/
func (e Exemplar) AttributeNames() []string {
	names := make([]string, 0, len(e.attributes))
	for name := range e.attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e Exemplar) String() string {
	pairs := make([]string, 0, len(e.attributes))
	for _, name := range e.AttributeNames() {
		pairs = append(pairs, fmt.Sprintf("%s:%s", name, e.attributes[name]))
	}
	return fmt.Sprintf("[%s -> %s]", strings.Join(pairs, " "), e.label)
}

/*
ValueFor returns the value in the mapping for the given name and a
boolean indicating whether the name is present.
*/
func (v Values) ValueFor(name string) (string, bool) {
	value, ok := v[name]
	return value, ok
}
