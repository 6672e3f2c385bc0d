package exemplar

import "fmt"

/*
Attribute represents a named discrete attribute together with the set
of values it can take. Loaders use it to validate raw input before
building exemplars.
*/
type Attribute struct {
	name   string
	values []string
}

/*
NewAttribute takes a name string and a slice of value strings and
returns an attribute with the given name and value domain.
*/
func NewAttribute(name string, values []string) *Attribute {
	return &Attribute{name, values}
}

/*
Name returns a string with the name of the attribute
*/
func (a *Attribute) Name() string {
	return a.name
}

/*
Values returns a string slice with the values available for the attribute
*/
func (a *Attribute) Values() []string {
	return a.values
}

/*
Valid receives a value and returns a boolean and an error. When the
value is included in the available values of the attribute, the method
returns true and nil. Otherwise it returns false and an error describing
the reason.
*/
func (a *Attribute) Valid(value string) (bool, error) {
	for _, av := range a.values {
		if av == value {
			return true, nil
		}
	}
	return false, fmt.Errorf("attribute %s got unknown value %s", a.name, value)
}

func (a *Attribute) String() string {
	return a.name
}
