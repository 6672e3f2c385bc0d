package dataset

import "fmt"

// Error represents an error related with datasets
type Error string

/*
ErrInconsistentSchema is the error returned when the exemplars of a
dataset do not all define the same set of attribute names.
*/
const ErrInconsistentSchema = Error("exemplars disagree on the attributes they define")

func (e Error) Error() string {
	return string(e)
}

/*
MissingAttributeError is the error returned when an exemplar reaching a
split does not define a value for the attribute being split on.
*/
type MissingAttributeError struct {
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("exemplar does not define required attribute %s", e.Attribute)
}
