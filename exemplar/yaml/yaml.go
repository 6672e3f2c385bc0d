/*
Package yaml provides methods to parse exemplar.Attribute
specifications, also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/sapling-ml/sapling/exemplar"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadAttributes takes a slice of bytes with an attribute specification
in YML and returns a slice of attributes parsed from it or an error.
The YML is expected to be an object containing an attributes property.
The value for this should be an object with a property for each
attribute mapping its name to the list of its valid values.
*/
func ReadAttributes(md []byte) ([]*exemplar.Attribute, error) {
	metadata := struct {
		Attributes map[string][]interface{}
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml attributes: %v", err)
	}
	if metadata.Attributes == nil {
		return nil, fmt.Errorf("metadata file has no attribute information")
	}
	attributes := []*exemplar.Attribute{}
	for name, vs := range metadata.Attributes {
		if len(vs) == 0 {
			return nil, fmt.Errorf("attribute %s declares no values", name)
		}
		values := make([]string, 0, len(vs))
		for _, v := range vs {
			values = append(values, fmt.Sprintf("%v", v))
		}
		attributes = append(attributes, exemplar.NewAttribute(name, values))
	}
	return attributes, nil
}

/*
ReadAttributesFromFile takes a filepath string, reads its contents and
uses ReadAttributes to parse it and return a slice of parsed attributes
or an error. If the file indicated by the filepath cannot be opened for
reading an error will be returned.
*/
func ReadAttributesFromFile(filepath string) ([]*exemplar.Attribute, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading attributes yml file %s: %v", filepath, err)
	}
	attributes, err := ReadAttributes(md)
	if err != nil {
		err = fmt.Errorf("parsing attributes yml file %s: %v", filepath, err)
	}
	return attributes, err
}
