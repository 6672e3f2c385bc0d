/*
Package csv provides methods to parse exemplars from CSV streams.

The header or first row of the CSV content is expected to consist of
the names of the attributes plus the label column. The rest of the rows
should consist of valid values for all of them.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/sapling-ml/sapling/exemplar"
)

/*
ReadExemplars takes an io.Reader for a CSV stream, a slice of
attributes and the name of the label column and returns the exemplars
parsed from the reader or an error.
*/
func ReadExemplars(reader io.Reader, attributes []*exemplar.Attribute, label string) ([]exemplar.Exemplar, error) {
	var exemplars []exemplar.Exemplar
	err := ReadExemplarsByRow(reader, attributes, label, func(_ int, e exemplar.Exemplar) (bool, error) {
		exemplars = append(exemplars, e)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return exemplars, nil
}

/*
ReadExemplarsByRow takes an io.Reader for a CSV stream, a slice of
attributes, the name of the label column and a lambda function on an
integer and an exemplar that returns a boolean value. It parses the
exemplars from the reader and for each it calls the lambda function
with the exemplar and its row number as parameters. If the lambda
function returns true, it will continue processing the next row,
otherwise it will stop. An error is returned if something goes wrong
when reading the stream or parsing an exemplar.
*/
func ReadExemplarsByRow(reader io.Reader, attributes []*exemplar.Attribute, label string, lambda func(int, exemplar.Exemplar) (bool, error)) error {
	attributesByName := make(map[string]*exemplar.Attribute, len(attributes))
	for _, a := range attributes {
		attributesByName[a.Name()] = a
	}
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading header: %v", err)
	}
	labelColumn := -1
	columns := make([]*exemplar.Attribute, len(header))
	for i, name := range header {
		if name == label {
			labelColumn = i
			continue
		}
		a, ok := attributesByName[name]
		if !ok {
			return fmt.Errorf("parsing header: unknown attribute %s", name)
		}
		columns[i] = a
	}
	if labelColumn < 0 {
		return fmt.Errorf("parsing header: label column %s not present", label)
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		e, err := parseExemplarFromCSVRow(row, columns, labelColumn)
		if err != nil {
			return fmt.Errorf("parsing line %d: %v", l, err)
		}
		ok, err := lambda(l, e)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

func parseExemplarFromCSVRow(row []string, columns []*exemplar.Attribute, labelColumn int) (exemplar.Exemplar, error) {
	if len(row) != len(columns) {
		return exemplar.Exemplar{}, fmt.Errorf("expected %d values, got %d", len(columns), len(row))
	}
	values := make(map[string]string, len(columns)-1)
	var label string
	for i, value := range row {
		if i == labelColumn {
			label = value
			continue
		}
		a := columns[i]
		ok, err := a.Valid(value)
		if !ok {
			return exemplar.Exemplar{}, err
		}
		values[a.Name()] = value
	}
	return exemplar.New(values, label), nil
}
