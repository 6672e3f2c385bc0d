/*
Package sqldataset provides methods to read exemplars from a SQL
database table. Dialect differences are abstracted behind the Adapter
interface, with implementations for SQLite3 and PostgreSQL in the
sqlite3adapter and pgadapter subpackages.
*/
package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sapling-ml/sapling/exemplar"
)

/*
Adapter is an interface providing the methods needed to read exemplars
from a database table.

Its DB method returns the database handle to query through.

Its QuoteIdentifier method returns the given table or column name
quoted for the adapter's SQL dialect.
*/
type Adapter interface {
	DB() *sql.DB
	QuoteIdentifier(name string) string
}

/*
ReadExemplars takes a context, an adapter, a table name, a slice of
attributes and the name of the label column and returns the exemplars
read from the table or an error. Each row of the table is expected to
hold a value for every attribute plus the label.
*/
func ReadExemplars(ctx context.Context, a Adapter, table string, attributes []*exemplar.Attribute, label string) ([]exemplar.Exemplar, error) {
	columns := make([]string, 0, len(attributes)+1)
	for _, attr := range attributes {
		columns = append(columns, a.QuoteIdentifier(attr.Name()))
	}
	columns = append(columns, a.QuoteIdentifier(label))
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), a.QuoteIdentifier(table))
	rows, err := a.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reading exemplars from %s: %v", table, err)
	}
	defer rows.Close()
	var exemplars []exemplar.Exemplar
	values := make([]string, len(attributes)+1)
	scanTargets := make([]interface{}, len(values))
	for i := range values {
		scanTargets[i] = &values[i]
	}
	for rows.Next() {
		err = rows.Scan(scanTargets...)
		if err != nil {
			return nil, fmt.Errorf("reading exemplars from %s: %v", table, err)
		}
		attrValues := make(map[string]string, len(attributes))
		for i, attr := range attributes {
			ok, err := attr.Valid(values[i])
			if !ok {
				return nil, fmt.Errorf("reading exemplars from %s: %v", table, err)
			}
			attrValues[attr.Name()] = values[i]
		}
		exemplars = append(exemplars, exemplar.New(attrValues, values[len(values)-1]))
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("reading exemplars from %s: %v", table, err)
	}
	return exemplars, nil
}
