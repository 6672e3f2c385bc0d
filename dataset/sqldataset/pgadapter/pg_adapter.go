package pgadapter

import (
	"database/sql"
	"fmt"
	"strings"

	// Import of postgres driver
	_ "github.com/lib/pq"
	"github.com/sapling-ml/sapling/dataset/sqldataset"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL connection URL and returns an Adapter that works
on that database or an error if the connection cannot be set up.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening postgresql database at %s: %v", url, err)
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) QuoteIdentifier(name string) string {
	return fmt.Sprintf(`"%s"`, strings.Replace(name, `"`, `""`, -1))
}
