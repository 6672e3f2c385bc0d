package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sapling-ml/sapling/dataset"
	"github.com/sapling-ml/sapling/dataset/csv"
	"github.com/sapling-ml/sapling/dataset/mongodataset"
	"github.com/sapling-ml/sapling/dataset/sqldataset"
	"github.com/sapling-ml/sapling/dataset/sqldataset/pgadapter"
	"github.com/sapling-ml/sapling/dataset/sqldataset/sqlite3adapter"
	"github.com/sapling-ml/sapling/exemplar"
	"github.com/sapling-ml/sapling/exemplar/yaml"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
)

type inputCmdConfig struct {
	*rootCmdConfig
	dataInput          string
	metadataInput      string
	label              string
	table              string
	cpuIntensiveSet    bool
	memoryIntensiveSet bool
	maxDBConns         int
}

func (icc *inputCmdConfig) setFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(icc.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL (postgresql://) or MongoDB (mongodb://) connection URL with exemplars (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(icc.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes available on the input (required)")
	cmd.PersistentFlags().StringVarP(&(icc.label), "label", "l", "", "name of the column or field with the label to learn or check against (required)")
	cmd.PersistentFlags().StringVar(&(icc.table), "table", "exemplars", "table (SQL) or collection (MongoDB) with the exemplars")
	cmd.PersistentFlags().BoolVar(&(icc.memoryIntensiveSet), "memory-intensive", false, "force the use of memory-intensive subsetting to decrease time at the cost of increasing memory use")
	cmd.PersistentFlags().BoolVar(&(icc.cpuIntensiveSet), "cpu-intensive", false, "force the use of cpu-intensive subsetting to decrease memory use at the cost of increasing time")
	cmd.PersistentFlags().IntVar(&(icc.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
}

func (icc *inputCmdConfig) Validate() error {
	if icc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if icc.label == "" {
		return fmt.Errorf("required label flag was not set")
	}
	if icc.cpuIntensiveSet && icc.memoryIntensiveSet {
		return fmt.Errorf("cannot set both memory-intensive and cpu-intensive flags at the same time")
	}
	return nil
}

// attributes reads the metadata file and returns the attributes
// available for growing, that is, every declared attribute except the
// label.
func (icc *inputCmdConfig) attributes() ([]*exemplar.Attribute, error) {
	declared, err := yaml.ReadAttributesFromFile(icc.metadataInput)
	if err != nil {
		return nil, err
	}
	attributes := make([]*exemplar.Attribute, 0, len(declared))
	for _, a := range declared {
		if a.Name() != icc.label {
			attributes = append(attributes, a)
		}
	}
	if len(attributes) == 0 {
		return nil, fmt.Errorf("metadata file declares no attributes other than the label")
	}
	return attributes, nil
}

func (icc *inputCmdConfig) dataset(ctx context.Context, attributes []*exemplar.Attribute) (dataset.Dataset, error) {
	exemplars, err := icc.exemplars(ctx, attributes)
	if err != nil {
		return nil, err
	}
	if icc.memoryIntensiveSet {
		return dataset.NewMemoryIntensive(exemplars), nil
	}
	if icc.cpuIntensiveSet {
		return dataset.NewCPUIntensive(exemplars), nil
	}
	return dataset.New(exemplars), nil
}

func (icc *inputCmdConfig) exemplars(ctx context.Context, attributes []*exemplar.Attribute) ([]exemplar.Exemplar, error) {
	if strings.HasPrefix(icc.dataInput, "postgresql://") {
		return icc.postgreSQLExemplars(ctx, attributes)
	}
	if strings.HasPrefix(icc.dataInput, "mongodb://") {
		return icc.mongoDBExemplars(ctx, attributes)
	}
	if strings.HasSuffix(icc.dataInput, ".db") {
		return icc.sqlite3Exemplars(ctx, attributes)
	}
	var f *os.File
	if icc.dataInput == "" {
		icc.Logf("Reading exemplars from STDIN...")
		f = os.Stdin
	} else {
		icc.Logf("Opening %s to read exemplars...", icc.dataInput)
		var err error
		f, err = os.Open(icc.dataInput)
		if err != nil {
			return nil, fmt.Errorf("opening exemplars at %s: %v", icc.dataInput, err)
		}
		defer f.Close()
	}
	exemplars, err := csv.ReadExemplars(f, attributes, icc.label)
	if err != nil {
		return nil, fmt.Errorf("reading exemplars: %v", err)
	}
	return exemplars, nil
}

func (icc *inputCmdConfig) sqlite3Exemplars(ctx context.Context, attributes []*exemplar.Attribute) ([]exemplar.Exemplar, error) {
	icc.Logf("Creating SQLite3 adapter for file %s to read exemplars...", icc.dataInput)
	adapter, err := sqlite3adapter.New(icc.dataInput, icc.maxDBConns)
	if err != nil {
		return nil, err
	}
	return sqldataset.ReadExemplars(ctx, adapter, icc.table, attributes, icc.label)
}

func (icc *inputCmdConfig) postgreSQLExemplars(ctx context.Context, attributes []*exemplar.Attribute) ([]exemplar.Exemplar, error) {
	icc.Logf("Creating PostgreSQL adapter for url %s to read exemplars...", icc.dataInput)
	adapter, err := pgadapter.New(icc.dataInput)
	if err != nil {
		return nil, err
	}
	return sqldataset.ReadExemplars(ctx, adapter, icc.table, attributes, icc.label)
}

func (icc *inputCmdConfig) mongoDBExemplars(ctx context.Context, attributes []*exemplar.Attribute) ([]exemplar.Exemplar, error) {
	icc.Logf("Dialing %s to read exemplars...", icc.dataInput)
	session, err := mgo.Dial(icc.dataInput)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %v", icc.dataInput, err)
	}
	defer session.Close()
	return mongodataset.ReadExemplars(ctx, session, icc.table, attributes, icc.label)
}
