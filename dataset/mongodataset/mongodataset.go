/*
Package mongodataset provides methods to read exemplars from a MongoDB
collection. Each document of the collection is expected to hold a field
for every attribute plus the label.
*/
package mongodataset

import (
	"context"
	"fmt"

	"github.com/sapling-ml/sapling/exemplar"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

/*
ReadExemplars takes a context, a MongoDB session, a collection name, a
slice of attributes and the name of the label field and returns the
exemplars read from the collection on the session's default database,
or an error. Values are read as their string representation and
validated against the attributes' value domains.
*/
func ReadExemplars(ctx context.Context, session *mgo.Session, collection string, attributes []*exemplar.Attribute, label string) ([]exemplar.Exemplar, error) {
	var exemplars []exemplar.Exemplar
	iter := session.DB("").C(collection).Find(nil).Iter()
	defer iter.Close()
	var doc bson.M
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e, err := parseExemplarFromDocument(doc, attributes, label)
		if err != nil {
			return nil, fmt.Errorf("reading exemplars from %s: %v", collection, err)
		}
		exemplars = append(exemplars, e)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading exemplars from %s: %v", collection, err)
	}
	return exemplars, nil
}

func parseExemplarFromDocument(doc bson.M, attributes []*exemplar.Attribute, label string) (exemplar.Exemplar, error) {
	values := make(map[string]string, len(attributes))
	for _, attr := range attributes {
		v, ok := doc[attr.Name()]
		if !ok {
			return exemplar.Exemplar{}, fmt.Errorf("document %v defines no %s", doc["_id"], attr.Name())
		}
		value := fmt.Sprintf("%v", v)
		ok, err := attr.Valid(value)
		if !ok {
			return exemplar.Exemplar{}, err
		}
		values[attr.Name()] = value
	}
	lv, ok := doc[label]
	if !ok {
		return exemplar.Exemplar{}, fmt.Errorf("document %v defines no %s", doc["_id"], label)
	}
	return exemplar.New(values, fmt.Sprintf("%v", lv)), nil
}
