// Package snapshot serializes the session's collections to a YAML file
// and back. Snapshots are an explicit user action for moving data
// between sessions; the engine itself stays memory-resident.
package snapshot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/otifyhq/console/internal/record"
	"github.com/otifyhq/console/internal/schema"
	"github.com/otifyhq/console/internal/store"
)

type entry struct {
	ID     string         `yaml:"id"`
	Fields map[string]any `yaml:"fields"`
}

type document struct {
	Collections map[string][]entry `yaml:"collections"`
}

// Encode captures every collection in the set.
func Encode(set *store.Set) ([]byte, error) {
	doc := document{Collections: make(map[string][]entry)}
	for _, t := range schema.Types() {
		coll, err := set.Collection(t)
		if err != nil {
			return nil, err
		}
		recs := coll.All()
		if len(recs) == 0 {
			continue
		}
		entries := make([]entry, len(recs))
		for i, r := range recs {
			entries[i] = entry{ID: r.ID, Fields: r.Fields.Clone()}
		}
		doc.Collections[t] = entries
	}
	return yaml.Marshal(doc)
}

// Decode loads snapshot data into the set. Records insert in file
// order; an unknown collection key or a duplicate id aborts with an
// error, leaving earlier inserts in place.
func Decode(data []byte, set *store.Set) (int, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("parse snapshot: %w", err)
	}
	n := 0
	for _, t := range schema.Types() {
		entries, ok := doc.Collections[t]
		if !ok {
			continue
		}
		delete(doc.Collections, t)
		coll, err := set.Collection(t)
		if err != nil {
			return n, err
		}
		for _, e := range entries {
			if err := coll.Insert(record.Record{ID: e.ID, Fields: normalize(e.Fields)}); err != nil {
				return n, err
			}
			n++
		}
	}
	for key := range doc.Collections {
		return n, fmt.Errorf("%w: snapshot collection %q", schema.ErrUnknownEntityType, key)
	}
	return n, nil
}

// ExportFile writes the set to path and returns the record count.
func ExportFile(set *store.Set, path string) (int, error) {
	data, err := Encode(set)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, t := range schema.Types() {
		if coll, err := set.Collection(t); err == nil {
			n += coll.Len()
		}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return 0, fmt.Errorf("write snapshot: %w", err)
	}
	return n, nil
}

// ImportFile reads a snapshot file into the set.
func ImportFile(set *store.Set, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read snapshot: %w", err)
	}
	return Decode(data, set)
}

// normalize rebuilds YAML's generic list values as string lists so
// stored fields keep the shapes the engine works with.
func normalize(fields map[string]any) record.Fields {
	out := make(record.Fields, len(fields))
	for k, v := range fields {
		if list := record.StringList(v); list != nil {
			out[k] = list
			continue
		}
		out[k] = v
	}
	return out
}
