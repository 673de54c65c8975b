// Package store holds the per-type record collections and the
// identifier allocator. Collections are fully independent: no operation
// on one ever touches another. The store is a local stand-in for a
// future remote backend exposing the same list/insert/update/delete
// contract.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/otifyhq/console/internal/record"
)

var (
	// ErrNotFound reports an update or delete whose target id is absent.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID reports an insert whose id already exists. Under a
	// correct allocator this never happens; the caller retries
	// allocation rather than overwriting.
	ErrDuplicateID = errors.New("duplicate record id")
)

// Collection is an ordered set of records for one entity type.
// Insertion order is display order; ids are unique and never reused
// within a session.
type Collection struct {
	mu         sync.RWMutex
	entityType string
	recs       []record.Record
}

// NewCollection creates an empty collection for one entity type.
func NewCollection(entityType string) *Collection {
	return &Collection{entityType: entityType}
}

// EntityType returns the entity type tag this collection stores.
func (c *Collection) EntityType() string {
	return c.entityType
}

// Len returns the number of stored records.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.recs)
}

// Insert appends a record. The id must not already exist.
func (c *Collection) Insert(rec record.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.recs {
		if r.ID == rec.ID {
			return fmt.Errorf("%w: %s %q", ErrDuplicateID, c.entityType, rec.ID)
		}
	}
	c.recs = append(c.recs, rec)
	return nil
}

// Get returns a detached copy of the record with the given id; the
// caller may mutate it freely without touching the stored record.
func (c *Collection) Get(id string) (record.Record, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.recs {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return record.Record{}, fmt.Errorf("%w: %s %q", ErrNotFound, c.entityType, id)
}

// UpdateByID replaces the field mapping of the record with the given
// id. The stored id is forced to its pre-update value: identifiers are
// immutable once assigned, even if fields carries an "id" key.
func (c *Collection) UpdateByID(id string, fields record.Fields) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, r := range c.recs {
		if r.ID != id {
			continue
		}
		next := fields.Clone()
		delete(next, "id")
		c.recs[i] = record.Record{ID: r.ID, Fields: next}
		return nil
	}
	return fmt.Errorf("%w: %s %q", ErrNotFound, c.entityType, id)
}

// DeleteByID removes the record with the given id.
func (c *Collection) DeleteByID(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, r := range c.recs {
		if r.ID == id {
			c.recs = append(c.recs[:i], c.recs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q", ErrNotFound, c.entityType, id)
}

// Filter returns the records matching pred, preserving insertion order.
// The source collection is never mutated; a nil pred matches everything.
func (c *Collection) Filter(pred func(record.Record) bool) []record.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]record.Record, 0, len(c.recs))
	for _, r := range c.recs {
		if pred == nil || pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// All returns every record in insertion order.
func (c *Collection) All() []record.Record {
	return c.Filter(nil)
}
