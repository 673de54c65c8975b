package store

import (
	"fmt"

	"github.com/otifyhq/console/internal/schema"
)

// Set holds one collection per registered entity type.
type Set struct {
	byType map[string]*Collection
}

// NewSet creates an empty collection for every type in the catalog.
func NewSet() *Set {
	s := &Set{byType: make(map[string]*Collection)}
	for _, t := range schema.Types() {
		s.byType[t] = NewCollection(t)
	}
	return s
}

// Collection returns the collection for an entity type tag.
func (s *Set) Collection(entityType string) (*Collection, error) {
	c, ok := s.byType[entityType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", schema.ErrUnknownEntityType, entityType)
	}
	return c, nil
}
