package store

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// The identifier layout is {singular}_{6 time digits}{3 random digits}:
// human-readable, roughly sortable by creation time, and opaque to
// every component but this one. Collision resistance is probabilistic,
// not guaranteed; Collection.Insert surfaces the (practically
// unreachable) collision as ErrDuplicateID and the caller re-allocates.

var (
	idMu  sync.Mutex
	idRnd = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// NewID allocates a fresh identifier for the given entity type.
func NewID(singular string) string {
	idMu.Lock()
	n := idRnd.Intn(1000)
	idMu.Unlock()
	return fmt.Sprintf("%s_%06d%03d", singular, time.Now().Unix()%1_000_000, n)
}
