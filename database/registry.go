package database

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the annotation databases known to the host, by name.
type Registry struct {
	sync.RWMutex
	databases map[string]Database
}

func NewRegistry() *Registry {
	return &Registry{databases: map[string]Database{}}
}

// Register adds a database to the registry. Registering two databases with
// the same name is an error.
func (r *Registry) Register(db Database) error {
	r.Lock()
	defer r.Unlock()

	if _, found := r.databases[db.Name()]; found {
		return fmt.Errorf("database %q is already registered", db.Name())
	}
	r.databases[db.Name()] = db
	return nil
}

// Get returns the database registered under name.
func (r *Registry) Get(name string) (Database, bool) {
	r.RLock()
	defer r.RUnlock()

	db, found := r.databases[name]
	return db, found
}

// WithCapability returns the registered databases declaring the given
// capability, in name order.
func (r *Registry) WithCapability(c Capability) []Database {
	r.RLock()
	defer r.RUnlock()

	names := make([]string, 0, len(r.databases))
	for name := range r.databases {
		names = append(names, name)
	}
	sort.Strings(names)

	var matched []Database
	for _, name := range names {
		if db := r.databases[name]; Supports(db, c) {
			matched = append(matched, db)
		}
	}
	return matched
}
