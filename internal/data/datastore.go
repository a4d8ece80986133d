// Package data provides the process-lifetime key-value store backing the
// repositories. It replaces a process-wide singleton: callers construct a
// DataStore explicitly and pass it where it is needed.
package data

import "sync"

// DataStore is a concurrency-safe associative container holding the
// top-level collections ("stores", "users") by key.
type DataStore struct {
	mu   sync.RWMutex
	data map[string]any
}

func NewDataStore() *DataStore {
	return &DataStore{data: make(map[string]any)}
}

// Get retrieves a value by key.
func (d *DataStore) Get(key string) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	value, ok := d.data[key]
	return value, ok
}

// Put stores a value under key, replacing any existing value.
func (d *DataStore) Put(key string, value any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.data[key] = value
}

// Remove deletes a key.
func (d *DataStore) Remove(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.data, key)
}

// Contains reports whether key is present.
func (d *DataStore) Contains(key string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.data[key]
	return ok
}

// Keys returns all stored keys.
func (d *DataStore) Keys() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	keys := make([]string, 0, len(d.data))
	for key := range d.data {
		keys = append(keys, key)
	}
	return keys
}

// Size returns the number of stored keys.
func (d *DataStore) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.data)
}

// Clear removes everything.
func (d *DataStore) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.data = make(map[string]any)
}
