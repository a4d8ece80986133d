package data

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataStorePutGet(t *testing.T) {
	ds := NewDataStore()

	ds.Put("stores", map[string]int{"S1": 1})

	value, ok := ds.Get("stores")
	assert.True(t, ok)
	assert.Equal(t, map[string]int{"S1": 1}, value)
}

func TestDataStoreGetMissing(t *testing.T) {
	ds := NewDataStore()

	value, ok := ds.Get("missing")

	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestDataStoreRemove(t *testing.T) {
	ds := NewDataStore()
	ds.Put("key", "value")

	ds.Remove("key")

	assert.False(t, ds.Contains("key"))
	assert.Equal(t, 0, ds.Size())
}

func TestDataStoreKeysAndSize(t *testing.T) {
	ds := NewDataStore()
	ds.Put("a", 1)
	ds.Put("b", 2)

	assert.Equal(t, 2, ds.Size())
	assert.ElementsMatch(t, []string{"a", "b"}, ds.Keys())
}

func TestDataStoreClear(t *testing.T) {
	ds := NewDataStore()
	ds.Put("a", 1)

	ds.Clear()

	assert.Equal(t, 0, ds.Size())
}

func TestDataStoreConcurrentAccess(t *testing.T) {
	ds := NewDataStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			ds.Put("key", n)
		}(i)
		go func() {
			defer wg.Done()
			ds.Get("key")
		}()
	}
	wg.Wait()

	assert.True(t, ds.Contains("key"))
}
