package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Lookup(t *testing.T) {
	store := NewMemory(SampleProducts()...)

	p, err := store.Lookup(context.Background(), "wbh-001")
	require.NoError(t, err)
	assert.Equal(t, "AeroSound Pro Wireless Headphones", p.Name)
	assert.Equal(t, "Audio", p.Category)
	assert.NotEmpty(t, p.Features)
}

func TestMemory_Lookup_NotFound(t *testing.T) {
	store := NewMemory()

	p, err := store.Lookup(context.Background(), "missing")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Put(t *testing.T) {
	store := NewMemory()

	store.Put(Product{ID: "new-1", Name: "New Product"})

	p, err := store.Lookup(context.Background(), "new-1")
	require.NoError(t, err)
	assert.Equal(t, "New Product", p.Name)

	// Put replaces.
	store.Put(Product{ID: "new-1", Name: "Renamed Product"})
	p, err = store.Lookup(context.Background(), "new-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed Product", p.Name)
}

func TestMemory_LookupReturnsCopy(t *testing.T) {
	store := NewMemory(Product{ID: "p1", Name: "Original"})

	p, err := store.Lookup(context.Background(), "p1")
	require.NoError(t, err)
	p.Name = "Mutated"

	again, err := store.Lookup(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Name)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	store := NewMemory(SampleProducts()...)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Lookup(context.Background(), "esm-204")
			assert.NoError(t, err)
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Put(Product{ID: "tmp", Name: "Temp"})
		}()
	}
	wg.Wait()
}

func TestSampleProducts(t *testing.T) {
	products := SampleProducts()
	require.Len(t, products, 3)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.ImageURL)
		assert.NotEmpty(t, p.Features)
	}
}
