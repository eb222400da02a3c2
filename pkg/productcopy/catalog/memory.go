package catalog

import (
	"context"
	"sync"
)

// Memory is an in-memory Store. Safe for concurrent use.
type Memory struct {
	mu       sync.RWMutex
	products map[string]Product
}

// Compile-time interface check.
var _ Store = (*Memory)(nil)

// NewMemory creates a Memory store holding the given products.
// Call with SampleProducts() for a demo catalog.
func NewMemory(products ...Product) *Memory {
	m := &Memory{products: make(map[string]Product, len(products))}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

// Lookup implements Store.
func (m *Memory) Lookup(_ context.Context, id string) (*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// Put adds or replaces a product.
func (m *Memory) Put(p Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
}

// SampleProducts returns a small demo catalog.
func SampleProducts() []Product {
	return []Product{
		{
			ID:       "wbh-001",
			Name:     "AeroSound Pro Wireless Headphones",
			ImageURL: "https://images.example.com/products/wbh-001.jpg",
			Features: []string{
				"Active noise cancellation",
				"40-hour battery life",
				"Bluetooth 5.3 with multipoint pairing",
				"Foldable over-ear design",
			},
			Category: "Audio",
			Specifications: map[string]string{
				"driver":      "40mm dynamic",
				"weight":      "254g",
				"charging":    "USB-C, 10 min for 5 hours",
				"water_rating": "IPX4",
			},
		},
		{
			ID:       "esm-204",
			Name:     "BaristaOne Compact Espresso Machine",
			ImageURL: "https://images.example.com/products/esm-204.jpg",
			Features: []string{
				"15-bar pressure pump",
				"Integrated milk frother",
				"One-touch single and double shots",
				"Removable 1.2L water tank",
			},
			Category: "Kitchen Appliances",
			Specifications: map[string]string{
				"power":    "1350W",
				"capacity": "1.2L",
				"material": "brushed stainless steel",
			},
		},
		{
			ID:       "trk-330",
			Name:     "TrailMate 55L Hiking Backpack",
			ImageURL: "https://images.example.com/products/trk-330.jpg",
			Features: []string{
				"Adjustable ventilated suspension",
				"Integrated rain cover",
				"Hydration reservoir sleeve",
				"Ripstop nylon shell",
			},
			Category: "Outdoor Gear",
			Specifications: map[string]string{
				"volume":   "55L",
				"weight":   "1.9kg",
				"material": "210D ripstop nylon",
			},
		},
	}
}
