// Package catalog provides product lookup backends for the copy generator:
// an in-memory store seeded with sample products and a SQLite store for
// persistent catalogs.
package catalog

import (
	"context"
	"errors"
)

// Lookup errors.
var (
	// ErrNotFound is returned when no product has the requested ID.
	ErrNotFound = errors.New("product not found")

	// ErrStoreClosed is returned when operating on a closed store.
	ErrStoreClosed = errors.New("catalog store is closed")
)

// Product is a catalog entry.
type Product struct {
	ID             string            `json:"product_id"`
	Name           string            `json:"product_name"`
	ImageURL       string            `json:"product_image_url"`
	Features       []string          `json:"product_features"`
	Category       string            `json:"product_category"`
	Specifications map[string]string `json:"product_specifications"`
}

// Store looks up products by ID.
type Store interface {
	// Lookup returns the product with the given ID, or ErrNotFound.
	Lookup(ctx context.Context, id string) (*Product, error)
}
