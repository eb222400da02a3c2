package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLite persists a product catalog to SQLite.
// It is suitable for single-process production use.
type SQLite struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// Compile-time interface check.
var _ Store = (*SQLite)(nil)

// NewSQLite creates a SQLite catalog store.
// The path should be a file path (e.g., "./catalog.db") or ":memory:" for testing.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			image_url TEXT NOT NULL,
			category TEXT NOT NULL,
			features TEXT NOT NULL,
			specifications TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Put inserts or replaces a product.
func (s *SQLite) Put(ctx context.Context, p Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	features, err := json.Marshal(p.Features)
	if err != nil {
		return fmt.Errorf("encode features: %w", err)
	}
	specs, err := json.Marshal(p.Specifications)
	if err != nil {
		return fmt.Errorf("encode specifications: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO products (id, name, image_url, category, features, specifications)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			image_url = excluded.image_url,
			category = excluded.category,
			features = excluded.features,
			specifications = excluded.specifications
	`, p.ID, p.Name, p.ImageURL, p.Category, features, specs)

	if err != nil {
		return fmt.Errorf("put product: %w", err)
	}
	return nil
}

// Lookup implements Store.
func (s *SQLite) Lookup(ctx context.Context, id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	var (
		p        Product
		features []byte
		specs    []byte
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, image_url, category, features, specifications
		FROM products WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.ImageURL, &p.Category, &features, &specs)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup product: %w", err)
	}

	if err := json.Unmarshal(features, &p.Features); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}
	if err := json.Unmarshal(specs, &p.Specifications); err != nil {
		return nil, fmt.Errorf("decode specifications: %w", err)
	}
	return &p, nil
}

// Delete removes a product.
func (s *SQLite) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// Close closes the underlying database. Idempotent.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
