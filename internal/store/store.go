package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Collection is a generic file-backed record store for one named
// collection, persisted as a single JSON array. Every mutation is a full
// load-mutate-save cycle, so all writers on the same collection are
// serialized behind the collection's lock; readers share it.
type Collection[T any] struct {
	name   string
	path   string
	mu     sync.RWMutex
	logger zerolog.Logger
}

// NewCollection creates a Collection persisted at path.
func NewCollection[T any](name, path string, logger zerolog.Logger) *Collection[T] {
	return &Collection[T]{
		name:   name,
		path:   path,
		logger: logger.With().Str("collection", name).Logger(),
	}
}

// Load reads and decodes the full collection under a shared lock.
// A missing, unreadable, or malformed backing file degrades to an empty
// collection instead of failing the caller; anything other than a
// missing file is logged loudly because it may mask data loss.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.load()
}

// Save encodes the full collection and atomically replaces the backing
// file under an exclusive lock. Write failures always propagate.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(records)
}

// Update runs fn inside an exclusive load-mutate-save critical section.
// fn receives the current records and returns the records to persist; if
// fn returns an error, nothing is saved and the error is returned as-is.
func (c *Collection[T]) Update(ctx context.Context, fn func(records []T) ([]T, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	return c.save(updated)
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Normal first-run case, nothing has been saved yet
			c.logger.Debug().Str("path", c.path).Msg("backing file does not exist, treating collection as empty")
			return []T{}, nil
		}
		c.logger.Error().Err(err).Str("path", c.path).Msg("failed to read backing file, treating collection as empty")
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.logger.Error().Err(err).Str("path", c.path).Msg("backing file is corrupt, treating collection as empty")
		return []T{}, nil
	}
	return records, nil
}

func (c *Collection[T]) save(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s collection: %w", c.name, err)
	}

	// Write to a temp file in the same directory and rename it over the
	// backing file, so a crash mid-write never truncates the last
	// committed content.
	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, c.name+"-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s collection: %w", c.name, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s collection: %w", c.name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to flush %s collection: %w", c.name, err)
	}

	if err := os.Rename(tmpPath, c.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s collection file: %w", c.name, err)
	}
	return nil
}
