package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Catalog memoizes one RecordSet per source for the lifetime of the process.
type Catalog struct {
	loader Loader
	schema Schema
	logger *zap.Logger

	mu   sync.RWMutex
	sets map[string]*RecordSet
	sf   singleflight.Group
}

// New creates a catalog loading sources through loader.
func New(loader Loader, schema Schema, logger *zap.Logger) *Catalog {
	return &Catalog{
		loader: loader,
		schema: schema,
		logger: logger,
		sets:   make(map[string]*RecordSet),
	}
}

// Get returns the record set of source, loading it on first use.
// Concurrent first calls share a single load.
func (c *Catalog) Get(ctx context.Context, source string) (*RecordSet, error) {
	// source may alias a request buffer; the cache keeps its own copy
	source = strings.Clone(source)
	if set, ok := c.Cached(source); ok {
		return set, nil
	}

	result, err, _ := c.sf.Do(source, func() (interface{}, error) {
		// Double-check after joining the flight
		if set, ok := c.Cached(source); ok {
			return set, nil
		}
		return c.load(ctx, source)
	})
	if err != nil {
		return nil, err
	}
	return result.(*RecordSet), nil
}

// Reload loads source again and replaces the cached set on success.
// On failure the previously cached set, if any, stays in place.
func (c *Catalog) Reload(ctx context.Context, source string) (*RecordSet, error) {
	source = strings.Clone(source)
	result, err, _ := c.sf.Do(source, func() (interface{}, error) {
		return c.load(ctx, source)
	})
	if err != nil {
		return nil, err
	}
	return result.(*RecordSet), nil
}

// Cached returns the set of source if it has been loaded.
func (c *Catalog) Cached(source string) (*RecordSet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	set, ok := c.sets[source]
	return set, ok
}

// Schema returns the schema used to decode sources.
func (c *Catalog) Schema() Schema {
	return c.schema
}

func (c *Catalog) load(ctx context.Context, source string) (*RecordSet, error) {
	// A load runs to completion even if the caller that started it goes away
	ctx = context.WithoutCancel(ctx)

	text, err := c.loader.Load(ctx, source)
	if err != nil {
		return nil, &SourceError{Source: source, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return nil, &SourceError{Source: source, Err: errEmptySource}
	}

	records, err := Decode(text, c.schema)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source %s: %w", source, err)
	}

	set, err := NewRecordSet(source, records)
	if err != nil {
		return nil, fmt.Errorf("failed to load source %s: %w", source, err)
	}

	c.mu.Lock()
	c.sets[source] = set
	c.mu.Unlock()

	c.logger.Info("Catalog source loaded", zap.String("source", source), zap.Int("records", set.Len()))
	return set, nil
}
