// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"slices"
	"strings"
	"sync"
)

// Factory creates a new Surface with the given options.
// Implementations should validate options and return descriptive errors.
type Factory func(opts Options) (Surface, error)

// Backend describes a registered surface implementation.
type Backend struct {
	// Name is the unique identifier for this backend.
	Name string

	// Description is a one-line summary shown by listings.
	Description string

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the backend can run on this system.
	// Nil means always available.
	Available func() bool
}

func (b *Backend) available() bool {
	return b.Available == nil || b.Available()
}

// Registry manages named surface backends. The benchmark selects its
// drawing target by name through the package-level registry.
//
// Example registration:
//
//	func init() {
//	    surface.Register(surface.Backend{Name: "mine", Priority: 20, Factory: newMine})
//	}
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewRegistry creates a new empty registry.
// Most code should use the package-level Register and New functions.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

var defaultRegistry = NewRegistry()

// Register adds a backend to the package registry, replacing any backend
// with the same name.
func Register(b Backend) {
	defaultRegistry.Register(b)
}

// Backends returns the package registry's backends, highest priority first.
func Backends() []Backend {
	return defaultRegistry.Backends()
}

// New creates a surface from the named backend of the package registry.
// An empty name selects the best available backend.
func New(name string, opts Options) (Surface, error) {
	return defaultRegistry.New(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.backends == nil {
		r.backends = make(map[string]Backend)
	}
	r.backends[b.Name] = b
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.backends, name)
}

// Lookup returns the backend registered under name.
func (r *Registry) Lookup(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.backends[name]
	return b, ok
}

// Backends returns all backends sorted by priority, highest first. Ties
// are broken by name so the order is stable.
func (r *Registry) Backends() []Backend {
	r.mu.RLock()
	list := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		list = append(list, b)
	}
	r.mu.RUnlock()

	slices.SortFunc(list, func(a, b Backend) int {
		if a.Priority != b.Priority {
			return b.Priority - a.Priority
		}
		return strings.Compare(a.Name, b.Name)
	})
	return list
}

// New creates a surface using the named backend. An empty name tries
// every available backend in priority order and returns the first
// success.
func (r *Registry) New(name string, opts Options) (Surface, error) {
	if name != "" {
		b, ok := r.Lookup(name)
		if !ok {
			return nil, &BackendNotFoundError{Name: name}
		}
		if !b.available() {
			return nil, &BackendUnavailableError{Name: name}
		}
		return b.Factory(opts)
	}

	var errs []error
	for _, b := range r.Backends() {
		if !b.available() {
			continue
		}
		s, err := b.Factory(opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nil, ErrNoBackendAvailable
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no surface backends are registered
	// or available on the current system.
	ErrNoBackendAvailable = errors.New("surface: no backend available")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

func init() {
	Register(Backend{
		Name:        "image",
		Description: "software rasterizer into image.RGBA (x/image/vector)",
		Priority:    10,
		Factory: func(opts Options) (Surface, error) {
			s := NewImageSurface(opts.Width, opts.Height)
			s.SetAntialias(opts.Antialias)
			if opts.BackgroundColor != nil {
				s.Clear(opts.BackgroundColor)
			}
			return s, nil
		},
	})
}
