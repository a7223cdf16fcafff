package stores

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kaan/campora/internal/pkg/apperrors"
	"github.com/kaan/campora/internal/upstream"
)

// Entity is anything with a server-assigned numeric id.
type Entity interface {
	GetID() int64
}

// ListFunc fetches the scoped list (parentID > 0) or the full list
// (parentID == 0, unscoped stores only).
type ListFunc[T Entity] func(ctx context.Context, parentID int64, params upstream.ListParams) ([]T, error)

// CreateFunc posts a new entity under the given parent scope.
type CreateFunc[T Entity] func(ctx context.Context, parentID int64, item T) (*T, error)

// UpdateFunc replaces the entity with the given id.
type UpdateFunc[T Entity] func(ctx context.Context, id int64, item T) (*T, error)

// DeleteFunc removes the entity with the given id upstream.
type DeleteFunc func(ctx context.Context, id int64) error

// Scoped is a read-through store over one upstream entity collection,
// optionally scoped by a parent entity id. It mirrors the dashboard's
// per-entity data hooks: the list is fetched once per scope, mutations
// go upstream first and then splice the local copy, and errors land in
// store state rather than aborting the screen.
type Scoped[T Entity] struct {
	mu       sync.Mutex
	scoped   bool
	parentID int64
	data     []T
	err      error
	loading  bool

	// gen guards against a slow fetch for an abandoned scope overwriting
	// state that belongs to a newer one.
	gen uint64

	list   ListFunc[T]
	create CreateFunc[T]
	update UpdateFunc[T]
	remove DeleteFunc
	logger zerolog.Logger
}

// NewScoped creates a store that requires a parent id before any
// operation touches the network.
func NewScoped[T Entity](list ListFunc[T], create CreateFunc[T], update UpdateFunc[T], remove DeleteFunc, logger zerolog.Logger) *Scoped[T] {
	return &Scoped[T]{scoped: true, list: list, create: create, update: update, remove: remove, logger: logger}
}

// NewUnscoped creates a store over a collection with no parent
// (institutions, courses, students-all, users).
func NewUnscoped[T Entity](list ListFunc[T], create CreateFunc[T], update UpdateFunc[T], remove DeleteFunc, logger zerolog.Logger) *Scoped[T] {
	return &Scoped[T]{list: list, create: create, update: update, remove: remove, logger: logger}
}

// SetParent switches the store to a new parent scope. Changing parent
// clears the loaded list and invalidates any in-flight fetch.
func (s *Scoped[T]) SetParent(parentID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.parentID == parentID {
		return
	}
	s.parentID = parentID
	s.data = nil
	s.err = nil
	s.gen++
}

// Parent returns the current parent scope id (0 when unset).
func (s *Scoped[T]) Parent() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parentID
}

// guarded reports whether mutations must be refused for lack of a parent
// scope. Fetch is not guarded: list closures fall back to the "all" call
// (or an empty result for strictly parent-owned collections) themselves.
func (s *Scoped[T]) guarded() bool {
	return s.scoped && s.parentID == 0
}

// Fetch loads the list for the current scope: the scoped list when a
// parent id is set, the "all" list otherwise. A response belonging to a
// scope that changed mid-flight is discarded.
func (s *Scoped[T]) Fetch(ctx context.Context, params upstream.ListParams) ([]T, error) {
	s.mu.Lock()
	parentID := s.parentID
	gen := s.gen
	s.loading = true
	s.mu.Unlock()

	items, err := s.list(ctx, parentID, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// Scope moved on while this fetch was in flight.
		s.logger.Debug().Int64("parentID", parentID).Msg("Discarding stale list response")
		return nil, apperrors.ErrStaleResponse
	}
	s.loading = false
	if err != nil {
		s.err = err
		return nil, err
	}
	s.err = nil
	s.data = items
	return s.snapshotLocked(), nil
}

// Create posts a new entity under the current scope and appends it to the
// local list. With a missing parent it is a no-op returning nil with no
// network call. Failures are recorded in store state and returned.
func (s *Scoped[T]) Create(ctx context.Context, item T) (*T, error) {
	s.mu.Lock()
	if s.guarded() {
		s.mu.Unlock()
		return nil, apperrors.ErrParentScopeMissing
	}
	parentID := s.parentID
	gen := s.gen
	s.mu.Unlock()

	created, err := s.create(ctx, parentID, item)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err
		return nil, err
	}
	s.err = nil
	if s.gen == gen && created != nil {
		s.data = append(s.data, *created)
	}
	return created, nil
}

// Update replaces the entity upstream and then in place in the local list.
func (s *Scoped[T]) Update(ctx context.Context, id int64, item T) (*T, error) {
	s.mu.Lock()
	if s.guarded() {
		s.mu.Unlock()
		return nil, apperrors.ErrParentScopeMissing
	}
	gen := s.gen
	s.mu.Unlock()

	updated, err := s.update(ctx, id, item)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err
		return nil, err
	}
	s.err = nil
	if s.gen == gen && updated != nil {
		for i := range s.data {
			if s.data[i].GetID() == id {
				s.data[i] = *updated
				break
			}
		}
	}
	return updated, nil
}

// Delete removes the entity upstream and then from the local list.
func (s *Scoped[T]) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	if s.guarded() {
		s.mu.Unlock()
		return false, apperrors.ErrParentScopeMissing
	}
	gen := s.gen
	s.mu.Unlock()

	err := s.remove(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err
		return false, err
	}
	s.err = nil
	if s.gen == gen {
		for i := range s.data {
			if s.data[i].GetID() == id {
				s.data = append(s.data[:i], s.data[i+1:]...)
				break
			}
		}
	}
	return true, nil
}

// Data returns a snapshot of the loaded list.
func (s *Scoped[T]) Data() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Err returns the last recorded operation error, nil after a success.
func (s *Scoped[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Loading reports whether a fetch is in flight.
func (s *Scoped[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Scoped[T]) snapshotLocked() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)
	return out
}
