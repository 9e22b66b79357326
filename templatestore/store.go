package templatestore

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/martingeoffreyprive-hub/DEAL-sub001/doctemplate"
)

var (
	// ErrNotFound reports a template id that does not exist or is not visible to the caller.
	ErrNotFound = errors.New("templatestore: template not found")
	// ErrForbidden reports an operation reserved to the template owner.
	ErrForbidden = errors.New("templatestore: operation not allowed")
	// ErrInvalidTemplate reports a template rejected by validation.
	ErrInvalidTemplate = doctemplate.ErrInvalidTemplate
)

// ListFilter selects the rows returned by RowStore.List. A row matches when
// it belongs to UserID, or when it is public and IncludePublic is set.
type ListFilter struct {
	UserID        string
	IncludePublic bool
	Type          string
}

func (f ListFilter) matches(r Record) bool {
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	return r.UserID == f.UserID || (f.IncludePublic && r.IsPublic)
}

// RowStore is the persistence port of the template service.
// Get, Update, Delete and IncrementUsage return ErrNotFound for unknown ids.
type RowStore interface {
	Insert(ctx context.Context, r Record) error
	Update(ctx context.Context, r Record) error
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, f ListFilter) ([]Record, error)
	Delete(ctx context.Context, id string) error
	IncrementUsage(ctx context.Context, id string) error
}

// MemoryStore is a RowStore kept in memory. Records are copied on the way
// in and out so callers never share state with the store.
type MemoryStore struct {
	mu   sync.RWMutex
	rows map[string]Record
}

var _ RowStore = (*MemoryStore)(nil)

// NewMemoryStore returns a store seeded with copies of records.
func NewMemoryStore(records ...Record) *MemoryStore {
	s := &MemoryStore{rows: make(map[string]Record, len(records))}
	for _, r := range records {
		s.rows[r.ID] = r.clone()
	}
	return s
}

// Insert adds a copy of r; the id must be new
func (s *MemoryStore) Insert(_ context.Context, r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.rows[r.ID]; exists {
		return errors.New("templatestore: duplicate id " + r.ID)
	}
	s.rows[r.ID] = r.clone()
	return nil
}

// Update replaces the editable columns of a row. The owner, creation time
// and usage count stay as stored, like the Postgres UPDATE.
func (s *MemoryStore) Update(_ context.Context, r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, exists := s.rows[r.ID]
	if !exists {
		return ErrNotFound
	}
	next := r.clone()
	next.UserID = current.UserID
	next.CreatedAt = current.CreatedAt
	next.UsageCount = current.UsageCount
	s.rows[r.ID] = next
	return nil
}

// Get returns a copy of the row
func (s *MemoryStore) Get(_ context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rows[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return r.clone(), nil
}

// List returns matching rows, most recently updated first.
func (s *MemoryStore) List(_ context.Context, f ListFilter) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0, len(s.rows))
	for _, r := range s.rows {
		if f.matches(r) {
			out = append(out, r.clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete removes the row
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

// IncrementUsage adds one to the usage count of the row
func (s *MemoryStore) IncrementUsage(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return ErrNotFound
	}
	r.UsageCount++
	s.rows[id] = r
	return nil
}
