// Package storage provides the process-local entity store for prompts and
// collections. A single lock covers both maps so cross-entity rules, such as
// orphaning prompts when their collection is deleted, are observed atomically.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/pkg/lifecycle"
)

// System is the sole owner of prompt and collection state.
// Absence is reported through boolean returns, never errors.
type System interface {
	// Start registers lifecycle hooks that report store state.
	Start(lc *lifecycle.Coordinator) error

	CreatePrompt(p models.Prompt) (models.Prompt, error)
	GetPrompt(id string) (models.Prompt, bool)
	ListPrompts() []models.Prompt
	UpdatePrompt(id string, p models.Prompt) (models.Prompt, bool)
	DeletePrompt(id string) bool
	PromptsByCollection(collectionID string) []models.Prompt

	// AddPrompt inserts p after confirming its collection reference exists,
	// within one lock hold. Returns ErrCollectionNotFound or ErrDuplicateID.
	AddPrompt(p models.Prompt) (models.Prompt, error)
	// ModifyPrompt applies fn to the stored prompt, validates the resulting
	// collection reference and refreshes UpdatedAt, all within one lock hold.
	// UpdatedAt always advances past its previous value.
	ModifyPrompt(id string, fn func(models.Prompt) (models.Prompt, error)) (models.Prompt, error)

	CreateCollection(c models.Collection) (models.Collection, error)
	GetCollection(id string) (models.Collection, bool)
	ListCollections() []models.Collection
	// DeleteCollection removes the collection and orphans every prompt that
	// referenced it, refreshing their UpdatedAt. Reports whether it existed.
	DeleteCollection(id string) bool

	// Now returns the store clock's current time.
	Now() time.Time
	Stats() Stats
	// Clear empties both maps. Intended for test setup.
	Clear()
}

// Stats reports entity counts.
type Stats struct {
	Prompts     int `json:"prompts"`
	Collections int `json:"collections"`
}

type memory struct {
	mu          sync.RWMutex
	prompts     map[string]models.Prompt
	collections map[string]models.Collection
	clock       models.Clock
	logger      *slog.Logger
}

// New creates an empty in-memory store. A nil clock uses models.SystemClock.
func New(logger *slog.Logger, clock models.Clock) System {
	if clock == nil {
		clock = models.SystemClock
	}
	return &memory{
		prompts:     make(map[string]models.Prompt),
		collections: make(map[string]models.Collection),
		clock:       clock,
		logger:      logger.With("system", "storage"),
	}
}

func (m *memory) Start(lc *lifecycle.Coordinator) error {
	m.logger.Info("starting storage system")

	lc.OnStartup(func() {
		m.logger.Info("storage ready", "backend", "memory")
	})

	lc.OnShutdown(func(context.Context) {
		stats := m.Stats()
		m.logger.Info(
			"storage released",
			"prompts", stats.Prompts,
			"collections", stats.Collections,
		)
	})

	return nil
}

func (m *memory) CreatePrompt(p models.Prompt) (models.Prompt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.insertPrompt(p)
}

func (m *memory) GetPrompt(id string) (models.Prompt, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.prompts[id]
	if !ok {
		return models.Prompt{}, false
	}
	return p.Clone(), true
}

func (m *memory) ListPrompts() []models.Prompt {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Prompt, 0, len(m.prompts))
	for _, p := range m.prompts {
		out = append(out, p.Clone())
	}
	return out
}

func (m *memory) UpdatePrompt(id string, p models.Prompt) (models.Prompt, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.prompts[id]; !ok {
		return models.Prompt{}, false
	}
	m.prompts[id] = p.Clone()
	return p.Clone(), true
}

func (m *memory) DeletePrompt(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.prompts[id]; !ok {
		return false
	}
	delete(m.prompts, id)
	return true
}

func (m *memory) PromptsByCollection(collectionID string) []models.Prompt {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Prompt, 0)
	for _, p := range m.prompts {
		if p.InCollection(collectionID) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (m *memory) AddPrompt(p models.Prompt) (models.Prompt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkReference(p.CollectionID); err != nil {
		return models.Prompt{}, err
	}
	return m.insertPrompt(p)
}

func (m *memory) ModifyPrompt(
	id string,
	fn func(models.Prompt) (models.Prompt, error),
) (models.Prompt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.prompts[id]
	if !ok {
		return models.Prompt{}, ErrPromptNotFound
	}

	next, err := fn(current.Clone())
	if err != nil {
		return models.Prompt{}, err
	}

	if err := m.checkReference(next.CollectionID); err != nil {
		return models.Prompt{}, err
	}

	next.ID = current.ID
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = m.advance(current.UpdatedAt)

	m.prompts[id] = next.Clone()
	return next.Clone(), nil
}

func (m *memory) CreateCollection(c models.Collection) (models.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.collections[c.ID]; exists {
		return models.Collection{}, fmt.Errorf("collection %s: %w", c.ID, ErrDuplicateID)
	}
	c.Description = cloneString(c.Description)
	m.collections[c.ID] = c
	return c, nil
}

func (m *memory) GetCollection(id string) (models.Collection, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.collections[id]
	if !ok {
		return models.Collection{}, false
	}
	c.Description = cloneString(c.Description)
	return c, true
}

func (m *memory) ListCollections() []models.Collection {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Collection, 0, len(m.collections))
	for _, c := range m.collections {
		c.Description = cloneString(c.Description)
		out = append(out, c)
	}
	return out
}

func (m *memory) DeleteCollection(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.collections[id]; !ok {
		return false
	}
	delete(m.collections, id)

	orphaned := 0
	for pid, p := range m.prompts {
		if !p.InCollection(id) {
			continue
		}
		p.CollectionID = nil
		p.UpdatedAt = m.advance(p.UpdatedAt)
		m.prompts[pid] = p
		orphaned++
	}

	m.logger.Info("collection deleted", "id", id, "orphaned_prompts", orphaned)
	return true
}

func (m *memory) Now() time.Time {
	return m.clock()
}

func (m *memory) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Stats{
		Prompts:     len(m.prompts),
		Collections: len(m.collections),
	}
}

func (m *memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.prompts)
	clear(m.collections)
}

// insertPrompt requires m.mu to be held for writing.
func (m *memory) insertPrompt(p models.Prompt) (models.Prompt, error) {
	if _, exists := m.prompts[p.ID]; exists {
		return models.Prompt{}, fmt.Errorf("prompt %s: %w", p.ID, ErrDuplicateID)
	}
	m.prompts[p.ID] = p.Clone()
	return p.Clone(), nil
}

// checkReference requires m.mu to be held.
func (m *memory) checkReference(collectionID *string) error {
	if collectionID == nil {
		return nil
	}
	if _, ok := m.collections[*collectionID]; !ok {
		return ErrCollectionNotFound
	}
	return nil
}

func (m *memory) advance(prev time.Time) time.Time {
	now := m.clock()
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
