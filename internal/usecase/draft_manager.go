package usecase

import (
	"errors"
	"sync"

	"kaenpro_os/internal/domain/entities"
	"kaenpro_os/internal/usecase/interfaces"
)

var ErrDraftNotFound = errors.New("draft not found")

// DraftManager is the registry of in-progress composers, keyed by a generated
// draft id. Each draft belongs to the session that opened it; a finalized
// draft stays readable until discarded, and a new order always needs a fresh
// draft.
type DraftManager struct {
	mu     sync.RWMutex
	drafts map[string]*OrderComposer

	orders      interfaces.IOrderRepository
	suggestions *SuggestionUseCase
	ids         interfaces.IIDGenerator
	clock       interfaces.IClock
}

func NewDraftManager(
	orders interfaces.IOrderRepository,
	suggestions *SuggestionUseCase,
	ids interfaces.IIDGenerator,
	clock interfaces.IClock,
) *DraftManager {
	return &DraftManager{
		drafts:      make(map[string]*OrderComposer),
		orders:      orders,
		suggestions: suggestions,
		ids:         ids,
		clock:       clock,
	}
}

func (m *DraftManager) Create(session entities.UserSession) (string, *OrderComposer, error) {
	if session.IsZero() {
		return "", nil, ErrMissingSession
	}
	id := m.ids.NewID()
	c := NewOrderComposer(session, m.orders, m.suggestions, m.ids, m.clock)

	m.mu.Lock()
	m.drafts[id] = c
	m.mu.Unlock()
	return id, c, nil
}

func (m *DraftManager) Get(id string) (*OrderComposer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return c, nil
}

func (m *DraftManager) Discard(id string) {
	m.mu.Lock()
	delete(m.drafts, id)
	m.mu.Unlock()
}
