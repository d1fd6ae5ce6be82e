package wishlist

import (
	"sync"

	"bookshop/internal/catalog"

	"github.com/rs/zerolog"
)

// Outcome reports what Add did. Adding a book that is already saved leaves
// the list unchanged and yields OutcomeAlreadyPresent.
type Outcome int

const (
	OutcomeAdded Outcome = iota
	OutcomeAlreadyPresent
)

// Persistence stores the full wishlist of one owner. The store writes
// through it on every mutation and reads it back once at construction.
type Persistence interface {
	Load(owner string) ([]catalog.Book, error)
	Save(owner string, books []catalog.Book) error
}

// Store holds one user's wishlist with set semantics: a book id appears at
// most once. Mutations cannot fail; a failed persistence write is logged
// and the in-memory state stands.
type Store struct {
	mu      sync.Mutex
	owner   string
	items   []catalog.Book
	persist Persistence
	logger  zerolog.Logger
}

// NewStore rehydrates the owner's wishlist. Missing or unreadable data
// degrades to an empty list.
func NewStore(owner string, persist Persistence, logger zerolog.Logger) *Store {
	s := &Store{owner: owner, persist: persist, logger: logger}
	items, err := persist.Load(owner)
	if err != nil {
		logger.Warn().Err(err).Str("owner", owner).Msg("wishlist rehydration failed, starting empty")
		return s
	}
	s.items = items
	return s
}

func (s *Store) save() {
	if err := s.persist.Save(s.owner, s.items); err != nil {
		s.logger.Error().Err(err).Str("owner", s.owner).Msg("wishlist persistence write failed")
	}
}

// Add appends the book unless it is already present.
func (s *Store) Add(b catalog.Book) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.ID == b.ID {
			return OutcomeAlreadyPresent
		}
	}
	s.items = append(s.items, b)
	s.save()
	return OutcomeAdded
}

// Remove deletes the matching entry if present.
func (s *Store) Remove(bookID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.ID == bookID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.save()
			return
		}
	}
}

// Contains reports membership.
func (s *Store) Contains(bookID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.ID == bookID {
			return true
		}
	}
	return false
}

// Items returns a copy of the saved books in insertion order.
func (s *Store) Items() []catalog.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Book, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of saved books.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Manager hands out one Store per owner, rehydrating on first access.
type Manager struct {
	mu      sync.Mutex
	stores  map[string]*Store
	persist Persistence
	logger  zerolog.Logger
}

func NewManager(persist Persistence, logger zerolog.Logger) *Manager {
	return &Manager{
		stores:  make(map[string]*Store),
		persist: persist,
		logger:  logger,
	}
}

func (m *Manager) Get(owner string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stores[owner]
	if !ok {
		s = NewStore(owner, m.persist, m.logger)
		m.stores[owner] = s
	}
	return s
}
