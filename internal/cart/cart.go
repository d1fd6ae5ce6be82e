package cart

import (
	"sync"

	"bookshop/internal/catalog"
)

// Item is a cart line: a book snapshot plus a quantity. At most one item per
// book id exists in a cart.
type Item struct {
	BookID   string  `json:"book_id"`
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Price    float64 `json:"price"`
	Cover    *string `json:"cover,omitempty"`
	Quantity int     `json:"quantity"`
}

// Outcome reports what Add did, so the caller can tell the user apart
// "added" from "quantity updated".
type Outcome int

const (
	OutcomeAdded Outcome = iota
	OutcomeQuantityUpdated
)

// Store holds one cart. All operations are total functions over the
// in-memory list; none of them can fail. Mutations are serialized by the
// store's own lock.
type Store struct {
	mu    sync.Mutex
	items []Item
}

func NewStore() *Store {
	return &Store{}
}

// Add increments the quantity when the book is already in the cart,
// otherwise appends a new line with quantity 1.
func (s *Store) Add(b catalog.Book) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].BookID == b.ID {
			s.items[i].Quantity++
			return OutcomeQuantityUpdated
		}
	}
	s.items = append(s.items, Item{
		BookID:   b.ID,
		Title:    b.Title,
		Author:   b.Author,
		Price:    b.Price,
		Cover:    b.Cover,
		Quantity: 1,
	})
	return OutcomeAdded
}

// Remove deletes the matching line. Removing an absent book is a no-op.
func (s *Store) Remove(bookID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(bookID)
}

func (s *Store) removeLocked(bookID string) {
	for i := range s.items {
		if s.items[i].BookID == bookID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line's quantity. A quantity below 1 removes the line
// entirely.
func (s *Store) SetQuantity(bookID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		s.removeLocked(bookID)
		return
	}
	for i := range s.items {
		if s.items[i].BookID == bookID {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart. Invoked after a successful order placement.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Subtotal is the sum of price times quantity over all lines, in cents
// precision.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for _, it := range s.items {
		sum += it.Price * float64(it.Quantity)
	}
	return roundCents(sum)
}

// ItemCount is the sum of quantities over all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}
