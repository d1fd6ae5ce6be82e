package cart

import "math"

const (
	// FreeShippingThreshold is inclusive: a subtotal of exactly 50.00
	// ships free.
	FreeShippingThreshold = 50.00
	StandardShippingRate  = 4.99
)

// ShippingCost returns the flat shipping rate, waived at the threshold.
func ShippingCost(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return StandardShippingRate
}

// Summary is the derived pricing of a cart.
type Summary struct {
	Items     []Item  `json:"items"`
	ItemCount int     `json:"item_count"`
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
}

// Summarize derives the full pricing view of a store.
func Summarize(s *Store) Summary {
	subtotal := s.Subtotal()
	shipping := ShippingCost(subtotal)
	return Summary{
		Items:     s.Items(),
		ItemCount: s.ItemCount(),
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     roundCents(subtotal + shipping),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
