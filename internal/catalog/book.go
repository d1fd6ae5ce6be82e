package catalog

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book formats as sold by the storefront.
const (
	FormatHardcover = "Hardcover"
	FormatPaperback = "Paperback"
	FormatEbook     = "eBook"
)

// Book represents a catalog entry. Cart and wishlist code treats it as
// read-only reference data.
type Book struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Price           float64   `json:"price"`
	Rating          float64   `json:"rating"`
	Format          string    `json:"format"`
	Genre           string    `json:"genre"`
	Cover           *string   `json:"cover,omitempty"`
	Description     string    `json:"description,omitempty"`
	ISBN            string    `json:"isbn,omitempty"`
	PublicationDate string    `json:"publication_date,omitempty"`
	InStock         int       `json:"in_stock"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
