package panel

import (
	"fmt"
	"strings"

	"github.com/iyhunko/treko-inventory/internal/store"
)

// Catalog is the local copy of the product list plus the search term and
// the delete confirmation step. It does no I/O and is not safe for
// concurrent use; Manager serializes access to it.
type Catalog struct {
	products   []store.Product
	searchTerm string
	load       Loadable

	deletePending bool
	deleteID      int64
}

// Products returns a copy of the full list.
func (c *Catalog) Products() []store.Product {
	return append([]store.Product(nil), c.products...)
}

func (c *Catalog) SearchTerm() string {
	return c.searchTerm
}

func (c *Catalog) SetSearchTerm(term string) {
	c.searchTerm = term
}

// Filtered applies the current search term.
func (c *Catalog) Filtered() []store.Product {
	return Filter(c.products, c.searchTerm)
}

// Filter returns the products whose name or description contains term,
// ignoring case. An empty term matches everything. products is not modified.
func Filter(products []store.Product, term string) []store.Product {
	if term == "" {
		return append([]store.Product(nil), products...)
	}
	needle := strings.ToLower(term)
	out := make([]store.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Heading is the list title with the filtered count.
func (c *Catalog) Heading() string {
	return fmt.Sprintf("Produtos em Estoque (%d)", len(c.Filtered()))
}

// EmptyText is shown when the filtered list is empty.
func (c *Catalog) EmptyText() string {
	if c.searchTerm != "" {
		return MsgNoMatches
	}
	return MsgNoProducts
}

func (c *Catalog) replaceAll(products []store.Product) {
	c.products = append([]store.Product(nil), products...)
}

func (c *Catalog) prepend(p store.Product) {
	c.products = append([]store.Product{p}, c.products...)
}

// replace swaps the entry with the given id for p, keeping its position.
func (c *Catalog) replace(id int64, p store.Product) bool {
	for i := range c.products {
		if c.products[i].ID == id {
			next := c.Products()
			next[i] = p
			c.products = next
			return true
		}
	}
	return false
}

func (c *Catalog) remove(id int64) bool {
	next := make([]store.Product, 0, len(c.products))
	for _, p := range c.products {
		if p.ID != id {
			next = append(next, p)
		}
	}
	removed := len(next) != len(c.products)
	c.products = next
	return removed
}

// RequestDelete asks for confirmation before deleting id. A second
// request replaces the first.
func (c *Catalog) RequestDelete(id int64) {
	c.deletePending = true
	c.deleteID = id
}

// CancelDelete drops the pending confirmation without any request.
func (c *Catalog) CancelDelete() {
	c.deletePending = false
	c.deleteID = 0
}

// PendingDelete returns the id awaiting confirmation.
func (c *Catalog) PendingDelete() (int64, bool) {
	return c.deleteID, c.deletePending
}

func (c *Catalog) takePendingDelete() (int64, bool) {
	id, ok := c.PendingDelete()
	c.CancelDelete()
	return id, ok
}
