package panel_test

import (
	"testing"

	"github.com/iyhunko/treko-inventory/internal/panel"
	"github.com/iyhunko/treko-inventory/internal/store"
	"github.com/stretchr/testify/assert"
)

var sample = []store.Product{
	{ID: 1, Name: "Caneta", Description: "Tinta azul", Price: 2.5},
	{ID: 2, Name: "Caderno", Description: "Capa dura", Price: 19.9},
	{ID: 3, Name: "Borracha", Price: 0.75},
}

func ids(products []store.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		term string
		want []int64
	}{
		{"", []int64{1, 2, 3}},
		{"CAN", []int64{1}},
		{"ca", []int64{1, 2}},
		{"AZUL", []int64{1}},
		{"dura", []int64{2}},
		{"xyz", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(panel.Filter(sample, tt.term)))
		})
	}
}

func TestFilter_Scenario(t *testing.T) {
	products := []store.Product{{ID: 1, Name: "Caneta", Price: 2.5}}

	assert.Equal(t, []int64{1}, ids(panel.Filter(products, "CAN")))
	assert.Empty(t, panel.Filter(products, "xyz"))
}

func TestFilter_IdempotentAndPure(t *testing.T) {
	before := append([]store.Product(nil), sample...)

	for _, term := range []string{"", "ca", "AZ", "nothing"} {
		once := panel.Filter(sample, term)
		twice := panel.Filter(once, term)
		assert.Equal(t, once, twice, "term %q", term)
	}

	assert.Equal(t, before, sample)
}

func TestCatalog_HeadingAndEmptyText(t *testing.T) {
	var c panel.Catalog
	assert.Equal(t, "Produtos em Estoque (0)", c.Heading())
	assert.Equal(t, "Nenhum produto cadastrado.", c.EmptyText())

	c.SetSearchTerm("xyz")
	assert.Equal(t, "Nenhum produto encontrado.", c.EmptyText())
}

func TestCatalog_DeleteConfirmation(t *testing.T) {
	var c panel.Catalog

	_, pending := c.PendingDelete()
	assert.False(t, pending)

	c.RequestDelete(2)
	id, pending := c.PendingDelete()
	assert.True(t, pending)
	assert.Equal(t, int64(2), id)

	c.RequestDelete(3)
	id, _ = c.PendingDelete()
	assert.Equal(t, int64(3), id, "latest request wins")

	c.CancelDelete()
	_, pending = c.PendingDelete()
	assert.False(t, pending)
}
