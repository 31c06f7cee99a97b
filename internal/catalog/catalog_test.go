package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmeshcher/courtside-store/internal/model"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	all := c.All()
	require.Len(t, all, 12)

	seen := make(map[int64]bool)
	for _, p := range all {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
		assert.False(t, p.UnitPrice.IsNegative(), "negative price for %d", p.ID)
	}

	p, ok := c.Product(4)
	require.True(t, ok)
	assert.Equal(t, "Bola de Basquete Spalding", p.Name)
	assert.True(t, p.UnitPrice.Equal(decimal.RequireFromString("189.90")))
	assert.Equal(t, model.CategoryBalls, p.Category)
}

func TestProductUnknown(t *testing.T) {
	_, ok := Default().Product(99)
	assert.False(t, ok)
}

func TestByCategoryAndFeatured(t *testing.T) {
	c := Default()

	assert.Len(t, c.ByCategory(model.CategorySneakers), 4)
	assert.Len(t, c.ByCategory(model.CategoryBalls), 4)
	assert.Len(t, c.ByCategory(model.CategoryShirts), 4)

	featured := c.Featured()
	ids := make([]int64, 0, len(featured))
	for _, p := range featured {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{1, 4, 7, 11}, ids)
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].Name = "changed"

	p, _ := c.Product(1)
	assert.Equal(t, "Tênis Nike Air Jordan", p.Name)
}
