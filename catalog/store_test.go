package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
)

func seededStore() *Store {
	return NewStore(SeedCategories(), SeedProducts())
}

func productIDs(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestSearchShortcutReturnsWholeCategory(t *testing.T) {
	s := seededStore()

	// A broad term maps straight to its category, bypassing text matching.
	results := s.Search("electronics")
	assert.Equal(t, productIDs(s.ByCategory("electronics")), productIDs(results))

	// Each shortcut term of a group lands on the same category.
	assert.Equal(t, productIDs(s.Search("drink")), productIDs(s.ByCategory("food")))
	assert.Equal(t, productIDs(s.Search("beverage")), productIDs(s.ByCategory("food")))

	// The term only needs to appear somewhere in the query.
	assert.Equal(t, productIDs(s.Search("cheap electronic stuff")), productIDs(s.ByCategory("electronics")))
}

func TestSearchMatchesNameDescriptionAndTags(t *testing.T) {
	s := seededStore()

	byName := s.Search("blender")
	require.Len(t, byName, 1)
	assert.Equal(t, "Kitchen Blender", byName[0].Name)

	// "noise-canceling" appears only in the headphones description.
	byDescription := s.Search("noise-canceling")
	require.Len(t, byDescription, 1)
	assert.Equal(t, "p1", byDescription[0].ID)

	// "wearable" is a tag on the smart watch.
	byTag := s.Search("wearable")
	require.Len(t, byTag, 1)
	assert.Equal(t, "Smart Watch", byTag[0].Name)

	assert.Empty(t, s.Search("quantum flux capacitor"))
}

func TestByCategoryKeepsInsertionOrder(t *testing.T) {
	s := seededStore()

	clothing := s.ByCategory("clothing")
	require.NotEmpty(t, clothing)
	assert.Equal(t, []string{"p4", "p5", "p34", "p35", "p36", "p37", "p38"}, productIDs(clothing))
}

func TestFindByNameFuzzy(t *testing.T) {
	s := seededStore()

	// Query contained in a product name.
	p, ok := s.FindByNameFuzzy("headphones")
	require.True(t, ok)
	assert.Equal(t, "Wireless Headphones", p.Name)

	// Product name contained in the query.
	p, ok = s.FindByNameFuzzy("those nice wireless headphones please")
	require.True(t, ok)
	assert.Equal(t, "p1", p.ID)

	// Case-insensitive.
	p, ok = s.FindByNameFuzzy("SMART WATCH")
	require.True(t, ok)
	assert.Equal(t, "Smart Watch", p.Name)

	_, ok = s.FindByNameFuzzy("")
	assert.False(t, ok)

	_, ok = s.FindByNameFuzzy("nonexistent gadget")
	assert.False(t, ok)
}

func TestAddUpdateDelete(t *testing.T) {
	s := seededStore()
	before := len(s.Products())

	added := s.Add(models.Product{Name: "Test Gadget", Price: 9.99, Category: "electronics"})
	assert.NotEmpty(t, added.ID)
	assert.Len(t, s.Products(), before+1)

	ok := s.Update(added.ID, func(p *models.Product) {
		p.Price = 19.99
		p.ID = "attempted-rewrite"
	})
	require.True(t, ok)

	got, found := s.FindByID(added.ID)
	require.True(t, found)
	assert.Equal(t, 19.99, got.Price)

	assert.False(t, s.Update("no-such-id", func(p *models.Product) {}))

	assert.True(t, s.Delete(added.ID))
	assert.False(t, s.Delete(added.ID))
	assert.Len(t, s.Products(), before)
}

func TestStoreReturnsCopies(t *testing.T) {
	s := seededStore()

	products := s.Products()
	products[0].Name = "mutated"

	fresh, ok := s.FindByID(products[0].ID)
	require.True(t, ok)
	assert.Equal(t, "Wireless Headphones", fresh.Name)
}
