package catalog

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
)

// searchShortcuts maps broad category phrasings straight to a category id.
// When a query contains one of these terms, Search short-circuits and returns
// the whole category, ignoring name/description matching. Checked in order,
// first hit wins.
var searchShortcuts = []struct {
	terms      []string
	categoryID string
}{
	{[]string{"electronic", "electronics"}, "electronics"},
	{[]string{"cloth", "clothing"}, "clothing"},
	{[]string{"beauty", "cosmetic"}, "beauty"},
	{[]string{"home", "garden"}, "home-garden"},
	{[]string{"sport", "outdoor"}, "sports"},
	{[]string{"book", "read"}, "books"},
	{[]string{"toy", "game"}, "toys"},
	{[]string{"food", "beverage", "drink"}, "food"},
}

// Store holds the catalog in insertion order. Reads far outnumber writes;
// admin mutation replaces records wholesale under the write lock.
type Store struct {
	mu         sync.RWMutex
	products   []models.Product
	categories []models.Category
}

func NewStore(categories []models.Category, products []models.Product) *Store {
	s := &Store{
		categories: make([]models.Category, len(categories)),
		products:   make([]models.Product, len(products)),
	}
	copy(s.categories, categories)
	copy(s.products, products)
	return s
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) FindByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) CategoryByID(id string) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// ByCategory returns all products of a category in catalog insertion order.
func (s *Store) ByCategory(categoryID string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Product
	for _, p := range s.products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// FindByNameFuzzy matches case-insensitively when either the product name
// contains the query or the query contains the product name. The first match
// in insertion order wins, so ambiguous substrings resolve to the
// earliest-listed product.
func (s *Store) FindByNameFuzzy(name string) (models.Product, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return models.Product{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		pname := strings.ToLower(p.Name)
		if strings.Contains(pname, lower) || strings.Contains(lower, pname) {
			return p, true
		}
	}
	return models.Product{}, false
}

// Search runs the catalog query. Broad category terms short-circuit to the
// whole category; otherwise the query substring-matches product name,
// description, tags, the category id, or the owning category's display
// name/description.
func (s *Store) Search(query string) []models.Product {
	lower := strings.ToLower(strings.TrimSpace(query))

	for _, shortcut := range searchShortcuts {
		for _, term := range shortcut.terms {
			if strings.Contains(lower, term) {
				return s.ByCategory(shortcut.categoryID)
			}
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Product
	for _, p := range s.products {
		if s.matches(p, lower) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) matches(p models.Product, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(p.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Description), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Category), lowerQuery) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	for _, c := range s.categories {
		if c.ID == p.Category &&
			(strings.Contains(strings.ToLower(c.Name), lowerQuery) ||
				strings.Contains(strings.ToLower(c.Description), lowerQuery)) {
			return true
		}
	}
	return false
}

// Add appends a product with a fresh unique id and returns the stored copy.
func (s *Store) Add(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = fmt.Sprintf("p%d", time.Now().UnixNano())
	s.products = append(s.products, p)
	return p
}

// Update applies mutate to the product with the given id, in place.
func (s *Store) Update(id string, mutate func(*models.Product)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			mutate(&s.products[i])
			s.products[i].ID = id // id is stable once assigned
			return true
		}
	}
	return false
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}
