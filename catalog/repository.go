package catalog

import (
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
	"gorm.io/gorm"
)

// Repository persists the catalog and completed orders. The store stays the
// source of truth at runtime; writes replace the product table wholesale, so
// readers never observe a partial mutation.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Load returns all persisted products in insertion order.
func (r *Repository) Load() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ReplaceAll swaps the persisted catalog for the given product list.
func (r *Repository) ReplaceAll(products []models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
			return err
		}
		if len(products) == 0 {
			return nil
		}
		return tx.Create(&products).Error
	})
}

// SaveOrder records a completed checkout.
func (r *Repository) SaveOrder(order *models.Order) error {
	return r.db.Create(order).Error
}
