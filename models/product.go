package models

// Product is the single product record shared by the catalog store, the
// assistant, and the persistence layer. Other components hold copies; the
// catalog store owns the canonical list.
type Product struct {
	ID          string   `json:"id" gorm:"primaryKey"`
	Name        string   `json:"name" gorm:"not null"`
	Description string   `json:"description"`
	Price       float64  `json:"price" gorm:"not null"`
	Category    string   `json:"category" gorm:"index"` // references Category.ID
	Image       string   `json:"image"`
	InStock     bool     `json:"inStock"`
	Tags        []string `json:"tags" gorm:"serializer:json"`
}
