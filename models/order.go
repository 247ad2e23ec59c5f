package models

import "time"

// Order is the persisted record of a completed checkout.
type Order struct {
	ID            string        `json:"id" gorm:"primaryKey"`
	UserID        string        `json:"user_id" gorm:"index"`
	Items         []OrderItem   `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"type:VARCHAR(20)"`
	Address       Address       `json:"address" gorm:"embedded;embeddedPrefix:addr_"`
	DeliveryDate  string        `json:"delivery_date"`
	CreatedAt     time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID          uint    `json:"-" gorm:"primaryKey"`
	OrderID     string  `json:"-" gorm:"index"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
}
