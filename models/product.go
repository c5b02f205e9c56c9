package models

import (
	"time"

	"github.com/lib/pq"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Discount    *float64       `json:"discount"`
	Stock       int            `gorm:"not null" json:"stock"`
	Category    string         `gorm:"not null;index" json:"category"`
	Subcategory string         `json:"subcategory"`
	Img         pq.StringArray `gorm:"type:text[];not null" json:"img"`
	Arrival     string         `gorm:"default:no" json:"arrival"` // "yes" or "no"
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
