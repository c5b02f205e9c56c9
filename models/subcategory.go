package models

// Subcategory belongs to a Category by name. The pairing is enforced in the
// catalog service, not by a database constraint.
type Subcategory struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Category string `gorm:"not null;index" json:"category"`
}
