package model

import "time"

// Product represents a catalog item with its properties and metadata.
// The ID is assigned by the database on insert.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	UpdatedAt   time.Time
	CreatedAt   time.Time
}

// InitMeta initializes the product timestamps.
func (p *Product) InitMeta() {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
}

// Touch refreshes the update timestamp.
func (p *Product) Touch() {
	p.UpdatedAt = time.Now().UTC()
}
