package entity

import "time"

// Category representa una categoría de productos. La unicidad del nombre es
// case-insensitive y solo aplica entre categorías activas.
type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// ProductCount es derivado (JOIN con products); solo en lecturas con stats.
	ProductCount int
}
