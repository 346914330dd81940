package domain

import "time"

type Product struct {
	ID    int64
	Name  string
	Price Money
	Image string
	Type  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProduct is the creation/update command for a catalog product.
type NewProduct struct {
	Name  string
	Price Money
	Image string
	Type  string
}
