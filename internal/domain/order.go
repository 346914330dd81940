package domain

import (
	"time"
)

type Order struct {
	ID            int64
	UserID        int64
	Client        string
	Status        OrderStatus
	DateEntry     time.Time
	DateProcessed *time.Time
	Lines         []OrderLine
}

// OrderLine associates an order with a product and the requested quantity.
// Lines are created together with the order and never updated on their own.
type OrderLine struct {
	Product  Product
	Quantity int32
}

// NewOrder is the creation command for an order. Lines reference products
// by id only; the catalog resolves them before persistence.
type NewOrder struct {
	UserID int64
	Client string
	Lines  []NewOrderLine
}

type NewOrderLine struct {
	ProductID int64
	Quantity  int32
}
