// Package dto shapes the outbound JSON representations.
//
// Serialization policy: dateProcessed is always serialized, as null until
// the order first reaches Concluído. The same shape is used by every order
// operation, list/get/create/update alike.
package dto

import (
	"time"

	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID            int64                  `json:"id"`
	UserID        int64                  `json:"userId"`
	Client        string                 `json:"client"`
	Status        string                 `json:"status"`
	DateEntry     time.Time              `json:"dateEntry"`
	DateProcessed *time.Time             `json:"dateProcessed"`
	Products      []OrderProductResponse `json:"products"`
}

type OrderProductResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Image    string          `json:"image"`
	Type     string          `json:"type"`
	Quantity int32           `json:"quantity"`
}

func OrderFromDomain(order domain.Order) OrderResponse {
	return OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		Client:        order.Client,
		Status:        string(order.Status),
		DateEntry:     order.DateEntry,
		DateProcessed: order.DateProcessed,
		Products:      lo.Map(order.Lines, func(line domain.OrderLine, _ int) OrderProductResponse {
			return OrderProductResponse{
				ID:       line.Product.ID,
				Name:     line.Product.Name,
				Price:    line.Product.Price.Amount,
				Currency: line.Product.Price.Currency.String(),
				Image:    line.Product.Image,
				Type:     line.Product.Type,
				Quantity: line.Quantity,
			}
		}),
	}
}

func OrdersFromDomain(orders []domain.Order) []OrderResponse {
	return lo.Map(orders, func(order domain.Order, _ int) OrderResponse {
		return OrderFromDomain(order)
	})
}
