package dto

import (
	"time"

	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	Image     string          `json:"image"`
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func ProductFromDomain(product domain.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price.Amount,
		Currency:  product.Price.Currency.String(),
		Image:     product.Image,
		Type:      product.Type,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

func ProductsFromDomain(products []domain.Product) []ProductResponse {
	return lo.Map(products, func(product domain.Product, _ int) ProductResponse {
		return ProductFromDomain(product)
	})
}
