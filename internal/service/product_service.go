package service

import (
	"context"
	"fmt"

	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/dto"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// defaultCurrency matches the source locale.
var defaultCurrency = currency.MustParseISO("BRL")

// ProductInput carries the caller-facing product fields. Currency is an
// ISO code, BRL when empty.
type ProductInput struct {
	Name     string
	Price    decimal.Decimal
	Currency string
	Image    string
	Type     string
}

type ProductService struct {
	products port.ProductRepository
}

func NewProduct(products port.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("products.ListProducts: %w", err)
	}

	return dto.ProductsFromDomain(products), nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID int64) (dto.ProductResponse, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return dto.ProductResponse{}, fmt.Errorf("products.GetProduct: %w", err)
	}

	return dto.ProductFromDomain(product), nil
}

func (s *ProductService) CreateProduct(ctx context.Context, input ProductInput) (dto.ProductResponse, error) {
	var zero dto.ProductResponse

	if input.Name == "" || input.Price.IsZero() || input.Image == "" || input.Type == "" {
		return zero, domain.ErrMissingFields
	}

	price, err := toMoney(input.Price, input.Currency)
	if err != nil {
		return zero, fmt.Errorf("toMoney: %w", err)
	}

	created, err := s.products.InsertProduct(ctx, domain.NewProduct{
		Name:  input.Name,
		Price: price,
		Image: input.Image,
		Type:  input.Type,
	})
	if err != nil {
		return zero, fmt.Errorf("products.InsertProduct: %w", err)
	}

	return dto.ProductFromDomain(created), nil
}

// UpdateProduct applies a partial update; zero-valued fields keep the
// stored value.
func (s *ProductService) UpdateProduct(ctx context.Context, productID int64, input ProductInput) (dto.ProductResponse, error) {
	var zero dto.ProductResponse

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return zero, fmt.Errorf("products.GetProduct: %w", err)
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if !input.Price.IsZero() {
		product.Price.Amount = input.Price
	}
	if input.Currency != "" {
		unit, err := currency.ParseISO(input.Currency)
		if err != nil {
			return zero, fmt.Errorf("currency.ParseISO[%s]: %w", input.Currency, err)
		}
		product.Price.Currency = unit
	}
	if input.Image != "" {
		product.Image = input.Image
	}
	if input.Type != "" {
		product.Type = input.Type
	}

	updated, err := s.products.UpdateProduct(ctx, productID, domain.NewProduct{
		Name:  product.Name,
		Price: product.Price,
		Image: product.Image,
		Type:  product.Type,
	})
	if err != nil {
		return zero, fmt.Errorf("products.UpdateProduct: %w", err)
	}

	return dto.ProductFromDomain(updated), nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID int64) error {
	if err := s.products.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("products.DeleteProduct: %w", err)
	}

	return nil
}

func toMoney(amount decimal.Decimal, currencyCode string) (domain.Money, error) {
	if currencyCode == "" {
		return domain.Money{Amount: amount, Currency: defaultCurrency}, nil
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency.ParseISO[%s]: %w", currencyCode, err)
	}

	return domain.Money{Amount: amount, Currency: unit}, nil
}
