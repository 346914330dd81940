package port

import (
	"context"

	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
)

// ProductCatalog is the read-only lookup the order service depends on.
type ProductCatalog interface {
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)
}

type ProductRepository interface {
	ProductCatalog

	ListProducts(ctx context.Context) ([]domain.Product, error)
	InsertProduct(ctx context.Context, product domain.NewProduct) (domain.Product, error)
	UpdateProduct(ctx context.Context, productID int64, product domain.NewProduct) (domain.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}
