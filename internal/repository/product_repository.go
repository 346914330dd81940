package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const productColumns = `id, name, price_amount::text, price_currency, image, type, created_at, updated_at`

type productRepository struct {
	pool *pgxpool.Pool
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM products ORDER BY id`, productColumns))
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanProduct: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns), productID)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, domain.NotFoundError{Entity: domain.EntityProduct, ID: productID}
		}
		return domain.Product{}, fmt.Errorf("scanProduct: %w", err)
	}

	return product, nil
}

func (r *productRepository) InsertProduct(ctx context.Context, product domain.NewProduct) (domain.Product, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO products (name, price_amount, price_currency, image, type)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING %s`, productColumns),
		product.Name, product.Price.Amount, product.Price.Currency.String(), product.Image, product.Type,
	)

	inserted, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("scanProduct: %w", err)
	}

	return inserted, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, productID int64, product domain.NewProduct) (domain.Product, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE products
		 SET name = $2, price_amount = $3, price_currency = $4, image = $5, type = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING %s`, productColumns),
		productID, product.Name, product.Price.Amount, product.Price.Currency.String(), product.Image, product.Type,
	)

	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, domain.NotFoundError{Entity: domain.EntityProduct, ID: productID}
		}
		return domain.Product{}, fmt.Errorf("scanProduct: %w", err)
	}

	return updated, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, productID int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return domain.NotFoundError{Entity: domain.EntityProduct, ID: productID}
	}

	return nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		product       domain.Product
		priceAmount   string
		priceCurrency string
	)

	if err := row.Scan(
		&product.ID, &product.Name, &priceAmount, &priceCurrency,
		&product.Image, &product.Type, &product.CreatedAt, &product.UpdatedAt,
	); err != nil {
		return domain.Product{}, err
	}

	price, err := parseMoney(priceAmount, priceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("parseMoney: %w", err)
	}
	product.Price = price

	return product, nil
}

func parseMoney(amount, currencyCode string) (domain.Money, error) {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Money{}, fmt.Errorf("amount[%s] is not valid: %w", amount, err)
	}

	parsedCurrency, err := currency.ParseISO(currencyCode)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", currencyCode, err)
	}

	return domain.Money{Amount: parsedAmount, Currency: parsedCurrency}, nil
}
