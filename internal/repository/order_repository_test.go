package repository_test

import (
	"sort"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/port"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

type orderRepositorySuite struct {
	suite.Suite

	pool      *pgxpool.Pool
	container testcontainers.Container

	repo     port.OrderRepository
	users    port.UserRepository
	products port.ProductRepository
}

// entry point to run the tests in the suite
func TestOrderRepositorySuite(t *testing.T) {
	// Verifies no leaks after all tests in the suite run.
	defer goleak.VerifyNone(t)

	suite.Run(t, new(orderRepositorySuite))
}

// before all tests in the suite
func (suite *orderRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)

	suite.container, connStr, err = startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo = repository.NewOrder(suite.pool)
	suite.users = repository.NewUser(suite.pool)
	suite.products = repository.NewProduct(suite.pool)
}

// after all tests in the suite
func (suite *orderRepositorySuite) TearDownSuite() {
	ctx := suite.T().Context()

	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(ctx))
	}
}

func (suite *orderRepositorySuite) TestInsertOrder() {
	defer suite.deleteAll()

	user := suite.createUser()
	product1 := suite.createProduct()
	product2 := suite.createProduct()

	tests := []struct {
		name      string
		orderFunc func() domain.NewOrder
		wantError string
	}{
		{
			name: "valid order with two lines: ok",
			orderFunc: func() domain.NewOrder {
				return domain.NewOrder{
					UserID: user.ID,
					Client: gofakeit.Name(),
					Lines: []domain.NewOrderLine{
						{ProductID: product1.ID, Quantity: 3},
						{ProductID: product2.ID, Quantity: 1},
					},
				}
			},
		},
		{
			name: "no lines: fail",
			orderFunc: func() domain.NewOrder {
				return domain.NewOrder{UserID: user.ID, Client: gofakeit.Name()}
			},
			wantError: "no lines in order",
		},
		{
			name: "unknown product on second line: not found, nothing persisted",
			orderFunc: func() domain.NewOrder {
				return domain.NewOrder{
					UserID: user.ID,
					Client: gofakeit.Name(),
					Lines: []domain.NewOrderLine{
						{ProductID: product1.ID, Quantity: 2},
						{ProductID: 999_999, Quantity: 1},
					},
				}
			},
			wantError: "Produto com ID 999999 não encontrado.",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			ordersBefore := suite.countRows("orders")
			linesBefore := suite.countRows("order_products")

			ttOrder := tt.orderFunc()
			dateEntry := time.Now().UTC().Truncate(time.Microsecond)

			orderID, err := suite.repo.InsertOrder(ctx, ttOrder, dateEntry)
			if tt.wantError != "" {
				require.ErrorContains(t, err, tt.wantError)

				// The whole creation rolls back, header included.
				assert.Equal(t, ordersBefore, suite.countRows("orders"))
				assert.Equal(t, linesBefore, suite.countRows("order_products"))
				return
			}
			require.NoError(t, err)

			actual, err := suite.repo.GetOrder(ctx, orderID)
			require.NoError(t, err)

			assert.Equal(t, domain.OrderStatusPending, actual.Status)
			assert.True(t, dateEntry.Equal(actual.DateEntry))
			assert.Nil(t, actual.DateProcessed)

			expected := domain.Order{
				ID:        orderID,
				UserID:    ttOrder.UserID,
				Client:    ttOrder.Client,
				Status:    domain.OrderStatusPending,
				DateEntry: dateEntry,
				Lines: []domain.OrderLine{
					{Product: product1, Quantity: 3},
					{Product: product2, Quantity: 1},
				},
			}
			assertOrder(t, expected, actual)
		})
	}
}

func (suite *orderRepositorySuite) TestUpdateOrderStatus() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	orderID := suite.createOrder()

	// Processing leaves the processed timestamp empty.
	err := suite.repo.UpdateOrderStatus(ctx, orderID, domain.OrderStatusProcessing, nil)
	require.NoError(t, err)

	order, err := suite.repo.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
	assert.Nil(t, order.DateProcessed)

	// Done persists status and timestamp in one write.
	processedAt := time.Now().UTC().Truncate(time.Microsecond)
	err = suite.repo.UpdateOrderStatus(ctx, orderID, domain.OrderStatusDone, &processedAt)
	require.NoError(t, err)

	order, err = suite.repo.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDone, order.Status)
	require.NotNil(t, order.DateProcessed)
	assert.True(t, processedAt.Equal(*order.DateProcessed))

	// Unknown order id.
	err = suite.repo.UpdateOrderStatus(ctx, 999_999, domain.OrderStatusDone, &processedAt)
	require.ErrorContains(t, err, "Ordem não encontrada")
}

func (suite *orderRepositorySuite) TestDeleteOrder() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	orderID := suite.createOrder()

	err := suite.repo.DeleteOrder(ctx, orderID)
	require.NoError(t, err)

	_, err = suite.repo.GetOrder(ctx, orderID)
	require.ErrorContains(t, err, "Ordem não encontrada")

	// Lines are owned by the order and go with it.
	assert.Equal(t, 0, suite.countRows("order_products"))

	err = suite.repo.DeleteOrder(ctx, orderID)
	require.ErrorContains(t, err, "Ordem não encontrada")
}

func (suite *orderRepositorySuite) TestListOrders() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	first := suite.createOrder()
	second := suite.createOrder()

	orders, err := suite.repo.ListOrders(ctx)
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, []int64{first, second}, []int64{orders[0].ID, orders[1].ID})
	for _, order := range orders {
		assert.NotEmpty(t, order.Lines)
	}
}

func (suite *orderRepositorySuite) TestGetOrder_NotFound() {
	_, err := suite.repo.GetOrder(suite.T().Context(), 999_999)
	suite.Require().ErrorContains(err, "Ordem não encontrada")

	var notFound domain.NotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal(domain.EntityOrder, notFound.Entity)
}

func (suite *orderRepositorySuite) createUser() domain.User {
	user, err := suite.users.InsertUser(suite.T().Context(), randomUser())
	suite.NoError(err)
	return user
}

func (suite *orderRepositorySuite) createProduct() domain.Product {
	product, err := suite.products.InsertProduct(suite.T().Context(), randomProduct())
	suite.NoError(err)
	return product
}

func (suite *orderRepositorySuite) createOrder() int64 {
	user := suite.createUser()
	product := suite.createProduct()

	orderID, err := suite.repo.InsertOrder(suite.T().Context(), domain.NewOrder{
		UserID: user.ID,
		Client: gofakeit.Name(),
		Lines:  []domain.NewOrderLine{{ProductID: product.ID, Quantity: 2}},
	}, time.Now().UTC())
	suite.NoError(err)

	return orderID
}

func (suite *orderRepositorySuite) countRows(table string) int {
	var count int
	err := suite.pool.QueryRow(suite.T().Context(), "SELECT count(*) FROM "+table).Scan(&count)
	suite.NoError(err)
	return count
}

func (suite *orderRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(),
		"TRUNCATE TABLE order_products, orders, products, users CASCADE")
	suite.NoError(err)
}

func assertOrder(t *testing.T, expected, actual domain.Order) {
	t.Helper()

	sortLines := func(lines []domain.OrderLine) {
		sort.Slice(lines, func(i, j int) bool {
			return lines[i].Product.ID < lines[j].Product.ID
		})
	}
	sortLines(expected.Lines)
	sortLines(actual.Lines)

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.Product{}, "CreatedAt", "UpdatedAt"),
		cmp.Comparer(func(x, y decimal.Decimal) bool {
			return x.Equal(y)
		}),
		cmp.Comparer(func(x, y currency.Unit) bool {
			return x.String() == y.String()
		}),
		cmp.Comparer(func(x, y time.Time) bool {
			return x.Equal(y)
		}),
		cmpopts.EquateEmpty(),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}
