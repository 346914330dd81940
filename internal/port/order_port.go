package port

import (
	"context"
	"time"

	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
)

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID int64) (domain.Order, error)

	// InsertOrder persists the order header and all of its lines as one
	// atomic unit. New orders always start as Pendente.
	InsertOrder(ctx context.Context, order domain.NewOrder, dateEntry time.Time) (int64, error)

	UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus, processedAt *time.Time) error

	DeleteOrder(ctx context.Context, orderID int64) error
}
