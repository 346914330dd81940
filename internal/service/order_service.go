package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/dto"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/events"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/port"
)

// OrderService orchestrates the order lifecycle: it resolves the user and
// product collaborators, applies the status rules and delegates persistence
// to the order repository.
type OrderService struct {
	orders   port.OrderRepository
	users    port.UserDirectory
	products port.ProductCatalog
	events   *events.Publisher // nil disables publishing

	now func() time.Time
}

func NewOrder(orders port.OrderRepository, users port.UserDirectory, products port.ProductCatalog, publisher *events.Publisher) *OrderService {
	return &OrderService{
		orders:   orders,
		users:    users,
		products: products,
		events:   publisher,
		now:      time.Now,
	}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("orders.ListOrders: %w", err)
	}

	return dto.OrdersFromDomain(orders), nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (dto.OrderResponse, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return dto.OrderResponse{}, fmt.Errorf("orders.GetOrder: %w", err)
	}

	return dto.OrderFromDomain(order), nil
}

// CreateOrder validates the command, resolves the user and every product,
// then persists the order and all of its lines atomically. New orders start
// as Pendente with dateEntry set to the call time.
func (s *OrderService) CreateOrder(ctx context.Context, order domain.NewOrder) (dto.OrderResponse, error) {
	var zero dto.OrderResponse

	if order.UserID == 0 || order.Client == "" || len(order.Lines) == 0 {
		return zero, domain.ErrIncompleteRequest
	}
	for _, line := range order.Lines {
		if line.ProductID == 0 || line.Quantity <= 0 {
			return zero, domain.ErrIncompleteRequest
		}
	}

	if _, err := s.users.GetUser(ctx, order.UserID); err != nil {
		return zero, fmt.Errorf("users.GetUser: %w", err)
	}

	// Abort on the first missing product, before any row is written.
	for _, line := range order.Lines {
		if _, err := s.products.GetProduct(ctx, line.ProductID); err != nil {
			return zero, fmt.Errorf("products.GetProduct: %w", err)
		}
	}

	orderID, err := s.orders.InsertOrder(ctx, order, s.now())
	if err != nil {
		return zero, fmt.Errorf("orders.InsertOrder: %w", err)
	}

	created, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return zero, fmt.Errorf("orders.GetOrder: %w", err)
	}

	s.publish(events.OrderCreated, created.ID, created.Status)

	return dto.OrderFromDomain(created), nil
}

// UpdateOrderStatus validates the new status against the allowed vocabulary,
// derives dateProcessed from the transition and persists both in one write.
// Any transition among the three statuses is accepted; only the edge into
// Concluído stamps dateProcessed, and leaving Concluído does not clear it.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int64, statusValue string) (dto.OrderResponse, error) {
	var zero dto.OrderResponse

	status, err := domain.ToOrderStatus(statusValue)
	if err != nil {
		return zero, fmt.Errorf("domain.ToOrderStatus: %w", err)
	}

	current, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return zero, fmt.Errorf("orders.GetOrder: %w", err)
	}

	processedAt := domain.DeriveProcessedAt(current.Status, status, current.DateProcessed, s.now())

	if err := s.orders.UpdateOrderStatus(ctx, orderID, status, processedAt); err != nil {
		return zero, fmt.Errorf("orders.UpdateOrderStatus: %w", err)
	}

	updated, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return zero, fmt.Errorf("orders.GetOrder: %w", err)
	}

	s.publish(events.OrderStatusUpdated, updated.ID, updated.Status)

	return dto.OrderFromDomain(updated), nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, orderID int64) error {
	if err := s.orders.DeleteOrder(ctx, orderID); err != nil {
		return fmt.Errorf("orders.DeleteOrder: %w", err)
	}

	s.publish(events.OrderDeleted, orderID, "")

	return nil
}

func (s *OrderService) publish(eventType events.OrderEventType, orderID int64, status domain.OrderStatus) {
	if s.events == nil {
		return
	}

	// The write already committed; a broker failure is logged, not surfaced.
	if err := s.events.PublishOrderEvent(context.Background(), orderID, eventType, status); err != nil {
		log.Printf("publish %s event for order %d: %v", eventType, orderID, err)
	}
}
