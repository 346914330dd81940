package domain

import "time"

type OrderStatus string

// remember to add new statuses to the orderStatuses slice
const (
	OrderStatusPending    OrderStatus = "Pendente"
	OrderStatusProcessing OrderStatus = "Processando"
	OrderStatusDone       OrderStatus = "Concluído"
)

// orderStatuses keeps the declaration order so user-facing messages
// enumerate the allowed values deterministically.
var orderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusDone,
}

func ToOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	for _, known := range orderStatuses {
		if status == known {
			return status, nil
		}
	}

	return "", InvalidStatusError{Value: s, Allowed: OrderStatuses()}
}

func OrderStatuses() []OrderStatus {
	result := make([]OrderStatus, len(orderStatuses))
	copy(result, orderStatuses)
	return result
}

// DeriveProcessedAt returns the dateProcessed value an order should carry
// after a status change. The timestamp is stamped only on the edge into
// Concluído; every other transition keeps the previous value, including
// transitions out of Concluído.
func DeriveProcessedAt(prev, next OrderStatus, prevProcessedAt *time.Time, now time.Time) *time.Time {
	if prev != OrderStatusDone && next == OrderStatusDone {
		return &now
	}
	return prevProcessedAt
}
