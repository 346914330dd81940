package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Entity names carried by NotFoundError.
const (
	EntityOrder   = "order"
	EntityUser    = "user"
	EntityProduct = "product"
)

// ErrIncompleteRequest rejects an order creation request with missing
// required fields or an empty product list.
var ErrIncompleteRequest = errors.New("Dados incompletos na requisição.")

// ErrMissingFields rejects user/product creation with missing fields.
var ErrMissingFields = errors.New("Todos os campos são obrigatórios.")

// ErrInvalidCredentials rejects a login with an unknown email or a
// password that does not match the stored hash.
var ErrInvalidCredentials = errors.New("Credenciais inválidas.")

// NotFoundError reports a missing order, user or product. Error strings are
// the user-facing Portuguese messages, kept verbatim from the API contract.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e NotFoundError) Error() string {
	switch e.Entity {
	case EntityUser:
		return fmt.Sprintf("Usuário com ID %d não encontrado.", e.ID)
	case EntityProduct:
		return fmt.Sprintf("Produto com ID %d não encontrado.", e.ID)
	default:
		return "Ordem não encontrada"
	}
}

// InvalidStatusError carries the allowed set so callers can render a
// message enumerating the valid values.
type InvalidStatusError struct {
	Value   string
	Allowed []OrderStatus
}

func (e InvalidStatusError) Error() string {
	allowed := make([]string, 0, len(e.Allowed))
	for _, status := range e.Allowed {
		allowed = append(allowed, string(status))
	}

	return fmt.Sprintf("O valor do campo status deve ser um dos seguintes: %s", strings.Join(allowed, ", "))
}
