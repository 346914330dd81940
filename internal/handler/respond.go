package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
)

// writeError maps the service error taxonomy to HTTP statuses and renders
// the user-facing message. Unexpected failures never leak details.
func writeError(c *gin.Context, err error) {
	var (
		notFound      domain.NotFoundError
		invalidStatus domain.InvalidStatusError
	)

	switch {
	case errors.Is(err, domain.ErrIncompleteRequest),
		errors.Is(err, domain.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"message": unwrapMessage(err)})
	case errors.As(err, &invalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"message": invalidStatus.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": domain.ErrInvalidCredentials.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFound.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro interno do servidor."})
	}
}

// unwrapMessage strips the call-site prefixes so sentinel errors render
// their exact user-facing wording.
func unwrapMessage(err error) string {
	for _, sentinel := range []error{domain.ErrIncompleteRequest, domain.ErrMissingFields} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
