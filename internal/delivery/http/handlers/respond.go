package handlers

import (
	"errors"
	"net/http"

	"github.com/finovabank/banking-service/internal/delivery/http/dto/transfer/response"
	"github.com/finovabank/banking-service/internal/domain"
	"github.com/gin-gonic/gin"
)

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrSameAccount),
		errors.Is(err, domain.ErrCurrencyMismatch):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrRateUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	kind := domain.ErrorKind(err)

	message := err.Error()
	if kind == "INTERNAL" {
		// Storage and provider errors stay in the logs.
		message = "internal server error"
	}

	c.JSON(statusCodeFor(err), response.ErrorResponse{
		Status:  "error",
		Message: message,
		Error:   kind,
	})
}

func respondBadRequest(c *gin.Context, kind, message string) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{
		Status:  "error",
		Message: message,
		Error:   kind,
	})
}
