package v1

import (
	"errors"
	"net/http"

	"github.com/clearspend/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")

	errTransactionOrderInvalid = errors.New("the specified transaction order is invalid, it must be one of 'date' or 'recent'")
	errCategoryTypeInvalid     = errors.New("the specified category type is invalid, it must be one of 'income' or 'expense'")
	errMonthInvalid            = errors.New("the month query parameter must use the format YYYY-MM")
)
