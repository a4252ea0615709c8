package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/kjm/ledger-lite/internal/apperrors"
	"github.com/kjm/ledger-lite/internal/dto"
)

// respondError writes the standard error envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.APIErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}

// respondServiceError maps a service error to its boundary outcome.
// Validation, not-found and conflict failures keep their rule message; every
// other error is an opaque internal failure.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrDuplicate):
		respondError(c, http.StatusConflict, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// respondBindError distinguishes semantically invalid input (binding
// validation failures, reported field-first) from a body that could not be
// parsed at all.
func respondBindError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		respondError(c, http.StatusBadRequest, fmt.Sprintf("field '%s' failed validation on the '%s' rule", fe.Field(), fe.Tag()))
		return
	}
	respondError(c, http.StatusBadRequest, "Invalid request body (JSON parse failed)")
}
