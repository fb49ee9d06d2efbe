package resp

import (
	"errors"
	"net/http"

	"dineboard/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

// Error maps a service failure kind onto an HTTP status.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrValidation),
		errors.Is(err, apperr.ErrItemUnavailable),
		errors.Is(err, apperr.ErrInvalidTransition),
		errors.Is(err, apperr.ErrChefUnavailable),
		errors.Is(err, apperr.ErrCapacityExceeded):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrPreconditionFailed),
		errors.Is(err, apperr.ErrNoAvailableStaff):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}
