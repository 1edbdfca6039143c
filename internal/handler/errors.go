package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fervo-app/fervo-backend-go/internal/popularity"
	"github.com/fervo-app/fervo-backend-go/internal/repository"
	"github.com/fervo-app/fervo-backend-go/pkg/response"
)

// fail maps domain errors to HTTP status codes
func fail(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, popularity.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, message, err)
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, message, err)
	case errors.Is(err, repository.ErrManualOverride):
		response.Error(c, http.StatusConflict, message, err)
	default:
		response.Error(c, http.StatusInternalServerError, message, err)
	}
}
