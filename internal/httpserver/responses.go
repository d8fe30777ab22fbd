package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/famomatic/clipper/client"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError maps a pipeline error kind to an HTTP status. Messages carry
// the kind only; internal causes never reach the caller.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, client.ErrInvalidInput):
		status, message = http.StatusBadRequest, client.ErrInvalidInput.Error()
	case errors.Is(err, client.ErrIdentifierNotFound):
		status, message = http.StatusBadRequest, client.ErrIdentifierNotFound.Error()
	case errors.Is(err, client.ErrMetadataUnavailable):
		status, message = http.StatusBadGateway, client.ErrMetadataUnavailable.Error()
	case errors.Is(err, client.ErrNoFormatAvailable):
		status, message = http.StatusUnprocessableEntity, client.ErrNoFormatAvailable.Error()
	case errors.Is(err, client.ErrDownloadFailed):
		status, message = http.StatusBadGateway, client.ErrDownloadFailed.Error()
	case errors.Is(err, client.ErrExtractionFailed):
		status, message = http.StatusInternalServerError, client.ErrExtractionFailed.Error()
	case errors.Is(err, context.DeadlineExceeded):
		status, message = http.StatusGatewayTimeout, "request timed out"
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
