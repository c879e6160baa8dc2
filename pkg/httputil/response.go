package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/pharmacy-api/pkg/apperror"
)

// ErrorBody is the wire format for every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the wire format for write operations that return no entity.
type MessageBody struct {
	Message string `json:"message"`
}

// RespondWithError translates an error into a status and JSON body at the
// boundary. Domain errors carry their own status; anything else is a 500.
func RespondWithError(c *gin.Context, err error) {
	if appErr, ok := apperror.As(err); ok {
		if appErr.Code == apperror.CodeStore {
			log.Error().Err(appErr.Err).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("store failure")
		}
		c.JSON(appErr.Status(), ErrorBody{Error: appErr.Message})
		return
	}

	log.Error().Err(err).
		Str("path", c.Request.URL.Path).
		Str("method", c.Request.Method).
		Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "internal server error"})
}

// RespondWithMessage sends a plain message body.
func RespondWithMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageBody{Message: message})
}
