package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/middleware"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/catalog-api/internal/validation"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

// failure names the responses of one endpoint for errors the services return.
type failure struct {
	notFoundCode    string
	notFoundMessage string
	code            string
	message         string
}

// writeServiceError checks reference misses before plain misses, and both
// before validation failures, since an unknown author matches all three.
func writeServiceError(c *gin.Context, err error, f failure) {
	switch {
	case errors.Is(err, model.ErrReferenceNotFound):
		writeError(c, http.StatusNotFound,
			"AUTHOR_NOT_FOUND",
			"author does not exist",
		)
	case errors.Is(err, model.ErrNotFound):
		writeError(c, http.StatusNotFound, f.notFoundCode, f.notFoundMessage)
	case errors.Is(err, model.ErrValidationFailed):
		resp := validation.ErrorResponse{
			Code:    "VALIDATION_FAILED",
			Message: "validation failed",
		}
		var ruleErr *validation.RuleError
		if errors.As(err, &ruleErr) {
			resp.Errors = []validation.FieldError{ruleErr.FieldError()}
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, resp)
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("code", f.code).
			Msg("Request failed")
		writeError(c, http.StatusInternalServerError, f.code, f.message)
	}
}
