package handlers

import (
	"errors"
	"net/http"

	root "campus_match"
	"campus_match/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInternal        = "internal server error"
	errInvalidBody     = "invalid request body"
	errInvalidLogin    = "invalid credentials"
	errDuplicateEmail  = "email already registered"
	errTooManyAttempts = "too many login attempts, try again later"
)

// wantsHTML reports whether the client prefers an HTML page over JSON.
func wantsHTML(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, code, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, root.ErrorResponse{Error: userMsg, Code: code})
}

// statusForError maps service errors to an HTTP status and error body.
func statusForError(err error) (int, root.ErrorResponse) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, root.ErrorResponse{
			Error:  verr.Error(),
			Code:   root.CodeValidation,
			Fields: toFieldErrors(verr.Fields),
		}
	case errors.Is(err, service.ErrDuplicateEmail):
		return http.StatusConflict, root.ErrorResponse{Error: errDuplicateEmail, Code: root.CodeDuplicateEmail}
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, root.ErrorResponse{Error: errInvalidLogin, Code: root.CodeInvalidCredentials}
	default:
		return http.StatusInternalServerError, root.ErrorResponse{Error: errInternal, Code: root.CodeInternal}
	}
}

func toFieldErrors(in []service.FieldError) []root.FieldError {
	out := make([]root.FieldError, 0, len(in))
	for _, f := range in {
		out = append(out, root.FieldError{Field: f.Field, Rule: f.Rule, Message: f.Message})
	}
	return out
}

func bindError(err error) root.ErrorResponse {
	return root.ErrorResponse{Error: errInvalidBody + ": " + err.Error(), Code: root.CodeValidation}
}
