package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/javiermolinar/dayview/internal/appointment"
)

const (
	msgRequired      = "This field is required."
	msgNull          = "This field may not be null."
	msgBadHyperlink  = "Invalid hyperlink - No URL match."
	msgMissingObject = "Invalid hyperlink - Object does not exist."
	msgBadDateTime   = "Datetime has wrong format. Use one of these formats instead: YYYY-MM-DDThh:mm[:ss[.uuuuuu]][+HH:MM|-HH:MM|Z]."
	msgNotList       = `Expected a list of items but got type "%s".`
)

// fieldErrors collects per-field validation messages, rendered as
// {"field": ["message", ...]}.
type fieldErrors map[string][]string

func (e fieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e fieldErrors) empty() bool {
	return len(e) == 0
}

// writeError maps store and domain errors to HTTP responses.
func (s *Server) writeError(c *gin.Context, err error) {
	var fe *appointment.FieldError
	switch {
	case errors.As(err, &fe):
		msg := message(fe.Err)
		if errors.Is(fe.Err, appointment.ErrNotFound) {
			msg = msgMissingObject
		}
		c.JSON(http.StatusBadRequest, fieldErrors{fe.Field: {msg}})
	case errors.Is(err, appointment.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
	case errors.Is(err, appointment.ErrNoUpcoming):
		c.JSON(http.StatusNotFound, gin.H{"detail": "No future appointments found."})
	default:
		_ = c.Error(err)
		s.logger.Error("request failed", zap.Error(err), zap.String(requestIDKey, c.GetString(requestIDKey)))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
	}
}

func badRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": detail})
}

// message renders a domain error as a sentence.
func message(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	msg = strings.ToUpper(msg[:1]) + msg[1:]
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return msg
}
