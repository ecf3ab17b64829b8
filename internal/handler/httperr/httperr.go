package httperr

import (
	"errors"
	"net/http"

	"resort-booking/internal/infra/lock"
	"resort-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Key selects the JSON field carrying the message. Booking answers with
// {message}, every other endpoint with {error}.
type Key string

const (
	KeyError   Key = "error"
	KeyMessage Key = "message"
)

const (
	MsgNotConfigured  = "Datastore not configured"
	MsgNoAvailability = "No rooms available for the selected dates"
	MsgRoomNotFound   = "Room not found"
	MsgBusy           = "Another booking for these dates is in progress, please retry"
	MsgInternal       = "Internal server error"
)

type Response struct {
	Status  int    `json:"-"`
	Key     Key    `json:"-"`
	Message string `json:"-"`
}

func (r Response) Body() gin.H {
	return gin.H{string(r.Key): r.Message}
}

// Classify maps an error to its HTTP status and caller-facing message.
// Datastore failures expose the root cause message and nothing else.
func Classify(err error) (int, string) {
	if v, ok := errs.AsValidation(err); ok {
		return http.StatusBadRequest, v.Message
	}
	switch {
	case errs.Is(err, errs.ErrNotConfigured):
		return http.StatusInternalServerError, MsgNotConfigured
	case errs.Is(err, errs.ErrNoAvailability):
		return http.StatusConflict, MsgNoAvailability
	case errs.Is(err, errs.ErrRoomNotFound):
		return http.StatusNotFound, MsgRoomNotFound
	case errors.Is(err, lock.ErrLockTimeout):
		return http.StatusServiceUnavailable, MsgBusy
	}
	if msg := errs.RootMessage(err); msg != "" {
		return http.StatusInternalServerError, msg
	}
	return http.StatusInternalServerError, MsgInternal
}

// Abort classifies err, records it on the context and writes the response.
func Abort(c *gin.Context, key Key, err error) {
	if err == nil {
		panic("Abort: err cannot be nil")
	}
	status, msg := Classify(err)
	AbortWithError(c, status, key, err, msg)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, key Key, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Key: key, Message: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp.Body())
}
