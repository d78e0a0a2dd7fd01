package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-chat-messenger/internal/adapter"
)

// UserMessage converts a client-side error into a line suitable for the
// terminal UI. Transport errors carry the server's detail message after the
// sentinel prefix; that detail is what the user should see. Anything else
// degrades to a generic line rather than leaking internals.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	for _, sentinel := range []error{
		adapter.ErrBadRequest,
		adapter.ErrUnauthorized,
		adapter.ErrForbidden,
		adapter.ErrNotFound,
		adapter.ErrConflict,
	} {
		if errors.Is(err, sentinel) {
			if detail := detailAfter(err.Error(), sentinel.Error()); detail != "" {
				return detail
			}
			return sentinel.Error()
		}
	}
	if errors.Is(err, adapter.ErrInternalServerError) {
		return "server error, try again later"
	}

	return "request failed, check your connection"
}

// detailAfter returns the text following "<sentinel>: " in message.
func detailAfter(message, sentinel string) string {
	idx := strings.Index(message, sentinel+": ")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(message[idx+len(sentinel)+2:])
}
