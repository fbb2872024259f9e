// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package backend

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/go-playground/validator/v10"

	"github.com/Shashivarun2464480/Project-fe/internal/validation"
)

// Kind classifies a backend failure.
type Kind int

const (
	// KindTransport means no HTTP response was received (status 0).
	KindTransport Kind = iota
	// KindAuth covers 401 and 403.
	KindAuth
	// KindValidation covers 400 and 422.
	KindValidation
	// KindNotFound is 404.
	KindNotFound
	// KindServer is any other non-2xx status.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "server"
	}
}

// Error is a failed backend call.
type Error struct {
	Op      string // e.g. "PUT /review/ideas/7/status"
	Kind    Kind
	Status  int    // 0 for transport failures
	Message string // server-provided message, possibly empty
	Err     error  // underlying transport error, if any
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s failed with status %d: %s", e.Op, e.Status, e.Message)
	default:
		return fmt.Sprintf("%s failed with status %d", e.Op, e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func kindForStatus(status int) Kind {
	switch status {
	case 0:
		return KindTransport
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuth
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindServer
	}
}

func newStatusError(op string, status int, body []byte) *Error {
	return &Error{
		Op:      op,
		Kind:    kindForStatus(status),
		Status:  status,
		Message: bodyMessage(body),
	}
}

// bodyMessage extracts a human message from an error body: the JSON
// message, title or error field, else the raw text.
func bodyMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"message", "Message", "title", "error"} {
			if s, ok := payload[key].(string); ok && s != "" {
				return s
			}
		}
		return ""
	}
	var quoted string
	if err := json.Unmarshal(body, &quoted); err == nil {
		return quoted
	}
	return text
}

// AsError returns the *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// IsKind reports whether err is a backend error of kind k.
func IsKind(err error, k Kind) bool {
	be, ok := AsError(err)
	return ok && be.Kind == k
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// IsSelfDeactivation reports the backend's refusal to let an admin
// deactivate their own account.
func IsSelfDeactivation(err error) bool {
	be, ok := AsError(err)
	return ok && be.Status == http.StatusBadRequest &&
		strings.Contains(strings.ToLower(be.Message), "deactivate your own")
}

// User-facing messages.
const (
	MsgTransport          = "Cannot connect to server. Please check if the backend is running."
	MsgInvalidCredentials = "Invalid email or password. Please try again."
	MsgInvalidRequest     = "Invalid request. Please check your input."
	MsgSelfDeactivation   = "You cannot deactivate your own account!"
	MsgNotFound           = "The requested item no longer exists."
	MsgGeneric            = "Something went wrong. Please try again."
)

// UserMessage renders any error from the synchronization layer as text fit
// for a toast. Local validation failures keep their own message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var ve *validation.RequestValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var fe validator.ValidationErrors
	if errors.As(err, &fe) {
		return MsgInvalidRequest
	}

	be, ok := AsError(err)
	if !ok {
		return err.Error()
	}
	if IsSelfDeactivation(err) {
		return MsgSelfDeactivation
	}
	switch be.Kind {
	case KindTransport:
		return MsgTransport
	case KindAuth:
		if be.Status == http.StatusUnauthorized {
			return MsgInvalidCredentials
		}
		return firstNonEmpty(be.Message, "You do not have permission to do that.")
	case KindValidation:
		return firstNonEmpty(be.Message, MsgInvalidRequest)
	case KindNotFound:
		return firstNonEmpty(be.Message, MsgNotFound)
	default:
		return firstNonEmpty(be.Message, MsgGeneric)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
