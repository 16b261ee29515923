/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apierrors

import (
	"fmt"
	"net/http"
	"strings"

	"dirpx.dev/apierrors/category"
)

// Error is a deliberate, structured failure raised by application code.
//
// It carries:
//   - Status: the HTTP status to respond with (required, 400..599);
//   - Payload: the fully-formed body, built ahead of raising;
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// The classifier passes an Error through untouched: the status, messages,
// field errors and data reach the client exactly as the raiser built them.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Status is the HTTP status for the response.
	Status int

	// Payload is the response body.
	Payload Payload

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers. It is never
	// exposed to clients.
	Cause error
}

// New pairs a status with a pre-built payload.
// Statuses outside 400..599 are replaced with 500.
func New(status int, p Payload) *Error {
	status = normalizeStatus(status)
	return &Error{Status: status, Payload: p}
}

// E is a convenience constructor for Error with a single top-level message.
//
// Usage:
//
//	return apierrors.E(http.StatusNotFound, "Sample not found",
//	    apierrors.WithFieldErrorOption("id", "Unknown sample id"),
//	    apierrors.WithDataOption(map[string]any{"id": id}),
//	)
//
// Options are applied in order to a builder seeded with msg; the resulting
// payload is built with status.
func E(status int, msg string, opts ...Option) *Error {
	b := NewBuilder().Message(msg)
	e := &Error{}
	for _, opt := range opts {
		opt(b, e)
	}
	status = normalizeStatus(status)
	e.Status = status
	e.Payload = b.Build(status)
	return e
}

// NotFound returns a 404 Error with msg as its only top-level message.
func NotFound(msg string) *Error { return E(http.StatusNotFound, msg) }

// Conflict returns a 409 Error with msg as its only top-level message.
func Conflict(msg string) *Error { return E(http.StatusConflict, msg) }

// Forbidden returns a 403 Error with msg as its only top-level message.
func Forbidden(msg string) *Error { return E(http.StatusForbidden, msg) }

// Unauthorized returns a 401 Error with msg as its only top-level message.
func Unauthorized(msg string) *Error { return E(http.StatusUnauthorized, msg) }

// Error implements the built-in error interface.
//
// The format is:
//
//	<status>: <message>[; <message>...]
//
// or, when a cause is attached:
//
//	<status>: <messages>: <cause>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := strings.Join(e.Payload.messages, "; ")
	if e.Cause != nil {
		return fmt.Sprintf("%d: %s: %v", e.Status, msg, e.Cause)
	}
	return fmt.Sprintf("%d: %s", e.Status, msg)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorCategory reports category.Domain.
func (e *Error) ErrorCategory() category.Category { return category.Domain }

// ErrorPayload returns the payload exactly as supplied at construction.
func (e *Error) ErrorPayload() Payload { return e.Payload }

// HTTPStatus returns the status carried by the error.
func (e *Error) HTTPStatus() int {
	if e == nil {
		return http.StatusInternalServerError
	}
	return normalizeStatus(e.Status)
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
