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

package faults

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/apierrors/category"
)

// NotAcceptableError reports that no acceptable response representation can
// be produced for the client's Accept header.
type NotAcceptableError struct {
	Accept    string
	Supported []string
}

// NotAcceptable returns a NotAcceptableError.
func NotAcceptable(accept string, supported ...string) *NotAcceptableError {
	return &NotAcceptableError{Accept: accept, Supported: supported}
}

func (e *NotAcceptableError) Error() string {
	return fmt.Sprintf("no acceptable representation for %q (supported: %s)",
		e.Accept, strings.Join(e.Supported, ", "))
}

// ErrorCategory reports category.NotAcceptable.
func (e *NotAcceptableError) ErrorCategory() category.Category { return category.NotAcceptable }

// UnclassifiedError marks a foreign fault explicitly as internal. Boundary
// code wraps recovered panics and unknown errors with it.
type UnclassifiedError struct {
	Cause error
}

// Unclassified wraps cause. A nil cause is replaced with a generic error.
func Unclassified(cause error) *UnclassifiedError {
	if cause == nil {
		cause = errors.New("unknown failure")
	}
	return &UnclassifiedError{Cause: cause}
}

// Recovered converts a value recovered from a panic into an UnclassifiedError.
func Recovered(v any) *UnclassifiedError {
	if err, ok := v.(error); ok {
		return Unclassified(fmt.Errorf("panic: %w", err))
	}
	return Unclassified(fmt.Errorf("panic: %v", v))
}

func (e *UnclassifiedError) Error() string { return "internal failure: " + e.Cause.Error() }

func (e *UnclassifiedError) Unwrap() error { return e.Cause }

// ErrorCategory reports category.Internal.
func (e *UnclassifiedError) ErrorCategory() category.Category { return category.Internal }
