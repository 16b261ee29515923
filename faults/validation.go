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
	"strings"

	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/category"
)

// ValidationError reports one or more constraint violations on dotted
// property paths, e.g. a struct validated in service code.
type ValidationError struct {
	Violations []apis.Violation
}

// Validation returns a ValidationError holding vs.
func Validation(vs ...apis.Violation) *ValidationError {
	return &ValidationError{Violations: vs}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + joinViolations(e.Violations)
}

// ErrorCategory reports category.Validation.
func (e *ValidationError) ErrorCategory() category.Category { return category.Validation }

// ErrorViolations returns a copy of the violations.
func (e *ValidationError) ErrorViolations() []apis.Violation { return cloneViolations(e.Violations) }

// RequestValidationError reports constraint violations on request parameters
// bound into a struct (query string, form values).
type RequestValidationError struct {
	Violations []apis.Violation
	Cause      error
}

// RequestValidation returns a RequestValidationError holding vs.
func RequestValidation(vs ...apis.Violation) *RequestValidationError {
	return &RequestValidationError{Violations: vs}
}

func (e *RequestValidationError) Error() string {
	return "request parameters invalid: " + joinViolations(e.Violations)
}

func (e *RequestValidationError) Unwrap() error { return e.Cause }

// ErrorCategory reports category.RequestValidation.
func (e *RequestValidationError) ErrorCategory() category.Category {
	return category.RequestValidation
}

// ErrorViolations returns a copy of the violations.
func (e *RequestValidationError) ErrorViolations() []apis.Violation {
	return cloneViolations(e.Violations)
}

// BindingError reports that a bound request body failed validation.
// Violations is nil when no binding result is available.
type BindingError struct {
	Violations []apis.Violation
	Cause      error
}

// Binding returns a BindingError holding vs.
func Binding(vs ...apis.Violation) *BindingError {
	return &BindingError{Violations: vs}
}

func (e *BindingError) Error() string {
	if len(e.Violations) == 0 {
		if e.Cause != nil {
			return "request body invalid: " + e.Cause.Error()
		}
		return "request body invalid"
	}
	return "request body invalid: " + joinViolations(e.Violations)
}

func (e *BindingError) Unwrap() error { return e.Cause }

// ErrorCategory reports category.Binding.
func (e *BindingError) ErrorCategory() category.Category { return category.Binding }

// ErrorViolations returns a copy of the violations.
func (e *BindingError) ErrorViolations() []apis.Violation { return cloneViolations(e.Violations) }

func joinViolations(vs []apis.Violation) string {
	if len(vs) == 0 {
		return "no violations"
	}
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		if v.Path == "" {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, v.Path+": "+v.Message)
	}
	return strings.Join(parts, "; ")
}

func cloneViolations(vs []apis.Violation) []apis.Violation {
	if vs == nil {
		return nil
	}
	out := make([]apis.Violation, len(vs))
	copy(out, vs)
	return out
}
