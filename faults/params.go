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
	"fmt"
	"strings"

	"dirpx.dev/apierrors/category"
)

// MissingParameterError reports a required request parameter that was not
// supplied.
type MissingParameterError struct {
	// Name is the parameter name as the client must send it.
	Name string
	// Type optionally describes the expected type ("int", "string", ...).
	Type string
}

// MissingParameter returns a MissingParameterError for name.
func MissingParameter(name, typ string) *MissingParameterError {
	return &MissingParameterError{Name: name, Type: typ}
}

func (e *MissingParameterError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("required parameter %q is not present", e.Name)
	}
	return fmt.Sprintf("required %s parameter %q is not present", e.Type, e.Name)
}

// ErrorCategory reports category.MissingParameter.
func (e *MissingParameterError) ErrorCategory() category.Category { return category.MissingParameter }

// TypeMismatchError reports a request parameter whose value could not be
// converted to the required type.
//
// Name is the parameter name and Property the bound property name; either
// may be empty. The classifier reports Name, then Property, then a fixed
// fallback label.
type TypeMismatchError struct {
	Name     string
	Property string
	Value    string
	Required string
	Cause    error
}

// TypeMismatch returns a TypeMismatchError for parameter name.
func TypeMismatch(name, value, required string, cause error) *TypeMismatchError {
	return &TypeMismatchError{Name: name, Value: value, Required: required, Cause: cause}
}

func (e *TypeMismatchError) Error() string {
	var b strings.Builder
	b.WriteString("parameter type mismatch")
	if n := e.ResolvedName(); n != "" {
		fmt.Fprintf(&b, " for %q", n)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, ": value %q", e.Value)
	}
	if e.Required != "" {
		fmt.Fprintf(&b, " is not a valid %s", e.Required)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *TypeMismatchError) Unwrap() error { return e.Cause }

// ErrorCategory reports category.TypeMismatch.
func (e *TypeMismatchError) ErrorCategory() category.Category { return category.TypeMismatch }

// ResolvedName returns Name, or Property when Name is empty.
func (e *TypeMismatchError) ResolvedName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Property
}
