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

package category

// Built-in categories, listed in classification precedence order: when an
// error chain holds more than one recognizable failure, the category that
// appears first here wins.
const (
	// Domain indicates a deliberate failure raised by application code with a
	// pre-built payload and an explicit status (resource not found,
	// conflicting update, ...). The payload is passed through untouched.
	//
	// Status is carried by the error itself.
	Domain Category = "domain"

	// Validation indicates that one or more values violated declared
	// constraints. Each violation names a dotted property path and a message;
	// the field key is the last segment of the path.
	//
	// Can be mapped to an HTTP 400.
	Validation Category = "validation"

	// RequestValidation indicates that request parameters (query string or
	// form values bound into a struct) violated declared constraints. It is
	// reported with a generic "Bad Request" message, unlike Validation.
	//
	// Can be mapped to an HTTP 400.
	RequestValidation Category = "request_validation"

	// Deserialization indicates that a payload could be read but not mapped
	// onto the target type. When the decoder knows where the problem is, the
	// structural path is reported as the field key (e.g. "[1].name").
	//
	// Can be mapped to an HTTP 422.
	Deserialization Category = "deserialization"

	// UnreadableBody indicates a malformed or unreadable request body that
	// carries no deserialization detail (syntax errors, empty body, I/O).
	//
	// Can be mapped to an HTTP 400.
	UnreadableBody Category = "unreadable_body"

	// MissingParameter indicates that a required request parameter was not
	// supplied at all.
	//
	// Can be mapped to an HTTP 400.
	MissingParameter Category = "missing_parameter"

	// TypeMismatch indicates that a request parameter was supplied but could
	// not be converted to the expected type.
	//
	// Can be mapped to an HTTP 400.
	TypeMismatch Category = "type_mismatch"

	// Binding indicates that a bound request body failed validation. Field
	// errors are taken from the binding result when one is available.
	//
	// Can be mapped to an HTTP 422.
	Binding Category = "binding"

	// NotAcceptable indicates that none of the response media types the
	// client accepts can be produced.
	//
	// Can be mapped to an HTTP 406.
	NotAcceptable Category = "not_acceptable"

	// Internal indicates any fault that matched no other category. Nothing
	// about the fault is exposed to the client.
	//
	// Can be mapped to an HTTP 500.
	Internal Category = "internal"
)

// precedence is the fixed dispatch order.
var precedence = [...]Category{
	Domain,
	Validation,
	RequestValidation,
	Deserialization,
	UnreadableBody,
	MissingParameter,
	TypeMismatch,
	Binding,
	NotAcceptable,
	Internal,
}

// All returns the built-in categories in precedence order.
// The returned slice is a fresh copy.
func All() []Category {
	out := make([]Category, len(precedence))
	copy(out, precedence[:])
	return out
}

// Known reports whether c is one of the built-in categories.
func Known(c Category) bool {
	for _, k := range precedence {
		if k == c {
			return true
		}
	}
	return false
}
