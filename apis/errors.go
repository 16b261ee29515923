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

package apis

import "dirpx.dev/apierrors/category"

// Categorized represents an error that knows which failure category it
// belongs to.
//
// Every variant in the faults package implements it, as does the domain
// error type. The classifier dispatches on concrete variants; log
// descriptors record the declared category next to the classified one.
type Categorized interface {
	error

	// ErrorCategory returns the category of the failure. The returned value
	// MUST be one of the built-in categories.
	ErrorCategory() category.Category
}

// ViolationCarrier represents an error that exposes field-level violations.
// The classifier reads field errors of the validation and binding variants
// through it.
//
// Implementations SHOULD return a slice that is safe to iterate over and that
// will not be modified by the callee. Returning nil is allowed and simply
// means "no field detail".
type ViolationCarrier interface {
	error

	// ErrorViolations returns the violations in the order they were found.
	ErrorViolations() []Violation
}
