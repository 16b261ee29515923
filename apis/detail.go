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

// Violation is a single field-level problem reported by a validator or a
// binder.
//
// Typical usages:
//   - a constraint violation on a dotted property path ("order.items[0].sku");
//   - a field error from a binding result ("displayName").
type Violation struct {
	// Path is the location of the failing value. For validation failures it
	// is a dotted property chain; for binding results it is the bound field
	// name. May be empty for object-level problems.
	Path string `json:"path,omitempty"`

	// Message is the human-readable problem description, e.g.
	// "This field is required".
	Message string `json:"message"`

	// Rule optionally names the violated constraint ("required", "max", ...).
	Rule string `json:"rule,omitempty"`
}
