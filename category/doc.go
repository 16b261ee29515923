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

// Package category names the failure categories the classifier recognizes.
//
// A category is the machine-readable answer to "what kind of failure is
// this?", for example validation or missing_parameter. Each category maps to one HTTP status and one fixed top-level message. Names are:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated;
//   - suitable for metrics labels, logs and gRPC ErrorInfo reasons.
//
// The built-in categories are ordered: All returns them in the precedence
// order the classifier uses when an error chain matches several of them.
package category
