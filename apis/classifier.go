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

import (
	"dirpx.dev/apierrors"
	"dirpx.dev/apierrors/category"
	"google.golang.org/grpc/codes"
)

// Classifier is an immutable, concurrency-safe dispatch table that turns any
// error raised during request handling into a response.
type Classifier interface {
	// Classify selects the category of err and builds its response.
	// It never fails: unrecognized errors (and nil) yield the internal
	// category.
	Classify(err error) Result

	// Explain returns a human-readable description of how err was
	// classified. Intended for diagnostics, not for machine parsing.
	Explain(err error) string

	// Categories returns the categories in dispatch precedence order.
	Categories() []category.Category
}

// Status represents a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}

// Result is the output of classification: what the failure was and what to
// send back.
type Result struct {
	Category category.Category
	Status   Status
	Payload  apierrors.Payload
}
