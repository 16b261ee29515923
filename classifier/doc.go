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

// Package classifier turns any error raised during request handling into a
// category, a pair of transport statuses and a normalized payload.
//
// # Overview
//
// Failures reach the boundary of a service in many shapes: deliberate domain
// errors carrying a pre-built response, validator output, JSON decoder
// errors, missing or malformed request parameters, and arbitrary runtime
// faults. A Classifier resolves every one of them to exactly one category and
// builds the response body for it. It is:
//
//   - immutable: a Classifier is a snapshot, safe for concurrent reuse;
//   - ordered: categories are tried in a fixed precedence, first match wins;
//   - total: Classify never fails and never panics, unknown faults are
//     reported as internal;
//   - dual: HTTP and gRPC statuses are resolved together.
//
// # Resolution model
//
// Each category is backed by one rule. A rule looks for its variant anywhere
// in the error chain (errors.As), so a variant wrapped by a generic error is
// still recognized. Rules are tried in the order of category.All():
//
//	domain, validation, request_validation, deserialization, unreadable_body,
//	missing_parameter, type_mismatch, binding, not_acceptable, internal
//
// When no rule matches, the configured normalizers get a chance to convert
// the error (for example a raw *json.SyntaxError) into a variant, and the
// rules are run once more. Anything still unmatched is internal.
//
// # Building a classifier
//
// A Classifier is created once and reused:
//
//	cls, err := classifier.New(
//	    classifier.WithHTTPStatus(category.Binding, http.StatusBadRequest),
//	    classifier.WithParameterLabel("parameter"),
//	)
//	if err != nil {
//	    // invalid option
//	}
//
//	res := cls.Classify(err)
//	// res.Category, res.Status.HTTP, res.Status.GRPC, res.Payload
//
// # Diagnostics
//
// Classifier.Explain returns a human-readable trace of how an error was
// resolved: which category matched, whether it was matched directly, after
// normalization or by fallback, and where each status came from.
package classifier
