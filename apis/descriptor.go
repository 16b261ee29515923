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

import "log/slog"

// Descriptor is a flat description of one classified failure.
//
// It is intended for structured logging and tracing: it carries the
// category, both transport statuses, the first top-level message and the
// raw error text (which is never sent to clients).
type Descriptor struct {
	// Category is the matched category name, e.g. "validation".
	Category string `json:"category"`

	// HTTPStatus is the status written to the HTTP response.
	HTTPStatus int `json:"http_status"`

	// GRPCCode is the gRPC status code (as integer) for the same failure.
	GRPCCode int `json:"grpc_code"`

	// Message is the first top-level message of the payload.
	Message string `json:"message,omitempty"`

	// Fields is the number of field keys in the payload.
	Fields int `json:"fields,omitempty"`

	// Cause is the Error() text of the raw error. Server-side only.
	Cause string `json:"cause,omitempty"`

	// Raised is the category declared by the outermost Categorized error in
	// the raw chain. It differs from Category when a nested variant took
	// precedence (an unreadable body wrapping a deserialization failure).
	Raised string `json:"raised,omitempty"`
}

// LogValue implements slog.LogValuer so a Descriptor can be passed directly
// as a log attribute.
func (d Descriptor) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("category", d.Category),
		slog.Int("http_status", d.HTTPStatus),
		slog.Int("grpc_code", d.GRPCCode),
	}
	if d.Message != "" {
		attrs = append(attrs, slog.String("message", d.Message))
	}
	if d.Fields > 0 {
		attrs = append(attrs, slog.Int("fields", d.Fields))
	}
	if d.Cause != "" {
		attrs = append(attrs, slog.String("cause", d.Cause))
	}
	if d.Raised != "" && d.Raised != d.Category {
		attrs = append(attrs, slog.String("raised", d.Raised))
	}
	return slog.GroupValue(attrs...)
}
