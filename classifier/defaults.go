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

package classifier

import (
	"net/http"

	"dirpx.dev/apierrors/category"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the built-in HTTP status per category. Domain errors
// carry their own status and are absent here.
var defaultHTTP = map[category.Category]int{
	category.Validation:        http.StatusBadRequest,
	category.RequestValidation: http.StatusBadRequest,
	category.Deserialization:   http.StatusUnprocessableEntity, // Readable, but not mappable onto the target type.
	category.UnreadableBody:    http.StatusBadRequest,
	category.MissingParameter:  http.StatusBadRequest,
	category.TypeMismatch:      http.StatusBadRequest,
	category.Binding:           http.StatusUnprocessableEntity,
	category.NotAcceptable:     http.StatusNotAcceptable,
	category.Internal:          http.StatusInternalServerError,
}

// defaultGRPC defines the built-in gRPC code per category. Every client-side
// category is an argument problem as far as gRPC is concerned. Domain errors
// derive their code from their HTTP status (see grpcFromHTTP).
var defaultGRPC = map[category.Category]codes.Code{
	category.Validation:        codes.InvalidArgument,
	category.RequestValidation: codes.InvalidArgument,
	category.Deserialization:   codes.InvalidArgument,
	category.UnreadableBody:    codes.InvalidArgument,
	category.MissingParameter:  codes.InvalidArgument,
	category.TypeMismatch:      codes.InvalidArgument,
	category.Binding:           codes.InvalidArgument,
	category.NotAcceptable:     codes.InvalidArgument,
	category.Internal:          codes.Internal,
}

// Fixed client-facing texts.
const (
	msgInvalidRequest   = "Invalid Request"
	msgBadRequest       = "Bad Request"
	msgInvalidType      = "Invalid Type"
	msgMissingParameter = "Missing Request Parameter"
	msgInvalidParameter = "Invalid Parameter"
	msgNotAcceptable    = "Not Acceptable"
	msgInternal         = "Internal Server Error"

	// defaultParameterLabel names a mismatched parameter whose name is unknown.
	defaultParameterLabel = "unknown"
)

// plainMessage is the single top-level message used when a category's detail
// cannot be extracted.
var plainMessage = map[category.Category]string{
	category.Validation:        msgInvalidRequest,
	category.RequestValidation: msgBadRequest,
	category.Deserialization:   msgInvalidRequest,
	category.UnreadableBody:    msgBadRequest,
	category.MissingParameter:  msgMissingParameter,
	category.TypeMismatch:      msgInvalidParameter,
	category.Binding:           msgInvalidRequest,
	category.NotAcceptable:     msgNotAcceptable,
	category.Internal:          msgInternal,
}

// grpcFromHTTP derives a gRPC code for a domain error from its HTTP status.
// It follows the usual REST gateway correspondence; statuses without an
// obvious counterpart fall back by class.
func grpcFromHTTP(status int) codes.Code {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound, http.StatusGone:
		return codes.NotFound
	case http.StatusConflict:
		return codes.Aborted
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	case http.StatusPreconditionFailed:
		return codes.FailedPrecondition
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case 499:
		return codes.Canceled
	case http.StatusNotImplemented, http.StatusMethodNotAllowed:
		return codes.Unimplemented
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return codes.Unavailable
	}
	if status >= 400 && status < 500 {
		return codes.FailedPrecondition
	}
	return codes.Internal
}
