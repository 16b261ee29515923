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

package adapter

import (
	"errors"

	"dirpx.dev/apierrors/apis"
)

// ToDescriptor flattens a classification result and the raw error into a
// Descriptor for structured logging.
//
// The descriptor carries the raw error text. It is for server-side use only
// and must never be written to a response.
func ToDescriptor(res apis.Result, err error) apis.Descriptor {
	d := apis.Descriptor{
		Category:   string(res.Category),
		HTTPStatus: res.Status.HTTP,
		GRPCCode:   int(res.Status.GRPC),
		Fields:     len(res.Payload.FieldErrors()),
	}
	if msgs := res.Payload.Messages(); len(msgs) > 0 {
		d.Message = msgs[0]
	}
	if err != nil {
		d.Cause = err.Error()
	}
	var c apis.Categorized
	if errors.As(err, &c) {
		d.Raised = string(c.ErrorCategory())
	}
	return d
}
