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

import "dirpx.dev/apierrors"

// PayloadProvider is implemented by errors that carry their own, fully-formed
// response: the status to send and the body to send it with.
//
// The classifier passes such errors through untouched. This is how
// application code raises deliberate, named failures (resource not found,
// conflicting update) with complete control over the response.
type PayloadProvider interface {
	error

	// HTTPStatus returns the status for the response (400..599).
	HTTPStatus() int

	// ErrorPayload returns the body. It MUST NOT be modified by callers.
	ErrorPayload() apierrors.Payload
}
