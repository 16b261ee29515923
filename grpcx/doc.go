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

// Package grpcx maps classified failures onto gRPC statuses.
//
// The interceptors classify any error returned by a handler and replace it
// with a status carrying rich details:
//
//   - errdetails.ErrorInfo: reason is the upper-cased category, metadata
//     holds the category and the HTTP status;
//   - errdetails.BadRequest: one field violation per field error message;
//   - structpb.Struct: the complete JSON body, so that gateways can
//     reproduce the HTTP response exactly.
//
// ExtractPayload is the client-side inverse.
package grpcx
