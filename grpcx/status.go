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

package grpcx

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"dirpx.dev/apierrors"
	"dirpx.dev/apierrors/apis"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrorDomain is the ErrorInfo domain of every status built here.
const ErrorDomain = "apierrors.dirpx.dev"

// Metadata keys of the ErrorInfo detail.
const (
	MetaCategory   = "category"
	MetaHTTPStatus = "http_status"
)

// ToStatus converts a classification result into a gRPC status.
//
// The status message is the first top-level message. Details that cannot be
// encoded are skipped; the code and message are always present.
func ToStatus(res apis.Result, extra map[string]string) *gstatus.Status {
	msg := res.Status.GRPC.String()
	if msgs := res.Payload.Messages(); len(msgs) > 0 {
		msg = msgs[0]
	}
	st := gstatus.New(res.Status.GRPC, msg)

	info := &errdetails.ErrorInfo{
		Reason: strings.ToUpper(string(res.Category)),
		Domain: ErrorDomain,
		Metadata: map[string]string{
			MetaCategory:   string(res.Category),
			MetaHTTPStatus: strconv.Itoa(res.Status.HTTP),
		},
	}
	for k, v := range extra {
		if _, reserved := info.Metadata[k]; !reserved {
			info.Metadata[k] = v
		}
	}
	details := []protoadapt.MessageV1{info}

	if br := badRequest(res.Payload); br != nil {
		details = append(details, br)
	}
	if body, err := toStruct(res.Payload); err == nil {
		details = append(details, body)
	}

	// If attaching fails, fall back to the bare status.
	if with, err := st.WithDetails(details...); err == nil {
		return with
	}
	return st
}

// badRequest lists field errors in key order.
func badRequest(p apierrors.Payload) *errdetails.BadRequest {
	fields := p.FieldErrors()
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	br := &errdetails.BadRequest{}
	for _, k := range keys {
		for _, msg := range fields[k] {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       k,
				Description: msg,
			})
		}
	}
	return br
}

func toStruct(p apierrors.Payload) (*structpb.Struct, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

// ExtractPayload pulls the error body out of a gRPC error, if present. The
// payload status is taken from the ErrorInfo metadata.
// Useful in gateways, tests and client code.
func ExtractPayload(err error) (apierrors.Payload, bool) {
	if err == nil {
		return apierrors.Payload{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return apierrors.Payload{}, false
	}

	var (
		body   *structpb.Struct
		status int
	)
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *structpb.Struct:
			body = v
		case *errdetails.ErrorInfo:
			if v.GetDomain() == ErrorDomain {
				status, _ = strconv.Atoi(v.GetMetadata()[MetaHTTPStatus])
			}
		}
	}
	if body == nil {
		return apierrors.Payload{}, false
	}

	b, err := protojson.Marshal(body)
	if err != nil {
		return apierrors.Payload{}, false
	}
	var p apierrors.Payload
	if err := json.Unmarshal(b, &p); err != nil {
		return apierrors.Payload{}, false
	}
	return p.WithStatus(status), true
}
