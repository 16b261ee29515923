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

package apierrors

import (
	"encoding/json"
	"net/http"
	"reflect"
)

// Payload is the normalized error body returned to API clients.
//
// It carries:
//   - Messages: top-level, human-readable messages ("flashErrors");
//   - FieldErrors: per-field messages keyed by field identifier ("formErrors");
//   - Data: optional structured attachment ("additionalData");
//   - Status: the HTTP status the body is sent with (not part of the body).
//
// A Payload is immutable: it is produced by Builder.Build and every accessor
// returns a copy, so values can be shared between goroutines freely.
type Payload struct {
	messages []string
	fields   map[string][]string
	data     any
	status   int
}

// body is the wire shape. Field names are fixed.
type body struct {
	FlashErrors    []string            `json:"flashErrors"`
	FormErrors     map[string][]string `json:"formErrors"`
	AdditionalData any                 `json:"additionalData"`
}

// Status returns the HTTP status the payload was built with.
// The zero Payload reports 500.
func (p Payload) Status() int {
	if p.status == 0 {
		return http.StatusInternalServerError
	}
	return p.status
}

// Messages returns a copy of the top-level messages. Never nil.
func (p Payload) Messages() []string {
	out := make([]string, len(p.messages))
	copy(out, p.messages)
	return out
}

// FieldErrors returns a copy of the per-field messages. Never nil.
func (p Payload) FieldErrors() map[string][]string {
	return cloneFields(p.fields)
}

// Data returns the attached data, or nil when none was set.
func (p Payload) Data() any {
	return cloneData(p.data)
}

// Equal reports whether both payloads carry the same status, messages,
// field errors and data.
func (p Payload) Equal(o Payload) bool {
	if p.Status() != o.Status() {
		return false
	}
	if len(p.messages) != len(o.messages) || len(p.fields) != len(o.fields) {
		return false
	}
	for i := range p.messages {
		if p.messages[i] != o.messages[i] {
			return false
		}
	}
	for k, v := range p.fields {
		w, ok := o.fields[k]
		if !ok || len(v) != len(w) {
			return false
		}
		for i := range v {
			if v[i] != w[i] {
				return false
			}
		}
	}
	return reflect.DeepEqual(p.data, o.data)
}

// MarshalJSON renders the payload as
//
//	{"flashErrors":[...],"formErrors":{...},"additionalData":...}
//
// Empty collections render as [] and {}, absent data as null.
func (p Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(body{
		FlashErrors:    p.Messages(),
		FormErrors:     p.FieldErrors(),
		AdditionalData: p.data,
	})
}

// UnmarshalJSON parses the wire shape produced by MarshalJSON.
// The status is not part of the body; it is left untouched.
func (p *Payload) UnmarshalJSON(b []byte) error {
	var raw body
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.messages = append([]string(nil), raw.FlashErrors...)
	p.fields = cloneFields(raw.FormErrors)
	p.data = raw.AdditionalData
	return nil
}

// WithStatus returns a copy of p carrying the given status.
// Non-error statuses are clamped to 500.
func (p Payload) WithStatus(status int) Payload {
	cp := Payload{
		messages: p.Messages(),
		fields:   p.FieldErrors(),
		data:     cloneData(p.data),
		status:   normalizeStatus(status),
	}
	return cp
}

// normalizeStatus keeps client and server error codes and maps anything else
// to 500. An error body is never sent with a success status.
func normalizeStatus(status int) int {
	if status < 400 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}

func cloneFields(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		msgs := make([]string, len(v))
		copy(msgs, v)
		out[k] = msgs
	}
	return out
}

// cloneData deep-copies JSON-like trees (maps with string keys and slices of
// any). Other values are returned as-is.
func cloneData(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneData(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneData(e)
		}
		return out
	case json.RawMessage:
		return append(json.RawMessage(nil), t...)
	default:
		return v
	}
}
