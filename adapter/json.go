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
	"encoding/json"
	"errors"

	"dirpx.dev/apierrors/faults"
	"dirpx.dev/apierrors/fieldpath"
)

// FromJSON converts an encoding/json decoding error raised outside a
// request body, e.g. when decoding a stored or embedded document.
//
// Type errors become a faults.DeserializationError at the decoder-reported
// field path ("items.1.qty" renders as "items.[1].qty"). Syntax errors,
// including empty input, become a faults.DeserializationError without a
// path. Anything else yields nil.
func FromJSON(err error) error {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return faults.Deserialization(err, refs(te.Field)...)
	}
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return faults.Deserialization(err)
	}
	return nil
}

// FromBody converts any error returned while binding a request body.
// Validator output becomes a faults.BindingError, type errors a
// faults.DeserializationError, and everything else (syntax errors, empty or
// truncated bodies, bodies over the size limit, read failures) a
// faults.UnreadableBodyError.
func FromBody(err error) error {
	if err == nil {
		return nil
	}
	if out := FromValidator(err, KindBinding); out != nil {
		return out
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return faults.Deserialization(err, refs(te.Field)...)
	}
	return faults.UnreadableBody(err)
}

// refs parses a decoder field path. An unparsable path is dropped rather
// than reported wrong.
func refs(field string) []fieldpath.Ref {
	if field == "" {
		return nil
	}
	rs, err := fieldpath.Parse(field)
	if err != nil {
		return nil
	}
	return rs
}
