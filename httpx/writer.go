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

package httpx

import (
	"encoding/json"
	"net/http"

	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/classifier"
)

// ContentType is the media type of every error body.
const ContentType = "application/json; charset=utf-8"

// fallbackBody is written if a payload cannot be encoded. It never happens
// for payloads without attached data.
var fallbackBody = []byte(`{"flashErrors":["Internal Server Error"],"formErrors":{},"additionalData":null}`)

// Writer is a thin adapter that turns any error into an HTTP response using
// the provided classifier. A zero Writer uses classifier.Default().
type Writer struct {
	Classifier apis.Classifier
}

// Classify resolves err without writing anything.
func (w Writer) Classify(err error) apis.Result {
	if w.Classifier == nil {
		return classifier.Default().Classify(err)
	}
	return w.Classifier.Classify(err)
}

// Write classifies err and writes the status and JSON body to rw.
// The result is returned so that callers can log or count it.
func (w Writer) Write(rw http.ResponseWriter, err error) apis.Result {
	res := w.Classify(err)
	status, body := encode(res)
	rw.Header().Set("Content-Type", ContentType)
	rw.WriteHeader(status)
	_, _ = rw.Write(body)
	return res
}

// encode renders the payload. Attached data that json cannot encode
// degrades to the generic 500 body.
func encode(res apis.Result) (int, []byte) {
	b, err := json.Marshal(res.Payload)
	if err != nil {
		return http.StatusInternalServerError, fallbackBody
	}
	return res.Status.HTTP, b
}
