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

package fixtures_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dirpx.dev/apierrors/classifier"
	"dirpx.dev/apierrors/httpx"
	"dirpx.dev/apierrors/internal/fixtures"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	FlashErrors    []string            `json:"flashErrors"`
	FormErrors     map[string][]string `json:"formErrors"`
	AdditionalData json.RawMessage     `json:"additionalData"`
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpx.Middleware(classifier.Default()))
	fixtures.Register(r)
	return r
}

func do(t *testing.T, r http.Handler, method, target, payload string, headers ...string) (int, body) {
	t.Helper()
	var req *http.Request
	if payload == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var b body
	if rec.Code >= 400 {
		assert.Equal(t, httpx.ContentType, rec.Header().Get("Content-Type"))
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b), rec.Body.String())
		require.NotNil(t, b.FormErrors, "formErrors must always be an object")
	}
	return rec.Code, b
}

func get(t *testing.T, r http.Handler, name string) (int, body) {
	t.Helper()
	return do(t, r, http.MethodGet, fixtures.BasePath+"/"+name, "")
}

func TestHandleInternal(t *testing.T) {
	for _, query := range []string{"", "?parameter=", "?parameter=%20", "?parameter=%09%20"} {
		t.Run(query, func(t *testing.T) {
			code, b := do(t, newRouter(), http.MethodGet, fixtures.BasePath+"/handle-internal"+query, "")
			assert.Equal(t, 400, code)
			assert.Equal(t, []string{"Bad Request"}, b.FlashErrors)
			assert.Equal(t, map[string][]string{"Parameter": {"Must not be blank"}}, b.FormErrors)
		})
	}

	code, _ := do(t, newRouter(), http.MethodGet, fixtures.BasePath+"/handle-internal?parameter=x", "")
	assert.Equal(t, http.StatusNoContent, code)
}

func TestJSONProcessingError(t *testing.T) {
	code, b := get(t, newRouter(), "json-exception")
	assert.Equal(t, 422, code)
	assert.Equal(t, []string{"Invalid Request"}, b.FlashErrors)
	assert.Equal(t, map[string][]string{"": {"Invalid Type"}}, b.FormErrors)
}

func TestConstraintViolation(t *testing.T) {
	code, b := get(t, newRouter(), "constraint-violation")
	assert.Equal(t, 400, code)
	assert.Equal(t, []string{"Invalid Request"}, b.FlashErrors)
	assert.Equal(t, map[string][]string{"TEST": {"Test invalid"}}, b.FormErrors)
}

func TestAPIException(t *testing.T) {
	code, b := get(t, newRouter(), "api-exception")
	assert.Equal(t, 404, code)
	assert.Equal(t, []string{"Test flash error"}, b.FlashErrors)
	assert.Equal(t, map[string][]string{"TEST": {"Test field error"}}, b.FormErrors)
	assert.JSONEq(t, `{"TEST":"ADDITIONAL_DATA"}`, string(b.AdditionalData))
}

func TestGenericFailures(t *testing.T) {
	cases := []struct {
		fixture string
		status  int
		flash   string
	}{
		{"exception", 500, "Internal Server Error"},
		{"media-type-exception", 406, "Not Acceptable"},
		{"message-not-readable", 400, "Bad Request"},
		{"missing-parameter", 400, "Missing Request Parameter 'TEST'"},
		{"type-mismatch", 400, "Invalid Parameter 'TEST'"},
		{"type-mismatch-no-name", 400, "Invalid Parameter 'TEST'"},
		{"invalid-argument", 422, "Invalid Request"},
	}
	r := newRouter()
	for _, tc := range cases {
		t.Run(tc.fixture, func(t *testing.T) {
			code, b := get(t, r, tc.fixture)
			assert.Equal(t, tc.status, code)
			assert.Equal(t, []string{tc.flash}, b.FlashErrors)
			assert.Empty(t, b.FormErrors)
			assert.Equal(t, "null", string(b.AdditionalData))
		})
	}
}

func TestHTTPMessageNotReadableJSON(t *testing.T) {
	code, b := get(t, newRouter(), "message-not-readable-json")
	assert.Equal(t, 422, code)
	assert.Equal(t, []string{"Invalid Request"}, b.FlashErrors)
	assert.Equal(t, map[string][]string{"[1].TEST": {"Invalid Type"}}, b.FormErrors)
	assert.Equal(t, "null", string(b.AdditionalData))
}

func TestSamples_Body(t *testing.T) {
	r := newRouter()
	target := fixtures.BasePath + "/samples"

	code, b := do(t, r, http.MethodPost, target, `{"name":"ab","depth":-1,"contacts":["ok@example.org","nope"]}`)
	assert.Equal(t, 422, code)
	assert.Equal(t, []string{"Invalid Request"}, b.FlashErrors)
	assert.Equal(t, map[string][]string{
		"Name":        {"Below minimum length"},
		"Depth":       {"Must be greater than or equal to minimum value"},
		"Contacts[1]": {"Must be a valid email address"},
	}, b.FormErrors)

	code, b = do(t, r, http.MethodPost, target, `{"name":5}`)
	assert.Equal(t, 422, code)
	assert.Equal(t, map[string][]string{"name": {"Invalid Type"}}, b.FormErrors)

	code, b = do(t, r, http.MethodPost, target, `{"name":`)
	assert.Equal(t, 400, code)
	assert.Equal(t, []string{"Bad Request"}, b.FlashErrors)

	code, _ = do(t, r, http.MethodPost, target, `{"name":"core-7","depth":120}`)
	assert.Equal(t, http.StatusCreated, code)
}

func TestPage_Parameters(t *testing.T) {
	r := newRouter()

	code, b := do(t, r, http.MethodGet, fixtures.BasePath+"/page", "")
	assert.Equal(t, 400, code)
	assert.Equal(t, []string{"Missing Request Parameter 'page'"}, b.FlashErrors)

	code, b = do(t, r, http.MethodGet, fixtures.BasePath+"/page?page=abc", "")
	assert.Equal(t, 400, code)
	assert.Equal(t, []string{"Invalid Parameter 'page'"}, b.FlashErrors)

	code, _ = do(t, r, http.MethodGet, fixtures.BasePath+"/page?page=2", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestNegotiate(t *testing.T) {
	r := newRouter()

	code, b := do(t, r, http.MethodGet, fixtures.BasePath+"/negotiate", "", "Accept", "text/csv")
	assert.Equal(t, 406, code)
	assert.Equal(t, []string{"Not Acceptable"}, b.FlashErrors)

	code, _ = do(t, r, http.MethodGet, fixtures.BasePath+"/negotiate", "", "Accept", "application/json")
	assert.Equal(t, http.StatusOK, code)
}

func TestPanic_IsInternal(t *testing.T) {
	code, b := get(t, newRouter(), "panic")
	assert.Equal(t, 500, code)
	assert.Equal(t, []string{"Internal Server Error"}, b.FlashErrors)
}

func TestLookup(t *testing.T) {
	f, ok := fixtures.Lookup("missing-parameter")
	require.True(t, ok)
	assert.Error(t, f.Err())

	_, ok = fixtures.Lookup("nope")
	assert.False(t, ok)
	assert.Len(t, fixtures.All(), 11)
}
