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

// Package fixtures provides gin routes that fail in every supported way.
// The demo server mounts them and the end-to-end tests exercise them.
package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"dirpx.dev/apierrors"
	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/faults"
	"dirpx.dev/apierrors/fieldpath"
	"dirpx.dev/apierrors/httpx"
	"github.com/gin-gonic/gin"
)

// BasePath is the prefix of every fixture route.
const BasePath = "/api/v1/test"

// Fixture is a named failure with a fixed error.
type Fixture struct {
	Name string
	// Err builds a fresh error on every call.
	Err func() error
}

var fixtures = []Fixture{
	{Name: "json-exception", Err: jsonException},
	{Name: "constraint-violation", Err: func() error {
		return faults.Validation(apis.Violation{Path: "TEST.TEST", Message: "Test invalid"})
	}},
	{Name: "api-exception", Err: apiException},
	{Name: "exception", Err: func() error { return errors.New("Test exception") }},
	{Name: "media-type-exception", Err: func() error {
		return fmt.Errorf("Test exception: %w", faults.NotAcceptable(""))
	}},
	{Name: "message-not-readable", Err: func() error {
		return faults.UnreadableBody(errors.New("TEST"))
	}},
	{Name: "message-not-readable-json", Err: func() error {
		return faults.UnreadableBody(
			faults.Deserialization(errors.New("TEST"), fieldpath.Index(1), fieldpath.Prop("TEST")),
		)
	}},
	{Name: "missing-parameter", Err: func() error { return faults.MissingParameter("TEST", "PARAMETER") }},
	{Name: "type-mismatch", Err: func() error {
		return &faults.TypeMismatchError{Property: "TEST", Required: "string"}
	}},
	{Name: "type-mismatch-no-name", Err: func() error {
		return &faults.TypeMismatchError{Name: "TEST", Required: "string", Cause: errors.New("conversion failed")}
	}},
	{Name: "invalid-argument", Err: func() error { return faults.Binding() }},
}

// All returns the static fixtures in registration order.
func All() []Fixture { return slices.Clone(fixtures) }

// Lookup returns the fixture called name.
func Lookup(name string) (Fixture, bool) {
	for _, f := range fixtures {
		if f.Name == name {
			return f, true
		}
	}
	return Fixture{}, false
}

// jsonException decodes an empty document outside of any request body.
func jsonException() error {
	var n int
	return json.Unmarshal([]byte(""), &n)
}

func apiException() error {
	var data map[string]any
	if err := json.Unmarshal([]byte(`{"TEST": "ADDITIONAL_DATA"}`), &data); err != nil {
		return err
	}
	return apierrors.E(http.StatusNotFound, "Test flash error",
		apierrors.WithFieldErrorOption("TEST", "Test field error"),
		apierrors.WithDataOption(data),
	)
}

// SearchParameters is bound from the query string of handle-internal.
type SearchParameters struct {
	Parameter string `form:"parameter" binding:"notblank"`
}

// Sample is the body accepted by the samples route.
type Sample struct {
	Name     string   `json:"name" binding:"required,min=3"`
	Depth    int      `json:"depth" binding:"gte=0"`
	Contacts []string `json:"contacts" binding:"dive,email"`
}

// Register mounts every fixture under BasePath on r.
func Register(r gin.IRouter) {
	g := r.Group(BasePath)

	for _, f := range fixtures {
		g.GET("/"+f.Name, func(c *gin.Context) {
			if err := f.Err(); err != nil {
				httpx.Abort(c, err)
				return
			}
			c.Status(http.StatusNoContent)
		})
	}

	g.GET("/handle-internal", handleInternal)
	g.POST("/samples", createSample)
	g.GET("/page", page)
	g.GET("/negotiate", negotiate)
	g.GET("/panic", func(*gin.Context) { panic("Test panic") })
}

func handleInternal(c *gin.Context) {
	var p SearchParameters
	if err := httpx.BindQuery(c, &p); err != nil {
		httpx.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func createSample(c *gin.Context) {
	var s Sample
	if err := httpx.BindJSON(c, &s); err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func page(c *gin.Context) {
	n, err := httpx.QueryInt(c, "page")
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": n})
}

func negotiate(c *gin.Context) {
	f, err := httpx.Negotiate(c, gin.MIMEJSON)
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.Negotiate(http.StatusOK, gin.Negotiate{Offered: []string{f}, Data: gin.H{"ok": true}})
}
