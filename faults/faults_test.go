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

package faults

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/category"
	"dirpx.dev/apierrors/fieldpath"
)

func TestErrorCategory(t *testing.T) {
	cases := []struct {
		err  apis.Categorized
		want category.Category
	}{
		{Validation(), category.Validation},
		{RequestValidation(), category.RequestValidation},
		{Deserialization(nil), category.Deserialization},
		{UnreadableBody(nil), category.UnreadableBody},
		{MissingParameter("q", ""), category.MissingParameter},
		{TypeMismatch("q", "x", "int", nil), category.TypeMismatch},
		{Binding(), category.Binding},
		{NotAcceptable("text/csv"), category.NotAcceptable},
		{Unclassified(nil), category.Internal},
	}
	for _, tc := range cases {
		if got := tc.err.ErrorCategory(); got != tc.want {
			t.Errorf("%T.ErrorCategory() = %s, want %s", tc.err, got, tc.want)
		}
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("cause")
	wrapped := []error{
		Deserialization(cause),
		UnreadableBody(cause),
		TypeMismatch("q", "x", "int", cause),
		&BindingError{Cause: cause},
		&RequestValidationError{Cause: cause},
		Unclassified(cause),
	}
	for _, err := range wrapped {
		if !errors.Is(err, cause) {
			t.Errorf("%T does not unwrap to its cause", err)
		}
	}
}

func TestErrorStrings(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{Validation(apis.Violation{Path: "a.b", Message: "bad"}, apis.Violation{Message: "worse"}),
			"validation failed: a.b: bad; worse"},
		{Validation(), "validation failed: no violations"},
		{Deserialization(errors.New("eof"), fieldpath.Index(1), fieldpath.Prop("TEST")),
			"cannot deserialize payload at [1].TEST: eof"},
		{UnreadableBody(nil), "request body unreadable"},
		{MissingParameter("TEST", ""), `required parameter "TEST" is not present`},
		{MissingParameter("page", "int"), `required int parameter "page" is not present`},
		{&TypeMismatchError{Property: "page", Value: "x", Required: "int"},
			`parameter type mismatch for "page": value "x" is not a valid int`},
		{Binding(), "request body invalid"},
		{NotAcceptable("text/csv", "application/json", "application/xml"),
			`no acceptable representation for "text/csv" (supported: application/json, application/xml)`},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
	}
}

func TestViolationsAreCopied(t *testing.T) {
	v := Validation(apis.Violation{Path: "a", Message: "m"})
	got := v.ErrorViolations()
	got[0].Message = "changed"
	if v.Violations[0].Message != "m" {
		t.Fatal("ErrorViolations must return a copy")
	}
	if Binding().ErrorViolations() != nil {
		t.Fatal("binding without result must report nil violations")
	}
}

func TestTypeMismatch_ResolvedName(t *testing.T) {
	if got := (&TypeMismatchError{Name: "a", Property: "b"}).ResolvedName(); got != "a" {
		t.Fatalf("got %q", got)
	}
	if got := (&TypeMismatchError{Property: "b"}).ResolvedName(); got != "b" {
		t.Fatalf("got %q", got)
	}
	if got := (&TypeMismatchError{}).ResolvedName(); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestRecovered(t *testing.T) {
	sentinel := errors.New("nil map write")
	if err := Recovered(sentinel); !errors.Is(err, sentinel) {
		t.Fatalf("recovered error must wrap the panic value: %v", err)
	}
	err := Recovered("index out of range")
	if !strings.Contains(err.Error(), "panic: index out of range") {
		t.Fatalf("unexpected message %q", err.Error())
	}
	var uc *UnclassifiedError
	if !errors.As(fmt.Errorf("x: %w", err), &uc) {
		t.Fatal("errors.As must find UnclassifiedError")
	}
}
