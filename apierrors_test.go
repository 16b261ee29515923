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
	"errors"
	"net/http"
	"strings"
	"testing"

	"dirpx.dev/apierrors/category"
)

func TestBuilder_Build(t *testing.T) {
	p := NewBuilder().
		Message("Invalid Request").
		Message("Invalid Request").
		FieldError("email", "Must be a valid email address").
		FieldError("email", "Required").
		FieldError("", "no field").
		Build(http.StatusBadRequest)

	if p.Status() != http.StatusBadRequest {
		t.Fatalf("status = %d", p.Status())
	}
	if got := p.Messages(); len(got) != 2 {
		t.Fatalf("duplicates must be kept, got %v", got)
	}
	fe := p.FieldErrors()
	if len(fe["email"]) != 2 || fe["email"][1] != "Required" {
		t.Fatalf("field errors = %v", fe)
	}
	if fe[""][0] != "no field" {
		t.Fatalf("empty field key lost: %v", fe)
	}
	if p.Data() != nil {
		t.Fatalf("data = %v", p.Data())
	}
}

func TestBuilder_ReuseDoesNotLeak(t *testing.T) {
	b := NewBuilder().Message("one").FieldError("f", "a")
	p1 := b.Build(400)

	b.Message("two").FieldError("f", "b").Data(map[string]any{"k": 1})
	p2 := b.Build(422)

	if len(p1.Messages()) != 1 || len(p1.FieldErrors()["f"]) != 1 || p1.Data() != nil {
		t.Fatal("earlier payload mutated by later builder calls")
	}
	if len(p2.Messages()) != 2 || p2.Status() != 422 {
		t.Fatalf("second payload = %v / %d", p2.Messages(), p2.Status())
	}
}

func TestBuilder_ZeroValue(t *testing.T) {
	var b Builder
	p := b.FieldError("x", "y").Build(404)
	if p.FieldErrors()["x"][0] != "y" {
		t.Fatal("zero builder must accept field errors")
	}
}

func TestPayload_StatusClamped(t *testing.T) {
	cases := map[int]int{
		0:   500,
		200: 500,
		399: 500,
		400: 400,
		418: 418,
		599: 599,
		600: 500,
		-1:  500,
	}
	for in, want := range cases {
		if got := NewBuilder().Build(in).Status(); got != want {
			t.Errorf("Build(%d).Status() = %d, want %d", in, got, want)
		}
	}
	var zero Payload
	if zero.Status() != 500 {
		t.Fatalf("zero payload status = %d", zero.Status())
	}
}

func TestPayload_AccessorsCopy(t *testing.T) {
	data := map[string]any{"nested": []any{"a"}}
	p := NewBuilder().Message("m").FieldError("f", "x").Data(data).Build(400)

	p.Messages()[0] = "changed"
	p.FieldErrors()["f"][0] = "changed"
	p.Data().(map[string]any)["nested"].([]any)[0] = "changed"
	data["nested"].([]any)[0] = "changed-source"

	if p.Messages()[0] != "m" || p.FieldErrors()["f"][0] != "x" {
		t.Fatal("payload mutated through accessor")
	}
	if p.Data().(map[string]any)["nested"].([]any)[0] != "a" {
		t.Fatal("data mutated through accessor or source")
	}
}

func TestPayload_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		p    Payload
		want string
	}{
		{
			name: "empty",
			p:    NewBuilder().Build(500),
			want: `{"flashErrors":[],"formErrors":{},"additionalData":null}`,
		},
		{
			name: "zero",
			p:    Payload{},
			want: `{"flashErrors":[],"formErrors":{},"additionalData":null}`,
		},
		{
			name: "full",
			p: NewBuilder().
				Message("Test flash error").
				FieldError("TEST", "Test field error").
				Data(map[string]any{"TEST": "ADDITIONAL_DATA"}).
				Build(404),
			want: `{"flashErrors":["Test flash error"],"formErrors":{"TEST":["Test field error"]},"additionalData":{"TEST":"ADDITIONAL_DATA"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.p)
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tt.want {
				t.Fatalf("got  %s\nwant %s", b, tt.want)
			}
		})
	}
}

func TestPayload_UnmarshalJSON(t *testing.T) {
	in := `{"flashErrors":["a"],"formErrors":{"f":["x","y"]},"additionalData":{"k":1}}`
	var p Payload
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatal(err)
	}
	want := NewBuilder().Message("a").FieldError("f", "x").FieldError("f", "y").
		Data(map[string]any{"k": float64(1)}).Build(500)
	if !p.Equal(want) {
		t.Fatalf("decoded payload differs: %+v", p)
	}
}

func TestPayload_Equal(t *testing.T) {
	a := NewBuilder().Message("m").FieldError("f", "x").Build(400)
	if !a.Equal(NewBuilder().Message("m").FieldError("f", "x").Build(400)) {
		t.Fatal("equal payloads reported different")
	}
	if a.Equal(a.WithStatus(422)) {
		t.Fatal("status must take part in equality")
	}
	if a.Equal(NewBuilder().Message("m").FieldError("g", "x").Build(400)) {
		t.Fatal("field key must take part in equality")
	}
	if a.Equal(NewBuilder().Message("m").FieldError("f", "x").Data(1).Build(400)) {
		t.Fatal("data must take part in equality")
	}
}

func TestE(t *testing.T) {
	root := errors.New("root")
	e := E(http.StatusNotFound, "Sample not found",
		WithMessageOption("second"),
		WithFieldErrorOption("id", "Unknown sample id"),
		WithDataOption(map[string]any{"id": "42"}),
		WithCauseOption(root),
	)

	if e.HTTPStatus() != 404 || e.Payload.Status() != 404 {
		t.Fatalf("status = %d/%d", e.HTTPStatus(), e.Payload.Status())
	}
	if got := e.Payload.Messages(); len(got) != 2 || got[0] != "Sample not found" {
		t.Fatalf("messages = %v", got)
	}
	if e.ErrorCategory() != category.Domain {
		t.Fatalf("category = %s", e.ErrorCategory())
	}
	if !errors.Is(e, root) {
		t.Fatal("cause not reachable")
	}
	s := e.Error()
	for _, sub := range []string{"404", "Sample not found; second", "root"} {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
}

func TestE_StatusClamped(t *testing.T) {
	e := E(http.StatusOK, "not an error")
	if e.HTTPStatus() != 500 || e.Payload.Status() != 500 {
		t.Fatalf("status = %d", e.HTTPStatus())
	}
	if New(302, NewBuilder().Build(302)).Status != 500 {
		t.Fatal("New must clamp")
	}
}

func TestShortcuts(t *testing.T) {
	cases := map[int]*Error{
		http.StatusNotFound:     NotFound("x"),
		http.StatusConflict:     Conflict("x"),
		http.StatusForbidden:    Forbidden("x"),
		http.StatusUnauthorized: Unauthorized("x"),
	}
	for want, e := range cases {
		if e.HTTPStatus() != want {
			t.Errorf("got %d, want %d", e.HTTPStatus(), want)
		}
	}
}

func TestError_CopyOnWrite(t *testing.T) {
	e1 := NotFound("gone")
	e2 := e1.WithCause(errors.New("db"))
	if e1.Cause != nil {
		t.Fatal("original mutated")
	}
	if e1.WithCause(nil) != e1 {
		t.Fatal("nil cause must return the receiver")
	}
	if e2.Payload.Messages()[0] != "gone" || !errors.Is(e2, e2.Cause) {
		t.Fatal("WithCause must keep the payload and attach the cause")
	}
}

func TestError_Nil(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" || e.HTTPStatus() != 500 {
		t.Fatal("nil receiver")
	}
}
