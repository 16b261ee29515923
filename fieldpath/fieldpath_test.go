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

package fieldpath

import (
	"errors"
	"reflect"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		in   []Ref
		want string
	}{
		{"empty", nil, ""},
		{"index then property", []Ref{Index(1), Prop("TEST")}, "[1].TEST"},
		{"property chain", []Ref{Prop("a"), Prop("b")}, "a.b"},
		{"nested index", []Ref{Prop("items"), Index(0), Prop("qty")}, "items.[0].qty"},
		{"index only", []Ref{Index(7)}, "[7]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.in); got != tt.want {
				t.Fatalf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Ref
	}{
		{"empty", "", nil},
		{"numeric segment", "1.TEST", []Ref{Index(1), Prop("TEST")}},
		{"bracket index", "items[2].qty", []Ref{Prop("items"), Index(2), Prop("qty")}},
		{"double bracket", "matrix[0][1]", []Ref{Prop("matrix"), Index(0), Index(1)}},
		{"leading bracket", "[3].name", []Ref{Index(3), Prop("name")}},
		{"single property", "name", []Ref{Prop("name")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"a..b",
		".leading",
		"trailing.",
		"items[x]",
		"items[1",
		"items[-1]",
		"items[0]x",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			if !errors.Is(err, ErrPathInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrPathInvalid", in, err)
			}
			if got != nil {
				t.Fatalf("Parse(%q) on error must return nil, got %v", in, got)
			}
		})
	}
}

func TestParse_RenderRoundTrip(t *testing.T) {
	refs, err := Parse("1.TEST")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Render(refs); got != "[1].TEST" {
		t.Fatalf("Render(Parse(1.TEST)) = %q, want %q", got, "[1].TEST")
	}
}

func TestLast(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TEST.TEST", "TEST"},
		{"name", "name"},
		{"order.items[0].sku", "sku"},
		{"order.tags[3]", "tags"},
		{"", ""},
		{"  spaced.path  ", "path"},
		{"[0]", "[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Last(tt.in); got != tt.want {
				t.Fatalf("Last(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRef_String(t *testing.T) {
	if got := Prop("name").String(); got != "name" {
		t.Fatalf("Prop(name).String() = %q", got)
	}
	if got := Index(4).String(); got != "[4]" {
		t.Fatalf("Index(4).String() = %q", got)
	}
	if Prop("4") == Index(4) {
		t.Fatal("a numeric property must differ from an index")
	}
}
