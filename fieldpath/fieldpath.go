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
	"strconv"
	"strings"
)

// Ref is one step of a structural path through a decoded document: either a
// property name or an array index.
//
// Structural paths come from deserializers, which know exactly where in the
// document they failed, e.g. element 1 of the root array, then property
// "name".
type Ref struct {
	name    string
	index   int
	isIndex bool
}

// Prop returns a property reference.
func Prop(name string) Ref { return Ref{name: name} }

// Index returns an array-index reference.
func Index(i int) Ref { return Ref{index: i, isIndex: true} }

// String renders a property as its name and an index as "[n]".
func (r Ref) String() string {
	if r.isIndex {
		return "[" + strconv.Itoa(r.index) + "]"
	}
	return r.name
}

var (
	// ErrPathInvalid is returned by Parse for paths with empty segments or
	// unbalanced brackets.
	ErrPathInvalid = errors.New("apierrors: invalid field path")
)

// Render joins a structural path into a field key. Every segment is kept,
// indexes render as "[n]" and segments are joined with ".":
//
//	Render([]Ref{Index(1), Prop("TEST")})            == "[1].TEST"
//	Render([]Ref{Prop("items"), Index(0), Prop("qty")}) == "items.[0].qty"
//
// An empty path renders as "".
func Render(refs []Ref) string {
	if len(refs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range refs {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(r.String())
	}
	return b.String()
}

// Parse turns a dotted path as reported by decoders into structural refs.
//
// Segments that are plain non-negative integers become indexes, as do
// bracketed suffixes:
//
//	"1.name"          -> [1] name
//	"items[2].qty"    -> items [2] qty
//	"matrix[0][1]"    -> matrix [0] [1]
//
// The empty string yields an empty path without error.
func Parse(s string) ([]Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []Ref
	for _, seg := range strings.Split(s, ".") {
		refs, err := parseSegment(seg)
		if err != nil {
			return nil, err
		}
		out = append(out, refs...)
	}
	return out, nil
}

func parseSegment(seg string) ([]Ref, error) {
	if seg == "" {
		return nil, ErrPathInvalid
	}
	name := seg
	var idx []Ref
	if open := strings.IndexByte(seg, '['); open >= 0 {
		name = seg[:open]
		rest := seg[open:]
		for rest != "" {
			if rest[0] != '[' {
				return nil, ErrPathInvalid
			}
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, ErrPathInvalid
			}
			n, err := strconv.Atoi(rest[1:end])
			if err != nil || n < 0 {
				return nil, ErrPathInvalid
			}
			idx = append(idx, Index(n))
			rest = rest[end+1:]
		}
	}
	var out []Ref
	switch {
	case name == "" && len(idx) == 0:
		return nil, ErrPathInvalid
	case name == "":
	case isIndex(name):
		n, _ := strconv.Atoi(name)
		out = append(out, Index(n))
	default:
		out = append(out, Prop(name))
	}
	return append(out, idx...), nil
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Last returns the final segment of a dotted validation path, which is the
// field key used for validation failures:
//
//	Last("TEST.TEST")            == "TEST"
//	Last("order.items[0].sku")   == "sku"
//	Last("order.tags[3]")        == "tags"
//	Last("name")                 == "name"
//
// A trailing container subscript is dropped so that element violations are
// reported against the container property. Violations whose paths share the
// final segment therefore share a key.
func Last(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	seg := path
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		seg = path[i+1:]
	}
	if open := strings.IndexByte(seg, '['); open > 0 {
		return seg[:open]
	}
	return seg
}
