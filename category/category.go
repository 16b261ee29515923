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

package category

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Category is the canonical, validated name of a failure category.
//
// It is defined as a separate type (not just string) so that configuration,
// metrics labels and classifier options cannot accidentally mix raw user
// input with normalized values.
type Category string

// MinLength and MaxLength define the allowed length range for a category name.
const (
	// MinLength is the minimum length for a valid category.
	MinLength = 3

	// MaxLength is the maximum length for a valid category. Category names
	// end up as Prometheus label values and gRPC ErrorInfo reasons, so they
	// are kept short.
	MaxLength = 32
)

const (
	// categoryFmt is the canonical regular expression used to validate
	// category names.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[a-z] - first character must be a lowercase ASCII letter;
	//	[a-z0-9_]{2,31} - lowercase letters, digits or underscore; the total
	//	                  length is 3..32 characters (1 + 2..31);
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {2,31} is tied to MinLength / MaxLength above.
	categoryFmt = `^[a-z][a-z0-9_]{2,31}$`
)

var categoryRe = regexp.MustCompile(categoryFmt)

var (
	// ErrCategoryInvalid is returned when a value cannot be parsed or
	// validated as a category name.
	ErrCategoryInvalid = errors.New("apierrors: invalid category")

	// ErrCategoryUnknown is returned by ParseKnown for well-formed names that
	// are not one of the built-in categories.
	ErrCategoryUnknown = errors.New("apierrors: unknown category")
)

// Ensure Category implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be used as a YAML/JSON map key in configuration.
var (
	_ encoding.TextMarshaler   = (*Category)(nil)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

// Empty is the zero-value category. It never names a real category.
var Empty Category = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Category value.
func Parse(s string) (Category, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Category(s), nil
}

// ParseKnown is Parse restricted to the built-in categories.
func ParseKnown(s string) (Category, error) {
	c, err := Parse(s)
	if err != nil {
		return Empty, err
	}
	if !Known(c) {
		return Empty, ErrCategoryUnknown
	}
	return c, nil
}

// Normalize brings an arbitrary string closer to the canonical form:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' and ' ' with '_'.
//
// It does NOT guarantee that the result is valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Validate checks whether the provided Category is well-formed.
// The empty category is invalid.
func Validate(c Category) error {
	return validate(string(c))
}

// String returns the canonical string representation of the category.
func (c Category) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Category) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if !categoryRe.MatchString(s) {
		return ErrCategoryInvalid
	}
	return nil
}
