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
	"errors"
	"strings"

	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/faults"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Kind selects which variant FromValidator produces.
type Kind int

const (
	// KindValidation reports violations as a faults.ValidationError. Use it
	// for values validated in service code.
	KindValidation Kind = iota
	// KindRequest reports violations as a faults.RequestValidationError. Use
	// it for query string and form values.
	KindRequest
	// KindBinding reports violations as a faults.BindingError. Use it for
	// request bodies.
	KindBinding
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindRequest:
		return "request"
	case KindBinding:
		return "binding"
	default:
		return "unknown"
	}
}

// messages maps validator tags to client-facing texts.
var messages = map[string]string{
	"required":   "This field is required",
	"email":      "Must be a valid email address",
	"max":        "Exceeds maximum length",
	"min":        "Below minimum length",
	"gte":        "Must be greater than or equal to minimum value",
	"gt":         "Must be greater than minimum value",
	"lte":        "Must be less than or equal to maximum value",
	"lt":         "Must be less than maximum value",
	"uuid":       "Must be a valid UUID",
	"url":        "Must be a valid URL",
	"oneof":      "Must be one of the allowed values",
	"alphanum":   "Must contain only alphanumeric characters",
	"numeric":    "Must be a numeric value",
	"alpha":      "Must contain only alphabetic characters",
	"len":        "Must be exactly the specified length",
	"eq":         "Must equal the specified value",
	"ne":         "Must not equal the specified value",
	"contains":   "Must contain the specified value",
	"excludes":   "Must not contain the specified value",
	"startswith": "Must start with the specified value",
	"endswith":   "Must end with the specified value",
	"notblank":   "Must not be blank",
}

// RegisterValidations adds the tags the messages table knows about but the
// validator does not register by default ("notblank").
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("notblank", validators.NotBlank)
}

// Message returns the client-facing text for a validator tag.
func Message(tag string) string {
	if msg, ok := messages[tag]; ok {
		return msg
	}
	return "Validation failed: " + tag
}

// Violations converts validator output into violations, in the order the
// validator reported them. It returns nil when err carries no
// validator.ValidationErrors.
func Violations(err error) []apis.Violation {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return nil
	}
	out := make([]apis.Violation, 0, len(ves))
	for _, fe := range ves {
		out = append(out, apis.Violation{
			Path:    path(fe),
			Message: Message(fe.Tag()),
			Rule:    fe.Tag(),
		})
	}
	return out
}

// FromValidator converts validator.ValidationErrors found in err into the
// variant selected by kind. It returns nil when err carries none.
func FromValidator(err error, kind Kind) error {
	vs := Violations(err)
	if vs == nil {
		return nil
	}
	switch kind {
	case KindRequest:
		return &faults.RequestValidationError{Violations: vs, Cause: err}
	case KindBinding:
		return &faults.BindingError{Violations: vs, Cause: err}
	default:
		return faults.Validation(vs...)
	}
}

// path strips the top-level struct name from the namespace:
// "CreateOrder.Items[0].SKU" becomes "Items[0].SKU".
func path(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	if ns == "" {
		return fe.Field()
	}
	return ns
}
