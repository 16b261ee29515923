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

package classifier

import (
	"errors"
	"fmt"

	"dirpx.dev/apierrors"
	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/category"
	"dirpx.dev/apierrors/faults"
	"dirpx.dev/apierrors/fieldpath"
)

// rule recognizes one category. find walks the error chain and returns the
// matched variant; fill adds the category's detail to the builder.
type rule struct {
	cat  category.Category
	find func(err error) (error, bool)
	fill func(c *classifier, v error, b *apierrors.Builder)
}

// as returns a finder for the concrete variant type T.
func as[T error]() func(error) (error, bool) {
	return func(err error) (error, bool) {
		var v T
		if errors.As(err, &v) {
			return v, true
		}
		return nil, false
	}
}

// rules is the dispatch table, in category precedence order. Domain errors
// are handled before the table because they bring their own status.
var rules = []rule{
	{
		cat:  category.Validation,
		find: as[*faults.ValidationError](),
		fill: violations(msgInvalidRequest, fieldpath.Last),
	},
	{
		cat:  category.RequestValidation,
		find: as[*faults.RequestValidationError](),
		fill: violations(msgBadRequest, fieldpath.Last),
	},
	{
		cat:  category.Deserialization,
		find: as[*faults.DeserializationError](),
		fill: func(_ *classifier, v error, b *apierrors.Builder) {
			b.Message(msgInvalidRequest)
			b.FieldError(fieldpath.Render(v.(*faults.DeserializationError).Path), msgInvalidType)
		},
	},
	{
		cat:  category.UnreadableBody,
		find: as[*faults.UnreadableBodyError](),
		fill: func(_ *classifier, _ error, b *apierrors.Builder) {
			b.Message(msgBadRequest)
		},
	},
	{
		cat:  category.MissingParameter,
		find: as[*faults.MissingParameterError](),
		fill: func(c *classifier, v error, b *apierrors.Builder) {
			name := v.(*faults.MissingParameterError).Name
			if name == "" {
				name = c.label
			}
			b.Message(fmt.Sprintf("%s '%s'", msgMissingParameter, name))
		},
	},
	{
		cat:  category.TypeMismatch,
		find: as[*faults.TypeMismatchError](),
		fill: func(c *classifier, v error, b *apierrors.Builder) {
			name := v.(*faults.TypeMismatchError).ResolvedName()
			if name == "" {
				name = c.label
			}
			b.Message(fmt.Sprintf("%s '%s'", msgInvalidParameter, name))
		},
	},
	{
		cat:  category.Binding,
		find: as[*faults.BindingError](),
		fill: violations(msgInvalidRequest, asBound),
	},
	{
		cat:  category.NotAcceptable,
		find: as[*faults.NotAcceptableError](),
		fill: func(_ *classifier, _ error, b *apierrors.Builder) {
			b.Message(msgNotAcceptable)
		},
	},
	{
		cat:  category.Internal,
		find: as[*faults.UnclassifiedError](),
		fill: func(_ *classifier, _ error, b *apierrors.Builder) {
			b.Message(msgInternal)
		},
	},
}

// violations fills msg plus one field error per violation, keyed by
// key(path).
func violations(msg string, key func(path string) string) func(*classifier, error, *apierrors.Builder) {
	return func(_ *classifier, v error, b *apierrors.Builder) {
		b.Message(msg)
		for _, vio := range v.(apis.ViolationCarrier).ErrorViolations() {
			b.FieldError(key(vio.Path), vio.Message)
		}
	}
}

// asBound keys binding violations by the field path as bound.
func asBound(path string) string { return path }

// findProvider looks for a deliberate failure in the chain.
func findProvider(err error) (apis.PayloadProvider, bool) {
	var p apis.PayloadProvider
	if errors.As(err, &p) {
		return p, true
	}
	return nil, false
}
