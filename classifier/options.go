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

	"dirpx.dev/apierrors/category"
	"google.golang.org/grpc/codes"
)

// ErrInvalidOption is returned by New when an option carries a value that
// cannot be honored.
var ErrInvalidOption = errors.New("classifier: invalid option")

// Normalizer converts a foreign error into one of the faults variants. It
// returns nil (or err itself) when it does not recognize err.
type Normalizer func(err error) error

// Option configures the Classifier at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Classifier.
type Option func(*builder)

// WithHTTPStatus replaces the HTTP status of category c. The status must be
// in 400..599. Domain errors carry their own status and cannot be
// configured.
func WithHTTPStatus(c category.Category, status int) Option {
	return func(b *builder) {
		if err := configurable(c); err != nil {
			b.fail(err)
			return
		}
		if status < 400 || status > 599 {
			b.fail(fmt.Errorf("%w: HTTP status %d for %q is not an error status", ErrInvalidOption, status, c))
			return
		}
		b.http[c] = status
	}
}

// WithGRPCCode replaces the gRPC code of category c. codes.OK is rejected.
func WithGRPCCode(c category.Category, code codes.Code) Option {
	return func(b *builder) {
		if err := configurable(c); err != nil {
			b.fail(err)
			return
		}
		if code == codes.OK || code > codes.Unauthenticated {
			b.fail(fmt.Errorf("%w: gRPC code %d for %q", ErrInvalidOption, int(code), c))
			return
		}
		b.grpc[c] = code
	}
}

// WithParameterLabel sets the name reported for a mismatched or missing
// parameter whose name is unknown. The default is "unknown".
func WithParameterLabel(label string) Option {
	return func(b *builder) {
		if label == "" {
			b.fail(fmt.Errorf("%w: empty parameter label", ErrInvalidOption))
			return
		}
		b.label = label
	}
}

// WithNormalizer registers an additional normalizer. Normalizers run in
// registration order, before the default one, and the first that produces a
// recognizable variant wins.
func WithNormalizer(n Normalizer) Option {
	return func(b *builder) {
		if n == nil {
			b.fail(fmt.Errorf("%w: nil normalizer", ErrInvalidOption))
			return
		}
		b.normalizers = append(b.normalizers, n)
	}
}

// WithoutDefaultNormalizer disables adapter.Normalize. Foreign errors that
// no registered normalizer recognizes are then reported as internal.
func WithoutDefaultNormalizer() Option {
	return func(b *builder) { b.noDefault = true }
}

func configurable(c category.Category) error {
	if err := category.Validate(c); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidOption, c, err)
	}
	if !category.Known(c) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidOption, c)
	}
	if c == category.Domain {
		return fmt.Errorf("%w: %q statuses are carried by the error", ErrInvalidOption, c)
	}
	return nil
}
