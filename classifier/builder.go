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
	"maps"

	"dirpx.dev/apierrors/category"
	"google.golang.org/grpc/codes"
)

type builder struct {
	// http and grpc start as copies of the package defaults and receive the
	// user overrides.
	http map[category.Category]int
	grpc map[category.Category]codes.Code

	// overridden records which statuses were changed by options, for Explain.
	httpSet map[category.Category]bool
	grpcSet map[category.Category]bool

	label       string
	normalizers []Normalizer
	noDefault   bool

	// errs collects option failures; New reports them all.
	errs []error
}

func newBuilder() *builder {
	return &builder{
		http:  maps.Clone(defaultHTTP),
		grpc:  maps.Clone(defaultGRPC),
		label: defaultParameterLabel,
	}
}

func (b *builder) fail(err error) { b.errs = append(b.errs, err) }

func (b *builder) err() error { return errors.Join(b.errs...) }

// overrides compares the builder state with the defaults. Called once after
// all options were applied.
func (b *builder) overrides() {
	b.httpSet = make(map[category.Category]bool)
	b.grpcSet = make(map[category.Category]bool)
	for c, v := range b.http {
		if defaultHTTP[c] != v {
			b.httpSet[c] = true
		}
	}
	for c, v := range b.grpc {
		if defaultGRPC[c] != v {
			b.grpcSet[c] = true
		}
	}
}
