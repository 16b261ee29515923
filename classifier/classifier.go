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
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"dirpx.dev/apierrors"
	"dirpx.dev/apierrors/adapter"
	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/category"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Classifier snapshot.
//
// Build process overview:
//
//  1. Seed the builder with the built-in statuses (HTTP & gRPC).
//  2. Apply user-provided options.
//  3. Report every invalid option, wrapped in ErrInvalidOption.
//  4. Freeze statuses and normalizers into fresh allocations.
func New(opts ...Option) (apis.Classifier, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}
	if err := b.err(); err != nil {
		return nil, err
	}
	b.overrides()

	normalizers := slices.Clone(b.normalizers)
	if !b.noDefault {
		normalizers = append(normalizers, adapter.Normalize)
	}

	return &classifier{
		http:        maps.Clone(b.http),
		grpc:        maps.Clone(b.grpc),
		httpSet:     maps.Clone(b.httpSet),
		grpcSet:     maps.Clone(b.grpcSet),
		label:       b.label,
		normalizers: normalizers,
	}, nil
}

var defaultClassifier = sync.OnceValue(func() apis.Classifier {
	c, err := New()
	if err != nil {
		panic(fmt.Sprintf("classifier: default configuration rejected: %v", err))
	}
	return c
})

// Default returns a shared Classifier built with no options.
func Default() apis.Classifier { return defaultClassifier() }

type classifier struct {
	http    map[category.Category]int
	grpc    map[category.Category]codes.Code
	httpSet map[category.Category]bool
	grpcSet map[category.Category]bool

	// label names parameters whose name could not be resolved.
	label string

	normalizers []Normalizer
}

// Resolution sources reported by Explain.
const (
	sourceRule       = "rule"
	sourceNormalized = "normalized"
	sourceFallback   = "fallback"
)

// trace records how a classification was reached.
type trace struct {
	source  string
	variant error
}

// Classify resolves err to a category, statuses and payload.
func (c *classifier) Classify(err error) apis.Result {
	res, _ := c.classify(err)
	return res
}

func (c *classifier) classify(err error) (res apis.Result, tr trace) {
	defer func() {
		if r := recover(); r != nil {
			res, tr = c.internal(), trace{source: sourceFallback}
		}
	}()

	if err == nil {
		return c.internal(), trace{source: sourceFallback}
	}
	if res, v, ok := c.dispatch(err); ok {
		return res, trace{source: sourceRule, variant: v}
	}
	for _, n := range c.normalizers {
		ne := normalize(n, err)
		if ne == nil {
			continue
		}
		if res, v, ok := c.dispatch(ne); ok {
			return res, trace{source: sourceNormalized, variant: v}
		}
	}
	return c.internal(), trace{source: sourceFallback}
}

// dispatch runs the table once against err.
func (c *classifier) dispatch(err error) (apis.Result, error, bool) {
	if p, ok := findProvider(err); ok {
		return c.domain(p), p, true
	}
	for i := range rules {
		r := &rules[i]
		if v, ok := r.find(err); ok {
			return c.build(r, v), v, true
		}
	}
	return apis.Result{}, nil, false
}

// domain passes a deliberate failure through. Its messages, field errors and
// data are kept as built; the status is the one the error reports.
func (c *classifier) domain(p apis.PayloadProvider) apis.Result {
	status := p.HTTPStatus()
	payload := p.ErrorPayload()
	if payload.Status() != status {
		payload = payload.WithStatus(status)
	}
	status = payload.Status()
	return apis.Result{
		Category: category.Domain,
		Status:   apis.Status{HTTP: status, GRPC: grpcFromHTTP(status)},
		Payload:  payload,
	}
}

// build runs r's extractor. An extractor that panics degrades to the
// category's plain payload.
func (c *classifier) build(r *rule, v error) (res apis.Result) {
	st := c.status(r.cat)
	res = apis.Result{Category: r.cat, Status: st}
	defer func() {
		if rec := recover(); rec != nil {
			res.Payload = apierrors.NewBuilder().Message(plainMessage[r.cat]).Build(st.HTTP)
		}
	}()
	b := apierrors.NewBuilder()
	r.fill(c, v, b)
	res.Payload = b.Build(st.HTTP)
	return res
}

func (c *classifier) internal() apis.Result {
	st := c.status(category.Internal)
	return apis.Result{
		Category: category.Internal,
		Status:   st,
		Payload:  apierrors.NewBuilder().Message(msgInternal).Build(st.HTTP),
	}
}

func (c *classifier) status(cat category.Category) apis.Status {
	return apis.Status{HTTP: c.http[cat], GRPC: c.grpc[cat]}
}

// normalize calls n, treating a panic as "not recognized".
func normalize(n Normalizer, err error) (out error) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()
	return n(err)
}

// Categories returns the categories in precedence order.
func (c *classifier) Categories() []category.Category { return category.All() }

// Explain produces a textual trace of how err was classified.
//
// Example output:
//
//	category="deserialization" source=normalized variant=*faults.DeserializationError
//	http: source=default -> 422
//	grpc: source=default -> INVALIDARGUMENT(3)
//
// Notes:
//   - source ∈ {rule | normalized | fallback}
//   - http source ∈ {default | override | carried}
//   - grpc source ∈ {default | override | derived}
func (c *classifier) Explain(err error) string {
	res, tr := c.classify(err)

	var b strings.Builder
	variant := "<none>"
	if tr.variant != nil {
		variant = fmt.Sprintf("%T", tr.variant)
	}
	_, _ = fmt.Fprintf(&b, "category=%q source=%s variant=%s\n", res.Category, tr.source, variant)

	httpSrc, grpcSrc := "default", "default"
	if res.Category == category.Domain {
		httpSrc, grpcSrc = "carried", "derived"
	}
	if c.httpSet[res.Category] {
		httpSrc = "override"
	}
	if c.grpcSet[res.Category] {
		grpcSrc = "override"
	}
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", httpSrc, res.Status.HTTP)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", grpcSrc,
		strings.ToUpper(res.Status.GRPC.String()), int(res.Status.GRPC))
	return b.String()
}
