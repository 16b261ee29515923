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

package grpcx

import (
	"context"
	"errors"
	"log/slog"

	"dirpx.dev/apierrors/adapter"
	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/classifier"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

// MetaFn extracts additional ErrorInfo metadata from the request context and
// the classification result. It may return nil.
type MetaFn func(ctx context.Context, res apis.Result) map[string]string

// Option configures the interceptors.
type Option func(*interceptor)

// WithLogger sets the logger for failure lines. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(i *interceptor) {
		if l != nil {
			i.log = l
		}
	}
}

// WithMeta registers a MetaFn.
func WithMeta(fn MetaFn) Option {
	return func(i *interceptor) { i.meta = fn }
}

type interceptor struct {
	cls  apis.Classifier
	log  *slog.Logger
	meta MetaFn
}

func newInterceptor(cls apis.Classifier, opts []Option) *interceptor {
	if cls == nil {
		cls = classifier.Default()
	}
	i := &interceptor{cls: cls, log: slog.Default()}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that
// classifies handler errors and replaces them with rich statuses.
//
// Errors that already are gRPC statuses are returned unchanged, and context
// cancellation maps to the matching gRPC code unless the chain also carries a
// deliberate payload.
func UnaryServerInterceptor(cls apis.Classifier, opts ...Option) grpc.UnaryServerInterceptor {
	i := newInterceptor(cls, opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, i.convert(ctx, info.FullMethod, err)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(cls apis.Classifier, opts ...Option) grpc.StreamServerInterceptor {
	i := newInterceptor(cls, opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return i.convert(ss.Context(), info.FullMethod, err)
	}
}

func (i *interceptor) convert(ctx context.Context, method string, err error) error {
	if _, ok := err.(interface{ GRPCStatus() *gstatus.Status }); ok {
		return err
	}
	var provider apis.PayloadProvider
	if !errors.As(err, &provider) &&
		(errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return gstatus.FromContextError(err).Err()
	}

	res := i.cls.Classify(err)

	level := slog.LevelDebug
	if res.Status.GRPC == gcodes.Internal {
		level = slog.LevelError
	}
	i.log.LogAttrs(ctx, level, "rpc failed",
		slog.String("method", method),
		slog.Any("failure", adapter.ToDescriptor(res, err)),
	)

	var extra map[string]string
	if i.meta != nil {
		extra = i.meta(ctx, res)
	}
	return ToStatus(res, extra).Err()
}
