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

package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"dirpx.dev/apierrors/adapter"
	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/faults"
	"github.com/gin-gonic/gin"
)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middleware)

// WithLogger sets the logger for failure lines. The default is slog.Default().
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(m *middleware) {
		if l != nil {
			m.log = l
		}
	}
}

// WithMetrics counts every written error response.
func WithMetrics(metrics *Metrics) MiddlewareOption {
	return func(m *middleware) { m.metrics = metrics }
}

type middleware struct {
	w       Writer
	log     *slog.Logger
	metrics *Metrics
}

// Middleware returns a gin middleware that turns handler failures into
// error responses.
//
// Handlers report a failure with Abort (or c.Error followed by c.Abort). A
// panic is recovered and reported as an internal failure, except
// http.ErrAbortHandler, which is re-raised. When the handler already wrote a
// response the failure is only logged.
//
// Failures with a 5xx status are logged at Error level, everything else at
// Debug level.
func Middleware(cls apis.Classifier, opts ...MiddlewareOption) gin.HandlerFunc {
	m := &middleware{w: Writer{Classifier: cls}, log: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	return m.handle
}

func (m *middleware) handle(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(r)
			}
			m.respond(c, faults.Recovered(r))
		}
	}()

	c.Next()

	if last := c.Errors.Last(); last != nil {
		m.respond(c, last.Err)
	}
}

func (m *middleware) respond(c *gin.Context, err error) {
	res := m.w.Classify(err)

	level := slog.LevelDebug
	if res.Status.HTTP >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	m.log.LogAttrs(c.Request.Context(), level, "request failed",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Any("failure", adapter.ToDescriptor(res, err)),
	)

	if c.Writer.Written() {
		c.Abort()
		return
	}
	status, body := encode(res)
	m.metrics.Observe(res.Category, status)
	c.Abort()
	c.Data(status, ContentType, body)
}

// Abort records err on the context and stops the handler chain. Middleware
// writes the response.
func Abort(c *gin.Context, err error) {
	if err == nil {
		err = faults.Unclassified(nil)
	}
	_ = c.Error(err)
	c.Abort()
}
