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

package apierrors

// Option is a functional option for constructing an Error with E.
// It receives the payload builder and the error under construction.
type Option func(*Builder, *Error)

// WithMessageOption appends another top-level message.
// Intended to be used with E(...).
func WithMessageOption(msg string) Option {
	return func(b *Builder, _ *Error) {
		b.Message(msg)
	}
}

// WithFieldErrorOption appends a message for field.
// Intended to be used with E(...).
func WithFieldErrorOption(field, msg string) Option {
	return func(b *Builder, _ *Error) {
		b.FieldError(field, msg)
	}
}

// WithDataOption sets the attached data.
// Intended to be used with E(...).
func WithDataOption(v any) Option {
	return func(b *Builder, _ *Error) {
		b.Data(v)
	}
}

// WithCauseOption attaches a cause on construction.
// Intended to be used with E(...).
func WithCauseOption(err error) Option {
	return func(_ *Builder, e *Error) {
		e.Cause = err
	}
}
