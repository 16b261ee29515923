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

package faults

import (
	"dirpx.dev/apierrors/category"
	"dirpx.dev/apierrors/fieldpath"
)

// DeserializationError reports a payload that could be read but not mapped
// onto its target type. Path is the structural location of the problem and
// is empty when the decoder could not tell.
type DeserializationError struct {
	Path  []fieldpath.Ref
	Cause error
}

// Deserialization returns a DeserializationError at path.
func Deserialization(cause error, path ...fieldpath.Ref) *DeserializationError {
	return &DeserializationError{Path: path, Cause: cause}
}

func (e *DeserializationError) Error() string {
	msg := "cannot deserialize payload"
	if len(e.Path) > 0 {
		msg += " at " + fieldpath.Render(e.Path)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *DeserializationError) Unwrap() error { return e.Cause }

// ErrorCategory reports category.Deserialization.
func (e *DeserializationError) ErrorCategory() category.Category { return category.Deserialization }

// UnreadableBodyError reports a request body that is malformed or could not
// be read. The cause may itself be a DeserializationError, in which case the
// classifier reports the more specific failure.
type UnreadableBodyError struct {
	Cause error
}

// UnreadableBody returns an UnreadableBodyError wrapping cause.
func UnreadableBody(cause error) *UnreadableBodyError {
	return &UnreadableBodyError{Cause: cause}
}

func (e *UnreadableBodyError) Error() string {
	if e.Cause == nil {
		return "request body unreadable"
	}
	return "request body unreadable: " + e.Cause.Error()
}

func (e *UnreadableBodyError) Unwrap() error { return e.Cause }

// ErrorCategory reports category.UnreadableBody.
func (e *UnreadableBodyError) ErrorCategory() category.Category { return category.UnreadableBody }
