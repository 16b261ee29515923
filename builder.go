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

// Builder accumulates the parts of a Payload.
//
// A Builder is scoped to the construction of one response and is not safe
// for concurrent use. Build copies the accumulated state, so the builder may
// keep being mutated (or reused) without affecting payloads already built.
//
// Usage:
//
//	p := apierrors.NewBuilder().
//	    Message("Invalid Request").
//	    FieldError("email", "Must be a valid email address").
//	    Build(http.StatusBadRequest)
type Builder struct {
	messages []string
	fields   map[string][]string
	data     any
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{fields: make(map[string][]string)}
}

// Message appends a top-level message. Duplicates are kept.
func (b *Builder) Message(text string) *Builder {
	b.messages = append(b.messages, text)
	return b
}

// FieldError appends text to the messages of field, creating the list on
// first use. The empty field name is reserved for errors that have no
// specific field.
func (b *Builder) FieldError(field, text string) *Builder {
	if b.fields == nil {
		b.fields = make(map[string][]string)
	}
	b.fields[field] = append(b.fields[field], text)
	return b
}

// Data stores an arbitrary JSON-like value, replacing any previous one.
// Passing nil is the same as never calling Data: the value renders as null.
func (b *Builder) Data(v any) *Builder {
	b.data = v
	return b
}

// Build returns an immutable Payload with the accumulated state and the given
// status. Statuses outside 400..599 are replaced with 500.
func (b *Builder) Build(status int) Payload {
	msgs := make([]string, len(b.messages))
	copy(msgs, b.messages)
	return Payload{
		messages: msgs,
		fields:   cloneFields(b.fields),
		data:     cloneData(b.data),
		status:   normalizeStatus(status),
	}
}
