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

// Package faults defines one error variant per failure category.
//
// Raise sites construct one of these variants (directly, through the httpx
// binding helpers, or through the adapter package for errors produced by
// third-party libraries) and return it up the call stack, possibly wrapped
// with fmt.Errorf("...: %w", err). The classifier finds the variant with
// errors.As and extracts its detail.
//
// Error() strings are meant for logs. Clients only ever see the payload the
// classifier builds.
package faults
