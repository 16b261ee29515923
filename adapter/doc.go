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

// Package adapter converts errors produced by third-party libraries into the
// variants of package faults, and classification results into log-friendly
// descriptors.
//
// The classifier only understands faults variants. Errors coming straight
// out of go-playground/validator, encoding/json or strconv are translated
// here, either explicitly at the raise site (FromValidator, FromJSON,
// FromBody) or lazily by the classifier through Normalize.
package adapter
