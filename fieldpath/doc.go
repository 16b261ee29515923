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

// Package fieldpath derives field keys from the two kinds of paths failures
// carry.
//
// Validation paths are dotted property chains produced by validators
// ("order.items[0].sku"). Only their last segment is used as the field key,
// so violations of the same property in different elements accumulate under
// one key (see Last).
//
// Structural paths are chains of property/index references produced by
// deserializers. They are rendered in full, with indexes as "[n]" (see Ref
// and Render), so the key of the second element's "TEST" property is
// "[1].TEST".
package fieldpath
