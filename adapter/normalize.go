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

package adapter

import (
	"errors"
	"strconv"
	"strings"

	"dirpx.dev/apierrors/faults"
)

// Normalize is the classifier's default normalizer. It recognizes:
//
//   - validator.ValidationErrors (as a faults.ValidationError);
//   - encoding/json type and syntax errors (see FromJSON).
//
// It returns nil for anything else. io.EOF, *strconv.NumError and
// http.ErrMissingFile are left to the request boundary helpers (FromBody,
// FromConversion, httpx); anywhere else they are internal faults.
func Normalize(err error) error {
	if err == nil {
		return nil
	}
	if out := FromValidator(err, KindValidation); out != nil {
		return out
	}
	return FromJSON(err)
}

// FromConversion converts a *strconv.NumError found in err into a
// faults.TypeMismatchError for parameter name. It returns nil when err
// carries none.
func FromConversion(err error, name string) error {
	var ne *strconv.NumError
	if !errors.As(err, &ne) {
		return nil
	}
	return faults.TypeMismatch(name, ne.Num, requiredType(ne.Func), err)
}

// requiredType turns a strconv function name into a type name:
// "ParseInt" becomes "int", "Atoi" becomes "int".
func requiredType(fn string) string {
	if fn == "Atoi" {
		return "int"
	}
	t := strings.TrimPrefix(fn, "Parse")
	if t == fn {
		return ""
	}
	return strings.ToLower(t)
}
