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
	"mime/multipart"
	"net/http"
	"strconv"

	"dirpx.dev/apierrors/adapter"
	"dirpx.dev/apierrors/faults"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := adapter.RegisterValidations(v); err != nil {
			panic(err)
		}
	}
}

// BindJSON decodes and validates the request body into obj.
//
// Validation failures are returned as *faults.BindingError, type errors as
// *faults.DeserializationError and malformed bodies as
// *faults.UnreadableBodyError.
func BindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return adapter.FromBody(err)
	}
	return nil
}

// BindQuery binds and validates query parameters into obj.
//
// Validation failures are returned as *faults.RequestValidationError and
// conversion failures as *faults.TypeMismatchError.
func BindQuery(c *gin.Context, obj any) error {
	err := c.ShouldBindQuery(obj)
	if err == nil {
		return nil
	}
	if out := adapter.FromValidator(err, adapter.KindRequest); out != nil {
		return out
	}
	if out := adapter.FromConversion(err, ""); out != nil {
		return out
	}
	return &faults.TypeMismatchError{Cause: err}
}

// Query returns a required query parameter. An absent parameter is a
// *faults.MissingParameterError. A present but empty one is returned as "".
func Query(c *gin.Context, name string) (string, error) {
	v, ok := c.GetQuery(name)
	if !ok {
		return "", faults.MissingParameter(name, "string")
	}
	return v, nil
}

// QueryInt returns a required integer query parameter.
func QueryInt(c *gin.Context, name string) (int, error) {
	v, ok := c.GetQuery(name)
	if !ok {
		return 0, faults.MissingParameter(name, "int")
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, adapter.FromConversion(err, name)
	}
	return n, nil
}

// FormFile returns a required multipart file. An absent file is a
// *faults.MissingParameterError of type "file"; a malformed multipart body
// is a *faults.UnreadableBodyError.
func FormFile(c *gin.Context, name string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(name)
	switch {
	case err == nil:
		return fh, nil
	case errors.Is(err, http.ErrMissingFile):
		return nil, faults.MissingParameter(name, "file")
	default:
		return nil, faults.UnreadableBody(err)
	}
}

// Negotiate picks the response format from offered according to the Accept
// header. No acceptable format is a *faults.NotAcceptableError.
func Negotiate(c *gin.Context, offered ...string) (string, error) {
	if len(offered) == 0 {
		return "", faults.NotAcceptable(c.GetHeader("Accept"))
	}
	if f := c.NegotiateFormat(offered...); f != "" {
		return f, nil
	}
	return "", faults.NotAcceptable(c.GetHeader("Accept"), offered...)
}
