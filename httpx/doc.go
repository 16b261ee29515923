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

// Package httpx writes classified failures as HTTP responses.
//
// Writer is the plain net/http entry point. Middleware does the same for gin
// routers: it recovers panics, classifies the last error a handler attached
// to the context, writes the JSON body, logs one line per failure and
// optionally counts responses in Prometheus. The binding helpers wrap gin's
// binders so that handlers return the right faults variant without thinking
// about it.
package httpx
