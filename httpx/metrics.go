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
	"strconv"

	"dirpx.dev/apierrors/category"
	prom "github.com/prometheus/client_golang/prometheus"
)

// Metrics counts error responses by category and status.
type Metrics struct {
	responses *prom.CounterVec
}

// NewMetrics constructs and registers the error response counter on reg.
// A nil reg gets a private registry.
func NewMetrics(reg prom.Registerer) *Metrics {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	m := &Metrics{
		responses: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "apierrors",
			Name:      "responses_total",
			Help:      "Error responses written, by category and HTTP status",
		}, []string{"category", "status"}),
	}
	reg.MustRegister(m.responses)
	return m
}

// Observe counts one response of category c written with status.
func (m *Metrics) Observe(c category.Category, status int) {
	if m == nil {
		return
	}
	m.responses.WithLabelValues(string(c), strconv.Itoa(status)).Inc()
}
