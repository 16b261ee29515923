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

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"dirpx.dev/apierrors/internal/config"
	"dirpx.dev/apierrors/internal/fixtures"
)

// explain prints, for every named fixture, the classification trace followed
// by the status line and the JSON body a client would receive.
func explain(w io.Writer, cfg *config.Config, names []string) error {
	cls, err := cfg.Classifier()
	if err != nil {
		return err
	}

	selected := fixtures.All()
	if len(names) > 0 {
		selected = make([]fixtures.Fixture, 0, len(names))
		for _, name := range names {
			f, ok := fixtures.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown fixture %q", name)
			}
			selected = append(selected, f)
		}
	}

	for i, f := range selected {
		if i > 0 {
			fmt.Fprintln(w)
		}
		failure := f.Err()
		res := cls.Classify(failure)
		body, err := json.Marshal(res.Payload)
		if err != nil {
			return fmt.Errorf("fixture %s: %w", f.Name, err)
		}
		fmt.Fprintf(w, "# %s\n%s\n%d %s\n", f.Name, cls.Explain(failure), res.Status.HTTP, body)
	}
	return nil
}
