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

package classifier

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/apierrors"
	"dirpx.dev/apierrors/apis"
	"dirpx.dev/apierrors/category"
	"dirpx.dev/apierrors/faults"
)

var update = flag.Bool("update", false, "update golden files")

// TestExplain_Golden verifies Explain() output is stable and human-friendly.
// Update golden with: go test ./classifier -run Explain_Golden -update
func TestExplain_Golden(t *testing.T) {
	c, err := New(
		WithHTTPStatus(category.Binding, 400),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var v map[string]any
	syntaxErr := json.Unmarshal([]byte("{"), &v)

	cases := []error{
		// Case 1: direct rule hit
		faults.Validation(apis.Violation{Path: "TEST.TEST", Message: "Test invalid"}),
		// Case 2: domain error behind a wrapper
		fmt.Errorf("lookup: %w", apierrors.NotFound("Sample not found")),
		// Case 3: foreign error converted by the default normalizer
		syntaxErr,
		// Case 4: overridden status
		faults.Binding(),
		// Case 5: fallback
		errors.New("boom"),
	}

	var b strings.Builder
	for i, e := range cases {
		if i > 0 {
			b.WriteString("\n---\n")
		}
		b.WriteString(c.Explain(e))
	}
	b.WriteString("\n")
	got := b.String()

	goldenPath := filepath.Join("testdata", "explain.golden")
	if *update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
			t.Fatalf("mkdir testdata: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		t.Logf("updated %s", goldenPath)
		return
	}

	wantBytes, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v (run with -update to create)", err)
	}
	want := string(wantBytes)

	// normalize trailing newlines to avoid EOF newline mismatches
	normalize := func(s string) string { return strings.TrimRight(s, "\r\n") }

	if normalize(want) != normalize(got) {
		t.Fatalf("Explain() output mismatch.\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}
