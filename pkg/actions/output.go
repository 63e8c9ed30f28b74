// Copyright (c) 2026, the tagger authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package actions

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gitops-tools/tagger/pkg/errors"
)

// fallbackOutputFile is used when no output file path is configured,
// which happens outside CI runners. Keeps local runs inspectable.
const fallbackOutputFile = "GITHUB_OUTPUT.txt"

// Output is one key=value pair written to the CI output sink.
type Output struct {
	Key   string
	Value string
}

// OutputPath resolves the output file path: the configured path when set,
// otherwise the local fallback file in the working directory.
func OutputPath(configured string) string {
	if strings.TrimSpace(configured) != "" {
		return configured
	}
	return fallbackOutputFile
}

// WriteOutputs appends the given key=value lines to the output file,
// creating it if needed. The sink is append-only: prior outputs from
// earlier workflow steps are preserved. Keys must be non-empty and values
// must be single-line; anything else is rejected before any line is
// written.
func WriteOutputs(path string, outputs []Output) error {
	for _, o := range outputs {
		if o.Key == "" {
			return errors.New(errors.ErrCodeInvalidRequest, "output key must not be empty")
		}
		if strings.ContainsAny(o.Value, "\r\n") {
			return errors.Newf(errors.ErrCodeInvalidRequest, "output value for %q must be a single line", o.Key)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "opening output file", err)
	}
	defer f.Close()

	for _, o := range outputs {
		if _, err := fmt.Fprintf(f, "%s=%s\n", o.Key, o.Value); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, "writing output file", err)
		}
	}
	return nil
}

// Errorf emits a workflow error annotation ("::error::...") so the failure
// is surfaced inline in the CI run view.
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "::error::"+format+"\n", args...)
}
