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

package main

import (
	"log/slog"
	"os"

	"github.com/gitops-tools/tagger/pkg/actions"
	"github.com/gitops-tools/tagger/pkg/cli"
)

func main() {
	if err := cli.Run(os.Args); err != nil {
		// The annotation goes to stdout so the Actions runner surfaces it
		// in the workflow UI; the structured record goes to stderr.
		actions.Errorf(os.Stdout, "%v", err)
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
