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

// Package cli implements the tagger command line interface.
//
// Every bump flag can also be supplied through the environment variables a
// GitHub Actions workflow sets (INPUT_* for action inputs, GITHUB_* for the
// runner context), so the binary works both as a standalone CLI and as the
// entrypoint of an action step.
package cli
