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

// Package logging wraps the standard library slog package with defaults
// shared across the tool: structured JSON output to stderr, module and
// version context on every record, environment-based log level
// configuration (LOG_LEVEL), and source location tracking for debug logs.
//
// Diagnostics go to stderr so that stdout stays reserved for result
// output, which CI pipelines capture.
//
// Supported log levels (case-insensitive): DEBUG, INFO (default),
// WARN/WARNING, ERROR.
//
// Typical use:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("tagger", version)
//	    slog.Info("resolving next tag", "repository", repo)
//	}
package logging
