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

// Package errors provides structured error types for programmatic error
// handling across the application. Every failure that reaches the process
// boundary carries an ErrorCode so the driver can report it consistently.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnauthorized,
//	    "failed to list repository tags",
//	    cause,
//	    map[string]interface{}{
//	        "repository": repo,
//	    },
//	)
package errors
