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

// Package resolver orchestrates next-tag computation: it normalizes the
// existing tag names, picks the highest version, increments it per the
// requested bump rule, and applies textual prefix/suffix decoration.
//
// Resolve is pure computation over its inputs — it performs no I/O and
// holds no state, so it is safe to invoke repeatedly or concurrently
// across independent invocations.
package resolver
