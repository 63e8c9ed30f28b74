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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitops-tools/tagger/pkg/errors"
)

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "/tmp/out", OutputPath("/tmp/out"))
	assert.Equal(t, fallbackOutputFile, OutputPath(""))
	assert.Equal(t, fallbackOutputFile, OutputPath("   "))
}

func TestWriteOutputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")

	err := WriteOutputs(path, []Output{
		{Key: "tag", Value: "v1.2.3"},
		{Key: "version", Value: "1.2.3"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tag=v1.2.3\nversion=1.2.3\n", string(data))
}

func TestWriteOutputsAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(path, []byte("earlier=step\n"), 0o644))

	require.NoError(t, WriteOutputs(path, []Output{{Key: "tag", Value: "v1.0.0"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "earlier=step\ntag=v1.0.0\n", string(data))
}

func TestWriteOutputsRejectsBadPairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")

	err := WriteOutputs(path, []Output{{Key: "", Value: "x"}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))

	err = WriteOutputs(path, []Output{{Key: "tag", Value: "v1\nextra"}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))

	// Nothing may be written on a rejected batch.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	Errorf(&buf, "listing tags failed: %s", "boom")
	assert.Equal(t, "::error::listing tags failed: boom\n", buf.String())
}
