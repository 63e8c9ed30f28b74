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

package serializer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type release struct {
	Tag     string `json:"tag" yaml:"tag"`
	Version string `json:"version" yaml:"version"`
}

func TestFormatIsUnknown(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.False(t, FormatTable.IsUnknown())
	assert.True(t, Format("xml").IsUnknown())
	assert.True(t, Format("").IsUnknown())
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	assert.Contains(t, formats, "json")
	assert.Contains(t, formats, "yaml")
	assert.Contains(t, formats, "table")
}

func TestSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	err := w.Serialize(release{Tag: "v1.2.3", Version: "1.2.3"})
	require.NoError(t, err)

	var got release
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "v1.2.3", got.Tag)
	assert.Equal(t, "1.2.3", got.Version)
}

func TestSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	err := w.Serialize(release{Tag: "v2.0.0", Version: "2.0.0"})
	require.NoError(t, err)

	var got release
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "v2.0.0", got.Tag)
}

func TestSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	err := w.Serialize(release{Tag: "v1.0.0", Version: "1.0.0"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Tag")
	assert.Contains(t, out, "v1.0.0")
	assert.Contains(t, out, "Version")
}

func TestSerializeTableMap(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	err := w.Serialize(map[string]string{"tag": "v1.0.0", "version": "1.0.0"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "tag")
	assert.Contains(t, out, "v1.0.0")
}

func TestUnknownFormatDefaultsToYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("bogus"), &buf)

	err := w.Serialize(release{Tag: "v1.0.0", Version: "1.0.0"})
	require.NoError(t, err)

	var got release
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "v1.0.0", got.Tag)
}

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := NewFileWriterOrStdout(FormatJSON, path)

	require.NoError(t, w.Serialize(release{Tag: "v3.1.4", Version: "3.1.4"}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got release
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "v3.1.4", got.Tag)
}

func TestCloseOnStdoutWriterIsNoop(t *testing.T) {
	w := NewWriter(FormatJSON, &bytes.Buffer{})
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
