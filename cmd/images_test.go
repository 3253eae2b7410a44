// Copyright 2018 The QAueue Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"strings"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/stretchr/testify/assert"

	"github.com/qaueue/qbuild/builder"
)

func TestFormatImages(t *testing.T) {
	images := []types.ImageSummary{
		{
			ID:       "sha256:4e38e38c8ce0b8d9041a9c4054e3e71b671db00ce981ea68a479b11c5ad599ab",
			RepoTags: []string{"qaueue/plain:latest", "registry.example.com/qaueue/plain:latest"},
			Created:  1535760000,
			Size:     52428800,
		},
	}

	output := formatImages(images, "qaueue")
	lines := strings.Split(strings.TrimSpace(output), "\n")

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "REPOSITORY")
	assert.Contains(t, lines[1], "qaueue/plain")
	assert.Contains(t, lines[1], "latest")
	assert.Contains(t, lines[1], "4e38e38c8ce0")
	// only the local repository tag is listed, not the registry one
	assert.NotContains(t, output, "registry.example.com")
}

func TestFormatImagesEmpty(t *testing.T) {
	output := formatImages(nil, "qaueue")

	assert.Contains(t, output, "REPOSITORY")
}

func TestFormatContext(t *testing.T) {
	files := []builder.ContextFile{
		{Path: "run.sh", Size: 58},
		{Path: "requirements.txt", Size: 56},
	}

	output := formatContext(files)
	lines := strings.Split(strings.TrimSpace(output), "\n")

	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "FILE")
	assert.Contains(t, lines[1], "run.sh")
	assert.Contains(t, lines[3], "total")
	assert.Contains(t, lines[3], "114")
}
