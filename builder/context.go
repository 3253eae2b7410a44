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

package builder

import (
	"os"
	"path/filepath"

	ignore "github.com/codeskyblue/dockerignore"
)

// ContextFile is one file the `COPY . <app_dir>` descriptor step materializes
// into the image.
type ContextFile struct {
	Path string
	Size int64
}

func readIgnorePatterns(projectDir string) ([]string, error) {
	ignoreFilePath := filepath.Join(projectDir, ".dockerignore")
	if _, err := os.Stat(ignoreFilePath); os.IsNotExist(err) {
		return nil, nil
	}
	return ignore.ReadIgnoreFile(ignoreFilePath)
}

// ListContext walks the build context and returns the files docker will copy
// into the image, honoring `.dockerignore` when the project carries one. The
// descriptors themselves declare no exclusions: absent an ignore file, the
// whole tree goes in.
func ListContext(projectDir string) ([]ContextFile, error) {
	patterns, err := readIgnorePatterns(projectDir)
	if err != nil {
		return nil, err
	}

	files := []ContextFile{}
	err = filepath.Walk(projectDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relativePath, err := filepath.Rel(projectDir, path)
		if err != nil {
			return err
		}
		if relativePath == "." {
			return nil
		}

		isIgnored, err := ignore.Matches(relativePath, patterns)
		if err != nil {
			return err
		}
		if isIgnored {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() {
			files = append(files, ContextFile{Path: relativePath, Size: info.Size()})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
