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

package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/qaueue/qbuild/helper"
)

func newTemplate(name, tplStr string) *template.Template {
	t := template.New(name).Funcs(template.FuncMap{
		"snakeify": helper.Snakeify,
		"kebabify": helper.Kebabify,
	})

	return template.Must(t.Parse(tplStr))
}

// RenderTemplate renders a template string with the given data.
func RenderTemplate(tplStr string, data interface{}) (string, error) {
	var rendered bytes.Buffer
	if err := newTemplate("", tplStr).Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

// GenerateFromTemplate generates a file from a given template and data
func GenerateFromTemplate(tplStr, dst string, data interface{}) error {
	t := newTemplate(dst, tplStr)

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	f, err := os.Create(dst)
	if err != nil {
		return err
	}

	if err = t.Execute(f, data); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	return err
}
