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
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/qaueue/qbuild/builder"
	"github.com/qaueue/qbuild/helper"
)

// contextCmd represents the context command
var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "List the files the descriptors copy into the image",
	Run: func(cmd *cobra.Command, args []string) {
		_, projectDir, err := loadBuildConfig(cmd)
		helper.CheckError(err)

		files, err := builder.ListContext(projectDir)
		helper.CheckError(err)

		fmt.Println(formatContext(files))
	},
}

func formatContext(files []builder.ContextFile) string {
	var output []string
	output = append(output, strings.Join([]string{"FILE", "SIZE"}, "|"))

	var total int64
	for _, file := range files {
		total += file.Size
		output = append(output, strings.Join([]string{file.Path, humanize.Bytes(uint64(file.Size))}, "|"))
	}
	output = append(output, strings.Join([]string{"total", humanize.Bytes(uint64(total))}, "|"))

	return columnize.SimpleFormat(output)
}

func init() {
	rootCmd.AddCommand(contextCmd)

	contextCmd.Flags().StringP("file", "f", "", "path of the qbuild.yaml build configuration")
}
