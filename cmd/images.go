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
	"time"

	"github.com/docker/docker/api/types"
	"github.com/dustin/go-humanize"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/qaueue/qbuild/builder"
	"github.com/qaueue/qbuild/helper"
)

// imagesCmd represents the images command
var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "List the built variant images",
	Run: func(cmd *cobra.Command, args []string) {
		config, _, err := loadBuildConfig(cmd)
		helper.CheckError(err)

		cli, err := builder.NewDockerClient()
		helper.CheckError(err)

		images, err := builder.ListProjectImages(cli, helper.Kebabify(config.ProjectName))
		helper.CheckError(err)

		fmt.Println(formatImages(images, helper.Kebabify(config.ProjectName)))
	},
}

func formatImages(images []types.ImageSummary, project string) string {
	var output []string
	row := []string{"REPOSITORY", "TAG", "IMAGE ID", "CREATED", "SIZE"}
	output = append(output, strings.Join(row, "|"))

	prefix := project + "/"
	for _, image := range images {
		id := strings.TrimPrefix(image.ID, "sha256:")
		if len(id) > 12 {
			id = id[:12]
		}

		for _, repoTag := range image.RepoTags {
			if !strings.HasPrefix(repoTag, prefix) {
				continue
			}

			parts := strings.SplitN(repoTag, ":", 2)
			row := []string{
				parts[0],
				parts[1],
				id,
				humanize.Time(time.Unix(image.Created, 0)),
				humanize.Bytes(uint64(image.Size)),
			}
			output = append(output, strings.Join(row, "|"))
		}
	}

	return columnize.SimpleFormat(output)
}

func init() {
	rootCmd.AddCommand(imagesCmd)

	imagesCmd.Flags().StringP("file", "f", "", "path of the qbuild.yaml build configuration")
}
