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

	"github.com/spf13/cobra"

	"github.com/qaueue/qbuild/builder"
	"github.com/qaueue/qbuild/helper"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the pinned base image still resolves upstream",
	Run: func(cmd *cobra.Command, args []string) {
		config, _, err := loadBuildConfig(cmd)
		helper.CheckError(err)

		client := builder.HubClient(Verbose)
		err = builder.CheckBaseImage(client, config.BaseImage)
		helper.CheckError(err)

		fmt.Printf("base image %s found upstream\n", config.BaseImage.Ref())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("file", "f", "", "path of the qbuild.yaml build configuration")
}
