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
	"path"

	"github.com/spf13/cobra"

	"github.com/qaueue/qbuild/api"
	"github.com/qaueue/qbuild/helper"
	"github.com/qaueue/qbuild/templates"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [VARIANT...]",
	Short: "Render the build descriptor of each variant",
	Run: func(cmd *cobra.Command, args []string) {
		config, projectDir, err := loadBuildConfig(cmd)
		helper.CheckError(err)

		err = runGenerateCmd(config, projectDir, args)
		helper.CheckError(err)
		logger.Info("Descriptors have been generated")
	},
}

func runGenerateCmd(config *api.BuildConfig, projectDir string, variantNames []string) error {
	variants, err := config.SelectVariants(variantNames)
	if err != nil {
		return err
	}

	for _, variant := range variants {
		dst := path.Join(projectDir, variant.Dockerfile())
		if err := templates.GenerateDescriptor(config, variant, dst); err != nil {
			return err
		}
		logger.Debugf("Generated %s", dst)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("file", "f", "", "path of the qbuild.yaml build configuration")
}
