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
	"path"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/qaueue/qbuild/api"
	"github.com/qaueue/qbuild/builder"
	"github.com/qaueue/qbuild/helper"
	"github.com/qaueue/qbuild/templates"
)

var colorize = []func(format string, a ...interface{}) string{
	color.GreenString,
	color.YellowString,
	color.BlueString,
	color.MagentaString,
	color.CyanString,
}

var coloredVariant = make(map[string]func(format string, a ...interface{}) string)

func getColoredVariant(variant string) string {
	if _, ok := coloredVariant[variant]; !ok {
		coloredVariant[variant] = colorize[len(coloredVariant)%len(colorize)]
	}

	return coloredVariant[variant](variant)
}

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build [VARIANT...]",
	Short: "Build the variant images, strictly in sequence",
	Long: `Build renders the descriptor of each selected variant and runs one docker
build per variant, in declaration order. The first failed step aborts the whole
run; nothing is retried and no partial image is tagged.`,
	Run: func(cmd *cobra.Command, args []string) {
		config, projectDir, err := loadBuildConfig(cmd)
		helper.CheckError(err)

		tag, err := cmd.Flags().GetString("tag")
		helper.CheckError(err)

		if check, _ := cmd.Flags().GetBool("check"); check {
			client := builder.HubClient(Verbose)
			helper.CheckError(builder.CheckBaseImage(client, config.BaseImage))
		}

		err = runBuildCmd(config, projectDir, args, tag)
		helper.CheckError(err)
	},
}

func runBuildCmd(config *api.BuildConfig, projectDir string, variantNames []string, tag string) error {
	variants, err := config.SelectVariants(variantNames)
	if err != nil {
		return err
	}

	if err := config.ValidateVariants(projectDir, variants); err != nil {
		return err
	}

	for _, variant := range variants {
		dst := path.Join(projectDir, variant.Dockerfile())
		if err := templates.GenerateDescriptor(config, variant, dst); err != nil {
			return err
		}

		image := config.ImageName(variant, tag)
		fmt.Printf("%s building %s\n", getColoredVariant(variant.Name), image)

		if err := builder.BuildImage(projectDir, variant.Dockerfile(), image); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("file", "f", "", "path of the qbuild.yaml build configuration")
	buildCmd.Flags().StringP("tag", "t", "latest", "tag of the built images")
	buildCmd.Flags().Bool("check", false, "check the base image upstream before building")
}
