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
	"log"

	"github.com/spf13/cobra"

	"github.com/qaueue/qbuild/api"
	"github.com/qaueue/qbuild/builder"
	"github.com/qaueue/qbuild/helper"
)

// pushCmd represents the push command
var pushCmd = &cobra.Command{
	Use:   "push [VARIANT...]",
	Short: "Push the built variant images to the configured registry",
	Run: func(cmd *cobra.Command, args []string) {
		config, _, err := loadBuildConfig(cmd)
		helper.CheckError(err)

		tag, err := cmd.Flags().GetString("tag")
		helper.CheckError(err)

		registryHost := helper.RegistryConfig("url")
		if registryHost == "" {
			log.Fatal("No registry configured, maybe try `qbuild registry configure`")
		}

		err = runPushCmd(config, args, tag, registryHost)
		helper.CheckError(err)
	},
}

func runPushCmd(config *api.BuildConfig, variantNames []string, tag string, registryHost string) error {
	variants, err := config.SelectVariants(variantNames)
	if err != nil {
		return err
	}

	for _, variant := range variants {
		image := config.ImageName(variant, tag)
		target := fmt.Sprintf("%s/%s", registryHost, image)

		if err := builder.TagImage(image, target); err != nil {
			return err
		}

		fmt.Printf("%s pushing %s\n", getColoredVariant(variant.Name), target)
		if err := builder.PushImage(target); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(pushCmd)

	pushCmd.Flags().StringP("file", "f", "", "path of the qbuild.yaml build configuration")
	pushCmd.Flags().StringP("tag", "t", "latest", "tag of the pushed images")
}
