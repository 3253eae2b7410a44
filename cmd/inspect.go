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

	"github.com/qaueue/qbuild/builder"
	"github.com/qaueue/qbuild/helper"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect VARIANT",
	Short: "Inspect the built image of a variant",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, _, err := loadBuildConfig(cmd)
		helper.CheckError(err)

		variant, err := config.VariantNamed(args[0])
		helper.CheckError(err)

		tag, err := cmd.Flags().GetString("tag")
		helper.CheckError(err)

		cli, err := builder.NewDockerClient()
		helper.CheckError(err)

		image := config.ImageName(variant, tag)
		inspect, err := builder.InspectImage(cli, image)
		helper.CheckError(err)

		verify, err := cmd.Flags().GetBool("verify")
		helper.CheckError(err)

		if !verify {
			fmt.Println(helper.PrettyPrint(inspect.Config))
			return
		}

		errs := builder.VerifyImage(inspect, config, variant)
		for _, err := range errs {
			logger.Errorf("%s: %v", image, err)
		}
		if len(errs) > 0 {
			log.Fatalf("image %s does not match its descriptor", image)
		}
		fmt.Printf("%s matches its descriptor\n", image)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringP("file", "f", "", "path of the qbuild.yaml build configuration")
	inspectCmd.Flags().StringP("tag", "t", "latest", "tag of the inspected image")
	inspectCmd.Flags().Bool("verify", false, "verify the image against its descriptor")
}
