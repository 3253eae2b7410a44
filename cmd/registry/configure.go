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

package registry

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/docker/docker/pkg/term"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qaueue/qbuild/helper"
)

var Username string

func runConfigureRegistryCmd(registryURL string, username string, password string) error {
	viper.Set("registry.url", registryURL)
	viper.Set("registry.username", username)
	viper.Set("registry.password", password)

	return viper.WriteConfigAs(helper.CfgFile)
}

func NewRegistryConfigureCommand(verbose bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure [REGISTRY URL]",
		Short: "Configure credentials for the Docker registry",
		Run: func(cmd *cobra.Command, args []string) {
			registryURL := "index.docker.io"

			if len(args) > 0 {
				registryURL = args[0]
			}

			in := os.Stdin.Fd()

			oldState, err := term.SaveState(in)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Fprintf(os.Stdout, "Password: ")
			term.DisableEcho(in, oldState)

			password := readInput(cmd.InOrStdin())
			fmt.Fprint(os.Stdout, "\n")

			term.RestoreTerminal(in, oldState)

			if err := runConfigureRegistryCmd(registryURL, Username, password); err != nil {
				log.Fatal(err)
			}

			fmt.Printf("registry %s has been added to %s\n", registryURL, helper.CfgFile)
		},
	}

	cmd.Flags().StringVarP(&Username, "username", "u", "", "Username")
	cmd.MarkFlagRequired("username")

	return cmd
}

func readInput(in io.Reader) string {
	reader := bufio.NewReader(in)
	line, _, err := reader.ReadLine()
	if err != nil {
		log.Fatal(err)
	}
	return string(line)
}
