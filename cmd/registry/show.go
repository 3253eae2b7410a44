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
	"fmt"
	"log"
	"strings"

	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/qaueue/qbuild/helper"
)

func NewRegistryShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the configured Docker registry",
		Run: func(cmd *cobra.Command, args []string) {
			url := helper.RegistryConfig("url")
			if url == "" {
				log.Fatal("No registry configured, maybe try `qbuild registry configure`")
			}

			var output []string
			output = append(output, strings.Join([]string{"REGISTRY URL", "USERNAME"}, "|"))
			output = append(output, strings.Join([]string{url, helper.RegistryConfig("username")}, "|"))
			fmt.Println(columnize.SimpleFormat(output))
		},
	}

	return cmd
}
