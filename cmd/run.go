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
	"io/ioutil"
	"log"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/qaueue/qbuild/api"
	"github.com/qaueue/qbuild/helper"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run COMMAND",
	Short: "Run a command from the qbuild.yaml 'commands' section.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, _, err := loadBuildConfig(cmd)
		helper.CheckError(err)

		command, ok := config.Commands[args[0]]
		if !ok {
			log.Fatalf("The command %s isn't defined in the 'commands' section of %s", args[0], api.ConfigFileName)
		}

		if err := runRunCmd(command); err != nil {
			log.Fatalln(err)
		}
	},
}

func runRunCmd(command string) error {
	shellCommand := "/bin/sh"
	shellArg := "-c"
	fileExtension := "sh" // File extension is required on windows otherwise "cmd /C" won't work.

	if runtime.GOOS == "windows" {
		shellCommand = "cmd"
		shellArg = "/C"
		fileExtension = "cmd"
	}

	commandFile, err := ioutil.TempFile("", "qbuild-*."+fileExtension)
	if err != nil {
		return err
	}
	defer os.Remove(commandFile.Name())

	if _, err := commandFile.Write([]byte(command)); err != nil {
		return err
	}
	if err := commandFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(commandFile.Name(), 0755); err != nil {
		return err
	}

	cmd := exec.Command(shellCommand, shellArg, commandFile.Name())

	fmt.Printf("Executing %s\n", cmd)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("file", "f", "", "path of the qbuild.yaml build configuration")
}
