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
	"os"
	"path"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qaueue/qbuild/api"
	"github.com/qaueue/qbuild/cmd/registry"
	"github.com/qaueue/qbuild/helper"
)

var Verbose bool

var logger = helper.GetSugarLogger([]string{"cmd"})

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qbuild",
	Short: "Manage the container build variants of the qaueue service",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&helper.CfgFile, "config", "", "config file (default is $HOME/.qbuild.toml)")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(registry.NewRegistryCommand(Verbose))
}

// initConfig reads in the user config file and ENV variables if set.
func initConfig() {
	configName := ".qbuild"

	if helper.CfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(helper.CfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".qbuild" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(configName)

		helper.CfgFile = path.Join(home, configName+".toml")
	}

	viper.SetEnvPrefix("qbuild")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); Verbose && err != nil {
		log.Println(err)
	}

	if Verbose {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// loadBuildConfig resolves the --file flag, defaulting to the qbuild.yaml of
// the working directory, and returns the loaded config and the project directory.
func loadBuildConfig(cmd *cobra.Command) (*api.BuildConfig, string, error) {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, "", err
	}

	if file == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", err
		}
		file = api.GetBuildConfigPathFromProjectPath(cwd)
	}

	if _, err := os.Stat(file); os.IsNotExist(err) {
		return nil, "", fmt.Errorf("%s doesn't exist, maybe try `qbuild init`", file)
	}

	config, err := api.CreateBuildConfigFromYaml(file)
	if err != nil {
		return nil, "", err
	}

	return config, filepath.Dir(file), nil
}
