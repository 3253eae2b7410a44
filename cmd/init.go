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
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/qaueue/qbuild/api"
	"github.com/qaueue/qbuild/helper"
	"github.com/qaueue/qbuild/templates"
	"github.com/qaueue/qbuild/templates/project"
	"github.com/qaueue/qbuild/version"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init DESTINATION",
	Short: "Bootstrap a new project locally",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("requires a destination to create")
		}

		dest := args[0]
		if _, err := os.Stat(dest); !os.IsNotExist(err) {
			return fmt.Errorf("destination %s already exists", dest)
		}

		return nil
	},

	Run: func(cmd *cobra.Command, args []string) {
		dst := args[0]

		config, err := createBuildConfigFromReader(os.Stdin)
		if err != nil {
			log.Fatalln(err)
		}

		projectname := strings.Split(dst, "/")
		config.ProjectName = projectname[len(projectname)-1]
		config.CliVersion = version.CliVersion

		if err := createProjectFiles(dst, config); err != nil {
			log.Fatalln(err)
		}

		if hasStrategy(config, api.StrategyPipenv) {
			logger.Info("Run `pipenv lock` in the project before building the pipenv variant")
		}
	},
}

// stubData feeds the project stub templates.
type stubData struct {
	ProjectName   string
	ServicePort   uint16
	PythonVersion string
}

func createBuildConfigFromReader(stdin io.Reader) (*api.BuildConfig, error) {
	reader := bufio.NewReader(stdin)

	port, err := getServicePortFromReader(reader)
	if err != nil {
		return nil, err
	}

	pipenv, err := getPipenvVariantFromReader(reader)
	if err != nil {
		return nil, err
	}

	config := api.BuildConfig{}
	config.Variants = append(config.Variants,
		&api.Variant{Name: "plain", Strategy: api.StrategyRequirements, Port: port})
	if pipenv {
		config.Variants = append(config.Variants,
			&api.Variant{Name: "pipenv", Strategy: api.StrategyPipenv})
	}
	config.Variants = append(config.Variants,
		&api.Variant{Name: "setup", Strategy: api.StrategySetup, Port: port, NoVirtualGroup: true})

	return api.ExtendDefaultBuildConfig(&config), nil
}

func getServicePortFromReader(reader *bufio.Reader) (uint16, error) {
	fmt.Print("Published service port (8889, 0 for none): ")

	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return 8889, nil
	}

	port, err := strconv.ParseUint(line, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid port", line)
	}
	return uint16(port), nil
}

func getPipenvVariantFromReader(reader *bufio.Reader) (bool, error) {
	fmt.Print("Generate a pipenv lockfile variant? (Y/n) ")

	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	line = strings.ToLower(strings.TrimSpace(line))
	return line == "" || line == "y" || line == "yes", nil
}

func hasStrategy(config *api.BuildConfig, strategy string) bool {
	for _, variant := range config.Variants {
		if variant.Strategy == strategy {
			return true
		}
	}
	return false
}

func servicePort(config *api.BuildConfig) uint16 {
	for _, variant := range config.Variants {
		if variant.Port > 0 {
			return variant.Port
		}
	}
	return 8889
}

func pythonVersion(config *api.BuildConfig) string {
	v, err := helper.SanitizeVersion(config.BaseImage.Tag)
	if err != nil {
		return "3.6"
	}
	return v
}

func createProjectFiles(dst string, config *api.BuildConfig) error {
	stub := stubData{
		ProjectName:   config.ProjectName,
		ServicePort:   servicePort(config),
		PythonVersion: pythonVersion(config),
	}

	if err := os.MkdirAll(dst, os.ModePerm); err != nil {
		return err
	}

	configContent, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(api.GetBuildConfigPathFromProjectPath(dst), configContent, 0644); err != nil {
		return err
	}

	if err := templates.GenerateFromTemplate(project.RUN_SH, path.Join(dst, "run.sh"), stub); err != nil {
		return err
	}
	if err := os.Chmod(path.Join(dst, "run.sh"), 0755); err != nil {
		return err
	}

	if err := templates.GenerateFromTemplate(project.REQUIREMENTS_TXT, path.Join(dst, "requirements.txt"), stub); err != nil {
		return err
	}

	if hasStrategy(config, api.StrategyPipenv) {
		if err := templates.GenerateFromTemplate(project.PIPFILE, path.Join(dst, "Pipfile"), stub); err != nil {
			return err
		}
	}

	if hasStrategy(config, api.StrategySetup) {
		if err := templates.GenerateFromTemplate(project.SETUP_PY, path.Join(dst, "setup.py"), stub); err != nil {
			return err
		}
	}

	return runGenerateCmd(config, dst, nil)
}

func init() {
	rootCmd.AddCommand(initCmd)
}
