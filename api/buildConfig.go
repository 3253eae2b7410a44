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

package api

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"strings"

	"github.com/imdario/mergo"
	"github.com/jinzhu/copier"
	"github.com/markbates/pkger"
	"gopkg.in/yaml.v2"

	"github.com/qaueue/qbuild/helper"
)

// Dependency resolution strategies, one per descriptor variant.
const (
	StrategyRequirements = "requirements" // install the pins listed in a requirements file
	StrategyPipenv       = "pipenv"       // install the exact versions recorded in Pipfile.lock
	StrategySetup        = "setup"        // requirements install, then the project itself as a local package
)

// ConfigFileName is the name of the build configuration file at the project root.
const ConfigFileName = "qbuild.yaml"

// BaseImage is a pinned interpreter distribution, e.g. python:3.6-alpine.
type BaseImage struct {
	Name string
	Tag  string
}

func (b BaseImage) Ref() string {
	return fmt.Sprintf("%s:%s", b.Name, b.Tag)
}

// SystemPackages is the set of native toolchain packages installed through apk
// before dependency resolution. VirtualGroup names the apk virtual group the
// packages are installed under; none of the descriptors ever prunes the group,
// the name is declarative only.
type SystemPackages struct {
	VirtualGroup string `yaml:"virtual_group"`
	Packages     []string
}

// Variant is one build descriptor: a named dependency resolution strategy plus
// the port the built image declares. Port 0 means the descriptor declares no
// port at all.
type Variant struct {
	Name           string
	Strategy       string
	Manifest       string
	Port           uint16
	NoVirtualGroup bool `yaml:"no_virtual_group"`
}

// Dockerfile returns the file name the variant's descriptor is rendered to.
func (v *Variant) Dockerfile() string {
	return fmt.Sprintf("Dockerfile.%s", helper.Kebabify(v.Name))
}

// ManifestFiles returns the dependency manifest files the variant's strategy
// reads from the project root. All of them must exist for a build to start.
func (v *Variant) ManifestFiles() []string {
	switch v.Strategy {
	case StrategyRequirements:
		return []string{v.Manifest}
	case StrategyPipenv:
		return []string{"Pipfile", "Pipfile.lock"}
	case StrategySetup:
		return []string{v.Manifest, "setup.py"}
	}
	return nil
}

// BuildConfig describes the container build variants of a project, as loaded
// from a `qbuild.yaml` file.
type BuildConfig struct {
	ProjectName    string         `yaml:"project_name"`
	BaseImage      BaseImage      `yaml:"base_image"`
	SystemPackages SystemPackages `yaml:"system_packages"`
	AppDir         string         `yaml:"app_dir"`
	Entrypoint     string
	Commands       map[string]string
	Variants       []*Variant
	CliVersion     string `yaml:"cli_version,omitempty"`
}

func createBuildConfigFromYamlContent(yamlContent []byte) (*BuildConfig, error) {
	config := BuildConfig{}
	err := yaml.Unmarshal(yamlContent, &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// CreateDefaultBuildConfig creates a config with the defaults defined in "/api/default_qbuild.yaml"
func CreateDefaultBuildConfig() *BuildConfig {
	yamlFile, err := pkger.Open("/api/default_qbuild.yaml")
	if err != nil {
		// The default qbuild.yaml file should be part of the package, if it is not there it's a huge problem
		panic(err)
	}
	defer yamlFile.Close()

	yamlFileStats, err := yamlFile.Stat()
	if err != nil {
		panic(err)
	}

	yamlContent := make([]byte, yamlFileStats.Size())
	yamlFile.Read(yamlContent)
	defaultConfig, err := createBuildConfigFromYamlContent(yamlContent)
	if err != nil {
		panic(err)
	}

	return defaultConfig
}

// ExtendDefaultBuildConfig extends the default build configuration with the given config
//
// the given config is left untouched.
func ExtendDefaultBuildConfig(config *BuildConfig) *BuildConfig {
	defaultConfig := CreateDefaultBuildConfig()
	extendedConfig := BuildConfig{}
	copier.Copy(&extendedConfig, &config)
	mergo.Merge(&extendedConfig, defaultConfig)
	extendedConfig.applyStrategyDefaults()
	return &extendedConfig
}

// CreateBuildConfigFromYaml creates a new instance of BuildConfig from a given `qbuild.yaml` file
func CreateBuildConfigFromYaml(filename string) (*BuildConfig, error) {
	yamlContent, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	loadedConfig, err := createBuildConfigFromYamlContent(yamlContent)
	if err != nil {
		return nil, err
	}
	return ExtendDefaultBuildConfig(loadedConfig), nil
}

// GetBuildConfigPathFromProjectPath returns the path of the build configuration
// file for a given project directory.
func GetBuildConfigPathFromProjectPath(projectPath string) string {
	return path.Join(projectPath, ConfigFileName)
}

func (c *BuildConfig) applyStrategyDefaults() {
	for _, variant := range c.Variants {
		if variant.Manifest == "" {
			switch variant.Strategy {
			case StrategyPipenv:
				variant.Manifest = "Pipfile.lock"
			default:
				variant.Manifest = "requirements.txt"
			}
		}
	}
}

// VariantNamed returns the variant with the given name.
func (c *BuildConfig) VariantNamed(name string) (*Variant, error) {
	for _, variant := range c.Variants {
		if variant.Name == name {
			return variant, nil
		}
	}
	return nil, fmt.Errorf("unknown variant %q, defined variants are %s", name, strings.Join(c.VariantNames(), ", "))
}

// SelectVariants resolves a list of variant names, all variants when the list is empty.
func (c *BuildConfig) SelectVariants(names []string) ([]*Variant, error) {
	if len(names) == 0 {
		return c.Variants, nil
	}

	selected := []*Variant{}
	for _, name := range names {
		variant, err := c.VariantNamed(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, variant)
	}
	return selected, nil
}

// VariantNames lists the names of the configured variants, in declaration order.
func (c *BuildConfig) VariantNames() []string {
	names := []string{}
	for _, variant := range c.Variants {
		names = append(names, variant.Name)
	}
	return names
}

// ImageName returns the local image a variant is built as.
func (c *BuildConfig) ImageName(variant *Variant, tag string) string {
	return fmt.Sprintf("%s/%s:%s", helper.Kebabify(c.ProjectName), helper.Kebabify(variant.Name), tag)
}

// Validate checks the config itself, every variant's strategy, and the presence
// of the entry point and of every active dependency manifest in the project
// tree. A build must never start, let alone silently skip dependency
// installation, when a manifest is missing.
func (c *BuildConfig) Validate(projectDir string) error {
	return c.ValidateVariants(projectDir, c.Variants)
}

// ValidateVariants is Validate restricted to the given variants, for partial builds.
func (c *BuildConfig) ValidateVariants(projectDir string, variants []*Variant) error {
	if c.ProjectName == "" {
		return fmt.Errorf("project_name is not set")
	}
	if len(c.Variants) == 0 {
		return fmt.Errorf("no variants are defined")
	}

	entrypoint := strings.TrimPrefix(c.Entrypoint, "./")
	if _, err := os.Stat(path.Join(projectDir, entrypoint)); os.IsNotExist(err) {
		return fmt.Errorf("entry point %s not found in %s", c.Entrypoint, projectDir)
	}

	for _, variant := range variants {
		switch variant.Strategy {
		case StrategyRequirements, StrategyPipenv, StrategySetup:
		default:
			return fmt.Errorf("variant %s uses unknown strategy %q", variant.Name, variant.Strategy)
		}

		for _, manifest := range variant.ManifestFiles() {
			if _, err := os.Stat(path.Join(projectDir, manifest)); os.IsNotExist(err) {
				return fmt.Errorf("variant %s: dependency manifest %s not found in %s", variant.Name, manifest, projectDir)
			}
		}
	}

	return nil
}
