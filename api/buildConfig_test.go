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
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateDefaultBuildConfig(t *testing.T) {
	config := CreateDefaultBuildConfig()

	assert.Equal(t, "qaueue", config.ProjectName)
	assert.Equal(t, "python:3.6-alpine", config.BaseImage.Ref())
	assert.Equal(t, ".build-deps", config.SystemPackages.VirtualGroup)
	assert.Equal(t, "/app", config.AppDir)
	assert.Equal(t, "./run.sh", config.Entrypoint)
	assert.Equal(t, []string{"plain", "pipenv", "setup"}, config.VariantNames())
}

func TestDefaultVariantPorts(t *testing.T) {
	config := CreateDefaultBuildConfig()

	plain, err := config.VariantNamed("plain")
	assert.NoError(t, err)
	assert.Equal(t, uint16(8889), plain.Port)

	pipenv, err := config.VariantNamed("pipenv")
	assert.NoError(t, err)
	assert.Equal(t, uint16(0), pipenv.Port)

	setup, err := config.VariantNamed("setup")
	assert.NoError(t, err)
	assert.Equal(t, uint16(8889), setup.Port)
	assert.True(t, setup.NoVirtualGroup)
}

func TestExtendDefaultBuildConfig(t *testing.T) {
	config := &BuildConfig{
		ProjectName: "warehouse",
		Variants: []*Variant{
			{Name: "plain", Strategy: StrategyRequirements, Port: 9000},
		},
	}

	extended := ExtendDefaultBuildConfig(config)

	assert.Equal(t, "warehouse", extended.ProjectName)
	assert.Equal(t, "python:3.6-alpine", extended.BaseImage.Ref())
	assert.Equal(t, "/app", extended.AppDir)
	assert.Equal(t, []string{"plain"}, extended.VariantNames())
	assert.Equal(t, "requirements.txt", extended.Variants[0].Manifest)

	// the given config is left untouched
	assert.Equal(t, "", config.AppDir)
}

func TestCreateBuildConfigFromYaml(t *testing.T) {
	config, err := CreateBuildConfigFromYaml("testdata/partial_qbuild.yaml")
	assert.NoError(t, err)

	assert.Equal(t, "warehouse", config.ProjectName)
	assert.Equal(t, "python:3.6-alpine", config.BaseImage.Ref())
	assert.Equal(t, []string{"plain", "pipenv"}, config.VariantNames())

	plain, err := config.VariantNamed("plain")
	assert.NoError(t, err)
	assert.Equal(t, uint16(9000), plain.Port)
	assert.Equal(t, "requirements.txt", plain.Manifest)

	pipenv, err := config.VariantNamed("pipenv")
	assert.NoError(t, err)
	assert.Equal(t, "Pipfile.lock", pipenv.Manifest)
}

func TestCreateBuildConfigFromYamlMissingFile(t *testing.T) {
	_, err := CreateBuildConfigFromYaml("testdata/no_such_file.yaml")
	assert.Error(t, err)
}

func TestVariantNamedUnknown(t *testing.T) {
	config := CreateDefaultBuildConfig()

	_, err := config.VariantNamed("conda")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "plain, pipenv, setup")
}

func TestSelectVariants(t *testing.T) {
	config := CreateDefaultBuildConfig()

	all, err := config.SelectVariants(nil)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	selected, err := config.SelectVariants([]string{"setup"})
	assert.NoError(t, err)
	assert.Len(t, selected, 1)
	assert.Equal(t, "setup", selected[0].Name)

	_, err = config.SelectVariants([]string{"plain", "conda"})
	assert.Error(t, err)
}

func TestVariantDockerfile(t *testing.T) {
	variant := &Variant{Name: "My Variant"}
	assert.Equal(t, "Dockerfile.my-variant", variant.Dockerfile())
}

func TestVariantManifestFiles(t *testing.T) {
	plain := &Variant{Strategy: StrategyRequirements, Manifest: "requirements.txt"}
	assert.Equal(t, []string{"requirements.txt"}, plain.ManifestFiles())

	pipenv := &Variant{Strategy: StrategyPipenv, Manifest: "Pipfile.lock"}
	assert.Equal(t, []string{"Pipfile", "Pipfile.lock"}, pipenv.ManifestFiles())

	setup := &Variant{Strategy: StrategySetup, Manifest: "requirements.txt"}
	assert.Equal(t, []string{"requirements.txt", "setup.py"}, setup.ManifestFiles())
}

func TestImageName(t *testing.T) {
	config := &BuildConfig{ProjectName: "My Project"}
	variant := &Variant{Name: "plain"}

	assert.Equal(t, "my-project/plain:latest", config.ImageName(variant, "latest"))
}

func createProjectDir(t *testing.T, files ...string) string {
	dir, err := ioutil.TempDir("", "qbuild")
	assert.NoError(t, err)
	for _, file := range files {
		assert.NoError(t, ioutil.WriteFile(path.Join(dir, file), []byte("stub"), 0644))
	}
	return dir
}

func TestValidate(t *testing.T) {
	dir := createProjectDir(t, "run.sh", "requirements.txt", "Pipfile", "Pipfile.lock", "setup.py")
	defer os.RemoveAll(dir)

	config := CreateDefaultBuildConfig()
	assert.NoError(t, config.Validate(dir))
}

func TestValidateMissingEntrypoint(t *testing.T) {
	dir := createProjectDir(t, "requirements.txt")
	defer os.RemoveAll(dir)

	config := CreateDefaultBuildConfig()
	err := config.Validate(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "entry point")
}

func TestValidateMissingManifest(t *testing.T) {
	dir := createProjectDir(t, "run.sh", "requirements.txt", "setup.py")
	defer os.RemoveAll(dir)

	config := CreateDefaultBuildConfig()
	err := config.Validate(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Pipfile")
}

func TestValidateVariantsSubset(t *testing.T) {
	// a missing Pipfile.lock must not block building the other variants
	dir := createProjectDir(t, "run.sh", "requirements.txt", "setup.py")
	defer os.RemoveAll(dir)

	config := CreateDefaultBuildConfig()
	variants, err := config.SelectVariants([]string{"plain", "setup"})
	assert.NoError(t, err)
	assert.NoError(t, config.ValidateVariants(dir, variants))
}

func TestValidateUnknownStrategy(t *testing.T) {
	dir := createProjectDir(t, "run.sh")
	defer os.RemoveAll(dir)

	config := &BuildConfig{
		ProjectName: "warehouse",
		Entrypoint:  "./run.sh",
		Variants:    []*Variant{{Name: "plain", Strategy: "conda"}},
	}

	err := config.Validate(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestValidateNoVariants(t *testing.T) {
	config := &BuildConfig{ProjectName: "warehouse"}
	assert.Error(t, config.Validate("."))
}
