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

package templates

import (
	"strings"
	"testing"

	"github.com/bradleyjkemp/cupaloy"
	"github.com/stretchr/testify/assert"

	"github.com/qaueue/qbuild/api"
)

var testConfig = &api.BuildConfig{
	ProjectName: "qaueue",
	BaseImage:   api.BaseImage{Name: "python", Tag: "3.6-alpine"},
	SystemPackages: api.SystemPackages{
		VirtualGroup: ".build-deps",
		Packages:     []string{"gcc", "musl-dev", "libffi-dev", "openssl-dev"},
	},
	AppDir:     "/app",
	Entrypoint: "./run.sh",
	Variants: []*api.Variant{
		{Name: "plain", Strategy: api.StrategyRequirements, Manifest: "requirements.txt", Port: 8889},
		{Name: "pipenv", Strategy: api.StrategyPipenv, Manifest: "Pipfile.lock"},
		{Name: "setup", Strategy: api.StrategySetup, Manifest: "requirements.txt", Port: 8889, NoVirtualGroup: true},
	},
}

func TestRenderDescriptor(t *testing.T) {
	for _, variant := range testConfig.Variants {
		t.Run(variant.Name, func(t *testing.T) {
			rendered, err := RenderDescriptor(testConfig, variant)
			assert.NoError(t, err)

			cupaloy.SnapshotT(t, rendered)
		})
	}
}

func TestRenderDescriptorIsDeterministic(t *testing.T) {
	for _, variant := range testConfig.Variants {
		first, err := RenderDescriptor(testConfig, variant)
		assert.NoError(t, err)
		second, err := RenderDescriptor(testConfig, variant)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	}
}

func TestRenderDescriptorPorts(t *testing.T) {
	for _, variant := range testConfig.Variants {
		rendered, err := RenderDescriptor(testConfig, variant)
		assert.NoError(t, err)

		if variant.Port > 0 {
			assert.Contains(t, rendered, "EXPOSE 8889")
		} else {
			assert.NotContains(t, rendered, "EXPOSE")
		}
	}
}

func TestRenderDescriptorInvariants(t *testing.T) {
	for _, variant := range testConfig.Variants {
		rendered, err := RenderDescriptor(testConfig, variant)
		assert.NoError(t, err)

		assert.Contains(t, rendered, "COPY . /app")
		assert.Contains(t, rendered, "WORKDIR /app")
		assert.True(t, strings.HasSuffix(rendered, "CMD [\"./run.sh\"]\n"))
	}
}

func TestRenderDescriptorLocalPackageInstall(t *testing.T) {
	for _, variant := range testConfig.Variants {
		rendered, err := RenderDescriptor(testConfig, variant)
		assert.NoError(t, err)

		if variant.Strategy == api.StrategySetup {
			assert.Contains(t, rendered, "RUN pip install --no-cache-dir .")
		} else {
			assert.NotContains(t, rendered, "RUN pip install --no-cache-dir .\n")
		}
	}
}

func TestDescriptorTemplateUnknownStrategy(t *testing.T) {
	_, err := DescriptorTemplate("conda")
	assert.Error(t, err)
}
