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
	"fmt"
	"strings"

	"github.com/qaueue/qbuild/api"
	"github.com/qaueue/qbuild/templates/descriptors"
)

// DescriptorData is the flattened view of one variant a descriptor template is
// rendered from.
type DescriptorData struct {
	BaseImage    string
	VirtualGroup string
	Packages     string
	AppDir       string
	Manifest     string
	Port         uint16
	Entrypoint   string
}

// NewDescriptorData flattens a build config and one of its variants.
func NewDescriptorData(config *api.BuildConfig, variant *api.Variant) DescriptorData {
	data := DescriptorData{
		BaseImage:    config.BaseImage.Ref(),
		VirtualGroup: config.SystemPackages.VirtualGroup,
		Packages:     strings.Join(config.SystemPackages.Packages, " "),
		AppDir:       config.AppDir,
		Manifest:     variant.Manifest,
		Port:         variant.Port,
		Entrypoint:   config.Entrypoint,
	}
	if variant.NoVirtualGroup {
		data.VirtualGroup = ""
	}
	return data
}

// DescriptorTemplate returns the Dockerfile template for a dependency
// resolution strategy.
func DescriptorTemplate(strategy string) (string, error) {
	switch strategy {
	case api.StrategyRequirements:
		return descriptors.REQUIREMENTS, nil
	case api.StrategyPipenv:
		return descriptors.PIPENV, nil
	case api.StrategySetup:
		return descriptors.SETUP, nil
	}
	return "", fmt.Errorf("no descriptor template for strategy %q", strategy)
}

// RenderDescriptor renders the Dockerfile of one variant. Identical
// configurations yield byte-identical descriptors.
func RenderDescriptor(config *api.BuildConfig, variant *api.Variant) (string, error) {
	tplStr, err := DescriptorTemplate(variant.Strategy)
	if err != nil {
		return "", err
	}
	return RenderTemplate(tplStr, NewDescriptorData(config, variant))
}

// GenerateDescriptor renders the Dockerfile of one variant into dst.
func GenerateDescriptor(config *api.BuildConfig, variant *api.Variant, dst string) error {
	tplStr, err := DescriptorTemplate(variant.Strategy)
	if err != nil {
		return err
	}
	return GenerateFromTemplate(tplStr, dst, NewDescriptorData(config, variant))
}
