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

package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"

	"github.com/qaueue/qbuild/api"
)

// NewDockerClient creates a docker API client from the usual DOCKER_* environment.
func NewDockerClient() (*client.Client, error) {
	return client.NewEnvClient()
}

// InspectImage reads the configuration of a built image from the docker daemon.
func InspectImage(cli client.ImageAPIClient, image string) (types.ImageInspect, error) {
	inspect, _, err := cli.ImageInspectWithRaw(context.Background(), image)
	if err != nil {
		return types.ImageInspect{}, fmt.Errorf("unable to inspect image %s: %v", image, err)
	}
	return inspect, nil
}

// ListProjectImages lists the local images built for a project, i.e. those
// with a `<project>/` repository prefix.
func ListProjectImages(cli client.ImageAPIClient, project string) ([]types.ImageSummary, error) {
	images, err := cli.ImageList(context.Background(), types.ImageListOptions{})
	if err != nil {
		return nil, fmt.Errorf("unable to list images: %v", err)
	}

	prefix := project + "/"
	projectImages := []types.ImageSummary{}
	for _, image := range images {
		for _, repoTag := range image.RepoTags {
			if strings.HasPrefix(repoTag, prefix) {
				projectImages = append(projectImages, image)
				break
			}
		}
	}
	return projectImages, nil
}

// VerifyImage checks a built image against its descriptor: the working
// directory is the application directory holding the source tree, the startup
// command execs the entry point with no arguments, and the declared port is
// exposed exactly when the variant declares one.
func VerifyImage(inspect types.ImageInspect, config *api.BuildConfig, variant *api.Variant) []error {
	errs := []error{}

	if inspect.Config == nil {
		return append(errs, fmt.Errorf("image carries no configuration"))
	}

	if inspect.Config.WorkingDir != config.AppDir {
		errs = append(errs, fmt.Errorf("working directory is %q, descriptor declares %q", inspect.Config.WorkingDir, config.AppDir))
	}

	if len(inspect.Config.Entrypoint) != 0 {
		errs = append(errs, fmt.Errorf("image declares an entrypoint %v, descriptor delegates startup to CMD only", inspect.Config.Entrypoint))
	}

	cmd := []string(inspect.Config.Cmd)
	if len(cmd) != 1 || cmd[0] != config.Entrypoint {
		errs = append(errs, fmt.Errorf("startup command is %v, descriptor declares [%s]", cmd, config.Entrypoint))
	}

	port := nat.Port(fmt.Sprintf("%d/tcp", variant.Port))
	_, exposed := inspect.Config.ExposedPorts[port]
	if variant.Port > 0 && !exposed {
		errs = append(errs, fmt.Errorf("port %d is not exposed", variant.Port))
	}
	if variant.Port == 0 && len(inspect.Config.ExposedPorts) > 0 {
		errs = append(errs, fmt.Errorf("variant %s declares no port but the image exposes %v", variant.Name, inspect.Config.ExposedPorts))
	}

	return errs
}
