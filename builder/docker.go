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
	"fmt"
	"os"
	"os/exec"
)

// BuildImage runs `docker build` for one rendered descriptor, with the project
// directory as build context. The build is synchronous and is not retried; a
// failed build produces no image (docker's own build atomicity).
func BuildImage(projectDir string, dockerfile string, image string) error {
	cmd := exec.Command("docker", "build", "-f", dockerfile, "-t", image, ".")
	cmd.Dir = projectDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docker build of %s failed: %v", image, err)
	}
	return nil
}

// TagImage retags a local image.
func TagImage(image string, target string) error {
	cmd := exec.Command("docker", "tag", image, target)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("docker tag %s %s failed: %v\n%s", image, target, err, string(out))
	}
	return nil
}

// PushImage pushes an image to its registry.
func PushImage(image string) error {
	cmd := exec.Command("docker", "push", image)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docker push of %s failed: %v", image, err)
	}
	return nil
}
