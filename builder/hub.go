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
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/viper"

	"github.com/qaueue/qbuild/api"
)

const defaultHubURL = "https://hub.docker.com"

// HubClient creates a client for the image index the base image is pinned on.
func HubClient(verbose bool) *resty.Client {
	hubURL := viper.GetString("hub_url")
	if hubURL == "" {
		hubURL = defaultHubURL
	}

	client := resty.New()
	client.SetHostURL(hubURL)
	client.SetDebug(verbose)

	return client
}

// CheckBaseImage confirms that the pinned base image tag still resolves
// upstream. Upstream republishing under the same tag remains an accepted
// external risk; this only surfaces a tag that has disappeared entirely.
func CheckBaseImage(client *resty.Client, baseImage api.BaseImage) error {
	repository := baseImage.Name
	if !strings.Contains(repository, "/") {
		repository = "library/" + repository
	}

	resp, err := client.R().
		Get(fmt.Sprintf("/v2/repositories/%s/tags/%s", repository, baseImage.Tag))

	if err != nil {
		return err
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("base image %s not found upstream", baseImage.Ref())
	}

	return fmt.Errorf("unable to check base image %s: %s", baseImage.Ref(), resp.Body())
}
