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

package descriptors

// PIPENV installs the exact versions recorded in Pipfile.lock into the image's
// global interpreter environment, bypassing any loosely pinned Pipfile entries.
// No virtual environment is created, the image itself is the isolation.
const PIPENV = `FROM {{.BaseImage}}

RUN apk update
RUN apk add --no-cache{{if .VirtualGroup}} --virtual {{.VirtualGroup}}{{end}} {{.Packages}}

COPY . {{.AppDir}}
WORKDIR {{.AppDir}}

RUN pip install pipenv
RUN pipenv install --deploy --system --ignore-pipfile
{{- if .Port}}

EXPOSE {{.Port}}
{{- end}}

CMD ["{{.Entrypoint}}"]
`
