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

package project

const SETUP_PY = `import os

from setuptools import setup


if __name__ == '__main__':
    HERE = os.path.abspath(os.path.dirname(__file__))

    with open(os.path.join(HERE, 'requirements.txt')) as f:
        REQUIREMENTS = [s.strip().split(' ')[0] for s in f.readlines()]

    setup(name='{{snakeify .ProjectName}}',
          version='1.0',
          description='{{.ProjectName}} service',
          install_requires=REQUIREMENTS,
          packages=['{{snakeify .ProjectName}}'],
          )
`
