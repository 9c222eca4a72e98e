// Copyright 2025 go-orst Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command orst sorts and splits its input with the algorithms in this module.
//
// Usage:
//
//	orst sort -a insertion 4 2 3 1
//	echo "b c a" | orst sort --strings --stats
//	orst split -d , "a,b,,c"
//	orst algorithms
//
// Defaults can be set through ORST_ALGORITHM, ORST_WORKERS, ORST_LOG_LEVEL
// and ORST_LOG_FORMAT.
package main

import "github.com/sirupsen/logrus"

func init() {
	logrus.SetLevel(logrus.InfoLevel)
}

func main() {
	Execute()
}
