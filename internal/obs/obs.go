// Copyright © 2021 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package obs holds the structured logger shared by every package in this
// module: a thin wrap-and-default around sirius/log so callers get a
// ready-to-use logger without constructing one themselves.
package obs

import "github.com/getamis/sirius/log"

var logger = log.Discard()

// Logger returns the module-wide structured logger.
func Logger() log.Logger {
	return logger
}

// SetLogger replaces the module-wide structured logger. Callers embedding
// this module in a larger service call this once at startup.
func SetLogger(l log.Logger) {
	logger = l
}
