// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/fractiond/fractiond/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make it absolute
func EnsureAbsolute(directory string, filePath string) (string, error) {
	if "" == filePath {
		return "", fault.MissingParameters
	}
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath), nil
}
