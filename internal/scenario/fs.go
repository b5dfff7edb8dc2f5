// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scenario

import "github.com/spf13/afero"

// FsFactory is a function that returns the afero filesystem used to read
// local scenario files.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}
