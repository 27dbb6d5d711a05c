// SPDX-License-Identifier: EPL-2.0

package decode

import "errors"

var (
	ErrFileNotFound      = errors.New("decode: file not found")
	ErrUnsupportedFormat = errors.New("decode: unrecognized file extension")
)
