// SPDX-License-Identifier: EPL-2.0

package scene

import "errors"

var (
	ErrNotInit      = errors.New("scene: not initialized")
	ErrInvalidParam = errors.New("scene: invalid parameter")
	ErrInvalidTrack = errors.New("scene: invalid track id")
)
