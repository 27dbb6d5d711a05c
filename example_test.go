// SPDX-License-Identifier: EPL-2.0

package mixcore_test

import (
	"fmt"

	"github.com/larkspur-audio/mixcore"
	"github.com/larkspur-audio/mixcore/backend"
	"github.com/larkspur-audio/mixcore/scene"
	"github.com/larkspur-audio/mixcore/track"
)

func Example() {
	eng, code := mixcore.InitWithDevice(mixcore.DefaultConfig(), func(s *scene.Scene, period int) (backend.Device, error) {
		return backend.NewNull(s, period), nil
	})
	if code != mixcore.OK {
		fmt.Println(mixcore.Strerror(code))
		return
	}
	defer eng.Shutdown()

	id, code := eng.TrackCreate(track.Audio)
	if code != mixcore.OK {
		fmt.Println(mixcore.Strerror(code))
		return
	}

	fmt.Println(id > 0)
	// Output: true
}
