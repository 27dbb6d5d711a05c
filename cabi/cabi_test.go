// SPDX-License-Identifier: EPL-2.0

package cabi

import "testing"

// resetSingleton clears the package-level engine between tests, since
// mixcore_init enforces init-once against it the way spec.md §4.1
// requires ("second init without shutdown fails").
func resetSingleton(t *testing.T) {
	t.Helper()
	singletonMu.Lock()
	singleton = nil
	singletonMu.Unlock()
	t.Cleanup(func() { mixcore_shutdown() })
}

func TestInit_SecondCallWithoutShutdownReturnsAlreadyInit(t *testing.T) {
	resetSingleton(t)

	first := mixcore_init(44100, 24, 512)
	if int32(first) == -3 {
		t.Skip("no audio device available in this environment")
	}
	if first != 0 {
		t.Fatalf("first mixcore_init() = %d, want OK", first)
	}
	if code := mixcore_init(44100, 24, 512); int32(code) != -2 {
		t.Errorf("second mixcore_init() = %d, want AlreadyInit (-2)", code)
	}
}

func TestShutdown_WithoutInitReturnsNotInit(t *testing.T) {
	resetSingleton(t)

	if code := mixcore_shutdown(); int32(code) != -1 {
		t.Errorf("mixcore_shutdown() without init = %d, want NotInit (-1)", code)
	}
}

func TestGetState_AfterShutdownReturnsNotInit(t *testing.T) {
	resetSingleton(t)

	init := mixcore_init(44100, 24, 512)
	if int32(init) == -3 {
		t.Skip("no audio device available in this environment")
	}
	if init != 0 {
		t.Fatalf("mixcore_init() = %d, want OK", init)
	}
	if code := mixcore_shutdown(); code != 0 {
		t.Fatalf("mixcore_shutdown() = %d, want OK", code)
	}

	st := newState()
	if code := mixcore_get_state(&st); int32(code) != -1 {
		t.Errorf("mixcore_get_state() after shutdown = %d, want NotInit (-1)", code)
	}
}
