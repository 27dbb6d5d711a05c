// SPDX-License-Identifier: EPL-2.0

package mixcore

// SetMasterVolume requires 0 <= v <= 2 (spec.md §4.3).
func (e *Engine) SetMasterVolume(v float32) Code {
	if !e.isRunning() {
		return NotInit
	}
	return codeFromErr(e.scene.SetMasterVolume(v))
}

// GetMasterPeaks returns the last-written master meter values without
// taking the scene lock (spec.md §4.3: "tearing is acceptable for
// meters").
func (e *Engine) GetMasterPeaks() (l, r float32, code Code) {
	if !e.isRunning() {
		return 0, 0, NotInit
	}
	l, r = e.scene.MasterPeaks()
	return l, r, OK
}
