// SPDX-License-Identifier: EPL-2.0

package mixcore

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/larkspur-audio/mixcore/track"
)

func writeTestWAV(t *testing.T, path string, sampleRate, channels, numFrames int, value int16) {
	t.Helper()

	dataSize := numFrames * channels * 2
	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+dataSize))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*channels*2))
	binary.LittleEndian.PutUint16(header[32:34], uint16(channels*2))
	binary.LittleEndian.PutUint16(header[34:36], 16)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	data := make([]byte, dataSize)
	for i := 0; i < numFrames*channels; i++ {
		binary.LittleEndian.PutUint16(data[2*i:2*i+2], uint16(value))
	}

	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		t.Fatalf("writing test wav: %v", err)
	}
}

func TestLoadClip_SplicesOntoTrack(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, DefaultConfig())
	id, _ := eng.TrackCreate(track.Audio)

	path := filepath.Join(t.TempDir(), "clip.wav")
	writeTestWAV(t, path, 44100, 2, 4410, 8192)

	if code := eng.LoadClip(id, path, 0); code != OK {
		t.Fatalf("LoadClip() code = %v, want OK", code)
	}

	info, _ := eng.TrackInfo(id)
	if info.NumClips != 1 {
		t.Errorf("NumClips = %d, want 1", info.NumClips)
	}
}

func TestLoadClip_MissingFileReturnsFileNotFound(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, DefaultConfig())
	id, _ := eng.TrackCreate(track.Audio)

	if code := eng.LoadClip(id, "/nonexistent/clip.wav", 0); code != FileNotFound {
		t.Errorf("LoadClip() code = %v, want FileNotFound", code)
	}
}

func TestLoadClip_UnknownTrackReturnsInvalidTrack(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, DefaultConfig())
	if code := eng.LoadClip(9999, "/nonexistent/clip.wav", 0); code != InvalidTrack {
		t.Errorf("LoadClip() code = %v, want InvalidTrack", code)
	}
}

func TestLoadClip_ClipFullRejectsBeforeDecoding(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, DefaultConfig())
	id, _ := eng.TrackCreate(track.Audio)

	path := filepath.Join(t.TempDir(), "clip.wav")
	writeTestWAV(t, path, 44100, 2, 100, 1000)

	for i := 0; i < track.MaxClipsPerTrack; i++ {
		if code := eng.LoadClip(id, path, float64(i)); code != OK {
			t.Fatalf("LoadClip() #%d code = %v, want OK", i, code)
		}
	}

	if code := eng.LoadClip(id, path, 999); code != ClipFull {
		t.Errorf("LoadClip() over capacity code = %v, want ClipFull", code)
	}
}
