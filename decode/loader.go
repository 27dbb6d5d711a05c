package decode

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/larkspur-audio/mixcore/audio"
	"github.com/larkspur-audio/mixcore/track"
)

// MaxClipSeconds bounds how much audio a single Load call will pull into
// memory. audio.Source never exposes a frame count up front (every
// decoder here is a pure streaming Source), so every load behaves as
// the "unknown length" case spec.md §4.4 step 3 and §9 describe: decode
// up to a fixed buffer's worth and record frames_read as the clip
// length. §9 resolves that fallback as "up to 30 s"; this mirrors it
// exactly rather than picking a larger cap of convenience.
const MaxClipSeconds = 30

// readChunkFrames is the frame count pulled from the decode pipeline per
// ReadSamples call. It only affects how Load chunks its work, not the
// clip's final length.
const readChunkFrames = 4096

// Loader decodes files into *track.Clip values, entirely outside any
// scene lock (spec.md §9's splice-in refinement). A Loader is safe for
// concurrent use; its Registry is read-only after NewRegistry.
type Loader struct {
	registry   *audio.Registry
	sampleRate int
}

// NewLoader returns a Loader that resamples every decoded file to
// sceneSampleRate, matching the one sample rate the scene's mixer reads
// at (spec.md §4.4 load_clip).
func NewLoader(sceneSampleRate int) *Loader {
	return &Loader{
		registry:   NewRegistry(),
		sampleRate: sceneSampleRate,
	}
}

// Load decodes path into a Clip placed at startBeat, with its length in
// beats derived from its decoded duration and bpm (spec.md §4.4:
// "len_beats is computed from the decoded audio's duration and the
// scene's current BPM at load time — it is not re-derived on tempo
// change").
func (l *Loader) Load(path string, startBeat, bpm float64) (*track.Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("decode: opening %s: %w", path, err)
	}
	defer f.Close()

	ext := extensionOf(path)
	dec, ok := l.registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %s: %w", path, err)
	}
	defer src.Close()

	stereo := toStereo(src)
	if stereo.SampleRate() != l.sampleRate {
		// Resampler preserves channel count (audio/resampler.go), so this
		// keeps the two channels toStereo just established distinct.
		// Wrapping in MonoMixer/StereoUpmix here would fold them back down
		// to dual-mono before resampling, which is wrong.
		stereo = audio.NewResampler(stereo, l.sampleRate)
	}

	left, right, err := readAllStereo(stereo, l.sampleRate)
	if err != nil {
		return nil, fmt.Errorf("decode: %s: %w", path, err)
	}

	secondsPerBeat := 60.0 / bpm
	lenBeats := (float64(len(left)) / float64(l.sampleRate)) / secondsPerBeat
	if lenBeats <= 0 {
		lenBeats = 1
	}

	return track.NewClip(left, right, startBeat, lenBeats)
}

// toStereo wraps src so it always presents two channels: a mono source
// is broadcast via StereoUpmix, anything with more than two channels is
// first folded to mono by MonoMixer and then broadcast back out, the
// way audio.ResampleToMono16 chains MonoMixer onto another stage.
func toStereo(src audio.Source) audio.Source {
	switch src.Channels() {
	case 2:
		return src
	case 1:
		return audio.NewStereoUpmix(src)
	default:
		return audio.NewStereoUpmix(audio.NewMonoMixer(src))
	}
}

// readAllStereo drains src up to MaxClipSeconds worth of frames,
// deinterleaving into separate left/right buffers. It grows its scratch
// buffer geometrically rather than per-chunk to keep the allocation
// count low for long files. A source with more frames than that is not
// rejected — matching spec.md §9's "decode up to 30s" framing of the
// length-fallback behavior — it is simply truncated, with frames_read
// (len(left)) ending up at the cap instead of the source's true length.
func readAllStereo(src audio.Source, sampleRate int) ([]float32, []float32, error) {
	maxFrames := sampleRate * MaxClipSeconds

	left := make([]float32, 0, readChunkFrames)
	right := make([]float32, 0, readChunkFrames)
	buf := make([]float32, readChunkFrames*2)

	for len(left) < maxFrames {
		n, err := src.ReadSamples(buf)
		frames := n / 2
		for f := 0; f < frames && len(left) < maxFrames; f++ {
			left = append(left, buf[2*f])
			right = append(right, buf[2*f+1])
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if n == 0 {
			break
		}
	}

	return left, right, nil
}
