// SPDX-License-Identifier: EPL-2.0

// Command clipinfo reports the frame count and derived len_beats a
// track_load_file call would produce for a file, without starting an
// engine or touching any Scene. It replaces the teacher's resampler
// example now that decode.Loader and formats/* are wired into the
// mixer proper: the interesting question for this core is no longer
// "convert this file" but "what would loading this file onto a track
// actually give me."
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/larkspur-audio/mixcore/audio"
	"github.com/larkspur-audio/mixcore/decode"
	"github.com/larkspur-audio/mixcore/formats/wav"
)

func main() {
	sampleRate := flag.Int("rate", 44100, "sample rate the owning scene would resample to")
	bpm := flag.Float64("bpm", 120, "bpm to derive len_beats against")
	startBeat := flag.Float64("start", 0, "beat the clip would be placed at")
	monoPreview := flag.String("mono-preview", "", "write a low-rate mono WAV preview of the file to this path")
	previewRate := flag.Int("preview-rate", 8000, "sample rate for -mono-preview")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: clipinfo [-rate hz] [-bpm n] [-start beat] [-mono-preview path] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	loader := decode.NewLoader(*sampleRate)
	clip, err := loader.Load(path, *startBeat, *bpm)
	if err != nil {
		log.Fatalf("clipinfo: %v", err)
	}

	frames := len(clip.Left)
	seconds := float64(frames) / float64(*sampleRate)

	fmt.Printf("path:       %s\n", path)
	fmt.Printf("frames:     %d\n", frames)
	fmt.Printf("seconds:    %.3f\n", seconds)
	fmt.Printf("start_beat: %.3f\n", clip.StartBeat)
	fmt.Printf("len_beats:  %.3f (at %.2f bpm)\n", clip.LenBeats, *bpm)

	if *monoPreview != "" {
		if err := writeMonoPreview(path, *monoPreview, *previewRate); err != nil {
			log.Fatalf("clipinfo: mono preview: %v", err)
		}
		fmt.Println("wrote mono preview:", *monoPreview)
	}
}

// writeMonoPreview decodes path a second time through the raw decoder
// registry (bypassing the stereo pipeline decode.Loader builds for the
// mixer) and writes a quick mono listening check with
// audio.ResampleToMono16, the same convenience wrapper the decoder
// collaborator offers for telephony-style previews.
func writeMonoPreview(path, outPath string, rate int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	dec, ok := decode.NewRegistry().Get(ext)
	if !ok {
		return fmt.Errorf("unsupported format: %q", ext)
	}

	src, err := dec.Decode(f)
	if err != nil {
		return err
	}
	defer src.Close()

	pcm16, outRate, err := audio.ResampleToMono16(src, rate, 4096)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return wav.WriteWAV16(out, outRate, pcm16)
}
