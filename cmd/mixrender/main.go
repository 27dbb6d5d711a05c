// SPDX-License-Identifier: EPL-2.0

// Command mixrender is an integration harness for the engine: it drives
// the full control API against the offline Render device instead of
// real hardware, then writes the resulting mix to a stereo WAV file.
// There is no sound card involved anywhere in this command, the way
// audio_backend_headless.go lets IntuitionEngine run without one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/larkspur-audio/mixcore"
	"github.com/larkspur-audio/mixcore/backend"
	"github.com/larkspur-audio/mixcore/formats/wav"
	"github.com/larkspur-audio/mixcore/scene"
	"github.com/larkspur-audio/mixcore/track"
	"github.com/larkspur-audio/mixcore/utils"
)

func main() {
	clipPath := flag.String("clip", "", "audio file to place on track 1 at beat 0")
	bpm := flag.Float64("bpm", 120, "transport tempo")
	seconds := flag.Float64("seconds", 2, "how much audio to render")
	outPath := flag.String("out", "mixrender.wav", "output WAV path")
	flag.Parse()

	if *clipPath == "" {
		fmt.Fprintln(os.Stderr, "usage: mixrender -clip <file> [-bpm n] [-seconds n] [-out path]")
		os.Exit(2)
	}

	cfg := mixcore.DefaultConfig()

	var render *backend.Render
	eng, code := mixcore.InitWithDevice(cfg, func(s *scene.Scene, period int) (backend.Device, error) {
		render = backend.NewRender(s, period)
		return render, nil
	})
	if code != mixcore.OK {
		log.Fatalf("mixrender: init: %v", code)
	}
	defer eng.Shutdown()

	id, code := eng.TrackCreate(track.Audio)
	if code != mixcore.OK {
		log.Fatalf("mixrender: track_create: %v", code)
	}
	if code := eng.SetBPM(*bpm); code != mixcore.OK {
		log.Fatalf("mixrender: set_bpm: %v", code)
	}
	if code := eng.LoadClip(id, *clipPath, 0); code != mixcore.OK {
		log.Fatalf("mixrender: load_clip: %v", code)
	}
	if code := eng.Play(); code != mixcore.OK {
		log.Fatalf("mixrender: play: %v", code)
	}

	frames := int(*seconds * float64(cfg.SampleRate))
	render.RunFor(frames)

	if code := eng.Stop(); code != mixcore.OK {
		log.Fatalf("mixrender: stop: %v", code)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("mixrender: %v", err)
	}
	defer out.Close()

	pcm := make([]int16, len(render.Samples()))
	for i, s := range render.Samples() {
		pcm[i] = utils.Float32ToInt16(s)
	}
	if err := wav.WriteWAV16Stereo(out, cfg.SampleRate, pcm); err != nil {
		log.Fatalf("mixrender: writing %s: %v", *outPath, err)
	}

	fmt.Println("wrote:", *outPath)
}
