// Command sledview plays a scene back in the terminal
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/linerider/audio"
	"github.com/lixenwraith/linerider/logfile"
	"github.com/lixenwraith/linerider/scene"
	"github.com/lixenwraith/linerider/track"
)

const logDir = "logs"

func main() {
	os.Exit(runMain())
}

// runMain returns the process exit code so the terminal, speaker and log are released first
func runMain() (code int) {
	// Registered first so it runs last, after the deferred screen.Fini has restored the terminal
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSLEDVIEW CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	sceneName := flag.String("scene", "hill", "scene to play")
	metaPath := flag.String("config", "", "TOML track meta file")
	fps := flag.Int("fps", 40, "playback frames per second")
	scale := flag.Float64("scale", 2, "track units per terminal column")
	mute := flag.Bool("mute", false, "disable sound")
	debugOn := flag.Bool("debug", false, "log to logs/sledview.log")
	flag.Parse()

	if logFile := logfile.Setup(logDir, "sledview", *debugOn); logFile != nil {
		defer logFile.Close()
	}

	s, ok := scene.Get(*sceneName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown scene %q, have %v\n", *sceneName, scene.Names())
		return 1
	}
	meta := track.DefaultMeta()
	if *metaPath != "" {
		m, err := track.LoadMeta(*metaPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			return 1
		}
		meta = m
	}
	if *fps < 1 {
		*fps = 1
	}

	sound := audio.NewSoundManager()
	if !*mute {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, playback works silently
			log.Printf("audio initialization failed: %v", err)
		}
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.HideCursor()

	log.Printf("scene=%s lines=%d fps=%d scale=%g", s.Name, len(s.Lines), *fps, *scale)
	v := &viewer{
		screen: screen,
		sound:  sound,
		player: newPlayer(s.Track(meta)),
		view:   viewport{scale: *scale},
		name:   s.Name,
		fps:    *fps,
	}
	v.run()
	return 0
}
