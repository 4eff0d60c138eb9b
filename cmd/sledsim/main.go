// Command sledsim runs a scene headless and dumps sampled frames as text or msgpack
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/lixenwraith/linerider/logfile"
	"github.com/lixenwraith/linerider/physics"
	"github.com/lixenwraith/linerider/scene"
	"github.com/lixenwraith/linerider/track"
)

const logDir = "logs"

var errUnknownScene = errors.New("unknown scene")

type config struct {
	scene      string
	frames     int
	every      int
	format     string
	metaPath   string
	dumpConfig bool
}

func main() {
	os.Exit(runMain())
}

// runMain returns the process exit code so deferred closes run before exit
func runMain() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nSLEDSIM CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	var (
		cfg     config
		outPath string
		debugOn bool
		list    bool
	)
	flag.StringVar(&cfg.scene, "scene", "flat", "scene to simulate (see -list)")
	flag.IntVar(&cfg.frames, "frames", 40, "last frame to simulate")
	flag.IntVar(&cfg.every, "every", 1, "dump every Nth frame")
	flag.StringVar(&cfg.format, "format", "text", "output format: text, msgpack")
	flag.StringVar(&cfg.metaPath, "config", "", "TOML track meta file")
	flag.BoolVar(&cfg.dumpConfig, "dump-config", false, "print the effective meta as TOML and exit")
	flag.StringVar(&outPath, "out", "", "output file (default stdout)")
	flag.BoolVar(&debugOn, "debug", false, "log to logs/sledsim.log and trace physics")
	flag.BoolVar(&list, "list", false, "list scenes and exit")
	flag.Parse()

	if logFile := openDebugLog(logDir, debugOn); logFile != nil {
		defer logFile.Close()
		defer physics.SetDebugOutput(nil)
	}

	if list {
		for _, name := range scene.Names() {
			s, _ := scene.Get(name)
			fmt.Printf("%-8s %s\n", name, s.Description)
		}
		return 0
	}

	out := io.Writer(os.Stdout)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sledsim: %v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}

	if err := run(cfg, out); err != nil {
		fmt.Fprintf(os.Stderr, "sledsim: %v\n", err)
		return 1
	}
	return 0
}

// openDebugLog starts file logging under dir and routes the physics trace into the same file
func openDebugLog(dir string, debug bool) *os.File {
	f := logfile.Setup(dir, "sledsim", debug)
	if f != nil {
		physics.SetDebugOutput(f)
	}
	return f
}

func loadMeta(path string) (track.Meta, error) {
	if path == "" {
		return track.DefaultMeta(), nil
	}
	return track.LoadMeta(path)
}

// run simulates cfg.scene up to cfg.frames and writes every cfg.every-th frame to w
func run(cfg config, w io.Writer) error {
	meta, err := loadMeta(cfg.metaPath)
	if err != nil {
		return err
	}
	if cfg.dumpConfig {
		return meta.Encode(w)
	}

	s, ok := scene.Get(cfg.scene)
	if !ok {
		return fmt.Errorf("%w %q (have %s)", errUnknownScene, cfg.scene, strings.Join(scene.Names(), ", "))
	}
	if cfg.frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", cfg.frames)
	}
	if cfg.every < 1 {
		cfg.every = 1
	}

	fw, err := newFrameWriter(cfg.format, w)
	if err != nil {
		return err
	}

	log.Printf("scene=%s lines=%d riders=%d frames=%d meta=%+v", s.Name, len(s.Lines), len(s.Riders), cfg.frames, meta)
	tr := s.Track(meta)

	count := len(s.Riders)
	for frame := 0; frame <= cfg.frames; frame++ {
		entities := tr.EntityPositionsAt(frame)
		if len(entities) != count {
			log.Printf("frame %d: %d entities -> %d", frame, count, len(entities))
			count = len(entities)
		}
		if frame%cfg.every != 0 && frame != cfg.frames {
			continue
		}
		if err := fw.WriteFrame(frame, entities); err != nil {
			return fmt.Errorf("write frame %d: %w", frame, err)
		}
	}

	if err := fw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	log.Printf("done, cached frames=%d", tr.CachedFrames())
	return nil
}
