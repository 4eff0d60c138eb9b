package main

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/linerider/track"
)

func TestRun_Text(t *testing.T) {
	var buf bytes.Buffer
	cfg := config{scene: "free", frames: 4, every: 2, format: "text"}
	if err := run(cfg, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}

	frames := map[string]int{}
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) != 5 {
			t.Fatalf("malformed line %q", sc.Text())
		}
		frames[fields[0]]++
	}

	// Frames 0, 2 and 4, ten points each
	if len(frames) != 3 || frames["0"] != 10 || frames["2"] != 10 || frames["4"] != 10 {
		t.Errorf("unexpected frame histogram %v", frames)
	}
}

func TestRun_Msgpack(t *testing.T) {
	var buf bytes.Buffer
	cfg := config{scene: "wall", frames: 15, every: 5, format: "msgpack"}
	if err := run(cfg, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}

	dec := msgpack.NewDecoder(&buf)
	var got []frameRecord
	for {
		var rec frameRecord
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		got = append(got, rec)
	}

	if len(got) != 4 {
		t.Fatalf("got %d frames, want 4", len(got))
	}
	for i, rec := range got {
		if rec.Frame != i*5 {
			t.Errorf("record %d is frame %d, want %d", i, rec.Frame, i*5)
		}
	}
	if n := len(got[0].Entities); n != 1 {
		t.Errorf("frame 0 has %d entities, want 1", n)
	}
	last := got[len(got)-1]
	if n := len(last.Entities); n != 2 {
		t.Fatalf("frame 15 has %d entities, want 2", n)
	}
	if first := last.Entities[0][0].Role; first != "BoshButt" {
		t.Errorf("rider should be listed first, first role %q", first)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config
	}{
		{"unknown scene", config{scene: "moon", format: "text"}},
		{"unknown format", config{scene: "flat", format: "xml"}},
		{"negative frames", config{scene: "flat", frames: -1, format: "text"}},
		{"missing meta", config{scene: "flat", format: "text", metaPath: "does/not/exist.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.cfg, io.Discard); err == nil {
				t.Error("expected error")
			}
		})
	}

	err := run(config{scene: "moon", format: "text"}, io.Discard)
	if !errors.Is(err, errUnknownScene) {
		t.Errorf("error %v should wrap errUnknownScene", err)
	}
}

func TestRun_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.toml")
	if err := os.WriteFile(path, []byte("iterations = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := run(config{metaPath: path, dumpConfig: true}, &buf); err != nil {
		t.Fatalf("dump: %v", err)
	}
	m, err := track.DecodeMeta(buf.Bytes())
	if err != nil {
		t.Fatalf("dumped meta does not decode: %v", err)
	}
	if m.Iterations != 3 {
		t.Errorf("iterations = %d, want 3", m.Iterations)
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("cell_size = -1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(config{scene: "flat", format: "text", metaPath: bad}, io.Discard); !errors.Is(err, track.ErrInvalidMeta) {
		t.Errorf("error %v should wrap ErrInvalidMeta", err)
	}
}
