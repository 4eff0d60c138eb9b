// Package logfile routes the std logger of a command to a size-rotated file under a log directory
package logfile

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// MaxSize is the size above which an existing log is rotated out before opening
const MaxSize = 10 * 1024 * 1024

// Path returns the active log file of the named tool
func Path(dir, name string) string {
	return filepath.Join(dir, name+".log")
}

// Setup routes the std logger to dir/name.log when debug is set, otherwise discards it
// An existing log above MaxSize is renamed to name-<timestamp>.log first
// Failures are reported on stderr and fall back to discarding; the caller owns the returned file
func Setup(dir, name string, debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "log dir: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	path := Path(dir, name)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxSize {
		rotated := filepath.Join(dir, fmt.Sprintf("%s-%s.log", name, time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "log rotate: %v\n", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log open: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
