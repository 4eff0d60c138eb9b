package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/linerider/entity"
	"github.com/lixenwraith/linerider/vmath"
)

// pointRecord is one point of a dumped frame
type pointRecord struct {
	Role     string         `msgpack:"role"`
	Location vmath.Vector2D `msgpack:"loc"`
	Momentum vmath.Vector2D `msgpack:"mom"`
}

// frameRecord is the msgpack unit of a frame dump, one per sampled frame
type frameRecord struct {
	Frame    int             `msgpack:"frame"`
	Entities [][]pointRecord `msgpack:"entities"`
}

func newFrameRecord(frame int, entities []entity.Entity) frameRecord {
	rec := frameRecord{Frame: frame, Entities: make([][]pointRecord, len(entities))}
	for i, e := range entities {
		points := make([]pointRecord, 0, len(e.Points))
		for _, idx := range e.Indices() {
			p := e.Points[idx]
			points = append(points, pointRecord{Role: idx.String(), Location: p.Location, Momentum: p.Momentum})
		}
		rec.Entities[i] = points
	}
	return rec
}

// frameWriter serializes sampled frames
type frameWriter interface {
	WriteFrame(frame int, entities []entity.Entity) error
	Flush() error
}

// textWriter emits one tab separated line per point: frame, entity, role, x, y
type textWriter struct {
	w *bufio.Writer
}

func newTextWriter(w io.Writer) *textWriter {
	return &textWriter{w: bufio.NewWriter(w)}
}

func (t *textWriter) WriteFrame(frame int, entities []entity.Entity) error {
	for i, e := range entities {
		for _, idx := range e.Indices() {
			p := e.Points[idx]
			if _, err := fmt.Fprintf(t.w, "%d\t%d\t%s\t%.6f\t%.6f\n", frame, i, idx, p.Location.X, p.Location.Y); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *textWriter) Flush() error { return t.w.Flush() }

// msgpackWriter emits a stream of frameRecord values
type msgpackWriter struct {
	w   *bufio.Writer
	enc *msgpack.Encoder
}

func newMsgpackWriter(w io.Writer) *msgpackWriter {
	bw := bufio.NewWriter(w)
	return &msgpackWriter{w: bw, enc: msgpack.NewEncoder(bw)}
}

func (m *msgpackWriter) WriteFrame(frame int, entities []entity.Entity) error {
	return m.enc.Encode(newFrameRecord(frame, entities))
}

func (m *msgpackWriter) Flush() error { return m.w.Flush() }

func newFrameWriter(format string, w io.Writer) (frameWriter, error) {
	switch format {
	case "text":
		return newTextWriter(w), nil
	case "msgpack":
		return newMsgpackWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text or msgpack)", format)
	}
}
