package physics

import (
	"fmt"
	"io"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/linerider/entity"
)

var (
	tracing atomic.Bool
	tracer  = log.New(io.Discard, "[PHYSICS] ", log.Lmicroseconds)
)

// SetDebugOutput routes per-iteration point traces to w; nil disables tracing
func SetDebugOutput(w io.Writer) {
	if w == nil {
		tracing.Store(false)
		tracer.SetOutput(io.Discard)
		return
	}
	tracer.SetOutput(w)
	tracing.Store(true)
}

func tracePoints(stage string, e entity.Entity) {
	if !tracing.Load() {
		return
	}
	for _, i := range e.Indices() {
		p := e.Points[i]
		tracer.Printf("%s %-13s loc=(%.6f, %.6f) prev=(%.6f, %.6f)",
			stage, i, p.Location.X, p.Location.Y, p.PreviousLocation.X, p.PreviousLocation.Y)
	}
}

func traceResult(iter int, r Result) {
	if !tracing.Load() {
		return
	}
	stage := fmt.Sprintf("iter %d", iter)
	if _, broken := r.(Broken); broken {
		stage += " broken"
	}
	for _, e := range r.Entities() {
		tracePoints(stage, e)
	}
}
