package physics

import (
	"testing"

	"github.com/lixenwraith/linerider/entity"
	"github.com/lixenwraith/linerider/line"
)

// BenchmarkStepFreeFall benchmarks one frame with no lines in range
func BenchmarkStepFreeFall(b *testing.B) {
	e := entity.DefaultBoshSled()
	params := DefaultParams()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Step(e, LineSlice(nil), params)
	}
}

// BenchmarkFrameAfterGround benchmarks a rider resting on a slope among scattered lines
func BenchmarkFrameAfterGround(b *testing.B) {
	var lines LineSlice
	for i := 0; i < 32; i++ {
		x := float64(i * 20)
		lines = append(lines, line.NewBuilder().
			ID(int64(i)).
			Point(x-20, 6+float64(i)).
			Point(x, 7+float64(i)).
			Build())
	}
	frame := []entity.Entity{entity.DefaultBoshSled()}
	params := DefaultParams()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		FrameAfter(frame, lines, params)
	}
}
