package physics

import (
	"github.com/lixenwraith/linerider/entity"
	"github.com/lixenwraith/linerider/vmath"
)

// Integrate advances every point by its implied velocity plus gravity
// Momentum is set to the velocity used for this frame
func Integrate(e *entity.Entity, gravity vmath.Vector2D) {
	for i, p := range e.Points {
		v := p.Location.Sub(p.PreviousLocation).Add(gravity)
		p.PreviousLocation = p.Location
		p.Location = p.Location.Add(v)
		p.Momentum = v
		e.Points[i] = p
	}
}

// Step advances one entity by one frame; the input entity is not modified
func Step(e entity.Entity, src LineSource, params Params) Result {
	e = e.Clone()
	Integrate(&e, params.Gravity)
	tracePoints("integrate", e)

	var result Result = Same{Entity: e}
	for iter := 0; iter < params.Iterations; iter++ {
		switch r := result.(type) {
		case Same:
			result = ApplyBones(r.Entity)
		case Broken:
			result = Broken{
				Rider: mustSame(ApplyBones(r.Rider)),
				Sled:  mustSame(ApplyBones(r.Sled)),
			}
		}

		switch r := result.(type) {
		case Same:
			ApplyGravityWells(&r.Entity, src, params.GravityWellHeight)
		case Broken:
			ApplyGravityWells(&r.Rider, src, params.GravityWellHeight)
			ApplyGravityWells(&r.Sled, src, params.GravityWellHeight)
		}
		traceResult(iter, result)
	}

	if s, ok := result.(Same); ok {
		result = ApplyJoints(s.Entity)
	}
	return result
}

// FrameAfter steps every entity and flattens the results in input order
func FrameAfter(entities []entity.Entity, src LineSource, params Params) []entity.Entity {
	next := make([]entity.Entity, 0, len(entities))
	for _, e := range entities {
		next = append(next, Step(e, src, params).Entities()...)
	}
	return next
}
