package physics

import (
	"github.com/lixenwraith/linerider/entity"
)

// Result is the outcome of a constraint pass: Same or Broken
type Result interface {
	// Entities flattens the result, rider before sled when broken
	Entities() []entity.Entity
	result()
}

// Same means the entity stayed in one piece
type Same struct {
	Entity entity.Entity
}

// Broken means the rider separated from the sled
type Broken struct {
	Rider entity.Entity
	Sled  entity.Entity
}

func (Same) result()   {}
func (Broken) result() {}

func (r Same) Entities() []entity.Entity { return []entity.Entity{r.Entity} }

// Entities returns both halves, omitting a half with no points
func (r Broken) Entities() []entity.Entity {
	out := make([]entity.Entity, 0, 2)
	for _, e := range [2]entity.Entity{r.Rider, r.Sled} {
		if len(e.Points) > 0 {
			out = append(out, e)
		}
	}
	return out
}

// mustSame unwraps a pass over an already split half
// Mount bones always join the halves, so a half breaking again is a broken invariant
func mustSame(r Result) entity.Entity {
	s, ok := r.(Same)
	if !ok {
		panic("physics: split entity broke a second time")
	}
	return s.Entity
}
