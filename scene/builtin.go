package scene

import (
	"github.com/lixenwraith/linerider/entity"
	"github.com/lixenwraith/linerider/line"
	"github.com/lixenwraith/linerider/vmath"
)

func init() {
	Register("free", freeFall)
	Register("flat", flat)
	Register("wall", wall)
	Register("hill", hill)
	Register("boost", boost)
}

func defaultRider() []entity.Entity {
	return []entity.Entity{entity.DefaultBoshSled()}
}

func freeFall() Scene {
	return Scene{
		Name:        "free",
		Description: "no lines, the rider falls forever",
		Riders:      defaultRider(),
	}
}

func flat() Scene {
	return Scene{
		Name:        "flat",
		Description: "a long level line under the sled",
		Riders:      defaultRider(),
		Lines:       Chain(0, line.NormalType(), vmath.V(-20, 5), vmath.V(400, 5)),
	}
}

// wall reproduces the classic separation fixture: a floor plus a flipped wall
// behind the sled that snaps its tail back and throws the rider forward
func wall() Scene {
	floor := line.NewBuilder().ID(0).Point(0, 5).Point(30, 5).Build()
	back := line.NewBuilder().ID(1).Point(-7, 0).Point(-7, 10).Flipped(true).Build()
	return Scene{
		Name:        "wall",
		Description: "floor with a flipped wall behind the sled",
		Riders:      defaultRider(),
		Lines:       []line.Line{floor, back},
	}
}

func hill() Scene {
	return Scene{
		Name:        "hill",
		Description: "downhill run into a valley and back up",
		Riders:      defaultRider(),
		Lines: Chain(0, line.NormalType(),
			vmath.V(-10, 6),
			vmath.V(40, 20),
			vmath.V(100, 60),
			vmath.V(160, 80),
			vmath.V(220, 75),
			vmath.V(280, 50),
			vmath.V(320, 40),
		),
	}
}

func boost() Scene {
	lines := Chain(0, line.NormalType(), vmath.V(-10, 6), vmath.V(60, 30))
	lines = append(lines, Chain(1, line.AccelerateType(2), vmath.V(60, 30), vmath.V(140, 40))...)
	lines = append(lines, Chain(2, line.NormalType(), vmath.V(140, 40), vmath.V(200, 20))...)
	// Landing, with scenery decoration above it
	lines = append(lines, Chain(3, line.NormalType(), vmath.V(260, 40), vmath.V(500, 90))...)
	lines = append(lines, Chain(4, line.SceneryType(), vmath.V(250, 10), vmath.V(280, 0), vmath.V(310, 10))...)
	return Scene{
		Name:        "boost",
		Description: "accelerate strip into a jump and a long landing",
		Riders:      defaultRider(),
		Lines:       lines,
	}
}
