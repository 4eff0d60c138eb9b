package main

import (
	"github.com/lixenwraith/linerider/entity"
	"github.com/lixenwraith/linerider/track"
)

const landingDropSpeed = 1.0

// player walks a track's frames; any frame can be revisited through the track cache
type player struct {
	track  *track.Track
	frame  int
	paused bool

	entities []entity.Entity
}

func newPlayer(tr *track.Track) *player {
	p := &player{track: tr}
	p.seek(0)
	return p
}

// seek jumps to frame, clamped at 0, and returns what happened on the way from the previous frame
func (p *player) seek(frame int) rideEvents {
	prev := p.entities
	p.frame = max(frame, 0)
	p.entities = p.track.EntityPositionsAt(p.frame)
	if prev == nil {
		return rideEvents{}
	}
	return detectEvents(prev, p.entities)
}

// tick advances one frame unless paused
func (p *player) tick() rideEvents {
	if p.paused {
		return rideEvents{}
	}
	return p.seek(p.frame + 1)
}

// speed is the average momentum length of the first entity
func (p *player) speed() float64 {
	if len(p.entities) == 0 {
		return 0
	}
	return p.entities[0].AverageMomentum().Length()
}

type rideEvents struct {
	crashed bool // rider came off the sled
	landed  bool // a fast fall stopped
}

func detectEvents(prev, cur []entity.Entity) rideEvents {
	var ev rideEvents
	ev.crashed = len(cur) > len(prev)
	if len(prev) > 0 && len(cur) > 0 {
		before := prev[0].AverageMomentum().Y
		after := cur[0].AverageMomentum().Y
		ev.landed = before > landingDropSpeed && after < before*0.3
	}
	return ev
}
