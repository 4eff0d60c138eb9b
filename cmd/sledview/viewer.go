package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/linerider/audio"
	"github.com/lixenwraith/linerider/entity"
	"github.com/lixenwraith/linerider/line"
)

var (
	styleNormal     = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	styleAccelerate = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleScenery    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleSled       = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleRider      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBone       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

type viewer struct {
	screen tcell.Screen
	sound  *audio.SoundManager
	player *player
	view   viewport
	name   string
	fps    int
}

func lineStyle(t line.Type) tcell.Style {
	switch t.Kind {
	case line.KindAccelerate:
		return styleAccelerate
	case line.KindScenery:
		return styleScenery
	default:
		return styleNormal
	}
}

func (v *viewer) follow() {
	if len(v.player.entities) > 0 {
		v.view.center = v.player.entities[0].AveragePosition()
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	v.view.width, v.view.height = v.screen.Size()
	v.view.height-- // status row
	v.follow()

	tl, br := v.view.visible()
	for _, l := range v.player.track.LinesNearBox(tl, br) {
		a, b := l.Ends[0].Location, l.Ends[1].Location
		glyph := v.view.glyph(a, b)
		style := lineStyle(l.Type)
		v.view.segmentCells(a, b, func(x, y int) {
			v.screen.SetContent(x, y, glyph, nil, style)
		})
	}

	for _, e := range v.player.entities {
		v.drawEntity(e)
	}

	v.drawStatus()
	v.screen.Show()
}

func (v *viewer) drawEntity(e entity.Entity) {
	for _, b := range e.Bones {
		if b.Kind != entity.BoneRigid {
			continue
		}
		v.view.segmentCells(e.PointAt(b.P1).Location, e.PointAt(b.P2).Location, func(x, y int) {
			v.screen.SetContent(x, y, '.', nil, styleBone)
		})
	}
	for _, i := range e.Indices() {
		x, y := v.view.toScreen(e.Points[i].Location)
		if !v.view.inside(x, y) {
			continue
		}
		r, style := 'o', styleRider
		switch {
		case i.IsSled():
			r, style = '#', styleSled
		case i == entity.BoshShoulder:
			r = '@'
		}
		v.screen.SetContent(x, y, r, nil, style)
	}
}

func (v *viewer) drawStatus() {
	w, h := v.screen.Size()
	state := "play"
	if v.player.paused {
		state = "pause"
	}
	text := fmt.Sprintf(" %s | %s | frame %d | cached %d | entities %d | speed %.2f | [space] pause [</>] step [r] restart [+/-] zoom [q] quit",
		v.name, state, v.player.frame, v.player.track.CachedFrames(), len(v.player.entities), v.player.speed())
	col := 0
	for _, r := range text {
		if col >= w {
			break
		}
		v.screen.SetContent(col, h-1, r, nil, styleStatus)
		col++
	}
	for ; col < w; col++ {
		v.screen.SetContent(col, h-1, ' ', nil, styleStatus)
	}
}

func (v *viewer) react(ev rideEvents) {
	if ev.crashed {
		log.Printf("frame %d: crash", v.player.frame)
		v.sound.PlayCrash()
	}
	if ev.landed {
		v.sound.PlayLanding()
	}
	speed := v.player.speed()
	if v.player.paused {
		speed = 0
	}
	v.sound.SetGlide(speed)
}

// handleInput returns false when the viewer should exit
func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight:
			v.react(v.player.seek(v.player.frame + 1))
		case tcell.KeyLeft:
			v.react(v.player.seek(v.player.frame - 1))
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.player.paused = !v.player.paused
				v.react(rideEvents{})
			case 'r':
				v.player.seek(0)
			case '>', '.':
				v.react(v.player.seek(v.player.frame + 1))
			case '<', ',':
				v.react(v.player.seek(v.player.frame - 1))
			case '+', '=':
				v.view = v.view.zoom(0.5)
			case '-':
				v.view = v.view.zoom(2)
			}
		}
		v.draw()
	case *tcell.EventResize:
		v.screen.Sync()
		v.draw()
	}
	return true
}

func (v *viewer) run() {
	ticker := time.NewTicker(time.Second / time.Duration(v.fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- v.screen.PollEvent()
		}
	}()

	v.draw()
	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			if v.player.paused {
				continue
			}
			v.react(v.player.tick())
			v.draw()
		}
	}
}
