/*
 * playback.go, part of mogura.
 *
 * Copyright 2024 The mogura Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package traj

// State is the playback state of a trajectory.
type State int

const (
	Stopped   State = iota
	PlayOnce        //play until the last frame, then stop at frame 0
	PlayLoop        //play forever, going back to frame 0 after the last one
	ScrubOnce       //redraw the current frame once, then stop
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case PlayOnce:
		return "play"
	case PlayLoop:
		return "loop"
	case ScrubOnce:
		return "scrub"
	}
	return "unknown"
}

// Playing returns true if the state advances frames on each tick.
func (s State) Playing() bool {
	return s == PlayOnce || s == PlayLoop
}

// Transition returns the state and frame that follow one tick in state s, at
// frame current, in a trajectory of nframe frames. A trajectory without frames
// is always stopped at frame 0.
func Transition(s State, current, nframe int) (State, int) {
	if nframe <= 0 {
		return Stopped, 0
	}
	switch s {
	case PlayOnce:
		current++
		if current >= nframe {
			return Stopped, 0
		}
		return PlayOnce, current
	case PlayLoop:
		current++
		if current >= nframe {
			return PlayLoop, 0
		}
		return PlayLoop, current
	default:
		return Stopped, current
	}
}

// Playback drives the animation of a trajectory: it holds the current frame and
// the playback state. A Playback is meant to be used from one goroutine, the one
// that draws the frames.
type Playback struct {
	state   State
	current int
	nframe  int
}

// NewPlayback returns a stopped Playback at frame 0, for a trajectory of nframe frames.
func NewPlayback(nframe int) *Playback {
	return &Playback{nframe: nframe}
}

// State returns the current playback state.
func (P *Playback) State() State { return P.state }

// Current returns the current frame id.
func (P *Playback) Current() int { return P.current }

// NFrame returns the number of frames being played.
func (P *Playback) NFrame() int { return P.nframe }

// Start plays the trajectory once, from the current frame.
func (P *Playback) Start() { P.set(PlayOnce) }

// Loop plays the trajectory from the current frame, over and over.
func (P *Playback) Loop() { P.set(PlayLoop) }

// Stop stops the playback, keeping the current frame.
func (P *Playback) Stop() { P.state = Stopped }

func (P *Playback) set(s State) {
	if P.nframe <= 0 {
		P.state = Stopped
		return
	}
	P.state = s
}

// Scrub jumps to frame. If the trajectory is playing it keeps playing from there;
// otherwise the frame is drawn once on the next tick.
func (P *Playback) Scrub(frame int) error {
	if frame < 0 || frame >= P.nframe {
		return &LookupError{ID: frame, NFrame: P.nframe, deco: []string{"Scrub"}}
	}
	P.current = frame
	if !P.state.Playing() {
		P.state = ScrubOnce
	}
	return nil
}

// NextFrameID advances one frame. After the last frame it goes back to 0, and a
// PlayOnce playback stops. Other states are not changed.
func (P *Playback) NextFrameID() int {
	var next State
	next, P.current = Transition(PlayOnce, P.current, P.nframe)
	if P.state == PlayOnce {
		P.state = next
	}
	return P.current
}

// LoopFrameID advances one frame, going back to 0 after the last one. It never
// changes the state.
func (P *Playback) LoopFrameID() int {
	_, P.current = Transition(PlayLoop, P.current, P.nframe)
	return P.current
}

// Tick is called once per drawn frame. It returns the frame to draw and whether it
// needs to be drawn at all, and then moves the playback forward.
func (P *Playback) Tick() (frame int, redraw bool) {
	switch P.state {
	case Stopped:
		return P.current, false
	case ScrubOnce:
		P.state = Stopped
		return P.current, true
	}
	frame = P.current
	P.state, P.current = Transition(P.state, P.current, P.nframe)
	return frame, true
}
