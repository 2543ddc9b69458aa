/*
 * doc.go, part of mogura.
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

/*
Package traj holds the frames of a loaded trajectory, and the playback counter
that animates them.

A Trajectory is read-only once built, and can be shared among goroutines. Frames
only carry positions: the topology atoms keep their reference coordinates, and
bonds computed from those are reused for every frame.

Playback replaces a set of play/loop/scrub flags with a single State and a pure
Transition function:

	Stopped   -- tick --> Stopped
	ScrubOnce -- tick --> Stopped (after one redraw)
	PlayOnce  -- tick --> PlayOnce, or Stopped at frame 0 after the last frame
	PlayLoop  -- tick --> PlayLoop, back to frame 0 after the last frame
*/
package traj
