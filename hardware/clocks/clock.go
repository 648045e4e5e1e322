// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package clocks

// CyclesToClock is the number of colour clocks in a single CPU cycle. The
// 6507 and the TIA share a crystal; the CPU runs at a third of the TIA's
// rate, so every CPU cycle the TIA rasterizer advances three colour clocks.
const CyclesToClock = 3

// Clock counts colour clocks elapsed since power-on. It's the single source
// of truth for "when" within vcscore: the CPU advances it once per cycle,
// and the TIA rasterizer/audio generator read it to decide how far to
// catch up.
type Clock struct {
	ticks int
}

// Ticks returns the number of colour clocks elapsed. Implements
// random.Ticker.
func (c *Clock) Ticks() int {
	return c.ticks
}

// AddCycles advances the clock by n CPU cycles (n*CyclesToClock colour
// clocks).
func (c *Clock) AddCycles(n int) {
	c.ticks += n * CyclesToClock
}

// AddTicks advances the clock by n colour clocks directly, for the TIA's
// WSYNC/RSYNC writes, which stall the CPU to a horizontal-line boundary
// rather than by a whole number of CPU cycles.
func (c *Clock) AddTicks(n int) {
	c.ticks += n
}

// Reset returns the clock to zero.
func (c *Clock) Reset() {
	c.ticks = 0
}
