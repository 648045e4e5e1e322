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

package audio_test

import (
	"testing"

	"github.com/jetsetilly/vcscore/hardware/clocks"
	"github.com/jetsetilly/vcscore/hardware/tia/audio"
	"github.com/jetsetilly/vcscore/test"
)

func TestSilentChannelProducesZeroSamples(t *testing.T) {
	var clock clocks.Clock
	s := audio.NewTiaSound(false)

	clock.AddCycles(1_000_000)
	s.Step(&clock)

	got := s.GetNextAudioChunk(100)
	test.ExpectInequality(t, len(got), 0)
	for _, v := range got {
		test.ExpectEquality(t, v, uint8(0))
	}
}

func TestVolumeIsClampedToFourBits(t *testing.T) {
	var clock clocks.Clock
	s := audio.NewTiaSound(false)

	// waveform 0 always gates the channel on, so the output should track
	// volume directly once samples have been generated.
	s.WriteAUDC0(&clock, 0x00)
	s.WriteAUDV0(&clock, 0xff)

	clock.AddCycles(10_000)
	s.Step(&clock)

	got := s.GetNextAudioChunk(10)
	test.ExpectInequality(t, len(got), 0)
	for i := 0; i < len(got); i += audio.Channels {
		test.ExpectEquality(t, got[i], (0xff&0xf)*0x7)
	}
}

func TestGetNextAudioChunkDrainsFIFO(t *testing.T) {
	var clock clocks.Clock
	s := audio.NewTiaSound(true)

	s.WriteAUDC0(&clock, 0x00)
	s.WriteAUDV0(&clock, 0x0f)
	clock.AddCycles(100_000)
	s.Step(&clock)

	first := s.GetNextAudioChunk(5)
	test.ExpectEquality(t, len(first), 5*audio.Channels)

	backlogBefore := s.Backlog()
	remaining := s.GetNextAudioChunk(1_000_000)
	test.ExpectInequality(t, len(remaining), 0)
	test.ExpectInequality(t, backlogBefore, 0)
}

func TestNonRealTimeModeDropsBacklog(t *testing.T) {
	var clock clocks.Clock
	s := audio.NewTiaSound(false)

	s.WriteAUDC0(&clock, 0x00)
	s.WriteAUDV0(&clock, 0x0f)
	clock.AddCycles(1_000_000)
	s.Step(&clock)

	// draining a tiny chunk in non-real-time mode should discard whatever
	// backlog remains rather than let it accumulate unbounded.
	s.GetNextAudioChunk(1)
	test.ExpectEquality(t, s.Backlog(), 0)
}
