/*
NAME
  stats_test.go

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package x3

import "testing"

func TestStatsTotalAndFraction(t *testing.T) {
	var s Stats
	s.add(blockTypeRice0, 20)
	s.add(blockTypeBFP, 60)

	if got := s.Total(); got != 80 {
		t.Errorf("Total() = %d, want 80", got)
	}
	if got := s.Fraction(blockTypeBFP); got != 0.75 {
		t.Errorf("Fraction(blockTypeBFP) = %v, want 0.75", got)
	}
	if got := s.Fraction(blockTypeRice3); got != 0 {
		t.Errorf("Fraction(blockTypeRice3) = %v, want 0", got)
	}
}

func TestStatsFractionEmpty(t *testing.T) {
	var s Stats
	if got := s.Fraction(blockTypeRice0); got != 0 {
		t.Errorf("Fraction() on empty Stats = %v, want 0", got)
	}
}

func TestStatsBitsPerSample(t *testing.T) {
	var s Stats
	if mean, variance := s.BitsPerSample(); mean != 0 || variance != 0 {
		t.Errorf("BitsPerSample() on empty Stats = (%v, %v), want (0, 0)", mean, variance)
	}

	s.addBitWidth(4)
	s.addBitWidth(6)
	mean, variance := s.BitsPerSample()
	if mean != 5 {
		t.Errorf("BitsPerSample() mean = %v, want 5", mean)
	}
	if variance <= 0 {
		t.Errorf("BitsPerSample() variance = %v, want > 0", variance)
	}
}

// TestFrameStatsTracksBitWidth checks that encoding a frame records one
// bit-width sample per block, wiring addBitWidth into the encode path.
func TestFrameStatsTracksBitWidth(t *testing.T) {
	wav := make([]int16, 21)
	var stats Stats
	encodeFrame(wav, DefaultParameters(), &stats)

	if got := len(stats.bitsPerBlock); got != 1 {
		t.Errorf("len(bitsPerBlock) = %d, want 1", got)
	}
}
