/*
NAME
  stats.go

DESCRIPTION
  Stats aggregates per-block-type counts across an encode run, replacing
  the reference encoder's end-of-run percentage printout with a queryable
  value.

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

import "gonum.org/v1/gonum/stat"

// Stats reports how an encode run distributed its blocks across the
// available block types, and summary statistics of the effective bit rate.
type Stats struct {
	// Samples holds the sample count encoded by each block type, indexed
	// by blockTypeRice0..blockTypePassThrough.
	Samples [6]int

	bitsPerBlock []float64
}

// add records one encoded block of n samples using the given block type.
func (s *Stats) add(blockType, n int) {
	s.Samples[blockType] += n
}

// addBitWidth records the bit width used to encode one block, for the
// mean/variance summary reported by BitsPerSample.
func (s *Stats) addBitWidth(bits float64) {
	s.bitsPerBlock = append(s.bitsPerBlock, bits)
}

// Total returns the total number of samples recorded across all block
// types.
func (s *Stats) Total() int {
	t := 0
	for _, n := range s.Samples {
		t += n
	}
	return t
}

// Fraction returns the fraction (0..1) of encoded samples that used the
// given block type.
func (s *Stats) Fraction(blockType int) float64 {
	t := s.Total()
	if t == 0 {
		return 0
	}
	return float64(s.Samples[blockType]) / float64(t)
}

// BitsPerSample returns the mean and variance of the per-block bit width
// recorded across the run, using gonum's streaming mean/variance estimator.
func (s *Stats) BitsPerSample() (mean, variance float64) {
	if len(s.bitsPerBlock) == 0 {
		return 0, 0
	}
	return stat.MeanVariance(s.bitsPerBlock, nil)
}
