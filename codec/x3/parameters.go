/*
NAME
  parameters.go

DESCRIPTION
  Parameters configures the x3 block/frame codec: block length, Rice code
  family selection and the thresholds that choose between them.

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

// Protocol constants.
const (
	// MaxBlockLength is the largest number of samples permitted in a
	// single block.
	MaxBlockLength = 60

	// WavBitSize is the bit depth of samples this codec operates on.
	WavBitSize = 16

	// DefaultBlockLength is the block length used by DefaultParameters.
	DefaultBlockLength = 20

	// DefaultBlocksPerFrame is the number of blocks per frame used by
	// DefaultParameters.
	DefaultBlocksPerFrame = 500
)

// DefaultCodes selects rice code families {0, 1, 3} for the three
// thresholds, matching the reference encoder's default configuration.
var DefaultCodes = [3]int{0, 1, 3}

// DefaultThresholds are the default max-abs-diff thresholds that select
// between the three rice code families.
var DefaultThresholds = [3]int{3, 8, 20}

// Parameters holds the configuration of the x3 block/frame codec. It is
// immutable once constructed; there is no reload path.
type Parameters struct {
	BlockLen       int
	BlocksPerFrame int
	Codes          [3]int
	Thresholds     [3]int
	riceCodes      [3]*riceCode
}

// NewParameters validates and constructs a Parameters value. thresholds[0]
// and thresholds[1] must not exceed the offset of their associated rice
// code, since a threshold greater than the table's offset could select a
// diff value the table cannot represent.
func NewParameters(blockLen, blocksPerFrame int, codes, thresholds [3]int) (Parameters, error) {
	rc := [3]*riceCode{&riceCodes[codes[0]], &riceCodes[codes[1]], &riceCodes[codes[2]]}

	for k := 0; k < 2; k++ {
		if thresholds[k] > rc[k].offset {
			return Parameters{}, ErrInvalidEncodingThresh
		}
	}

	return Parameters{
		BlockLen:       blockLen,
		BlocksPerFrame: blocksPerFrame,
		Codes:          codes,
		Thresholds:     thresholds,
		riceCodes:      rc,
	}, nil
}

// DefaultParameters returns the reference encoder's default configuration:
// a block length of 20, 500 blocks per frame, and rice code families
// {0, 1, 3} selected by thresholds {3, 8, 20}.
func DefaultParameters() Parameters {
	p, err := NewParameters(DefaultBlockLength, DefaultBlocksPerFrame, DefaultCodes, DefaultThresholds)
	if err != nil {
		// DefaultCodes/DefaultThresholds are constants known to satisfy
		// NewParameters' invariant; this can't happen.
		panic(err)
	}
	return p
}
