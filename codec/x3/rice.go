/*
NAME
  rice.go

DESCRIPTION
  The four Rice code tables used by the block codec.

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

// riceCode describes one of the four fixed Rice/Golomb-like code families
// used to pack a first-order-difference sample into a variable number of
// bits. code[i]/numBits[i] are indexed by (diff + offset); inv is the
// shared inverse lookup, indexed by the decoded unary+suffix value.
type riceCode struct {
	nsubs   int // number of suffix (subcode) bits
	offset  int // table offset added to the raw diff value
	code    []int
	numBits []int
	inv     []int16
}

// invRiceCode is the inverse lookup table shared by all four rice codes,
// mapping a decoded index back to its signed difference value.
var invRiceCode = []int16{
	0, -1, 1, -2, 2, -3, 3, -4, 4, -5, 5, -6, 6, -7, 7, -8, 8, -9, 9, -10, 10, -11, 11, -12, 12, -13, 13, -14, 14, -15,
	15, -16, 16, -17, 17, -18, 18, -19, 19, -20, 20, -21, 21, -22, 22, -23, 23, -24, 24, -25, 25, -26, 26, -27, 27, -28,
	28, -29, 29, -30,
}

// riceCodes holds the four static Rice code descriptors, indexed by the
// Parameters.Codes selector.
var riceCodes = [4]riceCode{
	{
		nsubs:   0,
		offset:  6,
		code:    []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		numBits: []int{12, 10, 8, 6, 4, 2, 1, 3, 5, 7, 9, 11, 13, 15},
		inv:     invRiceCode,
	},
	{
		nsubs:  1,
		offset: 11,
		code:   []int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
		numBits: []int{
			12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
		},
		inv: invRiceCode,
	},
	{
		nsubs:  2,
		offset: 20,
		code: []int{
			7, 5, 7, 5, 7, 5, 7, 5, 7, 5, 7, 5, 7, 5, 7, 5, 7, 5, 7, 5, 4, 6, 4, 6, 4, 6, 4, 6, 4, 6, 4, 6, 4, 6, 4, 6, 4,
			6, 4, 6,
		},
		numBits: []int{
			12, 12, 11, 11, 10, 10, 9, 9, 8, 8, 7, 7, 6, 6, 5, 5, 4, 4, 3, 3, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10,
			10, 11, 11, 12, 12,
		},
		inv: invRiceCode,
	},
	{
		nsubs:  3,
		offset: 28,
		code: []int{
			15, 13, 11, 9, 15, 13, 11, 9, 15, 13, 11, 9, 15, 13, 11, 9, 15, 13, 11, 9, 15, 13, 11, 9, 15, 13, 11, 9, 8, 10,
			12, 14, 8, 10, 12, 14, 8, 10, 12, 14, 8, 10, 12, 14, 8, 10, 12, 14, 8, 10, 12, 14, 8, 10, 12, 14,
		},
		numBits: []int{
			10, 10, 10, 10, 9, 9, 9, 9, 8, 8, 8, 8, 7, 7, 7, 7, 6, 6, 6, 6, 5, 5, 5, 5, 4, 4, 4, 4, 4, 4, 4, 4, 5, 5, 5, 5,
			6, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10,
		},
		inv: invRiceCode,
	},
}
