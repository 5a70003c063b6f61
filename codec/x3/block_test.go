/*
NAME
  block_test.go

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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func encodeAndAlign(t *testing.T, wav []int16, params Parameters) []byte {
	t.Helper()
	bw := NewBitWriter(len(wav) * 2)
	wavDiff := diff(wav[0], wav[1:])
	encodeBlock(bw, wav[1:], wavDiff, params)
	bw.WordAlign()
	return bw.Bytes()
}

func TestEncodeBlockRice(t *testing.T) {
	wav := []int16{
		-3461, -3452, -3441, -3456, -3462, -3453, -3461, -3461, -3449, -3457,
		-3463, -3460, -3454, -3450, -3449, -3452, -3450, -3449, -3463, -3462, -3462,
	}
	want := []byte{202, 56, 106, 202, 124, 8, 122, 249, 136, 173, 202, 23, 80, 0}

	got := encodeAndAlign(t, wav, DefaultParameters())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("encodeBlock() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeBlockFType3(t *testing.T) {
	wav := []int16{
		-3554, -3559, -3566, -3563, -3553, -3547, -3543, -3552, -3564, -3563,
		-3558, -3558, -3557, -3547, -3549, -3552, -3554, -3556, -3566, -3584, -3573,
	}
	want := []byte{105, 111, 24, 196, 18, 125, 42, 40, 203, 219, 178, 194, 206, 0}

	bw := NewBitWriter(len(wav) * 2)
	bw.WritePackedZeros(1)
	wavDiff := diff(wav[0], wav[1:])
	encodeBlock(bw, wav[1:], wavDiff, DefaultParameters())
	bw.WordAlign()

	if diff := cmp.Diff(want, bw.Bytes()); diff != "" {
		t.Errorf("encodeBlock() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeBlockBFPEq16(t *testing.T) {
	wav := []int16{
		-32341, -16767, 4562, -1601, 9638, 22598, 14100, -12957, -10471, 29926,
		-14190, 31863, 29234, -16603, 31762, 1319, 11044, -28931, 17888, -14247, -14247,
	}
	want := []byte{
		62, 250, 4, 71, 75, 230, 252, 150, 153, 97, 24, 220, 83, 53, 143, 92, 101,
		211, 155, 34, 73, 241, 221, 200, 202, 252, 149, 240, 72, 20, 156, 172, 146,
		59, 245, 23, 131, 33, 103, 33, 100, 0,
	}

	got := encodeAndAlign(t, wav, DefaultParameters())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("encodeBlock() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeBlockBFPLt16(t *testing.T) {
	wav := []int16{
		-3511, -3493, -3494, -3487, -3501, -3502, -3467, -3483, -3506, -3500,
		-3491, -3501, -3483, -3490, -3495, -3500, -3495, -3492, -3493, -3490, -3490,
	}
	want := []byte{24, 151, 240, 252, 191, 163, 225, 164, 48, 158, 196, 188, 251, 246, 20, 31, 240, 96}

	got := encodeAndAlign(t, wav, DefaultParameters())
	if len(got) < len(want) {
		t.Fatalf("got %d bytes, want at least %d", len(got), len(want))
	}
	if diff := cmp.Diff(want, got[:len(want)]); diff != "" {
		t.Errorf("encodeBlock() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeBlockFType1(t *testing.T) {
	in := []byte{0x01, 0x10, 0x23, 0x18, 0x14, 0x90, 0x40, 0x82, 0x58, 0x41, 0x02, 0x0C, 0x4C}
	want := []int16{
		-375, -372, -374, -374, -376, -376, -373, -374, -373, -372,
		-375, -372, -375, -374, -375, -375, -373, -376, -373,
	}

	wav := make([]int16, len(want))
	lastWav := int16(-373)
	br := NewBitReader(in)
	if _, err := br.ReadNBits(6); err != nil {
		t.Fatalf("ReadNBits(6): %v", err)
	}

	if err := decodeBlock(br, wav, &lastWav, DefaultParameters()); err != nil {
		t.Fatalf("decodeBlock: %v", err)
	}
	if diff := cmp.Diff(want, wav); diff != "" {
		t.Errorf("decodeBlock() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeBlockFType2(t *testing.T) {
	in := []byte{
		0xf2, 0x76, 0xb1, 0x82, 0x14, 0xd0, 0x4, 0x4, 0x58, 0x18, 0x30, 0x20, 0x69, 0x86, 0x4, 0xfc, 0xc2, 0xf8, 0xaa,
		0x7f, 0xa1, 0xa, 0xfa, 0xad, 0xbc, 0x9d, 0x8d, 0x13, 0xc9, 0x66, 0xea, 0x5, 0xa3, 0x63, 0x94, 0xc9, 0xf4, 0x88,
		0x4e, 0xb3, 0x6, 0xc9, 0xdb, 0x8f, 0x70, 0x80, 0xb3, 0x8b, 0x6b, 0x14, 0x88, 0x5f, 0x6c, 0x2f, 0xaa, 0x5a, 0xae,
		0xf4, 0x29, 0x46, 0xd9, 0x12, 0x43, 0x4b, 0x4f, 0xd6, 0xeb, 0x24, 0xa8, 0x48, 0xc6, 0x3d, 0x1a, 0xb8, 0x71, 0x72,
		0xb5, 0x68, 0xb4, 0x5b, 0xa1, 0x7c, 0xb2, 0x48, 0x5f, 0x67, 0xd9, 0x1b, 0x65, 0x0,
	}
	want := []int16{
		-3467, -3471, -3466, -3463, -3463, -3465, -3464, -3456, -3450, -3448,
		-3449, -3456, -3462, -3456, -3462, -3461, -3463, -3468, -3462,
	}

	wav := make([]int16, len(want))
	lastWav := int16(uint16(in[0])<<8 | uint16(in[1]))
	br := NewBitReader(in[2:])

	if err := decodeBlock(br, wav, &lastWav, DefaultParameters()); err != nil {
		t.Fatalf("decodeBlock: %v", err)
	}
	if diff := cmp.Diff(want, wav); diff != "" {
		t.Errorf("decodeBlock() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeBlockFType3(t *testing.T) {
	in := []byte{242, 123, 202, 56, 106, 202, 124, 8, 122, 249, 136, 173, 202, 23, 80}
	want := []int16{
		-3452, -3441, -3456, -3462, -3453, -3461, -3461, -3449, -3457, -3463,
		-3460, -3454, -3450, -3449, -3452, -3450, -3449, -3463, -3462,
	}

	wav := make([]int16, len(want))
	lastWav := int16(uint16(in[0])<<8 | uint16(in[1]))
	br := NewBitReader(in[2:])

	if err := decodeBlock(br, wav, &lastWav, DefaultParameters()); err != nil {
		t.Fatalf("decodeBlock: %v", err)
	}
	if diff := cmp.Diff(want, wav); diff != "" {
		t.Errorf("decodeBlock() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeBlockBFPEq16(t *testing.T) {
	in := []byte{
		129, 171, 62, 250, 4, 71, 75, 230, 252, 150, 153, 97, 24, 220, 83, 53, 143, 92, 101, 211, 155, 34, 73, 241, 221,
		200, 202, 252, 149, 240, 72, 20, 156, 172, 146, 59, 245, 23, 131, 33, 100, 0,
	}
	want := []int16{
		-16767, 4562, -1601, 9638, 22598, 14100, -12957, -10471, 29926, -14190,
		31863, 29234, -16603, 31762, 1319, 11044, -28931, 17888, -14247,
	}

	wav := make([]int16, len(want))
	lastWav := int16(uint16(in[0])<<8 | uint16(in[1]))
	br := NewBitReader(in[2:])

	if err := decodeBlock(br, wav, &lastWav, DefaultParameters()); err != nil {
		t.Fatalf("decodeBlock: %v", err)
	}
	if diff := cmp.Diff(want, wav); diff != "" {
		t.Errorf("decodeBlock() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeBlockBFPLt16(t *testing.T) {
	in := []byte{
		242, 73, 24, 151, 240, 252, 191, 163, 225, 164, 48, 158, 196, 188, 251, 246, 20, 31, 240, 96,
	}
	want := []int16{
		-3493, -3494, -3487, -3501, -3502, -3467, -3483, -3506, -3500, -3491,
		-3501, -3483, -3490, -3495, -3500, -3495, -3492, -3493, -3490,
	}

	wav := make([]int16, len(want))
	lastWav := int16(uint16(in[0])<<8 | uint16(in[1]))
	br := NewBitReader(in[2:])

	if err := decodeBlock(br, wav, &lastWav, DefaultParameters()); err != nil {
		t.Fatalf("decodeBlock: %v", err)
	}
	if diff := cmp.Diff(want, wav); diff != "" {
		t.Errorf("decodeBlock() mismatch (-want +got):\n%s", diff)
	}
}

func TestCountBits(t *testing.T) {
	cases := []struct {
		n    uint32
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{1 << 15, 16},
	}
	for _, c := range cases {
		if got := countBits(c.n); got != c.want {
			t.Errorf("countBits(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}
