/*
NAME
  parameters_test.go

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

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()
	if p.BlockLen != DefaultBlockLength {
		t.Errorf("BlockLen = %d, want %d", p.BlockLen, DefaultBlockLength)
	}
	if p.BlocksPerFrame != DefaultBlocksPerFrame {
		t.Errorf("BlocksPerFrame = %d, want %d", p.BlocksPerFrame, DefaultBlocksPerFrame)
	}
	if p.Codes != DefaultCodes {
		t.Errorf("Codes = %v, want %v", p.Codes, DefaultCodes)
	}
	if p.Thresholds != DefaultThresholds {
		t.Errorf("Thresholds = %v, want %v", p.Thresholds, DefaultThresholds)
	}
}

func TestNewParametersRejectsOversizedThreshold(t *testing.T) {
	codes := [3]int{0, 1, 3}
	thresholds := [3]int{riceCodes[0].offset + 1, 8, 20}

	if _, err := NewParameters(DefaultBlockLength, DefaultBlocksPerFrame, codes, thresholds); err != ErrInvalidEncodingThresh {
		t.Errorf("NewParameters() error = %v, want ErrInvalidEncodingThresh", err)
	}
}

func TestNewParametersAcceptsBoundaryThreshold(t *testing.T) {
	codes := [3]int{0, 1, 3}
	thresholds := [3]int{riceCodes[0].offset, riceCodes[1].offset, 20}

	if _, err := NewParameters(DefaultBlockLength, DefaultBlocksPerFrame, codes, thresholds); err != nil {
		t.Errorf("NewParameters() error = %v, want nil", err)
	}
}
