/*
NAME
  xlog.go

DESCRIPTION
  xlog provides the default rotated-file logger that the codec/x3 stream
  constructors (and so container/x3a) fall back to when given a nil
  logging.Logger.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package xlog

import (
	"io"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Default logging configuration.
const (
	MaxSize    = 100 // MB
	MaxBackups = 10
	MaxAge     = 28 // days
	Verbosity  = logging.Info
	Suppress   = false

	// DefaultPath is the log file used by codec/x3 and container/x3a
	// constructors when no logging.Logger is supplied.
	DefaultPath = "x3.log"
)

// New returns a logging.Logger that writes to path (rotated via
// lumberjack once it exceeds MaxSize) and, if extra is non-nil, also to
// extra.
func New(path string, extra io.Writer) logging.Logger {
	fileLog := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    MaxSize,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAge,
	}

	var w io.Writer = fileLog
	if extra != nil {
		w = io.MultiWriter(fileLog, extra)
	}

	return logging.New(Verbosity, w, Suppress)
}
