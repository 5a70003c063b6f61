/*
NAME
  log.go

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

import "github.com/ausocean/utils/logging"

// Log is used for package level debug tracing of the x3 codec's resync
// events, independent of any particular StreamEncoder/StreamDecoder
// instance.
var Log logging.Logger = discardLogger{}

// discardLogger is a no-op logging.Logger used until a caller assigns Log.
type discardLogger struct{}

func (discardLogger) Debug(string, ...interface{})   {}
func (discardLogger) Info(string, ...interface{})    {}
func (discardLogger) Warning(string, ...interface{}) {}
func (discardLogger) Error(string, ...interface{})   {}
func (discardLogger) Fatal(string, ...interface{})   {}
