// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys2d

import "github.com/solidbox/phys2d/util/logger"

// Logger is re-exported so callers can hold or construct a World's
// attached logger without importing util/logger directly. A World's
// own per-step emissions (collision events, singular-joint errors) go
// through the *Logger explicitly attached via World.SetLogger, which is
// nil by default so an embedded World never writes to a host's stdout
// uninvited.
type Logger = logger.Logger
