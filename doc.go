// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for the L3GD20 gyroscope driver.
//
// The driver lives in the l3gd20 subpackage and a command line tool that
// uses it in cmd/l3gd20.
package devices
