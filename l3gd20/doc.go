// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package l3gd20 controls an ST L3GD20 3-axis gyroscope over SPI.
//
// Registers are accessed one transaction at a time with a manually driven
// chip select line. Configuration setters read the control register, change
// only their own field and write it back.
//
// # Datasheet
//
// https://www.st.com/resource/en/datasheet/l3gd20.pdf
package l3gd20
