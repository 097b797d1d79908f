// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package l3gd20

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// DebugF the debug function type.
type DebugF func(string, ...interface{})

// transport frames register accesses on the SPI connection. Each access is a
// single lower-CS, transfer, raise-CS sequence.
//
// cs may be nil when the SPI port drives chip select itself.
type transport struct {
	conn  spi.Conn
	cs    gpio.PinOut
	debug DebugF
}

var errShortBurst = errors.New("l3gd20: burst read needs at least 2 bytes")

// tx runs one chip-select framed transfer. r may be nil for a write-only
// transfer. A bus error takes precedence over a failure to release CS.
func (t *transport) tx(w, r []byte) error {
	if t.cs != nil {
		if err := t.cs.Out(gpio.Low); err != nil {
			return err
		}
	}
	err := t.conn.Tx(w, r)
	if t.cs != nil {
		if csErr := t.cs.Out(gpio.High); err == nil {
			err = csErr
		}
	}
	return err
}

func (t *transport) readRegister(reg Register) (byte, error) {
	var (
		buf = [...]byte{readControl(reg, false), 0}
		res [2]byte
	)
	if err := t.tx(buf[:], res[:]); err != nil {
		return 0, err
	}
	t.debug("read %s = 0x%02x", reg, res[1])
	return res[1], nil
}

// readRegisters burst reads n-1 consecutive registers starting at reg. The
// returned slice has n bytes; byte 0 is whatever the device clocked out while
// receiving the control byte.
func (t *transport) readRegisters(reg Register, n int) ([]byte, error) {
	if n < 2 {
		return nil, errShortBurst
	}
	buf := make([]byte, n)
	buf[0] = readControl(reg, true)
	res := make([]byte, n)
	if err := t.tx(buf, res); err != nil {
		return nil, err
	}
	t.debug("burst read %s = % x", reg, res[1:])
	return res, nil
}

func (t *transport) writeRegister(reg Register, value byte) error {
	t.debug("write %s = 0x%02x", reg, value)
	buf := [...]byte{writeControl(reg), value}
	return t.tx(buf[:], nil)
}

// updateRegister replaces the bits selected by mask with bits, leaving the
// rest of the register untouched.
func (t *transport) updateRegister(reg Register, mask, bits byte) error {
	cur, err := t.readRegister(reg)
	if err != nil {
		return err
	}
	next := (cur &^ mask) | (bits & mask)
	t.debug("update %s mask 0x%02x: 0x%02x -> 0x%02x", reg, mask, cur, next)
	return t.writeRegister(reg, next)
}

func noop(string, ...interface{}) {}
