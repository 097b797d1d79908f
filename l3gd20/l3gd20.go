// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package l3gd20

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SpiMode is the clock polarity and phase the L3GD20 expects: idle high,
// data captured on the second edge.
const SpiMode = spi.Mode3

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Frequency: physic.MegaHertz,
}

// Opts holds the configuration used when connecting to the SPI port.
type Opts struct {
	// Frequency is the SPI clock. The device supports up to 10MHz.
	Frequency physic.Frequency
}

// Dev is a handle to an L3GD20 gyroscope on an SPI bus.
//
// All methods are safe for concurrent use; each register access is completed
// before another one starts.
type Dev struct {
	mu sync.Mutex
	t  transport
}

// New connects to the SPI port p and powers the device up with all three
// axes enabled.
//
// cs is the chip select line. It may be nil when p drives chip select.
func New(p spi.Port, cs gpio.PinOut, o *Opts) (*Dev, error) {
	if o == nil {
		o = &DefaultOpts
	}
	f := o.Frequency
	if f == 0 {
		f = DefaultOpts.Frequency
	}
	c, err := p.Connect(f, SpiMode, 8)
	if err != nil {
		return nil, fmt.Errorf("l3gd20: %w", err)
	}
	return NewConn(c, cs)
}

// NewConn is like New on an already connected SPI conn.
func NewConn(c spi.Conn, cs gpio.PinOut) (*Dev, error) {
	if c == nil {
		return nil, errNilConn
	}
	d := &Dev{t: transport{conn: c, cs: cs, debug: noop}}
	// Power up, enable X, Y and Z.
	if err := d.t.writeRegister(CtrlReg1, ctrl1PowerOn|ctrl1AxesOn); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("L3GD20{%s}", d.t.conn)
}

// EnableDebug sets a function that receives a line for every register
// access. Pass nil to disable.
func (d *Dev) EnableDebug(f DebugF) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if f == nil {
		f = noop
	}
	d.t.debug = f
}

// WhoAmI reads the identification register. An L3GD20 returns WhoAmI.
func (d *Dev) WhoAmI() (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.t.readRegister(WhoAmIReg)
}

// Gyro reads the raw angular rate of the three axes in one burst.
func (d *Dev) Gyro() (Axes, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, err := d.t.readRegisters(OutXL, 7)
	if err != nil {
		return Axes{}, err
	}
	return decodeAxes(b, 1), nil
}

// All reads the temperature, status and angular rate in one burst.
func (d *Dev) All() (Measurements, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, err := d.t.readRegisters(OutTemp, 9)
	if err != nil {
		return Measurements{}, err
	}
	return decodeMeasurements(b), nil
}

// Temperature reads the raw temperature count.
func (d *Dev) Temperature() (int8, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.t.readRegister(OutTemp)
	return int8(v), err
}

// Status reads the data available and overrun flags.
func (d *Dev) Status() (Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.t.readRegister(StatusReg)
	if err != nil {
		return Status{}, err
	}
	return decodeStatus(v), nil
}

// Rate reads the current full scale and the angular rate, and returns the
// rate in degrees per second.
func (d *Dev) Rate() (Rate, error) {
	s, err := d.Scale()
	if err != nil {
		return Rate{}, err
	}
	a, err := d.Gyro()
	if err != nil {
		return Rate{}, err
	}
	return Rate{
		X: s.DegreesPerSecond(a.X),
		Y: s.DegreesPerSecond(a.Y),
		Z: s.DegreesPerSecond(a.Z),
	}, nil
}

// DataRate returns the configured output data rate.
func (d *Dev) DataRate() (DataRate, error) {
	v, err := d.readReg(CtrlReg1)
	return decodeDataRate(v), err
}

// SetDataRate changes the output data rate. Other CTRL_REG1 bits are kept.
func (d *Dev) SetDataRate(r DataRate) error {
	if !r.valid() {
		return fmt.Errorf("l3gd20: invalid data rate %d", byte(r))
	}
	return d.updateField(CtrlReg1, byte(r), dataRateShift)
}

// Bandwidth returns the configured low-pass bandwidth selection.
func (d *Dev) Bandwidth() (Bandwidth, error) {
	v, err := d.readReg(CtrlReg1)
	return decodeBandwidth(v), err
}

// SetBandwidth changes the bandwidth selection. Other CTRL_REG1 bits are kept.
func (d *Dev) SetBandwidth(b Bandwidth) error {
	if !b.valid() {
		return fmt.Errorf("l3gd20: invalid bandwidth %d", byte(b))
	}
	return d.updateField(CtrlReg1, byte(b), bandwidthShift)
}

// Scale returns the configured full scale.
func (d *Dev) Scale() (Scale, error) {
	v, err := d.readReg(CtrlReg4)
	return decodeScale(v), err
}

// SetScale changes the full scale. Other CTRL_REG4 bits are kept.
func (d *Dev) SetScale(s Scale) error {
	if !s.valid() {
		return fmt.Errorf("l3gd20: invalid scale %d", byte(s))
	}
	return d.updateField(CtrlReg4, byte(s), scaleShift)
}

// Halt puts the device in power-down mode.
//
// The axis enable and configuration bits are left as they were.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.t.updateRegister(CtrlReg1, ctrl1PowerOn, 0)
}

func (d *Dev) readReg(reg Register) (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.t.readRegister(reg)
}

func (d *Dev) updateField(reg Register, raw byte, shift uint) error {
	mask, bits := encodeField(raw, fieldWidth, shift)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.t.updateRegister(reg, mask, bits)
}

var errNilConn = errors.New("l3gd20: nil SPI conn")

var _ conn.Resource = &Dev{}
