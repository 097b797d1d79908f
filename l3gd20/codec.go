// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package l3gd20

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"periph.io/x/conn/v3/physic"
)

// DataRate is the output data rate, DR1:DR0 in CTRL_REG1.
type DataRate byte

// Bandwidth selects the low-pass cut-off, BW1:BW0 in CTRL_REG1. The actual
// cut-off frequency depends on the data rate; see Cutoff.
type Bandwidth byte

// Scale is the full-scale selection, FS1:FS0 in CTRL_REG4.
type Scale byte

const (
	DR95Hz  DataRate = 0x00 // 95 Hz output data rate
	DR190Hz DataRate = 0x01 // 190 Hz output data rate
	DR380Hz DataRate = 0x02 // 380 Hz output data rate
	DR760Hz DataRate = 0x03 // 760 Hz output data rate

	BWLow     Bandwidth = 0x00 // Lowest cut-off for the data rate
	BWMedium  Bandwidth = 0x01
	BWHigh    Bandwidth = 0x02
	BWMaximum Bandwidth = 0x03 // Highest cut-off for the data rate

	Dps250  Scale = 0x00 // ±250 °/s
	Dps500  Scale = 0x01 // ±500 °/s
	Dps2000 Scale = 0x03 // ±2000 °/s; the device also accepts 0x02
)

// Field positions. Data rate and bandwidth share CTRL_REG1.
const (
	fieldWidth = 2

	dataRateShift  = 6
	bandwidthShift = 4
	scaleShift     = 4

	ctrl1PowerOn = 0x08 // PD
	ctrl1AxesOn  = 0x07 // Zen, Yen, Xen
)

// Frequency returns the nominal output data rate.
func (r DataRate) Frequency() physic.Frequency {
	switch r {
	case DR95Hz:
		return 95 * physic.Hertz
	case DR190Hz:
		return 190 * physic.Hertz
	case DR380Hz:
		return 380 * physic.Hertz
	case DR760Hz:
		return 760 * physic.Hertz
	default:
		return 0
	}
}

func (r DataRate) String() string {
	if f := r.Frequency(); f != 0 {
		return f.String()
	}
	return fmt.Sprintf("DataRate(%d)", byte(r))
}

func (r DataRate) valid() bool {
	return r <= DR760Hz
}

// bandwidthCutoffs is indexed by [DataRate][Bandwidth], in millihertz.
var bandwidthCutoffs = [4][4]physic.Frequency{
	{12500, 25000, 25000, 25000},
	{12500, 25000, 50000, 70000},
	{20000, 25000, 50000, 100000},
	{30000, 35000, 50000, 100000},
}

// Cutoff returns the low-pass cut-off frequency b selects at data rate r.
func (b Bandwidth) Cutoff(r DataRate) physic.Frequency {
	if !b.valid() || !r.valid() {
		return 0
	}
	return bandwidthCutoffs[r][b] * physic.MilliHertz
}

func (b Bandwidth) String() string {
	switch b {
	case BWLow:
		return "Low"
	case BWMedium:
		return "Medium"
	case BWHigh:
		return "High"
	case BWMaximum:
		return "Maximum"
	default:
		return fmt.Sprintf("Bandwidth(%d)", byte(b))
	}
}

func (b Bandwidth) valid() bool {
	return b <= BWMaximum
}

// Sensitivity returns the resolution in °/s per LSB.
func (s Scale) Sensitivity() float64 {
	switch s {
	case Dps250:
		return 0.00875
	case Dps500:
		return 0.0175
	case Dps2000:
		return 0.07
	default:
		return 0
	}
}

// DegreesPerSecond converts a raw axis count at scale s.
func (s Scale) DegreesPerSecond(raw int16) float64 {
	return float64(raw) * s.Sensitivity()
}

// RadiansPerSecond converts a raw axis count at scale s.
func (s Scale) RadiansPerSecond(raw int16) float64 {
	return s.DegreesPerSecond(raw) * math.Pi / 180
}

func (s Scale) String() string {
	switch s {
	case Dps250:
		return "250dps"
	case Dps500:
		return "500dps"
	case Dps2000:
		return "2000dps"
	default:
		return fmt.Sprintf("Scale(%d)", byte(s))
	}
}

func (s Scale) valid() bool {
	return s == Dps250 || s == Dps500 || s == Dps2000
}

// encodeField returns the register mask for a width-bit field at shift, and
// raw positioned within it.
func encodeField(raw byte, width, shift uint) (mask, bits byte) {
	mask = byte((1<<width)-1) << shift
	bits = (raw << shift) & mask
	return mask, bits
}

// decodeField extracts a width-bit field at shift from reg.
func decodeField(reg byte, width, shift uint) byte {
	return (reg >> shift) & byte((1<<width)-1)
}

func decodeDataRate(reg byte) DataRate {
	switch decodeField(reg, fieldWidth, dataRateShift) {
	case 0x00:
		return DR95Hz
	case 0x01:
		return DR190Hz
	case 0x02:
		return DR380Hz
	default:
		return DR760Hz
	}
}

func decodeBandwidth(reg byte) Bandwidth {
	switch decodeField(reg, fieldWidth, bandwidthShift) {
	case 0x00:
		return BWLow
	case 0x01:
		return BWMedium
	case 0x02:
		return BWHigh
	default:
		return BWMaximum
	}
}

func decodeScale(reg byte) Scale {
	switch decodeField(reg, fieldWidth, scaleShift) {
	case 0x00:
		return Dps250
	case 0x01:
		return Dps500
	default:
		// 0b10 and 0b11 both select ±2000 °/s.
		return Dps2000
	}
}

// Axes holds raw signed angular rate counts.
type Axes struct {
	X int16
	Y int16
	Z int16
}

func (a Axes) String() string {
	return fmt.Sprintf("X:%d Y:%d Z:%d", a.X, a.Y, a.Z)
}

// Measurements is the temperature and angular rate read in one burst.
type Measurements struct {
	Gyro Axes
	// Temp is the raw temperature count. It is not calibrated to an absolute
	// temperature.
	Temp int8
	// Status is STATUS_REG as latched in the same burst.
	Status Status
}

// Rate is an angular rate in degrees per second.
type Rate struct {
	X float64
	Y float64
	Z float64
}

// Radians returns r converted to radians per second.
func (r Rate) Radians() Rate {
	const k = math.Pi / 180
	return Rate{X: r.X * k, Y: r.Y * k, Z: r.Z * k}
}

func (r Rate) String() string {
	return fmt.Sprintf("X:%.3f°/s Y:%.3f°/s Z:%.3f°/s", r.X, r.Y, r.Z)
}

// decodeAxes decodes three little-endian int16 values starting at b[off].
func decodeAxes(b []byte, off int) Axes {
	return Axes{
		X: int16(binary.LittleEndian.Uint16(b[off:])),
		Y: int16(binary.LittleEndian.Uint16(b[off+2:])),
		Z: int16(binary.LittleEndian.Uint16(b[off+4:])),
	}
}

// decodeMeasurements decodes a 9-byte burst response starting at OUT_TEMP.
// Byte 0 is the control byte echo, then OUT_TEMP, STATUS_REG and the six
// output registers.
func decodeMeasurements(b []byte) Measurements {
	return Measurements{
		Temp:   int8(b[1]),
		Status: decodeStatus(b[2]),
		Gyro:   decodeAxes(b, 3),
	}
}

// Status is the decoded STATUS_REG.
type Status struct {
	Overrun  bool // ZYXOR
	ZOverrun bool
	YOverrun bool
	XOverrun bool
	NewData  bool // ZYXDA
	ZNew     bool
	YNew     bool
	XNew     bool
}

func decodeStatus(b byte) Status {
	return Status{
		Overrun:  b&(1<<7) != 0,
		ZOverrun: b&(1<<6) != 0,
		YOverrun: b&(1<<5) != 0,
		XOverrun: b&(1<<4) != 0,
		NewData:  b&(1<<3) != 0,
		ZNew:     b&(1<<2) != 0,
		YNew:     b&(1<<1) != 0,
		XNew:     b&(1<<0) != 0,
	}
}

func (s Status) String() string {
	flag := func(name string, v bool) string {
		if v {
			return name + "+"
		}
		return name + "-"
	}
	return strings.Join([]string{
		flag("ZYXOR", s.Overrun),
		flag("ZOR", s.ZOverrun),
		flag("YOR", s.YOverrun),
		flag("XOR", s.XOverrun),
		flag("ZYXDA", s.NewData),
		flag("ZDA", s.ZNew),
		flag("YDA", s.YNew),
		flag("XDA", s.XNew),
	}, " ")
}
