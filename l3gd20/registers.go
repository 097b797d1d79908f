// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package l3gd20

import "strconv"

// Register is an L3GD20 register address.
type Register uint8

// Register map. Addresses are fixed by the datasheet.
const (
	WhoAmIReg    Register = 0x0F // Device identification, reads WhoAmI
	CtrlReg1     Register = 0x20 // DR, BW, PD, Zen, Yen, Xen
	CtrlReg2     Register = 0x21 // High-pass filter mode and cut-off
	CtrlReg3     Register = 0x22 // Interrupt pin configuration
	CtrlReg4     Register = 0x23 // BDU, BLE, FS, SIM
	CtrlReg5     Register = 0x24 // Boot, FIFO enable, HP enable
	Reference    Register = 0x25 // Reference value for interrupt generation
	OutTemp      Register = 0x26 // Temperature data
	StatusReg    Register = 0x27 // Overrun and data available flags
	OutXL        Register = 0x28 // X-axis angular rate, low byte
	OutXH        Register = 0x29 // X-axis angular rate, high byte
	OutYL        Register = 0x2A // Y-axis angular rate, low byte
	OutYH        Register = 0x2B // Y-axis angular rate, high byte
	OutZL        Register = 0x2C // Z-axis angular rate, low byte
	OutZH        Register = 0x2D // Z-axis angular rate, high byte
	FIFOCtrlReg  Register = 0x2E // FIFO mode and watermark
	FIFOSrcReg   Register = 0x2F // FIFO status
	Int1Cfg      Register = 0x30 // Interrupt 1 configuration
	Int1Src      Register = 0x31 // Interrupt 1 source
	Int1TshXH    Register = 0x32 // Interrupt 1 X threshold, high byte
	Int1TshXL    Register = 0x33 // Interrupt 1 X threshold, low byte
	Int1TshYH    Register = 0x34 // Interrupt 1 Y threshold, high byte
	Int1TshYL    Register = 0x35 // Interrupt 1 Y threshold, low byte
	Int1TshZH    Register = 0x36 // Interrupt 1 Z threshold, high byte
	Int1TshZL    Register = 0x37 // Interrupt 1 Z threshold, low byte
	Int1Duration Register = 0x38 // Interrupt 1 duration
)

// WhoAmI is the value the WHO_AM_I register holds on an L3GD20.
const WhoAmI = 0xD4

// Control byte framing: bit 7 selects the direction, bit 6 enables the
// address auto-increment used by burst reads.
const (
	flagRead   byte = 1 << 7
	flagWrite  byte = 0 << 7
	flagMulti  byte = 1 << 6
	flagSingle byte = 0 << 6

	addrMask byte = 0x3F
)

// Addr returns the 6-bit bus address of the register.
func (r Register) Addr() byte {
	return byte(r) & addrMask
}

var registerNames = map[Register]string{
	WhoAmIReg:    "WHO_AM_I",
	CtrlReg1:     "CTRL_REG1",
	CtrlReg2:     "CTRL_REG2",
	CtrlReg3:     "CTRL_REG3",
	CtrlReg4:     "CTRL_REG4",
	CtrlReg5:     "CTRL_REG5",
	Reference:    "REFERENCE",
	OutTemp:      "OUT_TEMP",
	StatusReg:    "STATUS_REG",
	OutXL:        "OUT_X_L",
	OutXH:        "OUT_X_H",
	OutYL:        "OUT_Y_L",
	OutYH:        "OUT_Y_H",
	OutZL:        "OUT_Z_L",
	OutZH:        "OUT_Z_H",
	FIFOCtrlReg:  "FIFO_CTRL_REG",
	FIFOSrcReg:   "FIFO_SRC_REG",
	Int1Cfg:      "INT1_CFG",
	Int1Src:      "INT1_SRC",
	Int1TshXH:    "INT1_TSH_XH",
	Int1TshXL:    "INT1_TSH_XL",
	Int1TshYH:    "INT1_TSH_YH",
	Int1TshYL:    "INT1_TSH_YL",
	Int1TshZH:    "INT1_TSH_ZH",
	Int1TshZL:    "INT1_TSH_ZL",
	Int1Duration: "INT1_DURATION",
}

func (r Register) String() string {
	if s, ok := registerNames[r]; ok {
		return s
	}
	return "Register(0x" + strconv.FormatUint(uint64(r), 16) + ")"
}

// readControl returns the control byte for a read of r.
func readControl(r Register, burst bool) byte {
	if burst {
		return r.Addr() | flagRead | flagMulti
	}
	return r.Addr() | flagRead | flagSingle
}

// writeControl returns the control byte for a single register write of r.
func writeControl(r Register) byte {
	return r.Addr() | flagWrite | flagSingle
}
