// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// l3gd20 reads angular rate from an L3GD20 gyroscope on an SPI bus.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/GermanBionicSystems/l3gd20/l3gd20"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

var dataRates = map[string]l3gd20.DataRate{
	"95":  l3gd20.DR95Hz,
	"190": l3gd20.DR190Hz,
	"380": l3gd20.DR380Hz,
	"760": l3gd20.DR760Hz,
}

var bandwidths = map[string]l3gd20.Bandwidth{
	"low":     l3gd20.BWLow,
	"medium":  l3gd20.BWMedium,
	"high":    l3gd20.BWHigh,
	"maximum": l3gd20.BWMaximum,
}

var scales = map[string]l3gd20.Scale{
	"250":  l3gd20.Dps250,
	"500":  l3gd20.Dps500,
	"2000": l3gd20.Dps2000,
}

func mainImpl() error {
	spiID := flag.String("spi", "", "SPI port to use")
	csName := flag.String("cs", "", "chip select GPIO; empty lets the SPI port drive it")
	hz := physic.MegaHertz
	flag.Var(&hz, "hz", "SPI port speed")
	rate := flag.String("rate", "", "output data rate in Hz: 95, 190, 380 or 760")
	bw := flag.String("bw", "", "bandwidth: low, medium, high or maximum")
	scale := flag.String("scale", "", "full scale in dps: 250, 500 or 2000")
	n := flag.Int("n", 10, "number of samples; 0 reads forever")
	interval := flag.Duration("interval", 100*time.Millisecond, "time between samples")
	radians := flag.Bool("rad", false, "print radians per second")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.Lmicroseconds)
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	p, err := spireg.Open(*spiID)
	if err != nil {
		return err
	}
	defer p.Close()

	var cs gpio.PinOut
	if *csName != "" {
		pin := gpioreg.ByName(*csName)
		if pin == nil {
			return fmt.Errorf("invalid chip select pin %q", *csName)
		}
		cs = pin
	}

	d, err := l3gd20.New(p, cs, &l3gd20.Opts{Frequency: hz})
	if err != nil {
		return err
	}
	defer d.Halt()
	d.EnableDebug(log.Printf)

	id, err := d.WhoAmI()
	if err != nil {
		return err
	}
	if id != l3gd20.WhoAmI {
		return fmt.Errorf("unexpected WHO_AM_I %#02x, expected %#02x", id, l3gd20.WhoAmI)
	}

	if *rate != "" {
		r, ok := dataRates[*rate]
		if !ok {
			return fmt.Errorf("invalid -rate %q", *rate)
		}
		if err := d.SetDataRate(r); err != nil {
			return err
		}
	}
	if *bw != "" {
		b, ok := bandwidths[*bw]
		if !ok {
			return fmt.Errorf("invalid -bw %q", *bw)
		}
		if err := d.SetBandwidth(b); err != nil {
			return err
		}
	}
	if *scale != "" {
		s, ok := scales[*scale]
		if !ok {
			return fmt.Errorf("invalid -scale %q", *scale)
		}
		if err := d.SetScale(s); err != nil {
			return err
		}
	}

	r, err := d.DataRate()
	if err != nil {
		return err
	}
	b, err := d.Bandwidth()
	if err != nil {
		return err
	}
	s, err := d.Scale()
	if err != nil {
		return err
	}
	fmt.Printf("%s: ODR %s, cut-off %s, full scale %s\n", d, r, b.Cutoff(r), s)

	for i := 0; *n == 0 || i < *n; i++ {
		if i != 0 {
			time.Sleep(*interval)
		}
		m, err := d.All()
		if err != nil {
			return err
		}
		v := l3gd20.Rate{
			X: s.DegreesPerSecond(m.Gyro.X),
			Y: s.DegreesPerSecond(m.Gyro.Y),
			Z: s.DegreesPerSecond(m.Gyro.Z),
		}
		if *radians {
			v = v.Radians()
			fmt.Printf("X:%.4frad/s Y:%.4frad/s Z:%.4frad/s temp:%d %s\n", v.X, v.Y, v.Z, m.Temp, m.Status)
			continue
		}
		fmt.Printf("%s temp:%d %s\n", v, m.Temp, m.Status)
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "l3gd20: %s.\n", err)
		os.Exit(1)
	}
}
