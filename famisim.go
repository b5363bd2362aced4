// This file is part of Famisim.
//
// Famisim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famisim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famisim.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/bradleyjkemp/memviz"

	"github.com/famisim/famisim/easyterm"
	"github.com/famisim/famisim/hardware/bench"
	"github.com/famisim/famisim/hardware/cpu"
	"github.com/famisim/famisim/hardware/preferences"
	"github.com/famisim/famisim/logger"
	"github.com/famisim/famisim/modalflag"
	"github.com/famisim/famisim/paths"
	"github.com/famisim/famisim/prefs"
	"github.com/famisim/famisim/statsview"
	"github.com/famisim/famisim/trace"
	"github.com/famisim/famisim/version"
)

// default origin of the program image and the reset vector.
const defaultOrigin = 0x8000

// exit values.
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "TRACE", "DUMP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "STEP":
		err = step(md)

	case "TRACE":
		err = traceMode(md)

	case "DUMP":
		err = dump(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// the flags common to all modes that use a bench.
type benchFlags struct {
	org    *uint16
	reset  *int
	prefs  *string
	log    *bool
	vector *bool
}

func addBenchFlags(md *modalflag.Modes) benchFlags {
	return benchFlags{
		org:    md.AddAddress("org", defaultOrigin, "load address of the program image"),
		reset:  md.AddInt("reset", 0, "number of cycles the RES pad is held low (0 uses the preference)"),
		prefs:  md.AddString("prefs", "", "preferences to apply. eg. \"cpu.accelerated::true\""),
		log:    md.AddBool("log", false, "echo debugging log to stdout"),
		vector: md.AddBool("vector", true, "point the reset vector at the load address"),
	}
}

// prepare a bench according to the flags and the program in the remaining
// arguments. the bench is reset before it is returned. the permission is
// used for the entries the bench adds to the log.
func newBench(md *modalflag.Modes, bf benchFlags, perm logger.Permission) (*bench.Bench, error) {
	if *bf.log {
		logger.SetEcho(md.Output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	prefs.PushCommandLineStack(*bf.prefs)
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	b := bench.NewBenchFromPreferences(p)
	b.SetLogPermission(perm)
	if *bf.reset != 0 {
		b.SetResetCycles(*bf.reset)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("program image required for %s mode", md)
	case 1:
		err = b.LoadFile(*bf.org, md.GetArg(0))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	if *bf.vector {
		b.SetVector(bench.ResetVector, *bf.org)
	}

	b.Reset()

	return b, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	bf := addBenchFlags(md)
	cycles := md.AddInt("cycles", 1000, "number of cycles to run (0 runs until interrupted)")
	stats := md.AddString("statsview", "", "run stats server on the address, eg. localhost:12600 (statsview builds only)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	b, err := newBench(md, bf, logger.Allow)
	if err != nil {
		return err
	}

	if *stats != "" {
		if err := statsview.Launch(md.Output, *stats); err != nil {
			return err
		}
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	// check for interrupt every 1024 cycles
	for n := 0; *cycles == 0 || n < *cycles; n++ {
		if n&0x3ff == 0 && interrupted(intChan) {
			fmt.Fprintln(md.Output, "\rinterrupted")
			break
		}
		b.Step()
	}

	logger.Logf(logger.Allow, "run", "%d cycles", b.Cycles())
	fmt.Fprintln(md.Output, b.CPU.String())

	return nil
}

func interrupted(intChan chan os.Signal) bool {
	select {
	case <-intChan:
		return true
	default:
	}
	return false
}

const stepHelp = `space  half cycle
c      full cycle
i      until next instruction fetch
q      quit`

func step(md *modalflag.Modes) error {
	md.NewMode()
	bf := addBenchFlags(md)
	device := md.AddString("tty", "/dev/tty", "terminal device to read key presses from")
	md.AdditionalHelp(stepHelp)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	b, err := newBench(md, bf, logger.Allow)
	if err != nil {
		return err
	}

	et, err := easyterm.Open(*device, md.Output)
	if err != nil {
		return err
	}
	defer et.Close()

	printPins := func() {
		ps := b.Pins()
		et.Print("%s\r\n", b.CPU.String())
		et.Print("  addr=%04x data=%02x PHI2=%s RnW=%s SYNC=%s\r\n", ps.Address, ps.Data, ps.PHI2, ps.RnW, ps.SYNC)
	}

	printPins()

	for {
		k, err := et.ReadKey()
		if err != nil {
			return err
		}

		switch k {
		case easyterm.KeySpace:
			b.HalfStep()
		case 'c':
			b.Step()
		case 'i':
			if _, err := b.RunUntilSync(256); err != nil {
				et.Print("%v\r\n", err)
			}
		case 'q', easyterm.KeyCtrlC:
			return nil
		default:
			continue
		}

		printPins()
	}
}

func traceMode(md *modalflag.Modes) error {
	md.NewMode()
	bf := addBenchFlags(md)
	cycles := md.AddInt("cycles", 100, "number of cycles to trace")
	wav := md.AddString("wav", "", "write trace to WAV file rather than as text. a directory is given a unique filename")
	phi2 := md.AddBool("phi2", false, "trace PHI2 half-cycles only")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// echoed log entries are not mixed with a text trace
	perm := logger.Allow
	if *wav == "" {
		perm = logger.Deny
	}

	b, err := newBench(md, bf, perm)
	if err != nil {
		return err
	}

	rec := trace.NewRecorder(*phi2)
	rec.Attach(b)
	b.Run(*cycles)

	if *wav == "" {
		return rec.WriteText(md.Output)
	}

	// a directory is given a unique filename based on the program name
	fn := *wav
	if fi, err := os.Stat(fn); err == nil && fi.IsDir() {
		fn = filepath.Join(fn, paths.UniqueFilename("trace", md.GetArg(0))+".wav")
	}

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := rec.WriteWAV(f); err != nil {
		return err
	}
	fmt.Fprintf(md.Output, "trace written to %s\n", fn)

	return nil
}

// the part of the core written by DUMP mode.
type coreDump struct {
	Registers string
	Buses     cpu.Buses
	Wires     cpu.Wires
	Commands  cpu.Commands
}

func dump(md *modalflag.Modes) error {
	md.NewMode()
	bf := addBenchFlags(md)
	cycles := md.AddInt("cycles", 0, "number of cycles to run before the dump")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	b, err := newBench(md, bf, logger.Allow)
	if err != nil {
		return err
	}
	b.Run(*cycles)

	memviz.Map(md.Output, &coreDump{
		Registers: b.CPU.String(),
		Buses:     b.CPU.Buses(),
		Wires:     b.CPU.Wires(),
		Commands:  b.CPU.Commands(),
	})

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("v", false, "display revision information (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
