// This file is part of Gopherdrive.
//
// Gopherdrive is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherdrive is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherdrive.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopherdrive/cartridgeloader"
	"github.com/jetsetilly/gopherdrive/debugger/busviz"
	"github.com/jetsetilly/gopherdrive/digest"
	"github.com/jetsetilly/gopherdrive/emulation"
	"github.com/jetsetilly/gopherdrive/environment"
	"github.com/jetsetilly/gopherdrive/hardware/m68k"
	"github.com/jetsetilly/gopherdrive/hardware/m68k/idle"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
	"github.com/jetsetilly/gopherdrive/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdrive/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdrive/logger"
	"github.com/jetsetilly/gopherdrive/modalflag"
	"github.com/jetsetilly/gopherdrive/prefs"
	"github.com/jetsetilly/gopherdrive/script"
	"github.com/jetsetilly/gopherdrive/statsview"
	"github.com/jetsetilly/gopherdrive/terminal"
	"github.com/jetsetilly/gopherdrive/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the mode selected by the arguments. returns the exit value.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "SCRIPT", "DUMP")
	showVersion := md.AddBool("version", false, "show version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *showVersion {
		v, r, _ := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
		return exitOK
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "SCRIPT":
		err = runScript(md, output)
	case "DUMP":
		err = dump(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// system is the console hardware assembled around a cartridge.
type system struct {
	env  *environment.Environment
	sys  memorymap.SysID
	cart *cartridge.Cartridge
	cpu  *m68k.M68K
	eng  *idle.Engine
}

// newSystem loads the cartridge and plumbs it into a new M68K. the system is
// not initialised.
func newSystem(filename string, sys string, prefsArg string) (*system, error) {
	if prefsArg != "" {
		prefs.PushCommandLineStack(prefsArg)
		defer prefs.PopCommandLineStack()
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, err
	}
	if err := env.Prefs.ApplyCommandLine(); err != nil {
		return nil, err
	}

	cl, err := cartridgeloader.NewLoader(filename, sys)
	if err != nil {
		return nil, err
	}
	if err := cl.Load(); err != nil {
		return nil, err
	}
	if cl.System == memorymap.SysNone {
		cl.System = memorymap.SysMD
	}

	cart, err := cartridge.NewCartridge(cl.ShortName(), cl.Data)
	if err != nil {
		return nil, err
	}

	mem := memory.NewMemory(env)
	mem.Attach(cart)

	eng := idle.NewEngine()
	cpu, err := m68k.NewM68K(env, eng, mem)
	if err != nil {
		return nil, err
	}

	return &system{
		env:  env,
		sys:  cl.System,
		cart: cart,
		cpu:  cpu,
		eng:  eng,
	}, nil
}

func cartridgeArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	sys := md.AddString("sys", "AUTO", "console system: MD, MCD, 32X, PICO")
	tv := md.AddString("tv", "", "television specification: NTSC, PAL")
	frames := md.AddInt("frames", 0, "number of frames to run. zero runs until stopped")
	prefsArg := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(output, false)
		defer logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(output, "")
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	if *tv != "" {
		*prefsArg = strings.Join([]string{*prefsArg, fmt.Sprintf("hardware.tv::%s", *tv)}, ";")
	}

	s, err := newSystem(filename, *sys, *prefsArg)
	if err != nil {
		return err
	}

	dig := digest.NewRegisters(s.cpu)

	drv, err := emulation.NewDriver(s.env, s.cpu, dig)
	if err != nil {
		return err
	}
	defer drv.End()

	if err := drv.Start(s.sys); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var term terminal.Terminal
	if err := term.Initialise(os.Stdin, output); err == nil {
		term.Print("press q or ESC to stop\n")
		term.WatchStop(ctx, drv.Stop)
	} else {
		logger.Log(s.env, "gopherdrive", err.Error())
	}

	if err := drv.Run(ctx, *frames); err != nil {
		return err
	}

	regs, err := drv.SaveRegisters()
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s on %s (%s)\n", s.cart, s.sys, drv.Spec().ID)
	fmt.Fprintf(output, "frames: %d  vblank: %d  imprecise: %d\n",
		drv.Frames(), drv.VBlankAcknowledged(), s.cpu.ImpreciseBursts())
	fmt.Fprintf(output, "digest: %s\n", dig.Hash())
	fmt.Fprintln(output, regs)

	return nil
}

func runScript(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	sys := md.AddString("sys", "AUTO", "console system: MD, MCD, 32X, PICO")
	prefsArg := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")
	log := md.AddBool("log", false, "echo log to stdout")
	md.AdditionalHelp("arguments: <cartridge> <script.lua>")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("cartridge and script required for %s mode", md)
	}

	if *log {
		logger.SetEcho(output, false)
		defer logger.SetEcho(nil, false)
	}

	s, err := newSystem(md.GetArg(0), *sys, *prefsArg)
	if err != nil {
		return err
	}
	defer s.cpu.End()

	scr := script.NewScript(s.env, s.cpu, output)
	defer scr.Close()

	return scr.RunFile(md.GetArg(1))
}

func dump(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	sys := md.AddString("sys", "AUTO", "console system: MD, MCD, 32X, PICO")
	dot := md.AddBool("dot", false, "write bus as a graphviz dot file")
	sram := md.AddBool("sram", false, "enable cartridge SRAM")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	var prefsArg string
	if *sram {
		prefsArg = "hardware.memory.sramEnabled::true"
	}

	s, err := newSystem(filename, *sys, prefsArg)
	if err != nil {
		return err
	}
	defer s.cpu.End()

	if err := s.cpu.InitSys(s.sys); err != nil {
		return err
	}

	if *dot {
		busviz.Write(output, s.cpu.Banking())
		return nil
	}

	fmt.Fprintf(output, "%s on %s\n", s.cart, s.sys)
	fmt.Fprint(output, s.cpu.Banking())

	return nil
}
