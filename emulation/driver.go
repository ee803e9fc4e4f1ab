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

package emulation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/gopherdrive/emulation/limiter"
	"github.com/jetsetilly/gopherdrive/environment"
	"github.com/jetsetilly/gopherdrive/hardware/clocks"
	"github.com/jetsetilly/gopherdrive/hardware/m68k"
	"github.com/jetsetilly/gopherdrive/hardware/m68k/registers"
	"github.com/jetsetilly/gopherdrive/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdrive/logger"
	"github.com/jetsetilly/gopherdrive/notifications"
)

// UnsupportedRequest is returned for a FeatureReq that the driver does not
// understand or when the arguments are of the wrong type.
var UnsupportedRequest = errors.New("unsupported request")

// Sentinel errors returned by Run().
var (
	AlreadyRunning = errors.New("already running")
	DriverEnded    = errors.New("driver has ended")
)

// the scanline at which the vertical blanking interrupt is raised
const vblankLine = 224

// the level of the vertical blanking interrupt
const vblankLevel = 6

// Driver steps the CPU one frame at a time. It is the only goroutine that
// calls into the CPU while it is running. Other goroutines make requests of
// the CPU with Request().
type Driver struct {
	env    *environment.Environment
	cpu    *m68k.M68K
	notify notifications.Notify
	spec   clocks.Spec

	stop  atomic.Bool
	state atomic.Int32

	frames atomic.Int64

	// number of vertical blanking interrupts acknowledged by the CPU
	vblankAcks int

	requests chan request

	// closed when the stepping loop is not running. replaced by Run(). the
	// mutex is held while a request is serviced outside of the loop
	mu     sync.Mutex
	done   chan struct{}
	ending bool
}

type request struct {
	req    FeatureReq
	args   []FeatureReqData
	result chan reply
}

type reply struct {
	snapshot registers.Snapshot
	err      error
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver(env *environment.Environment, cpu *m68k.M68K, notify notifications.Notify) (*Driver, error) {
	spec, err := clocks.SpecByID(env.Prefs.TV.String())
	if err != nil {
		return nil, fmt.Errorf("emulation: %w", err)
	}

	if notify == nil {
		notify = notifications.Discard
	}

	drv := &Driver{
		env:      env,
		cpu:      cpu,
		notify:   notify,
		spec:     spec,
		requests: make(chan request),
		done:     make(chan struct{}),
	}
	close(drv.done)
	drv.setState(EmulatorStart)

	cpu.SetVideoAcknowledge(func() {
		drv.vblankAcks++
	})

	return drv, nil
}

func (drv *Driver) setState(s State) {
	drv.state.Store(int32(s))
}

// State returns the current state of the driver. Safe to call from any
// goroutine.
func (drv *Driver) State() State {
	return State(drv.state.Load())
}

// Frames returns the number of frames completed. Safe to call from any
// goroutine.
func (drv *Driver) Frames() int {
	return int(drv.frames.Load())
}

// Spec returns the television specification used to time frames.
func (drv *Driver) Spec() clocks.Spec {
	return drv.spec
}

// Start brings up the system. Must not be called while the driver is running.
func (drv *Driver) Start(sys memorymap.SysID) error {
	if drv.State() == Running {
		return fmt.Errorf("emulation: cannot change system while running")
	}

	drv.setState(Initialising)
	if err := drv.cpu.InitSys(sys); err != nil {
		drv.setState(Stopped)
		return fmt.Errorf("emulation: %w", err)
	}
	drv.setState(Stopped)

	return drv.notify.Notify(notifications.NotifySystemChanged)
}

// End tears down the system and the CPU. The driver cannot be used again. If
// the stepping loop is running it is stopped and End() waits for it to finish.
// Must not be called from the stepping loop, including from a Notify()
// callback.
func (drv *Driver) End() error {
	drv.mu.Lock()
	drv.ending = true
	done := drv.done
	drv.mu.Unlock()

	drv.Stop()
	<-done

	drv.setState(Ending)
	drv.cpu.EndSys()
	drv.cpu.End()
	return drv.notify.Notify(notifications.NotifySystemChanged)
}

// Stop asks the stepping loop to stop at the end of the current frame. Safe to
// call from any goroutine. Stop only applies to a loop that is running. A call
// to Stop() before Run() has no effect on that run.
func (drv *Driver) Stop() {
	drv.stop.Store(true)
}

// Run the stepping loop until Stop() is called, the context is cancelled or
// the number of frames has been run. A frames value of zero or less means no
// limit.
func (drv *Driver) Run(ctx context.Context, frames int) error {
	drv.mu.Lock()
	if drv.ending {
		drv.mu.Unlock()
		return fmt.Errorf("emulation: %w", DriverEnded)
	}
	select {
	case <-drv.done:
	default:
		drv.mu.Unlock()
		return fmt.Errorf("emulation: %w", AlreadyRunning)
	}
	drv.stop.Store(false)
	drv.done = make(chan struct{})
	done := drv.done
	drv.setState(Running)
	drv.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		defer close(done)
		return drv.loop(frames)
	})

	g.Go(func() error {
		<-ctx.Done()
		drv.Stop()
		return nil
	})

	return g.Wait()
}

func (drv *Driver) loop(frames int) error {
	defer drv.setState(Stopped)

	var lim *limiter.Limiter
	if drv.env.Prefs.FPSCap.Get().(bool) {
		var err error
		lim, err = limiter.NewLimiter(drv.spec.RefreshRate())
		if err != nil {
			return fmt.Errorf("emulation: %w", err)
		}
		defer lim.Stop()
	}

	if err := drv.notify.Notify(notifications.NotifyStarted); err != nil {
		return err
	}

	for start := drv.Frames(); !drv.stop.Load(); {
		if frames > 0 && drv.Frames()-start >= frames {
			break
		}

		drv.serviceRequests()

		if lim != nil {
			lim.Wait()
		}

		drv.frame()

		if err := drv.notify.Notify(notifications.NotifyFrameDone); err != nil {
			return err
		}
	}

	drv.serviceRequests()

	return drv.notify.Notify(notifications.NotifyStopped)
}

// frame runs the CPU for one frame. the vertical blanking interrupt is raised
// at the start of the blanking period. cycles executed beyond the end of the
// frame are carried into the next frame
func (drv *Driver) frame() {
	drv.cpu.Exec(vblankLine * clocks.M68KCyclesPerLine)
	if err := drv.cpu.Interrupt(vblankLevel, m68k.AutoVector); err != nil {
		logger.Log(drv.env, "emulation", err.Error())
	}
	drv.cpu.Exec(drv.spec.CyclesPerFrame())

	carry := drv.cpu.TripOdometer() - drv.spec.CyclesPerFrame()
	drv.cpu.AddCycles(carry)

	drv.frames.Add(1)
}

func (drv *Driver) serviceRequests() {
	for {
		select {
		case r := <-drv.requests:
			r.result <- drv.service(r)
		default:
			return
		}
	}
}

func (drv *Driver) service(r request) reply {
	switch r.req {
	case ReqSaveRegisters:
		s, err := drv.cpu.SaveRegisters()
		return reply{snapshot: s, err: err}

	case ReqRestoreRegisters:
		if len(r.args) != 1 {
			break
		}
		s, ok := r.args[0].(registers.Snapshot)
		if !ok {
			break
		}
		if err := drv.cpu.RestoreRegisters(s); err != nil {
			return reply{err: err}
		}
		return reply{err: drv.notify.Notify(notifications.NotifyRestored)}

	case ReqInterrupt:
		if len(r.args) != 2 {
			break
		}
		level, ok := r.args[0].(int)
		if !ok {
			break
		}
		vector, ok := r.args[1].(int)
		if !ok {
			break
		}
		return reply{err: drv.cpu.Interrupt(level, vector)}
	}

	return reply{err: fmt.Errorf("emulation: %w: %s", UnsupportedRequest, r.req)}
}

// Request something of the CPU. If the stepping loop is running the request is
// serviced between frames, otherwise it is serviced immediately. Blocks until
// the request has been serviced. Safe to call from any goroutine.
func (drv *Driver) Request(req FeatureReq, args ...FeatureReqData) error {
	_, err := drv.request(req, args...)
	return err
}

// SaveRegisters is a convenience function for the ReqSaveRegisters request.
func (drv *Driver) SaveRegisters() (registers.Snapshot, error) {
	return drv.request(ReqSaveRegisters)
}

func (drv *Driver) request(req FeatureReq, args ...FeatureReqData) (registers.Snapshot, error) {
	r := request{
		req:    req,
		args:   args,
		result: make(chan reply, 1),
	}

	for {
		// when the loop is not running the request is serviced here. Run()
		// cannot start the loop until the mutex is released
		drv.mu.Lock()
		done := drv.done
		select {
		case <-done:
			rep := drv.service(r)
			drv.mu.Unlock()
			return rep.snapshot, rep.err
		default:
		}
		drv.mu.Unlock()

		select {
		case drv.requests <- r:
			rep := <-r.result
			return rep.snapshot, rep.err
		case <-done:
			// the loop finished before taking the request
		}
	}
}

// VBlankAcknowledged returns the number of vertical blanking interrupts the
// CPU has acknowledged. Not safe to call while the driver is running.
func (drv *Driver) VBlankAcknowledged() int {
	return drv.vblankAcks
}
