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

package emulation_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/gopherdrive/emulation"
	"github.com/jetsetilly/gopherdrive/environment"
	"github.com/jetsetilly/gopherdrive/hardware/m68k"
	"github.com/jetsetilly/gopherdrive/hardware/m68k/idle"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
	"github.com/jetsetilly/gopherdrive/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdrive/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdrive/notifications"
	"github.com/jetsetilly/gopherdrive/test"
)

type recorder struct {
	mu      sync.Mutex
	notices []notifications.Notice

	// called for every notice, with the number of notices received so far
	hook func(n notifications.Notice, count int) error
}

func (r *recorder) Notify(n notifications.Notice) error {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	count := len(r.notices)
	r.mu.Unlock()
	if r.hook != nil {
		return r.hook(n, count)
	}
	return nil
}

func (r *recorder) count(n notifications.Notice) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var c int
	for _, v := range r.notices {
		if v == n {
			c++
		}
	}
	return c
}

func newDriver(t *testing.T, notify notifications.Notify) (*emulation.Driver, *idle.Engine, *m68k.M68K) {
	t.Helper()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, env.Prefs.FPSCap.Set(false))

	rom := make([]byte, 0x10000)
	rom[1] = 0xff
	rom[2] = 0xfe
	rom[6] = 0x02
	cart, err := cartridge.NewCartridge("test", rom)
	test.DemandSuccess(t, err)

	mem := memory.NewMemory(env)
	mem.Attach(cart)

	eng := idle.NewEngine()
	cpu, err := m68k.NewM68K(env, eng, mem)
	test.DemandSuccess(t, err)

	drv, err := emulation.NewDriver(env, cpu, notify)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, drv.Start(memorymap.SysMD))

	return drv, eng, cpu
}

func TestRunFrames(t *testing.T) {
	rec := &recorder{}
	drv, eng, cpu := newDriver(t, rec)

	// allow the vertical blanking interrupt
	eng.SetRegister(m68k.SR, 0x2000)

	test.ExpectEquality(t, drv.State(), emulation.Stopped)
	test.DemandSuccess(t, drv.Run(context.Background(), 3))

	test.ExpectEquality(t, drv.Frames(), 3)
	test.ExpectEquality(t, drv.State(), emulation.Stopped)
	test.ExpectEquality(t, rec.count(notifications.NotifySystemChanged), 1)
	test.ExpectEquality(t, rec.count(notifications.NotifyStarted), 1)
	test.ExpectEquality(t, rec.count(notifications.NotifyFrameDone), 3)
	test.ExpectEquality(t, rec.count(notifications.NotifyStopped), 1)

	// the handler never lowers the interrupt mask so only the first
	// interrupt is accepted
	test.ExpectEquality(t, drv.VBlankAcknowledged(), 1)
	test.ExpectEquality(t, eng.Accepted, 1)

	// the odometer is tripped at the end of every frame
	test.ExpectEquality(t, cpu.ReadOdometer(), 0)

	// running again continues the frame count
	test.DemandSuccess(t, drv.Run(context.Background(), 2))
	test.ExpectEquality(t, drv.Frames(), 5)
}

func TestStopFromNotify(t *testing.T) {
	var drv *emulation.Driver
	rec := &recorder{}
	rec.hook = func(n notifications.Notice, _ int) error {
		if n == notifications.NotifyFrameDone && drv.Frames() == 2 {
			drv.Stop()
		}
		return nil
	}

	drv, _, _ = newDriver(t, rec)
	test.DemandSuccess(t, drv.Run(context.Background(), 0))
	test.ExpectEquality(t, drv.Frames(), 2)
}

func TestNotifyError(t *testing.T) {
	failure := errors.New("presentation failure")
	rec := &recorder{}
	rec.hook = func(n notifications.Notice, _ int) error {
		if n == notifications.NotifyFrameDone {
			return failure
		}
		return nil
	}

	drv, _, _ := newDriver(t, rec)
	err := drv.Run(context.Background(), 0)
	test.ExpectSuccess(t, errors.Is(err, failure))
	test.ExpectEquality(t, drv.Frames(), 1)
}

func TestCancel(t *testing.T) {
	drv, _, _ := newDriver(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error)
	go func() {
		result <- drv.Run(ctx, 0)
	}()

	for drv.Frames() == 0 {
		time.Sleep(time.Millisecond)
	}
	cancel()

	select {
	case err := <-result:
		test.ExpectSuccess(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop")
	}
}

func TestRequestWhileRunning(t *testing.T) {
	drv, eng, _ := newDriver(t, nil)
	eng.SetRegister(m68k.D0, 0xcafe)

	result := make(chan error)
	go func() {
		result <- drv.Run(context.Background(), 0)
	}()

	for drv.Frames() == 0 {
		time.Sleep(time.Millisecond)
	}

	s, err := drv.SaveRegisters()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.D[0], uint32(0xcafe))

	s.D[0] = 0xbeef
	test.ExpectSuccess(t, drv.Request(emulation.ReqRestoreRegisters, s))
	test.ExpectSuccess(t, drv.Request(emulation.ReqInterrupt, 2, m68k.AutoVector))

	drv.Stop()
	test.ExpectSuccess(t, <-result)

	test.ExpectEquality(t, eng.Register(m68k.D0), uint32(0xbeef))
}

func TestRequestWhileStopped(t *testing.T) {
	drv, eng, _ := newDriver(t, nil)
	eng.SetRegister(m68k.D1, 0x1234)

	s, err := drv.SaveRegisters()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.D[1], uint32(0x1234))

	err = drv.Request(emulation.ReqRestoreRegisters, "not a snapshot")
	test.ExpectSuccess(t, errors.Is(err, emulation.UnsupportedRequest))

	err = drv.Request(emulation.ReqInterrupt, 9, 0)
	test.ExpectSuccess(t, errors.Is(err, m68k.InvalidInterruptLevel))

	err = drv.Request(emulation.FeatureReq("ReqUnknown"))
	test.ExpectSuccess(t, errors.Is(err, emulation.UnsupportedRequest))
}

func TestEnd(t *testing.T) {
	rec := &recorder{}
	drv, _, cpu := newDriver(t, rec)
	test.ExpectSuccess(t, drv.End())
	test.ExpectEquality(t, drv.State(), emulation.Ending)
	test.ExpectEquality(t, rec.count(notifications.NotifySystemChanged), 2)

	_, err := cpu.SaveRegisters()
	test.ExpectSuccess(t, errors.Is(err, m68k.Ended))
}

func TestEndWhileRunning(t *testing.T) {
	rec := &recorder{}
	drv, _, cpu := newDriver(t, rec)

	result := make(chan error)
	go func() {
		result <- drv.Run(context.Background(), 0)
	}()

	for drv.Frames() == 0 {
		time.Sleep(time.Millisecond)
	}

	// the loop has finished by the time End() returns
	test.ExpectSuccess(t, drv.End())
	test.ExpectEquality(t, rec.count(notifications.NotifyStopped), 1)
	test.ExpectEquality(t, drv.State(), emulation.Ending)

	select {
	case err := <-result:
		test.ExpectSuccess(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop")
	}

	_, err := cpu.SaveRegisters()
	test.ExpectSuccess(t, errors.Is(err, m68k.Ended))

	err = drv.Run(context.Background(), 1)
	test.ExpectSuccess(t, errors.Is(err, emulation.DriverEnded))
}

func TestRunWhileRunning(t *testing.T) {
	drv, _, _ := newDriver(t, nil)

	result := make(chan error)
	go func() {
		result <- drv.Run(context.Background(), 0)
	}()

	for drv.Frames() == 0 {
		time.Sleep(time.Millisecond)
	}

	err := drv.Run(context.Background(), 1)
	test.ExpectSuccess(t, errors.Is(err, emulation.AlreadyRunning))

	drv.Stop()
	test.ExpectSuccess(t, <-result)
}

func TestStopBeforeRun(t *testing.T) {
	drv, _, _ := newDriver(t, nil)

	// a stop request only applies to a loop that is running
	drv.Stop()
	test.DemandSuccess(t, drv.Run(context.Background(), 2))
	test.ExpectEquality(t, drv.Frames(), 2)
}

func TestRequestsAcrossRuns(t *testing.T) {
	drv, eng, _ := newDriver(t, nil)
	eng.SetRegister(m68k.D2, 0x5555)

	stop := make(chan struct{})
	failures := make(chan error, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			s, err := drv.SaveRegisters()
			if err == nil && s.D[2] != 0x5555 {
				err = errors.New("unexpected register value")
			}
			if err != nil {
				select {
				case failures <- err:
				default:
				}
				return
			}
		}
	}()

	// the loop starts and stops repeatedly while requests are being made
	for i := 0; i < 20; i++ {
		test.DemandSuccess(t, drv.Run(context.Background(), 1))
	}
	close(stop)
	wg.Wait()

	select {
	case err := <-failures:
		t.Fatal(err)
	default:
	}
	test.ExpectEquality(t, drv.Frames(), 20)
}
