package keyboard

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jethrobull/touchboard/db"
	"github.com/jethrobull/touchboard/inject"
	"github.com/jethrobull/touchboard/input"
	"github.com/jethrobull/touchboard/model"
)

// Clock returns elapsed milliseconds from a fixed start. Backed by the
// runtime's monotonic reading, so wall-clock adjustments cannot disturb
// key-repeat timing.
type Clock func() int64

func MonotonicClock() Clock {
	start := time.Now()

	return func() int64 {
		return time.Since(start).Milliseconds()
	}
}

// Renderer is the drawing collaborator. It reads machine state and must
// not mutate it.
type Renderer interface {
	Draw(m *input.Machine) error
	Minimize()
}

type NopRenderer struct{}

func (NopRenderer) Draw(*input.Machine) error { return nil }
func (NopRenderer) Minimize()                 {}

// Loop is the single control flow of the process: it alternates draining
// pending pointer events and evaluating repeat timers, forwarding the
// machine's commands to the injector and redrawing on dirty. All keyboard
// state is touched only from here, so nothing needs locking.
type Loop struct {
	Machine  *input.Machine
	Injector inject.Injector
	Target   inject.Target
	Renderer Renderer
	Storage  db.Storage
	Clock    Clock

	// IdleSleep bounds the busy-wait when no input is pending. CPU
	// friendliness only; correctness does not depend on it.
	IdleSleep time.Duration
}

// Run blocks until a quit command fires (returns nil) or the event source
// closes (returns an error).
func (l *Loop) Run(events <-chan model.PointerEvent) error {
	sleep := l.IdleSleep
	if sleep <= 0 {
		sleep = 20 * time.Millisecond
	}

	for {
		idle := true

	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return fmt.Errorf("pointer event source closed")
				}

				idle = false
				now := l.Clock()

				var cmds []input.Command
				if ev.Pressed {
					cmds = l.Machine.PointerDown(ev.X, ev.Y, now)
				} else {
					cmds = l.Machine.PointerUp(ev.X, ev.Y, now)
				}

				if l.apply(cmds) {
					return nil
				}
			default:
				break drain
			}
		}

		if l.apply(l.Machine.Tick(l.Clock())) {
			return nil
		}

		if l.Machine.Dirty() {
			if err := l.Renderer.Draw(l.Machine); err != nil {
				slog.Error("Could not draw keyboard", "error", err)
			}

			l.Machine.ClearDirty()
		}

		if idle {
			time.Sleep(sleep)
		}
	}
}

// apply executes one command batch. Reports whether a quit was requested.
func (l *Loop) apply(cmds []input.Command) bool {
	quit := false

	for _, cmd := range cmds {
		switch cmd.Kind {
		case input.CmdInject:
			if l.Target != nil && !l.Target.Available() {
				// No valid focus target: drop, don't queue.
				slog.Debug("No injection target, dropping keystroke", "code", cmd.Code)

				continue
			}

			if err := l.Injector.Inject(cmd.Code, cmd.Mods); err != nil {
				slog.Error("Could not inject keystroke", "code", cmd.Code, "error", err)

				continue
			}

			l.record(cmd)
		case input.CmdReleaseAll:
			if err := l.Injector.ReleaseAll(); err != nil {
				slog.Error("Could not release held keys", "error", err)
			}
		case input.CmdHide:
			l.Renderer.Minimize()
		case input.CmdQuit:
			quit = true
		}
	}

	return quit
}

func (l *Loop) record(cmd input.Command) {
	if l.Storage == nil {
		return
	}

	stroke := &model.KeyStroke{
		Code:   cmd.Code,
		Label:  cmd.Label,
		Shift:  cmd.Mods.Shift,
		Ctrl:   cmd.Mods.Ctrl,
		Alt:    cmd.Mods.Alt,
		Repeat: cmd.Repeat,
	}

	if err := l.Storage.Store(stroke); err != nil {
		slog.Error("Could not store keystroke", "error", err)
	}
}
