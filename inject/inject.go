package inject

import (
	"github.com/jethrobull/touchboard/model"
)

// Injector turns abstract key commands into real input events for the
// focused target. Inject presses and releases the base code, bracketed by
// press/release of each active modifier; modifiers are released in reverse
// order of acquisition.
type Injector interface {
	Inject(code model.KeyCode, mods model.Modifiers) error
	ReleaseAll() error
	Close() error
}

// Target answers whether there is somewhere to deliver keystrokes. When it
// is not available, commands are dropped, not queued.
type Target interface {
	Available() bool
}

type FixedTarget bool

func (t FixedTarget) Available() bool {
	return bool(t)
}

// Stroke is one recorded injection, in wire order.
type Stroke struct {
	Code model.KeyCode
	Mods model.Modifiers
}

// Recorder is an Injector that only logs. It backs tests and the
// --no-inject mode: the core runs with no injection backend at all.
type Recorder struct {
	Strokes     []Stroke
	ReleaseAlls int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Inject(code model.KeyCode, mods model.Modifiers) error {
	r.Strokes = append(r.Strokes, Stroke{Code: code, Mods: mods})

	return nil
}

func (r *Recorder) ReleaseAll() error {
	r.ReleaseAlls++

	return nil
}

func (r *Recorder) Close() error {
	return nil
}
