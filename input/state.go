package input

import (
	"github.com/jethrobull/touchboard/layout"
	"github.com/jethrobull/touchboard/model"
)

// Typematic timings, in clock units (milliseconds in practice).
const (
	RepeatDelay    = 400
	RepeatInterval = 100
)

type CommandKind int

const (
	// CmdInject asks the injection collaborator to press-and-release the
	// code, bracketed by the listed modifiers.
	CmdInject CommandKind = iota
	// CmdReleaseAll releases every key the injector currently holds down.
	CmdReleaseAll
	// CmdHide switches the surface to the minimized/launcher presentation.
	CmdHide
	// CmdQuit terminates the process.
	CmdQuit
)

// Command is one entry of the machine's output log. Every transition
// returns a definite (possibly empty) list of them; no errors cross the
// machine boundary.
type Command struct {
	Kind   CommandKind
	Code   model.KeyCode
	Label  string
	Mods   model.Modifiers
	Repeat bool
}

// pressState is one slot of the press arena, parallel to Registry.Keys.
// down=false means the timestamps are stale and ignored.
type pressState struct {
	down       bool
	pressedAt  int64
	lastRepeat int64
}

type MenuState struct {
	Visible      bool
	PressedEntry int
}

// Machine is the press/modifier state machine. It consumes pointer events
// and clock ticks against one Registry generation and owns all mutable
// keyboard state. Not safe for concurrent use; the poll loop is its only
// caller.
type Machine struct {
	reg    *layout.Registry
	press  []pressState
	visual []bool
	mods   model.ModifierState
	menu   MenuState

	visible bool
	dirty   bool
}

func NewMachine(reg *layout.Registry) *Machine {
	m := &Machine{visible: true}
	m.Reset(reg)

	return m
}

// Reset points the machine at a freshly computed Registry. All press slots
// and modifier state are invalidated atomically with the old geometry.
func (m *Machine) Reset(reg *layout.Registry) {
	m.reg = reg
	m.press = make([]pressState, len(reg.Keys))
	m.visual = make([]bool, len(reg.Keys))
	m.mods = model.ModifierState{}
	m.menu = MenuState{PressedEntry: -1}
	m.dirty = true
}

// PointerDown handles a press at surface coordinates. The menu intercepts
// all pointer input while open.
func (m *Machine) PointerDown(x, y float64, now int64) []Command {
	if m.menu.Visible {
		return m.menuPointerDown(x, y)
	}

	i := m.reg.HitTest(x, y)
	if i < 0 {
		return nil
	}

	m.press[i] = pressState{down: true, pressedAt: now}
	m.visual[i] = true
	m.dirty = true

	key := m.reg.Keys[i]

	switch key.Code.Role() {
	case model.RolePreferences:
		m.menu.Visible = !m.menu.Visible

		return nil
	case model.RoleShift:
		m.mods.Shift = !m.mods.Shift
		m.visual[i] = m.mods.Shift

		return nil
	case model.RoleCapsLock:
		m.mods.Caps = !m.mods.Caps
		m.visual[i] = false

		return nil
	case model.RoleControl:
		m.mods.Ctrl = !m.mods.Ctrl
		m.visual[i] = m.mods.Ctrl

		return nil
	case model.RoleAlt:
		m.mods.Alt = !m.mods.Alt
		m.visual[i] = m.mods.Alt

		return nil
	case model.RoleFn:
		m.mods.Fn = !m.mods.Fn
		m.visual[i] = true

		return nil
	}

	var cmds []Command

	cmd := m.injectCommand(key, false)
	if cmd.Code != model.CodeNone {
		cmds = append(cmds, cmd)
	}

	// Momentary modifiers apply to exactly one base keystroke.
	m.autoRelease()

	return cmds
}

// PointerUp releases the currently pressed slot. Release is a single
// logical event found by state, not by coordinates.
func (m *Machine) PointerUp(x, y float64, now int64) []Command {
	if m.menu.Visible {
		return m.menuPointerUp(x, y)
	}

	for i := range m.press {
		if !m.press[i].down {
			continue
		}

		switch m.reg.Keys[i].Code.Role() {
		case model.RoleCapsLock:
			m.visual[i] = false
		case model.RoleShift:
			m.visual[i] = m.mods.Shift
		case model.RoleControl:
			m.visual[i] = m.mods.Ctrl
		case model.RoleAlt:
			m.visual[i] = m.mods.Alt
		default:
			m.visual[i] = false
		}

		m.press[i] = pressState{}
		m.dirty = true

		break
	}

	return nil
}

// Tick fires typematic repeats for held base keys: an initial RepeatDelay,
// then one repeat per RepeatInterval. Repeats replay only the base key; Fn
// remapping and modifier toggling never re-run.
func (m *Machine) Tick(now int64) []Command {
	var cmds []Command

	for i := range m.press {
		slot := &m.press[i]
		if !slot.down {
			continue
		}

		key := m.reg.Keys[i]
		if !repeatable(key.Code) {
			continue
		}

		if now-slot.pressedAt <= RepeatDelay {
			continue
		}

		if slot.lastRepeat != 0 && now-slot.lastRepeat < RepeatInterval {
			continue
		}

		cmd := m.injectCommand(key, true)
		if cmd.Code != model.CodeNone {
			cmds = append(cmds, cmd)
		}

		slot.lastRepeat = now
		m.dirty = true
	}

	return cmds
}

// fnLayer remaps the digit row and its two neighbors onto function keys
// while the one-shot Fn flag is active.
var fnLayer = map[model.KeyCode]model.KeyCode{
	model.Code1:     model.CodeF1,
	model.Code2:     model.CodeF2,
	model.Code3:     model.CodeF3,
	model.Code4:     model.CodeF4,
	model.Code5:     model.CodeF5,
	model.Code6:     model.CodeF6,
	model.Code7:     model.CodeF7,
	model.Code8:     model.CodeF8,
	model.Code9:     model.CodeF9,
	model.Code0:     model.CodeF10,
	model.CodeMinus: model.CodeF11,
	model.CodeEqual: model.CodeF12,
}

func (m *Machine) injectCommand(key model.Key, repeat bool) Command {
	code := key.Code

	if !repeat && m.mods.Fn {
		if remapped, ok := fnLayer[code]; ok {
			code = remapped
		}

		// One-shot: consumed by this resolution whether or not a remap
		// applied.
		m.mods.Fn = false
		m.dirty = true
	}

	return Command{
		Kind:   CmdInject,
		Code:   code,
		Label:  key.Label,
		Repeat: repeat,
		Mods: model.Modifiers{
			Shift: m.needShift(key),
			Ctrl:  m.mods.Ctrl,
			Alt:   m.mods.Alt,
		},
	}
}

// needShift: letters honor caps XOR shift, everything else follows shift
// alone.
func (m *Machine) needShift(key model.Key) bool {
	if key.Code.Role() == model.RoleLetter {
		return m.mods.Caps != m.mods.Shift
	}

	return m.mods.Shift
}

func (m *Machine) autoRelease() {
	m.mods.Shift = false
	m.mods.Ctrl = false
	m.mods.Alt = false

	for i := range m.reg.Keys {
		switch m.reg.Keys[i].Code.Role() {
		case model.RoleShift, model.RoleControl, model.RoleAlt:
			m.visual[i] = false
		}
	}
}

func repeatable(c model.KeyCode) bool {
	switch c.Role() {
	case model.RoleShift, model.RoleControl, model.RoleAlt,
		model.RoleCapsLock, model.RoleFn, model.RolePreferences, model.RoleNoOp:
		return false
	default:
		return true
	}
}

func (m *Machine) releaseAllSlots() {
	for i := range m.press {
		m.press[i] = pressState{}
		m.visual[i] = false
	}
}

// ToggleVisible flips between the keyboard surface and the launcher
// presentation, e.g. on a launcher tap. The preferences key's press state
// resets and the menu closes either way.
func (m *Machine) ToggleVisible() {
	m.visible = !m.visible

	if i := m.reg.PreferencesIndex(); i >= 0 {
		m.press[i] = pressState{}
		m.visual[i] = false
	}

	m.menu = MenuState{Visible: false, PressedEntry: -1}
	m.dirty = true
}

func (m *Machine) Visible() bool {
	return m.visible
}

// VisualPressed is the flag the renderer should draw for a slot: the
// per-key visual latch, plus the held look of active caps and fn keys.
func (m *Machine) VisualPressed(i int) bool {
	if i < 0 || i >= len(m.visual) {
		return false
	}

	if m.visual[i] {
		return true
	}

	switch m.reg.Keys[i].Code.Role() {
	case model.RoleCapsLock:
		return m.mods.Caps
	case model.RoleFn:
		return m.mods.Fn
	default:
		return false
	}
}

func (m *Machine) Modifiers() model.ModifierState {
	return m.mods
}

func (m *Machine) Menu() MenuState {
	return m.menu
}

func (m *Machine) Registry() *layout.Registry {
	return m.reg
}

func (m *Machine) Dirty() bool {
	return m.dirty
}

func (m *Machine) ClearDirty() {
	m.dirty = false
}
