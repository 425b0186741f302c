package input

import (
	"github.com/jethrobull/touchboard/model"
)

// The popup sits this many pixels above the preferences key, and never
// closer than menuMinY to the surface top.
const (
	menuOffsetPx = 2.0
	menuMinY     = 4.0
)

// MenuRect is the popup's bounding rectangle, anchored above the
// preferences key. Entry height equals the preferences key's height.
// Returns false when the layout has no preferences key or no menu entries.
func (m *Machine) MenuRect() (model.Rect, bool) {
	pref, ok := m.reg.PreferencesKey()
	if !ok || len(m.reg.Menu) == 0 {
		return model.Rect{}, false
	}

	h := float64(len(m.reg.Menu)) * pref.Rect.H

	y := pref.Rect.Y - h - menuOffsetPx
	if y < menuMinY {
		y = menuMinY
	}

	return model.Rect{X: pref.Rect.X, Y: y, W: pref.Rect.W, H: h}, true
}

// MenuEntryRect is the rectangle of one popup entry.
func (m *Machine) MenuEntryRect(idx int) (model.Rect, bool) {
	rect, ok := m.MenuRect()
	if !ok || idx < 0 || idx >= len(m.reg.Menu) {
		return model.Rect{}, false
	}

	entryH := rect.H / float64(len(m.reg.Menu))

	return model.Rect{X: rect.X, Y: rect.Y + float64(idx)*entryH, W: rect.W, H: entryH}, true
}

// menuPointerDown consumes every press while the popup is open: inside the
// popup it latches the entry under the pointer, outside it closes the
// popup. Nothing falls through to the keys behind.
func (m *Machine) menuPointerDown(x, y float64) []Command {
	rect, ok := m.MenuRect()
	if ok && rect.Contains(x, y) {
		entryH := rect.H / float64(len(m.reg.Menu))

		idx := int((y - rect.Y) / entryH)
		if idx >= 0 && idx < len(m.reg.Menu) {
			m.menu.PressedEntry = idx
			m.dirty = true
		}

		return nil
	}

	m.menu = MenuState{Visible: false, PressedEntry: -1}
	m.dirty = true

	return nil
}

// menuPointerUp fires the latched entry's action, but only if the release
// still lands inside that same entry, like a key.
func (m *Machine) menuPointerUp(x, y float64) []Command {
	m.dirty = true

	if m.menu.PressedEntry < 0 {
		return nil
	}

	idx := m.menu.PressedEntry
	m.menu.PressedEntry = -1

	entry, ok := m.MenuEntryRect(idx)
	if !ok || !entry.Contains(x, y) {
		return nil
	}

	switch m.reg.Menu[idx].Action {
	case model.MenuQuit:
		return []Command{{Kind: CmdReleaseAll}, {Kind: CmdQuit}}
	case model.MenuHide:
		m.releaseAllSlots()
		m.visible = false
		m.menu = MenuState{Visible: false, PressedEntry: -1}

		return []Command{{Kind: CmdReleaseAll}, {Kind: CmdHide}}
	default:
		return nil
	}
}
