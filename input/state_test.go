package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jethrobull/touchboard/input"
	"github.com/jethrobull/touchboard/layout"
	"github.com/jethrobull/touchboard/model"
)

func spec(label, keysym string) model.KeySpec {
	return model.KeySpec{Label: label, Keysym: keysym}
}

// testRegistry is a small but complete surface: base keys, every modifier
// and a preferences key with a two-entry menu.
func testRegistry(t *testing.T) *layout.Registry {
	t.Helper()

	doc := &layout.Document{
		Rows: [][]model.KeySpec{
			{spec("1", "XK_1"), spec("2", "XK_2"), spec("3", "XK_3")},
			{spec("q", "XK_q"), spec("w", "XK_w"), spec("Caps", "XK_Caps_Lock")},
			{spec("Shift", "XK_Shift_L"), spec("Fn", "XK_Mode_switch"), spec("Space", "XK_space")},
			{spec("Ctrl", "XK_Control_L"), spec("Alt", "XK_Alt_L"), spec("Prefs", "XK_preferences")},
		},
		Menu: []model.MenuEntry{
			{Label: "Hide keyboard", Action: model.MenuHide},
			{Label: "Quit", Action: model.MenuQuit},
		},
	}

	reg := layout.Compute(doc, 400, 200)
	require.Empty(t, reg.Warnings)

	return reg
}

func keyCenter(t *testing.T, reg *layout.Registry, label string) (float64, float64) {
	t.Helper()

	for _, key := range reg.Keys {
		if key.Label == label {
			return key.Rect.X + key.Rect.W/2, key.Rect.Y + key.Rect.H/2
		}
	}

	t.Fatalf("no key labeled %q in test registry", label)

	return 0, 0
}

func tap(t *testing.T, m *input.Machine, label string, now int64) []input.Command {
	t.Helper()

	x, y := keyCenter(t, m.Registry(), label)

	cmds := m.PointerDown(x, y, now)
	m.PointerUp(x, y, now)

	return cmds
}

func TestBaseKeyPress(t *testing.T) {
	m := input.NewMachine(testRegistry(t))

	cmds := tap(t, m, "q", 0)

	require.Len(t, cmds, 1)
	assert.Equal(t, input.Command{
		Kind:  input.CmdInject,
		Code:  model.CodeQ,
		Label: "q",
	}, cmds[0])
}

func TestPointerMissIsNoOp(t *testing.T) {
	m := input.NewMachine(testRegistry(t))
	m.ClearDirty()

	cmds := m.PointerDown(-10, -10, 0)

	assert.Empty(t, cmds)
	assert.False(t, m.Dirty())
}

func TestShiftIsOneShot(t *testing.T) {
	m := input.NewMachine(testRegistry(t))

	assert.Empty(t, tap(t, m, "Shift", 0))
	assert.True(t, m.Modifiers().Shift)

	cmds := tap(t, m, "q", 10)
	require.Len(t, cmds, 1)
	assert.True(t, cmds[0].Mods.Shift)

	// Consumed by the first base keystroke.
	assert.False(t, m.Modifiers().Shift)

	cmds = tap(t, m, "q", 20)
	require.Len(t, cmds, 1)
	assert.False(t, cmds[0].Mods.Shift)
}

func TestShiftTappedTwiceCancels(t *testing.T) {
	m := input.NewMachine(testRegistry(t))

	tap(t, m, "Shift", 0)
	tap(t, m, "Shift", 10)

	assert.False(t, m.Modifiers().Shift)

	cmds := tap(t, m, "q", 20)
	require.Len(t, cmds, 1)
	assert.False(t, cmds[0].Mods.Shift)
}

func TestCtrlAltChord(t *testing.T) {
	m := input.NewMachine(testRegistry(t))

	tap(t, m, "Ctrl", 0)
	tap(t, m, "Alt", 10)
	tap(t, m, "Shift", 20)

	cmds := tap(t, m, "q", 30)
	require.Len(t, cmds, 1)
	assert.Equal(t, model.Modifiers{Shift: true, Ctrl: true, Alt: true}, cmds[0].Mods)

	// All three released together.
	mods := m.Modifiers()
	assert.False(t, mods.Shift)
	assert.False(t, mods.Ctrl)
	assert.False(t, mods.Alt)
}

func TestCapsLock(t *testing.T) {
	m := input.NewMachine(testRegistry(t))

	tap(t, m, "Caps", 0)
	assert.True(t, m.Modifiers().Caps)

	t.Run("letters get shifted", func(t *testing.T) {
		cmds := tap(t, m, "q", 10)
		require.Len(t, cmds, 1)
		assert.True(t, cmds[0].Mods.Shift)
	})

	t.Run("digits do not", func(t *testing.T) {
		cmds := tap(t, m, "1", 20)
		require.Len(t, cmds, 1)
		assert.False(t, cmds[0].Mods.Shift)
	})

	t.Run("caps persists across keystrokes", func(t *testing.T) {
		assert.True(t, m.Modifiers().Caps)
	})

	t.Run("shift under caps inverts letters", func(t *testing.T) {
		tap(t, m, "Shift", 30)

		cmds := tap(t, m, "q", 40)
		require.Len(t, cmds, 1)
		assert.False(t, cmds[0].Mods.Shift)
	})

	t.Run("shift under caps still shifts digits", func(t *testing.T) {
		tap(t, m, "Shift", 50)

		cmds := tap(t, m, "1", 60)
		require.Len(t, cmds, 1)
		assert.True(t, cmds[0].Mods.Shift)
	})

	t.Run("second tap releases caps", func(t *testing.T) {
		tap(t, m, "Caps", 70)

		cmds := tap(t, m, "q", 80)
		require.Len(t, cmds, 1)
		assert.False(t, cmds[0].Mods.Shift)
	})
}

func TestFnLayer(t *testing.T) {
	m := input.NewMachine(testRegistry(t))

	t.Run("remaps digits to function keys", func(t *testing.T) {
		tap(t, m, "Fn", 0)

		cmds := tap(t, m, "1", 10)
		require.Len(t, cmds, 1)
		assert.Equal(t, model.CodeF1, cmds[0].Code)
	})

	t.Run("is one-shot", func(t *testing.T) {
		cmds := tap(t, m, "1", 20)
		require.Len(t, cmds, 1)
		assert.Equal(t, model.Code1, cmds[0].Code)
	})

	t.Run("consumed even without a remap", func(t *testing.T) {
		tap(t, m, "Fn", 30)

		cmds := tap(t, m, "q", 40)
		require.Len(t, cmds, 1)
		assert.Equal(t, model.CodeQ, cmds[0].Code)
		assert.False(t, m.Modifiers().Fn)
	})

	t.Run("second tap cancels", func(t *testing.T) {
		tap(t, m, "Fn", 50)
		tap(t, m, "Fn", 60)

		assert.False(t, m.Modifiers().Fn)
	})
}

func TestTypematicRepeat(t *testing.T) {
	m := input.NewMachine(testRegistry(t))

	x, y := keyCenter(t, m.Registry(), "q")

	cmds := m.PointerDown(x, y, 0)
	require.Len(t, cmds, 1)
	assert.False(t, cmds[0].Repeat)

	var repeats []int64

	for now := int64(50); now <= 1000; now += 50 {
		for _, cmd := range m.Tick(now) {
			assert.Equal(t, model.CodeQ, cmd.Code)
			assert.True(t, cmd.Repeat)

			repeats = append(repeats, now)
		}
	}

	assert.Equal(t, []int64{450, 550, 650, 750, 850, 950}, repeats)

	t.Run("release stops the repeats", func(t *testing.T) {
		m.PointerUp(x, y, 1000)

		for now := int64(1050); now <= 1500; now += 50 {
			assert.Empty(t, m.Tick(now))
		}
	})
}

func TestModifiersDoNotRepeat(t *testing.T) {
	m := input.NewMachine(testRegistry(t))

	for _, label := range []string{"Shift", "Ctrl", "Alt", "Caps", "Fn", "Prefs"} {
		t.Run(label, func(t *testing.T) {
			m.Reset(m.Registry())

			x, y := keyCenter(t, m.Registry(), label)
			m.PointerDown(x, y, 0)

			for now := int64(100); now <= 1500; now += 50 {
				assert.Empty(t, m.Tick(now))
			}

			m.PointerUp(x, y, 1500)
		})
	}
}

func TestReleaseIsFoundByState(t *testing.T) {
	m := input.NewMachine(testRegistry(t))

	x, y := keyCenter(t, m.Registry(), "q")
	m.PointerDown(x, y, 0)

	// The finger slid off the key before lifting.
	m.PointerUp(x+1000, y+1000, 100)

	for now := int64(450); now <= 1000; now += 50 {
		assert.Empty(t, m.Tick(now))
	}
}

func TestVisualFlags(t *testing.T) {
	m := input.NewMachine(testRegistry(t))

	reg := m.Registry()

	slotOf := func(label string) int {
		x, y := keyCenter(t, reg, label)

		return reg.HitTest(x, y)
	}

	t.Run("base key lights while held", func(t *testing.T) {
		x, y := keyCenter(t, reg, "q")
		i := slotOf("q")

		m.PointerDown(x, y, 0)
		assert.True(t, m.VisualPressed(i))

		m.PointerUp(x, y, 10)
		assert.False(t, m.VisualPressed(i))
	})

	t.Run("shift stays lit until consumed", func(t *testing.T) {
		i := slotOf("Shift")

		tap(t, m, "Shift", 20)
		assert.True(t, m.VisualPressed(i))

		tap(t, m, "q", 30)
		assert.False(t, m.VisualPressed(i))
	})

	t.Run("caps stays lit until toggled off", func(t *testing.T) {
		i := slotOf("Caps")

		tap(t, m, "Caps", 40)
		assert.True(t, m.VisualPressed(i))

		tap(t, m, "q", 50)
		assert.True(t, m.VisualPressed(i))

		tap(t, m, "Caps", 60)
		assert.False(t, m.VisualPressed(i))
	})

	t.Run("out of range is false", func(t *testing.T) {
		assert.False(t, m.VisualPressed(-1))
		assert.False(t, m.VisualPressed(10000))
	})
}

func TestResetDropsAllState(t *testing.T) {
	m := input.NewMachine(testRegistry(t))

	tap(t, m, "Shift", 0)
	tap(t, m, "Caps", 10)

	x, y := keyCenter(t, m.Registry(), "q")
	m.PointerDown(x, y, 20)

	m.Reset(m.Registry())

	mods := m.Modifiers()
	assert.False(t, mods.Shift)
	assert.False(t, mods.Caps)

	for now := int64(450); now <= 1000; now += 50 {
		assert.Empty(t, m.Tick(now))
	}

	assert.True(t, m.Dirty())
}

func TestToggleVisible(t *testing.T) {
	m := input.NewMachine(testRegistry(t))

	assert.True(t, m.Visible())

	// Open the menu first; hiding must close it.
	tap(t, m, "Prefs", 0)
	require.True(t, m.Menu().Visible)

	m.ToggleVisible()

	assert.False(t, m.Visible())
	assert.False(t, m.Menu().Visible)

	m.ToggleVisible()

	assert.True(t, m.Visible())
}
