package inject

import (
	"fmt"
	"syscall"
	"time"

	evdev "github.com/holoplot/go-evdev"

	"github.com/jethrobull/touchboard/model"
)

// UinputInjector delivers keystrokes through a virtual kernel input device
// (/dev/uinput). Whatever window holds focus receives them, which is
// exactly the behavior an on-screen keyboard wants.
type UinputInjector struct {
	dev *evdev.InputDevice
}

func NewUinput(name string) (*UinputInjector, error) {
	dev, err := evdev.CreateDevice(
		name,
		evdev.InputID{
			BusType: 0x03,
			Vendor:  0x4711,
			Product: 0x0816,
			Version: 1,
		},
		map[evdev.EvType][]evdev.EvCode{
			evdev.EV_KEY: allEvdevCodes(),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("could not create uinput device %q: %w", name, err)
	}

	return &UinputInjector{dev: dev}, nil
}

// Inject writes press-then-release of the base code, bracketed by the
// active modifiers: shift, ctrl, alt pressed in that order and released in
// reverse.
func (u *UinputInjector) Inject(code model.KeyCode, mods model.Modifiers) error {
	base, ok := evdevCodes[code]
	if !ok {
		return fmt.Errorf("no kernel code for key %d", code)
	}

	var bracket []evdev.EvCode

	if mods.Shift {
		bracket = append(bracket, evdev.KEY_LEFTSHIFT)
	}

	if mods.Ctrl {
		bracket = append(bracket, evdev.KEY_LEFTCTRL)
	}

	if mods.Alt {
		bracket = append(bracket, evdev.KEY_LEFTALT)
	}

	for _, mod := range bracket {
		if err := u.writeKey(mod, true); err != nil {
			return err
		}
	}

	if err := u.writeKey(base, true); err != nil {
		return err
	}

	if err := u.writeKey(base, false); err != nil {
		return err
	}

	for i := len(bracket) - 1; i >= 0; i-- {
		if err := u.writeKey(bracket[i], false); err != nil {
			return err
		}
	}

	return u.syn()
}

// ReleaseAll writes a key-up for every code the device is capable of. The
// kernel ignores ups for keys that are not down, so this is a safe bulk
// release for the hide/quit paths.
func (u *UinputInjector) ReleaseAll() error {
	for _, code := range allEvdevCodes() {
		if err := u.writeKey(code, false); err != nil {
			return err
		}
	}

	return u.syn()
}

func (u *UinputInjector) Close() error {
	if err := u.dev.Close(); err != nil {
		return fmt.Errorf("could not close uinput device: %w", err)
	}

	return nil
}

func (u *UinputInjector) writeKey(code evdev.EvCode, down bool) error {
	value := int32(0)
	if down {
		value = 1
	}

	err := u.dev.WriteOne(&evdev.InputEvent{
		Time:  syscall.NsecToTimeval(time.Now().UnixNano()),
		Type:  evdev.EV_KEY,
		Code:  code,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("could not write key event: %w", err)
	}

	return nil
}

func (u *UinputInjector) syn() error {
	err := u.dev.WriteOne(&evdev.InputEvent{
		Time:  syscall.NsecToTimeval(time.Now().UnixNano()),
		Type:  evdev.EV_SYN,
		Code:  evdev.SYN_REPORT,
		Value: 0,
	})
	if err != nil {
		return fmt.Errorf("could not write syn event: %w", err)
	}

	return nil
}
