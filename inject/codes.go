package inject

import (
	evdev "github.com/holoplot/go-evdev"

	"github.com/jethrobull/touchboard/model"
)

// evdevCodes maps symbolic codes onto kernel input codes. Codes the state
// machine never emits (fn, preferences, the no-op code) have no entry.
var evdevCodes = map[model.KeyCode]evdev.EvCode{
	model.CodeA: evdev.KEY_A,
	model.CodeB: evdev.KEY_B,
	model.CodeC: evdev.KEY_C,
	model.CodeD: evdev.KEY_D,
	model.CodeE: evdev.KEY_E,
	model.CodeF: evdev.KEY_F,
	model.CodeG: evdev.KEY_G,
	model.CodeH: evdev.KEY_H,
	model.CodeI: evdev.KEY_I,
	model.CodeJ: evdev.KEY_J,
	model.CodeK: evdev.KEY_K,
	model.CodeL: evdev.KEY_L,
	model.CodeM: evdev.KEY_M,
	model.CodeN: evdev.KEY_N,
	model.CodeO: evdev.KEY_O,
	model.CodeP: evdev.KEY_P,
	model.CodeQ: evdev.KEY_Q,
	model.CodeR: evdev.KEY_R,
	model.CodeS: evdev.KEY_S,
	model.CodeT: evdev.KEY_T,
	model.CodeU: evdev.KEY_U,
	model.CodeV: evdev.KEY_V,
	model.CodeW: evdev.KEY_W,
	model.CodeX: evdev.KEY_X,
	model.CodeY: evdev.KEY_Y,
	model.CodeZ: evdev.KEY_Z,

	model.Code1: evdev.KEY_1,
	model.Code2: evdev.KEY_2,
	model.Code3: evdev.KEY_3,
	model.Code4: evdev.KEY_4,
	model.Code5: evdev.KEY_5,
	model.Code6: evdev.KEY_6,
	model.Code7: evdev.KEY_7,
	model.Code8: evdev.KEY_8,
	model.Code9: evdev.KEY_9,
	model.Code0: evdev.KEY_0,

	model.CodeMinus:        evdev.KEY_MINUS,
	model.CodeEqual:        evdev.KEY_EQUAL,
	model.CodeBracketLeft:  evdev.KEY_LEFTBRACE,
	model.CodeBracketRight: evdev.KEY_RIGHTBRACE,
	model.CodeSemicolon:    evdev.KEY_SEMICOLON,
	model.CodeApostrophe:   evdev.KEY_APOSTROPHE,
	model.CodeGrave:        evdev.KEY_GRAVE,
	model.CodeBackslash:    evdev.KEY_BACKSLASH,
	model.CodeComma:        evdev.KEY_COMMA,
	model.CodePeriod:       evdev.KEY_DOT,
	model.CodeSlash:        evdev.KEY_SLASH,

	model.CodeSpace:     evdev.KEY_SPACE,
	model.CodeReturn:    evdev.KEY_ENTER,
	model.CodeBackspace: evdev.KEY_BACKSPACE,
	model.CodeTab:       evdev.KEY_TAB,
	model.CodeEscape:    evdev.KEY_ESC,

	model.CodeShiftLeft:    evdev.KEY_LEFTSHIFT,
	model.CodeShiftRight:   evdev.KEY_RIGHTSHIFT,
	model.CodeControlLeft:  evdev.KEY_LEFTCTRL,
	model.CodeControlRight: evdev.KEY_RIGHTCTRL,
	model.CodeAltLeft:      evdev.KEY_LEFTALT,
	model.CodeAltRight:     evdev.KEY_RIGHTALT,
	model.CodeCapsLock:     evdev.KEY_CAPSLOCK,

	model.CodeUp:    evdev.KEY_UP,
	model.CodeDown:  evdev.KEY_DOWN,
	model.CodeLeft:  evdev.KEY_LEFT,
	model.CodeRight: evdev.KEY_RIGHT,

	model.CodeF1:  evdev.KEY_F1,
	model.CodeF2:  evdev.KEY_F2,
	model.CodeF3:  evdev.KEY_F3,
	model.CodeF4:  evdev.KEY_F4,
	model.CodeF5:  evdev.KEY_F5,
	model.CodeF6:  evdev.KEY_F6,
	model.CodeF7:  evdev.KEY_F7,
	model.CodeF8:  evdev.KEY_F8,
	model.CodeF9:  evdev.KEY_F9,
	model.CodeF10: evdev.KEY_F10,
	model.CodeF11: evdev.KEY_F11,
	model.CodeF12: evdev.KEY_F12,
}

func allEvdevCodes() []evdev.EvCode {
	codes := make([]evdev.EvCode, 0, len(evdevCodes))
	for _, code := range evdevCodes {
		codes = append(codes, code)
	}

	return codes
}
