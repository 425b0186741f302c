package layout

import (
	"strings"

	"github.com/jethrobull/touchboard/model"
)

// Keysym names follow the X11 convention used by layout documents in the
// wild ("XK_Shift_L", "XK_a"); the XK_ prefix is optional and lookup is
// case-insensitive.
var keysyms = map[string]model.KeyCode{
	"a": model.CodeA,
	"b": model.CodeB,
	"c": model.CodeC,
	"d": model.CodeD,
	"e": model.CodeE,
	"f": model.CodeF,
	"g": model.CodeG,
	"h": model.CodeH,
	"i": model.CodeI,
	"j": model.CodeJ,
	"k": model.CodeK,
	"l": model.CodeL,
	"m": model.CodeM,
	"n": model.CodeN,
	"o": model.CodeO,
	"p": model.CodeP,
	"q": model.CodeQ,
	"r": model.CodeR,
	"s": model.CodeS,
	"t": model.CodeT,
	"u": model.CodeU,
	"v": model.CodeV,
	"w": model.CodeW,
	"x": model.CodeX,
	"y": model.CodeY,
	"z": model.CodeZ,

	"1": model.Code1,
	"2": model.Code2,
	"3": model.Code3,
	"4": model.Code4,
	"5": model.Code5,
	"6": model.Code6,
	"7": model.Code7,
	"8": model.Code8,
	"9": model.Code9,
	"0": model.Code0,

	"minus":        model.CodeMinus,
	"equal":        model.CodeEqual,
	"bracketleft":  model.CodeBracketLeft,
	"bracketright": model.CodeBracketRight,
	"semicolon":    model.CodeSemicolon,
	"apostrophe":   model.CodeApostrophe,
	"grave":        model.CodeGrave,
	"backslash":    model.CodeBackslash,
	"comma":        model.CodeComma,
	"period":       model.CodePeriod,
	"slash":        model.CodeSlash,

	"space":     model.CodeSpace,
	"return":    model.CodeReturn,
	"backspace": model.CodeBackspace,
	"tab":       model.CodeTab,
	"escape":    model.CodeEscape,

	"shift_l":     model.CodeShiftLeft,
	"shift_r":     model.CodeShiftRight,
	"control_l":   model.CodeControlLeft,
	"control_r":   model.CodeControlRight,
	"alt_l":       model.CodeAltLeft,
	"alt_r":       model.CodeAltRight,
	"caps_lock":   model.CodeCapsLock,
	"mode_switch": model.CodeFn,
	"preferences": model.CodePreferences,

	"up":    model.CodeUp,
	"down":  model.CodeDown,
	"left":  model.CodeLeft,
	"right": model.CodeRight,

	"f1":  model.CodeF1,
	"f2":  model.CodeF2,
	"f3":  model.CodeF3,
	"f4":  model.CodeF4,
	"f5":  model.CodeF5,
	"f6":  model.CodeF6,
	"f7":  model.CodeF7,
	"f8":  model.CodeF8,
	"f9":  model.CodeF9,
	"f10": model.CodeF10,
	"f11": model.CodeF11,
	"f12": model.CodeF12,
}

// ResolveKeysym maps a keysym name from a layout document to its symbolic
// code. Returns (CodeNone, false) for names it does not know; the caller
// still places the key, it just injects nothing.
func ResolveKeysym(name string) (model.KeyCode, bool) {
	trimmed := strings.TrimPrefix(name, "XK_")

	if code, ok := keysyms[strings.ToLower(trimmed)]; ok {
		return code, true
	}

	// Some documents carry the prefix inside quotes or odd casing; retry
	// with the raw string before giving up, same as the lookup order of
	// XStringToKeysym-based loaders.
	if code, ok := keysyms[strings.ToLower(name)]; ok {
		return code, true
	}

	return model.CodeNone, false
}
