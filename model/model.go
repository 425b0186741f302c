package model

// KeyCode is the symbolic identity of a key, decoupled from any physical
// input-protocol code. CodeNone marks a key that injects nothing.
type KeyCode int

const (
	CodeNone KeyCode = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9
	Code0

	CodeMinus
	CodeEqual
	CodeBracketLeft
	CodeBracketRight
	CodeSemicolon
	CodeApostrophe
	CodeGrave
	CodeBackslash
	CodeComma
	CodePeriod
	CodeSlash

	CodeSpace
	CodeReturn
	CodeBackspace
	CodeTab
	CodeEscape

	CodeShiftLeft
	CodeShiftRight
	CodeControlLeft
	CodeControlRight
	CodeAltLeft
	CodeAltRight
	CodeCapsLock
	CodeFn
	CodePreferences

	CodeUp
	CodeDown
	CodeLeft
	CodeRight

	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
)

// Role is the closed set of key behaviors the state machine dispatches on.
type Role int

const (
	RoleOther Role = iota
	RoleLetter
	RoleDigit
	RolePunctuation
	RoleShift
	RoleControl
	RoleAlt
	RoleCapsLock
	RoleFn
	RolePreferences
	RoleBackspace
	RoleArrow
	RoleNoOp
)

func (c KeyCode) Role() Role {
	switch {
	case c == CodeNone:
		return RoleNoOp
	case c >= CodeA && c <= CodeZ:
		return RoleLetter
	case c >= Code1 && c <= Code0:
		return RoleDigit
	case c >= CodeMinus && c <= CodeSlash:
		return RolePunctuation
	}

	switch c {
	case CodeShiftLeft, CodeShiftRight:
		return RoleShift
	case CodeControlLeft, CodeControlRight:
		return RoleControl
	case CodeAltLeft, CodeAltRight:
		return RoleAlt
	case CodeCapsLock:
		return RoleCapsLock
	case CodeFn:
		return RoleFn
	case CodePreferences:
		return RolePreferences
	case CodeBackspace:
		return RoleBackspace
	case CodeUp, CodeDown, CodeLeft, CodeRight:
		return RoleArrow
	default:
		return RoleOther
	}
}

// IsModifier reports whether pressing this key toggles modifier state
// instead of injecting a keystroke.
func (c KeyCode) IsModifier() bool {
	switch c.Role() {
	case RoleShift, RoleControl, RoleAlt, RoleCapsLock:
		return true
	default:
		return false
	}
}

type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// KeySpec is one key as written in the layout document.
type KeySpec struct {
	Label      string
	ShiftLabel string
	Keysym     string
	Width      float64
	Height     float64
}

// Key is a placed key: its spec plus the geometry computed for it.
type Key struct {
	KeySpec
	Row  int
	Col  int
	Code KeyCode
	Rect Rect
}

// Modifiers rides along with each injected keystroke.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

// ModifierState is the machine's modifier record. Shift, Ctrl and Alt are
// momentary and auto-release after one base keystroke; Caps is a persistent
// toggle; Fn is one-shot and consumed by the next key resolution.
type ModifierState struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Caps  bool
	Fn    bool
}

type MenuAction string

const (
	MenuQuit MenuAction = "quit"
	MenuHide MenuAction = "hide"
)

type MenuEntry struct {
	Label  string
	Action MenuAction
}

// PointerEvent is one touch/button transition on the keyboard surface.
type PointerEvent struct {
	X       float64
	Y       float64
	Pressed bool
}

// KeyStroke is the record kept per injected command.
type KeyStroke struct {
	Code   KeyCode
	Label  string
	Shift  bool
	Ctrl   bool
	Alt    bool
	Repeat bool
}

type KeyCount struct {
	Code  KeyCode
	Label string
	Count int
}
