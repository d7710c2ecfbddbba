package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Ctrl+Q, Ctrl+C, q
	IntentEscape // Esc, q in the detail view
	IntentReload // r, Ctrl+R

	// Grid navigation
	IntentMotion

	// Grid actions
	IntentCopy       // Enter, y
	IntentOpenDetail // Space, i
	IntentSortHex    // F5
	IntentSortHSV    // F6
	IntentSortToggle // s

	// Detail view
	IntentSelectUp
	IntentSelectDown
	IntentCopyField
)

// MotionOp is a cursor movement on the grid
type MotionOp uint8

const (
	MotionNone MotionOp = iota
	MotionLeft
	MotionRight
	MotionUp
	MotionDown
	MotionPageUp
	MotionPageDown
	MotionFirst
	MotionLast
)

// Intent is the result of mapping one key event
type Intent struct {
	Type   IntentType
	Motion MotionOp
}
