package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents for the grid and the detail view
type KeyTable struct {
	// Active everywhere, checked first
	GlobalKeys map[tcell.Key]Intent

	GridKeys  map[tcell.Key]Intent
	GridRunes map[rune]Intent

	DetailKeys  map[tcell.Key]Intent
	DetailRunes map[rune]Intent
}

func motion(m MotionOp) Intent { return Intent{Type: IntentMotion, Motion: m} }

func action(t IntentType) Intent { return Intent{Type: t} }

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		GlobalKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlQ: action(IntentQuit),
			tcell.KeyCtrlC: action(IntentQuit),
		},

		GridKeys: map[tcell.Key]Intent{
			tcell.KeyUp:    motion(MotionUp),
			tcell.KeyDown:  motion(MotionDown),
			tcell.KeyLeft:  motion(MotionLeft),
			tcell.KeyRight: motion(MotionRight),
			tcell.KeyPgUp:  motion(MotionPageUp),
			tcell.KeyPgDn:  motion(MotionPageDown),
			tcell.KeyHome:  motion(MotionFirst),
			tcell.KeyEnd:   motion(MotionLast),
			tcell.KeyEnter: action(IntentCopy),
			tcell.KeyF5:    action(IntentSortHex),
			tcell.KeyF6:    action(IntentSortHSV),
			tcell.KeyCtrlR: action(IntentReload),
		},

		GridRunes: map[rune]Intent{
			// Basic motions
			'h': motion(MotionLeft),
			'j': motion(MotionDown),
			'k': motion(MotionUp),
			'l': motion(MotionRight),
			'g': motion(MotionFirst),
			'G': motion(MotionLast),

			'q': action(IntentQuit),
			'r': action(IntentReload),
			's': action(IntentSortToggle),
			'y': action(IntentCopy),
			' ': action(IntentOpenDetail),
			'i': action(IntentOpenDetail),
		},

		DetailKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: action(IntentEscape),
			tcell.KeyUp:     action(IntentSelectUp),
			tcell.KeyDown:   action(IntentSelectDown),
			tcell.KeyEnter:  action(IntentCopyField),
		},

		DetailRunes: map[rune]Intent{
			'q': action(IntentEscape),
			'k': action(IntentSelectUp),
			'j': action(IntentSelectDown),
			'y': action(IntentCopyField),
		},
	}
}

// Lookup maps a key event to an intent; inDetail selects the detail view bindings
func (t *KeyTable) Lookup(ev *tcell.EventKey, inDetail bool) Intent {
	if in, ok := t.GlobalKeys[ev.Key()]; ok {
		return in
	}

	keys, runes := t.GridKeys, t.GridRunes
	if inDetail {
		keys, runes = t.DetailKeys, t.DetailRunes
	}

	if ev.Key() == tcell.KeyRune {
		return runes[ev.Rune()]
	}
	return keys[ev.Key()]
}
