package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sortviz/algorithm"
)

// KeyTable maps keys to intents
// Rune lookups are case-insensitive: bindings are stored upper-case
type KeyTable struct {
	SpecialKeys map[tcell.Key]IntentType
	Runes       map[rune]IntentType
	Algorithms  map[rune]algorithm.ID
}

// DefaultKeyTable binds algorithm hotkeys from catalog, O/P debug, X quit,
// and N, Space, +/- and U for reset, pause, speed and mute
func DefaultKeyTable(catalog algorithm.Catalog) *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			'X': IntentQuit,
			'O': IntentShowDebug,
			'P': IntentHideDebug,
			'N': IntentReset,
			' ': IntentPause,
			'+': IntentFaster,
			'=': IntentFaster,
			'-': IntentSlower,
			'U': IntentToggleMute,
		},
		Algorithms: make(map[rune]algorithm.ID, algorithm.Count),
	}

	for _, m := range catalog.Entries() {
		kt.Algorithms[unicode.ToUpper(m.Key)] = m.ID
	}
	return kt
}

// Resolve maps a key event to an intent; unbound keys yield IntentNone
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	if ev.Key() != tcell.KeyRune {
		return Intent{Type: kt.SpecialKeys[ev.Key()]}
	}

	r := unicode.ToUpper(ev.Rune())
	if id, ok := kt.Algorithms[r]; ok {
		return Intent{Type: IntentSelect, Algorithm: id}
	}
	return Intent{Type: kt.Runes[r]}
}
