// Package input translates key events into visualizer intents
package input

import "github.com/lixenwraith/sortviz/algorithm"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // X, Esc, Ctrl+C
	IntentSelect     // B I S M Q R G
	IntentReset      // N: new shuffle, same algorithm
	IntentShowDebug  // O
	IntentHideDebug  // P
	IntentPause      // Space
	IntentFaster     // +
	IntentSlower     // -
	IntentToggleMute // U
)

// Intent is a resolved key press
// Algorithm is only meaningful for IntentSelect
type Intent struct {
	Type      IntentType
	Algorithm algorithm.ID
}
