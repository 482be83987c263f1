// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

// Package gui contains the parts of the graphical front end that do not
// depend on any particular windowing library. Front ends translate their
// native events to the Event type and pass them to KeyMap.Handle(), which
// updates the joypad and reports any front end action that is required.
package gui

import (
	"strings"

	"github.com/gopherdmg/gopherdmg/hardware/input"
)

// Action is a request from the user for the front end to do something.
type Action int

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionReset
	ActionScreenshot
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionPause:
		return "pause"
	case ActionReset:
		return "reset"
	case ActionScreenshot:
		return "screenshot"
	}
	return ""
}

// KeyMap maps key names to joypad buttons. Key names are compared without
// regard to case.
type KeyMap map[string]input.Button

// DefaultKeyMap is the key map used when no other is specified.
var DefaultKeyMap = KeyMap{
	"up":        input.Up,
	"down":      input.Down,
	"left":      input.Left,
	"right":     input.Right,
	"z":         input.B,
	"x":         input.A,
	"backspace": input.Select,
	"return":    input.Start,
}

// actions are only triggered on key down.
var actions = map[string]Action{
	"escape": ActionQuit,
	"p":      ActionPause,
	"f5":     ActionReset,
	"f12":    ActionScreenshot,
}

// Handle the event. Keyboard events for mapped keys update the joypad. The
// returned Action is ActionNone unless the event requires the front end to
// do something.
func (km KeyMap) Handle(jp *input.Joypad, ev Event) Action {
	switch ev.ID {
	case EventWindowClose:
		return ActionQuit

	case EventKeyboard:
		kb, ok := ev.Data.(EventDataKeyboard)
		if !ok {
			return ActionNone
		}

		key := strings.ToLower(kb.Key)
		if b, ok := km[key]; ok {
			jp.Set(b, kb.Down)
			return ActionNone
		}

		if kb.Down && kb.Mod == KeyModNone {
			return actions[key]
		}
	}

	return ActionNone
}
