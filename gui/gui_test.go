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

package gui_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/gui"
	"github.com/gopherdmg/gopherdmg/hardware/input"
	"github.com/gopherdmg/gopherdmg/hardware/interrupts"
	"github.com/gopherdmg/gopherdmg/test"
)

func key(name string, down bool) gui.Event {
	return gui.Event{ID: gui.EventKeyboard, Data: gui.EventDataKeyboard{Key: name, Down: down}}
}

func TestKeyMap(t *testing.T) {
	jp := input.NewJoypad(interrupts.NewController())
	km := gui.DefaultKeyMap

	test.ExpectEquality(t, km.Handle(jp, key("Return", true)), gui.ActionNone)
	test.ExpectSuccess(t, jp.IsPressed(input.Start))
	test.ExpectEquality(t, km.Handle(jp, key("Return", false)), gui.ActionNone)
	test.ExpectFailure(t, jp.IsPressed(input.Start))

	km.Handle(jp, key("Left", true))
	test.ExpectSuccess(t, jp.IsPressed(input.Left))
}

func TestActions(t *testing.T) {
	jp := input.NewJoypad(interrupts.NewController())
	km := gui.DefaultKeyMap

	test.ExpectEquality(t, km.Handle(jp, key("Escape", true)), gui.ActionQuit)
	test.ExpectEquality(t, km.Handle(jp, key("Escape", false)), gui.ActionNone)
	test.ExpectEquality(t, km.Handle(jp, key("P", true)), gui.ActionPause)
	test.ExpectEquality(t, km.Handle(jp, key("F12", true)), gui.ActionScreenshot)
	test.ExpectEquality(t, km.Handle(jp, gui.Event{ID: gui.EventWindowClose}), gui.ActionQuit)

	// modifier keys suppress actions
	ev := gui.Event{ID: gui.EventKeyboard, Data: gui.EventDataKeyboard{Key: "p", Down: true, Mod: gui.KeyModCtrl}}
	test.ExpectEquality(t, km.Handle(jp, ev), gui.ActionNone)

	test.ExpectEquality(t, gui.ActionReset.String(), "reset")
}
