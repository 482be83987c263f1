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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// sub-modes, as used by the gopherdmg command line:
//
//	gopherdmg RUN -frames 600 rom.gb
//	gopherdmg PLAY -scale 4 rom.gb
//	gopherdmg PERFORMANCE -duration 10s rom.gb
//
// A Modes instance is initialised with NewArgs(). Flags are added with the
// Add*() functions and sub-modes with AddSubModes(). The first sub-mode is the
// default. Parse() then returns one of ParseContinue, ParseHelp or
// ParseError.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PLAY")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 0, "number of frames")
//		...
//	}
//
// Each call to NewMode() discards the flags and sub-modes of the previous
// mode, while the path of selected modes is retained and is available with
// Path().
package modalflag
