// This file is part of Famisim.
//
// Famisim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famisim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famisim.  If not, see <https://www.gnu.org/licenses/>.

// Package paths contains functions to prepare paths to famisim resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// The policy of ResourcePath() is simple: if the base resource path, ".famisim",
// is present in the program's current directory then that is the base path
// that will be used. If it is not present then the user's config directory is
// used. The package uses os.UserConfigDir() from the standard library for
// this.
//
// On a modern Linux system the path returned in the example above will be:
//
//	/home/user/.config/famisim/preferences
//
// Directories are created as required. The file itself is never created.
package paths
