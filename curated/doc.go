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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the function of
// the same name in the fmt package it takes a formatting pattern and values.
// Unlike the fmt package, the pattern is remembered and can be used to
// identify the error later. Patterns should be declared as constants in the
// package that raises the error. For example, the pla package declares:
//
//	const Malformed = "pla: malformed matrix: %v"
//
// and a caller can test for it with:
//
//	if curated.Is(err, pla.Malformed) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain. In this example Is() fails but Has() succeeds:
//
//	e := curated.Errorf(pla.Malformed, "row 12 is too short")
//	f := curated.Errorf("decoder: %v", e)
//
//	curated.Is(f, pla.Malformed)  // false
//	curated.Has(f, pla.Malformed) // true
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. An error that is not curated is an unexpected error.
//
// The Error() implementation normalises the message chain so that adjacent
// duplicate parts are removed. Parts are separated by the sub-string ": ",
// following p239 of "The Go Programming Language" (Donovan, Kernighan). This
// means that wrapping an error with the same prefix more than once does not
// repeat the prefix in the final message:
//
//	e := curated.Errorf("trace: %v", curated.Errorf("trace: file exists"))
//	fmt.Println(e) // trace: file exists
//
// Curated errors also implement Unwrap() so that the standard errors.Is()
// and errors.As() functions can reach a wrapped non-curated error, such as an
// os.PathError.
package curated
