// This file is part of Gopherdrive.
//
// Gopherdrive is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherdrive is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherdrive.  If not, see <https://www.gnu.org/licenses/>.

package test

import "strings"

// CompareWriter is an implementation of io.Writer that keeps everything
// written to it. Used for testing output of functions that write to an
// io.Writer, such as the logger or the bus summary.
type CompareWriter struct {
	buffer strings.Builder
}

func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	return tw.buffer.Write(p)
}

// Clear the buffer of written data.
func (tw *CompareWriter) Clear() {
	tw.buffer.Reset()
}

// Compare buffered output with the string. Returns true if they are the same.
func (tw *CompareWriter) Compare(s string) bool {
	return s == tw.buffer.String()
}

// Lines returns the buffered output split into lines. The final newline, if
// present, does not produce an empty line.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(tw.buffer.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (tw *CompareWriter) String() string {
	return tw.buffer.String()
}
