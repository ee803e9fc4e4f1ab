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

// Package test contains helper functions for the testing of the other
// packages in Gopherdrive.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions end the test immediately. Both take an optional list of
// tags which are printed with the failure message. This is useful when the
// test is in a loop:
//
//	for i := range banks {
//		test.ExpectEquality(t, table.Entry(i).Reader, want, "bank", i)
//	}
//
// CompareWriter is an io.Writer that records everything written to it so
// that it can be compared against expected output.
package test
