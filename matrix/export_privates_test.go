// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose a few UNEXPORTED helpers and stable panic messages to matrix_test ONLY.
//   - Lives in a _test.go file, so it never reaches production builds.
//
// AI-Hints:
//   - Keep ALL test-only bridges co-located here to avoid clutter across files.

var (
	// ExportedNewDenseZeroOK exposes the internal constructor that admits the empty matrix.
	ExportedNewDenseZeroOK = newDenseZeroOK
	// ExportedCloseTo exposes the scalar tolerance predicate behind AllClose.
	ExportedCloseTo = closeTo
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
)
