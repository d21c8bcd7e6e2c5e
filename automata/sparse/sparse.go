/*
Package sparse implements a simple type for sparse integer matrices.
It is used for DFA transition tables, where rows are state handles, columns
are symbol indices and every entry is the handle of a destination state.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets kept in row-major order so lookups are a binary search.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229
   https://www.coin-or.org/Ipopt/documentation/node38.html


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(-1)          // parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     cnt := M.ValueCount()          // returns 1 (one position set)
//     v = M.Value(10, 10)            // returns -1, i.e. the null-value
//
// The matrix grows as needed; M() and N() report the extent of positions set so far.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

// Triplet values to store
type triplet struct {
	row, col int
	value    int32
}

// NewIntMatrix creates a new, empty matrix. The argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of values in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the value at position (i,j), or NullValue
func (m *IntMatrix) Value(i, j int) int32 {
	if k, found := m.find(i, j); found {
		return m.values[k].value
	}
	return m.nullval
}

// Has is true if position (i,j) carries a non-null value.
func (m *IntMatrix) Has(i, j int) bool {
	return m.Value(i, j) != m.nullval
}

// Set a value in the matrix at position (i,j). Returns the value previously
// stored at (i,j), or NullValue.
func (m *IntMatrix) Set(i, j int, value int32) int32 {
	if i < 0 || j < 0 {
		panic(fmt.Sprintf("sparse.IntMatrix.Set() with negative index (%d,%d)", i, j))
	}
	k, found := m.find(i, j)
	if found {
		old := m.values[k].value
		m.values[k].value = value
		return old
	}
	tnew := triplet{row: i, col: j, value: value}
	// the following 3 lines have to work for k being the right edge of v or not
	m.values = append(m.values, tnew)  // make room
	copy(m.values[k+1:], m.values[k:]) // copy remainder values one index to right
	m.values[k] = tnew                 // if not append-case: insert new triplet
	if i >= m.rowcnt {
		m.rowcnt = i + 1
	}
	if j >= m.colcnt {
		m.colcnt = j + 1
	}
	return m.nullval
}

// EachInRow calls f for every value stored in row i, in column order.
func (m *IntMatrix) EachInRow(i int, f func(j int, value int32)) {
	k, _ := m.find(i, 0)
	for ; k < len(m.values) && m.values[k].row == i; k++ {
		f(m.values[k].col, m.values[k].value)
	}
}

// Each calls f for every value stored, in row-major order.
func (m *IntMatrix) Each(f func(i, j int, value int32)) {
	for _, t := range m.values {
		f(t.row, t.col, t.value)
	}
}

// find returns the index of (i,j) or the index where it would have to be inserted.
func (m *IntMatrix) find(i, j int) (int, bool) {
	k := sort.Search(len(m.values), func(n int) bool {
		return !m.values[n].storedLeftOf(i, j)
	})
	return k, k < len(m.values) && m.values[k].storedAt(i, j)
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return (t.row == i && t.col == j)
}

func (t triplet) String() string {
	return fmt.Sprintf("(%d,%d)=%d", t.row, t.col, t.value)
}
