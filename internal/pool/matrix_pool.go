// Package pool recycles the dynamic-programming tables used by the comparison
// engines.
package pool

import "sync"

// Matrix is a row-major grid of ints backed by one contiguous slice.
type Matrix struct {
	rows  int
	cols  int
	cells []int
}

// NewMatrix allocates a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, cells: make([]int, rows*cols)}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) int {
	return m.cells[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j, v int) {
	m.cells[i*m.cols+j] = v
}

// Row returns row i as a slice sharing the matrix storage.
func (m *Matrix) Row(i int) []int {
	return m.cells[i*m.cols : (i+1)*m.cols]
}

// reset resizes the matrix in place and zeroes every cell.
func (m *Matrix) reset(rows, cols int) {
	n := rows * cols
	if cap(m.cells) < n {
		m.cells = make([]int, n)
	} else {
		m.cells = m.cells[:n]
		clear(m.cells)
	}
	m.rows = rows
	m.cols = cols
}

// MatrixPool recycles dynamic-programming tables between comparisons.
type MatrixPool struct {
	pool sync.Pool
	// maxCells bounds the size of matrices kept for reuse; larger ones are
	// left to the garbage collector.
	maxCells int
}

// DefaultMaxCells is the largest matrix (in cells) a pool retains.
const DefaultMaxCells = 4 * 1024 * 1024

// NewMatrixPool creates a pool that retains matrices up to maxCells cells.
// A non-positive maxCells selects DefaultMaxCells.
func NewMatrixPool(maxCells int) *MatrixPool {
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	return &MatrixPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Matrix{}
			},
		},
		maxCells: maxCells,
	}
}

// Get returns a zeroed rows x cols matrix.
func (mp *MatrixPool) Get(rows, cols int) *Matrix {
	m := mp.pool.Get().(*Matrix)
	m.reset(rows, cols)
	return m
}

// Put returns a matrix to the pool for reuse.
func (mp *MatrixPool) Put(m *Matrix) {
	if m == nil || cap(m.cells) > mp.maxCells {
		return
	}
	mp.pool.Put(m)
}

// Shared is the process-wide pool used by the comparison engines.
var Shared = NewMatrixPool(DefaultMaxCells)
